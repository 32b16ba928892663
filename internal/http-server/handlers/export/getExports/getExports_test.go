package getExports

import (
	"bordero/internal/http-server/handlers/export/getExports/mocks"
	"bordero/internal/lib/logger/handlers/slogdiscard"
	"bordero/internal/models"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExportsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	exportedAt := time.Date(2025, 2, 14, 23, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.ExportsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.ExportsGetter) {
				m.On("GetExports").Return([]models.ExportEntry{
					{
						ID:         2,
						SessionID:  "7c0f4d5e-2b8a-4c1e-9f3a-6d2b1e0a9c44",
						EventType:  "107-OR",
						Organizer:  "Pro Loco",
						Performer:  "I Nomadi",
						Mode:       models.ModeBand,
						SongCount:  12,
						Format:     "pdf",
						Filename:   "bordero.pdf",
						ExportedAt: exportedAt,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","exports":[{"id":2,"session_id":"7c0f4d5e-2b8a-4c1e-9f3a-6d2b1e0a9c44",
				"event_type":"107-OR","organizer":"Pro Loco","performer":"I Nomadi","mode":"band","song_count":12,
				"format":"pdf","filename":"bordero.pdf","exported_at":"2025-02-14T23:30:00Z"}]}`,
		},
		{
			name: "Empty journal",
			mockSetup: func(m *mocks.ExportsGetter) {
				m.On("GetExports").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","exports":[]}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.ExportsGetter) {
				m.On("GetExports").Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get exports"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewExportsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest(http.MethodGet, "/exports", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, []models.ExportEntry{{ID: 1}})

	var actual ExportsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actual))

	assert.Equal(t, "OK", actual.Status)
	require.Len(t, actual.Exports, 1)
	assert.Equal(t, 1, actual.Exports[0].ID)
}
