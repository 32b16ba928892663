package updatePerformer

import (
	"bordero/internal/http-server/handlers/bordero/updatePerformer/mocks"
	"bordero/internal/lib/logger/handlers/slogdiscard"
	"bordero/internal/models"
	"bordero/internal/storage"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const borderoID = "7c0f4d5e-2b8a-4c1e-9f3a-6d2b1e0a9c44"

func TestUpdatePerformerHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	band := models.NewPerformerInfo()
	band.Mode = models.ModeBand
	band.PerformerTaxID = "RSSMRA80A01A944I"
	band.PartitaIva = "01234567890"
	band.BandMembers = []models.BandMember{{GivenName: "Anna", FamilyName: "Bianchi", CollectingSocietyRole: "Esecutore"}}

	testCases := []struct {
		name           string
		borderoID      string
		requestBody    string
		mockSetup      func(m *mocks.PerformerUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:        "Switch to band",
			borderoID:   borderoID,
			requestBody: `{"mode":"band","partita_iva":"01234567890","band_members":[{"given_name":"Anna","family_name":"Bianchi","collecting_society_role":"Esecutore"}]}`,
			mockSetup: func(m *mocks.PerformerUpdater) {
				m.On("UpdatePerformer", borderoID, mock.MatchedBy(func(p models.PerformerPatch) bool {
					return p.Mode != nil && *p.Mode == models.ModeBand &&
						p.PerformerTaxID == nil &&
						p.BandMembers != nil && len(*p.BandMembers) == 1
				})).Return(band, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp PerformerResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, models.ModeBand, resp.Performer.Mode)
				assert.Equal(t, "RSSMRA80A01A944I", resp.Performer.PerformerTaxID)
				assert.Equal(t, "01234567890", resp.Performer.PartitaIva)
				assert.Len(t, resp.Performer.BandMembers, 1)
			},
		},
		{
			name:           "Unknown mode",
			borderoID:      borderoID,
			requestBody:    `{"mode":"orchestra"}`,
			mockSetup:      func(m *mocks.PerformerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Mode must be one of [solo band]"}`,
		},
		{
			name:           "Invalid JSON",
			borderoID:      borderoID,
			requestBody:    `{"mode":}`,
			mockSetup:      func(m *mocks.PerformerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Invalid id",
			borderoID:      "xyz",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.PerformerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid bordero id format"}`,
		},
		{
			name:        "Not found",
			borderoID:   borderoID,
			requestBody: `{"is_italian":false}`,
			mockSetup: func(m *mocks.PerformerUpdater) {
				m.On("UpdatePerformer", borderoID, mock.MatchedBy(func(p models.PerformerPatch) bool {
					return p.IsItalian != nil && !*p.IsItalian
				})).Return(models.PerformerInfo{}, storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"bordero not found"}`,
		},
		{
			name:        "Internal error",
			borderoID:   borderoID,
			requestBody: `{"performer":"Mario Rossi"}`,
			mockSetup: func(m *mocks.PerformerUpdater) {
				m.On("UpdatePerformer", borderoID, mock.Anything).Return(models.PerformerInfo{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update performer"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewPerformerUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Patch("/borderos/{id}/performer", New(logger, mockUpdater))

			req, err := http.NewRequest(http.MethodPatch, "/borderos/"+tc.borderoID+"/performer", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
