package deleteBordero

import (
	"bordero/internal/http-server/handlers/bordero/deleteBordero/mocks"
	"bordero/internal/lib/logger/handlers/slogdiscard"
	"bordero/internal/storage"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const borderoID = "7c0f4d5e-2b8a-4c1e-9f3a-6d2b1e0a9c44"

func TestDeleteBorderoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		borderoID      string
		mockSetup      func(mock *mocks.BorderoDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			borderoID: borderoID,
			mockSetup: func(mock *mocks.BorderoDeleter) {
				mock.On("DeleteSession", borderoID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid id",
			borderoID:      "not-a-uuid",
			mockSetup:      func(mock *mocks.BorderoDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid bordero id format"}`,
		},
		{
			name:      "Not found",
			borderoID: borderoID,
			mockSetup: func(mock *mocks.BorderoDeleter) {
				mock.On("DeleteSession", borderoID).Return(storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"bordero not found"}`,
		},
		{
			name:      "Internal error",
			borderoID: borderoID,
			mockSetup: func(mock *mocks.BorderoDeleter) {
				mock.On("DeleteSession", borderoID).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete bordero"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBorderoDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/borderos/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/borderos/"+tc.borderoID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
