package validateBordero

import (
	"bordero/internal/http-server/handlers/bordero/validateBordero/mocks"
	"bordero/internal/lib/logger/handlers/slogdiscard"
	"bordero/internal/lib/validation"
	"bordero/internal/models"
	"bordero/internal/storage"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const borderoID = "7c0f4d5e-2b8a-4c1e-9f3a-6d2b1e0a9c44"

func soloRecord() models.Record {
	r := models.NewRecord()
	r.Event = models.EventInfo{
		StartDate: "14-02-2025",
		EndDate:   "14-02-2025",
		Location:  "Teatro Comunale",
		EventType: "107-OR",
		Organizer: "Pro Loco",
		StartTime: "21:00",
		EndTime:   "23:00",
	}
	r.Performer.Performer = "Mario Rossi"
	r.Performer.Address = "Via Roma 1"
	r.Performer.PostalCode = "40100"
	r.Performer.Province = "BO"
	r.Performer.Municipality = "Bologna"
	r.Performer.PerformerTaxID = "RSSMRA80A01A944I"

	return r
}

func TestValidateBorderoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bandWithoutVAT := soloRecord()
	bandWithoutVAT.Performer.Mode = models.ModeBand

	noLocation := soloRecord()
	noLocation.Event.Location = ""

	testCases := []struct {
		name            string
		record          models.Record
		expectedMissing []validation.FieldError
	}{
		{
			name:            "Complete solo",
			record:          soloRecord(),
			expectedMissing: []validation.FieldError{},
		},
		{
			name:   "Band without VAT number",
			record: bandWithoutVAT,
			expectedMissing: []validation.FieldError{
				{Field: "performer.partita_iva", Rule: "required"},
			},
		},
		{
			name:   "Missing location",
			record: noLocation,
			expectedMissing: []validation.FieldError{
				{Field: "event.location", Rule: "required"},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBorderoGetter(t)
			mockGetter.On("GetBordero", borderoID).Return(tc.record, nil)

			router := chi.NewRouter()
			router.Get("/borderos/{id}/validation", New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, "/borderos/"+borderoID+"/validation", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var resp ValidationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, len(tc.expectedMissing) == 0, resp.Complete)
			assert.Equal(t, tc.expectedMissing, resp.Missing)
		})
	}
}

func TestValidateBorderoErrors(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		borderoID      string
		mockSetup      func(m *mocks.BorderoGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid id",
			borderoID:      "x",
			mockSetup:      func(m *mocks.BorderoGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid bordero id format"}`,
		},
		{
			name:      "Not found",
			borderoID: borderoID,
			mockSetup: func(m *mocks.BorderoGetter) {
				m.On("GetBordero", borderoID).Return(models.Record{}, storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"bordero not found"}`,
		},
		{
			name:      "Internal error",
			borderoID: borderoID,
			mockSetup: func(m *mocks.BorderoGetter) {
				m.On("GetBordero", borderoID).Return(models.Record{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bordero"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBorderoGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/borderos/{id}/validation", New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, "/borderos/"+tc.borderoID+"/validation", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
