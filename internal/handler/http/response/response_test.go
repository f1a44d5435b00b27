package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "s1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"end_time": "end time must be after start time"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "end time must be after start time", resp.Error.Details["end_time"])
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation errors map to 422", validator.ValidationErrors{{Field: "date", Message: "date is required"}}, http.StatusUnprocessableEntity},
		{"shift not found maps to 404", shift.ErrShiftNotFound, http.StatusNotFound},
		{"finalized shift maps to 409", shift.ErrShiftAlreadyFinalized, http.StatusConflict},
		{"unknown errors map to 500", assert.AnError, http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.wantCode, rec.Code)
		})
	}
}
