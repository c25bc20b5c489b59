package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shelterhub/shelter-backend/dto"
	"github.com/shelterhub/shelter-backend/models"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/42/matches", nil)
	return c, recorder
}

func TestPresentError_nil(t *testing.T) {
	c, recorder := newTestContext(t)

	assert.False(t, presentError(context.Background(), c, nil))
	assert.Empty(t, recorder.Body.String())
}

func TestPresentError_statusAndCodeMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   dto.ErrorCode
	}{
		{
			name:           "capacity exceeded",
			err:            errors.Wrap(models.ErrEventCapacityExceeded, "requested 3, 2 of 4 slots taken"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.EventCapacityExceeded,
		},
		{
			name:           "duplicate volunteer ids",
			err:            models.ErrDuplicateVolunteerIds,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.DuplicateVolunteerIds,
		},
		{
			name:           "bad parameter",
			err:            errors.Wrap(models.BadParameterError, "assignment batch is empty"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.BadParameter,
		},
		{
			name:           "unauthorized",
			err:            models.UnAuthorizedError,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   dto.Unauthorized,
		},
		{
			name:           "forbidden",
			err:            models.ForbiddenError,
			expectedStatus: http.StatusForbidden,
			expectedCode:   dto.Forbidden,
		},
		{
			name:           "not found",
			err:            errors.Wrap(models.NotFoundError, "event"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.NotFound,
		},
		{
			name:           "conflict",
			err:            models.ConflictError,
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.Conflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestContext(t)

			assert.True(t, presentError(context.Background(), c, tt.err))
			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var body dto.APIErrorResponse
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedCode, body.ErrorCode)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}

func TestPresentError_unexpectedErrorIsOpaque(t *testing.T) {
	c, recorder := newTestContext(t)
	storeErr := errors.New("pq: connection refused on host db.internal")

	assert.True(t, presentError(context.Background(), c, storeErr))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body dto.APIErrorResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, dto.InternalError, body.ErrorCode)
	assert.NotContains(t, body.Message, "db.internal")
	assert.Equal(t, "an unexpected error occurred", body.Message)
}
