package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.NewNotFoundError("Event not found"), 404, dto.ErrorCodeResourceNotFound},
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"capacity exceeded", apperrors.NewCapacityError("Event is at capacity"), 409, dto.ErrorCodeCapacityExceeded},
		{"conflict", apperrors.NewConflictError("email already exists"), 409, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate email sentinel", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"forbidden", apperrors.NewForbiddenError("Only the author can delete"), 403, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, 401, dto.ErrorCodeInvalidToken},
		{"validation", apperrors.NewValidationError("title must not be empty"), 400, dto.ErrorCodeValidationFailed},
		{"unclassified", errors.New("disk on fire"), 500, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}
