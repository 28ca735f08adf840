package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name               string
		err                error
		ginErrorType       gin.ErrorType
		expectedStatusCode int
		expectedBody       map[string]any
		debugMode          bool
	}{
		{
			name:               "standard error in debug mode",
			err:                errors.New("internal processing error"),
			ginErrorType:       gin.ErrorTypePrivate,
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"code":    "500",
				"message": "Internal Server Error",
				"details": "internal processing error",
			},
			debugMode: true,
		},
		{
			name:               "standard error in production mode",
			err:                errors.New("internal processing error"),
			ginErrorType:       gin.ErrorTypePrivate,
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"code":    "500",
				"message": "Internal Server Error",
			},
			debugMode: false,
		},
		{
			name:               "gin bind error",
			err:                errors.New("failed to bind JSON"),
			ginErrorType:       gin.ErrorTypeBind,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "400",
				"message": "Failed to bind request",
				"details": "failed to bind JSON",
			},
			debugMode: true,
		},
		{
			name:               "not found error",
			err:                apperrors.NotFound("Vehicle", "vehicle-123"),
			ginErrorType:       gin.ErrorTypePublic,
			expectedStatusCode: http.StatusNotFound,
			expectedBody: map[string]any{
				"code":    "404",
				"message": "Vehicle not found",
				"details": "ID: vehicle-123",
			},
			debugMode: false,
		},
		{
			name:               "validation error",
			err:                apperrors.ValidationFailed("Invalid shift data", "start time is required"),
			ginErrorType:       gin.ErrorTypePublic,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "400",
				"message": "Invalid shift data",
				"details": "start time is required",
			},
			debugMode: false,
		},
		{
			name:               "period overlap conflict keeps details",
			err:                apperrors.PeriodOverlap("the requested dates collide with period \"Semana 23\""),
			ginErrorType:       gin.ErrorTypePublic,
			expectedStatusCode: http.StatusConflict,
			expectedBody: map[string]any{
				"code":    "409",
				"message": "Weekly period overlaps an existing period",
				"details": "the requested dates collide with period \"Semana 23\"",
			},
			debugMode: false,
		},
		{
			name:               "database error hides detail in production",
			err:                apperrors.NewDatabaseError(errors.New("pq: connection refused")),
			ginErrorType:       gin.ErrorTypePrivate,
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"code":    "500",
				"message": "Database operation failed",
			},
			debugMode: false,
		},
		{
			name:               "no error",
			err:                nil,
			ginErrorType:       0,
			expectedStatusCode: http.StatusOK,
			expectedBody:       nil,
			debugMode:          false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.debugMode {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}
			defer gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.Use(ErrorHandler())
			r.GET("/test", func(ctx *gin.Context) {
				if tc.err != nil {
					_ = ctx.Error(tc.err).SetType(tc.ginErrorType)
				} else {
					ctx.String(http.StatusOK, "OK")
				}
			})

			req, _ := http.NewRequest("GET", "/test", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)

			if tc.expectedBody != nil {
				var responseBody map[string]any
				err := json.Unmarshal(w.Body.Bytes(), &responseBody)
				require.NoError(t, err, "Failed to unmarshal response body")

				for key, expectedValue := range tc.expectedBody {
					assert.Contains(t, responseBody, key)
					assert.Equal(t, fmt.Sprintf("%v", expectedValue), fmt.Sprintf("%v", responseBody[key]), "Field mismatch: %s", key)
				}
				if _, exists := tc.expectedBody["details"]; !exists {
					assert.NotContains(t, responseBody, "details")
				}
			} else {
				assert.Equal(t, "OK", w.Body.String())
			}
		})
	}

	gin.SetMode(gin.TestMode)
}
