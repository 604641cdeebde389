package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"Validation", errors.NewValidationError("validation failed"), http.StatusBadRequest, "validation failed"},
		{"NotFound", errors.NewNotFoundError("resource not found"), http.StatusNotFound, "resource not found"},
		{"Configuration", errors.NewConfigurationError("weather API key is not configured", nil), http.StatusPreconditionFailed, "weather API key is not configured"},
		{"Geolocation", errors.NewGeolocationError("location unavailable", nil), http.StatusServiceUnavailable, "location unavailable"},
		{"ExternalAPI", errors.NewExternalAPIError("weather provider returned status 500", nil), http.StatusBadGateway, "weather provider returned status 500"},
		{"Database", errors.NewDatabaseError("dial tcp 10.0.0.1:5432", nil), http.StatusServiceUnavailable, "Preference store unavailable"},
		{"Wrapped", fmt.Errorf("fetch weather for x: %w", errors.NewNotFoundError("No matching location found.")), http.StatusNotFound, "No matching location found."},
		{"Unknown", errors.New(errors.ErrorTypeUnknown, "generic error"), http.StatusInternalServerError, "Internal server error"},
		{"Plain", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) { server.handleError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}

func TestBindingError_NonValidationFailure(t *testing.T) {
	err := bindingError(fmt.Errorf("unexpected EOF"))

	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Invalid request format")
}
