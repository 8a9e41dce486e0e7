package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/reliefsheet/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "GET, DELETE"},
		{"http://example.com/v1/templates", "GET, POST"},
		{"http://example.com/v1/export", "GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}

// TestMethodNotAllowed tests some endpoints with disallowed HTTP methods
// to verify that the HTTP 405 - Method Not Allowed status is returned
// correctly
func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	tests := []struct {
		path   string
		method string
	}{
		{"/", http.MethodPost},
		{"/", http.MethodDelete},
		{"http://example.com/v1", http.MethodPost},
		{"http://example.com/v1/templates", http.MethodHead},
		{"http://example.com/v1/templates", http.MethodPut},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s - %s", tt.path, tt.method), func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "")

			test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
		})
	}
}
