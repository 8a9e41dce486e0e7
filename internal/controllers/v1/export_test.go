package v1_test

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "github.com/reliefsheet/backend/internal/controllers/v1"
	"github.com/reliefsheet/backend/internal/models"
	"github.com/reliefsheet/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	tpl := createTestTemplate(t, v1.TemplateEditable{Document: testDocument()})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(t, &recorder, &response)

	// Verify the version and clacks fields
	assert.Equal(t, "GNU Terry Pratchett", response.Clacks)
	assert.Equal(t, "0.0.0", response.Version)

	// Not sure if this is a good test, if it ever fails we'll re-evaluate
	now := time.Now()
	difference := response.CreationTime.Sub(now).Seconds()
	assert.Less(t, difference, float64(1))

	// Basic tests for the data fields. Full testing is done in the respective Export() methods
	// of the models
	assert.Len(t, response.Data, len(models.Registry), "Number of models in export does not match registry")

	// CreatedAt check for template
	var templates []models.Template
	require.Nil(t, json.Unmarshal(response.Data["Template"], &templates))
	require.Len(t, templates, 1, "Number of templates in export must be 1")
	assert.Equal(t, tpl.Data.CreatedAt, templates[0].CreatedAt)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
