package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/reliefsheet/backend/internal/controllers/v1"
	"github.com/reliefsheet/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTemplateTotalsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Template with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Template exists", createTestTemplate(suite.T(), v1.TemplateEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/templates/%s/totals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestTemplateTotals verifies the whole computation pipeline over the API:
// derived cells, the bucket subtotal and the grand total in both currencies.
func (suite *TestSuiteStandard) TestTemplateTotals() {
	t := suite.T()

	tpl := createTestTemplate(t, v1.TemplateEditable{Name: "Totals", Document: testDocument()})

	r := test.Request(t, http.MethodGet, tpl.Data.Links.Totals, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TemplateTotalsResponse
	test.DecodeResponse(t, &r, &response)

	require.NotNil(t, response.Data)
	require.Len(t, response.Data.Buckets, 1)

	bucket := response.Data.Buckets[0]
	assert.Equal(t, "Food & Water", bucket.Name)
	require.Len(t, bucket.Rows, 2)

	srcBucket := tpl.Data.Document.Buckets[0]
	totalKey := columnKey(t, srcBucket, "Total")
	usdKey := columnKey(t, srcBucket, "USD Approved")
	itemKey := columnKey(t, srcBucket, "Item")

	// Row 1: 3 units * 12 months * 25.00 = 900.00
	assert.Equal(t, "Rice", bucket.Rows[0].Values[itemKey])
	assert.Equal(t, "₦900.00", bucket.Rows[0].Values[totalKey])
	assert.Equal(t, "$0.56", bucket.Rows[0].Values[usdKey])

	// Row 2: 2 units * 12 months * 10 = 240.00
	assert.Equal(t, "₦240.00", bucket.Rows[1].Values[totalKey])
	assert.Equal(t, "$0.15", bucket.Rows[1].Values[usdKey])

	// The subtotal sums the approved column: 900 + 240
	assert.True(t, bucket.Subtotal.Amount.Equal(decimal.NewFromInt(1140)), "amount is %s", bucket.Subtotal.Amount)
	assert.Equal(t, "₦1,140.00", bucket.Subtotal.Primary)
	assert.Equal(t, "$0.71", bucket.Subtotal.Secondary)

	assert.True(t, response.Data.GrandTotal.Amount.Equal(decimal.NewFromInt(1140)), "amount is %s", response.Data.GrandTotal.Amount)
	assert.Equal(t, "₦1,140.00", response.Data.GrandTotal.Primary)
}

func (suite *TestSuiteStandard) TestTemplateTotalsEmptyDocument() {
	t := suite.T()

	tpl := createTestTemplate(t, v1.TemplateEditable{Name: "No document"})

	r := test.Request(t, http.MethodGet, tpl.Data.Links.Totals, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TemplateTotalsResponse
	test.DecodeResponse(t, &r, &response)

	require.NotNil(t, response.Data)
	assert.Empty(t, response.Data.Buckets)
	assert.True(t, response.Data.GrandTotal.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestTemplateTotalsNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/templates/%s/totals", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
