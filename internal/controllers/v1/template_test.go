package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/reliefsheet/backend/internal/controllers/v1"
	"github.com/reliefsheet/backend/internal/document"
	"github.com/reliefsheet/backend/internal/models"
	"github.com/reliefsheet/backend/test"
	"github.com/stretchr/testify/assert"
)

// testDocument builds a document with one bucket of purchases and all
// derived columns that the engine supports.
func testDocument() document.Document {
	var doc document.Document
	doc.Meta.OrgName = "Relief Org"
	doc.Meta.PrimaryCurrency = "NGN"
	doc.Meta.PrimarySymbol = "₦"
	doc.Meta.SecondaryCurrency = "USD"
	doc.Meta.SecondarySymbol = "$"
	doc.Meta.FXRate = "1600"
	doc.Meta.MultiplierLabel = "Months"
	doc.Meta.MultiplierValue = "12"

	bucket := doc.AddBucket("Food & Water")
	item := bucket.AddColumn("Item", document.ColumnText)
	qty := bucket.AddColumn("Qty", document.ColumnNumber)
	price := bucket.AddColumn("Unit Price", document.ColumnCurrency)
	total := bucket.AddColumn("Total", document.ColumnComputed)
	bucket.SetColumnCompute(total.Key, document.ComputeRowTotal)
	approved := bucket.AddColumn("Approved", document.ColumnCurrency)
	usd := bucket.AddColumn("USD Approved", document.ColumnComputed)
	bucket.SetColumnCompute(usd.Key, document.ComputeUSDApproved)

	row := bucket.AddRow()
	bucket.SetValue(row.ID, item.Key, "Rice")
	bucket.SetValue(row.ID, qty.Key, "3")
	bucket.SetValue(row.ID, price.Key, "25.00")
	bucket.SetValue(row.ID, approved.Key, "900")

	row = bucket.AddRow()
	bucket.SetValue(row.ID, item.Key, "Water")
	bucket.SetValue(row.ID, qty.Key, "2")
	bucket.SetValue(row.ID, price.Key, "10")
	bucket.SetValue(row.ID, approved.Key, "240")

	return doc
}

// columnKey returns the key of the column with the given label.
func columnKey(t *testing.T, bucket document.Bucket, label string) string {
	for _, column := range bucket.Columns {
		if column.Label == label {
			return column.Key
		}
	}

	assert.FailNow(t, "no column with this label", "Label: %s", label)
	return ""
}

func createTestTemplate(t *testing.T, editable v1.TemplateEditable, expectedStatus ...int) v1.TemplateResponse {
	if editable.Name == "" {
		editable.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TemplateEditable{editable}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/templates", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TemplateCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TemplateResponse{}
}

// TestTemplatesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTemplatesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTemplate(t, v1.TemplateEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/templates", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TemplateListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestTemplatesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTemplatesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Templates endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Template with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Template exists", createTestTemplate(suite.T(), v1.TemplateEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/templates", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTemplatesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestTemplatesGetSingle() {
	tpl := createTestTemplate(suite.T(), v1.TemplateEditable{Document: testDocument()})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Template", tpl.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Template with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/templates/%s", tt.id), "")

			var response v1.TemplateResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTemplatesDocumentWireFormat verifies that a posted document comes back
// with the same schema, stored values and link targets.
func (suite *TestSuiteStandard) TestTemplatesDocumentWireFormat() {
	t := suite.T()

	tpl := createTestTemplate(t, v1.TemplateEditable{Name: "Wire format", Document: testDocument()})

	r := test.Request(t, http.MethodGet, tpl.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TemplateResponse
	test.DecodeResponse(t, &r, &response)

	doc := response.Data.Document
	assert.Len(t, doc.Buckets, 1)
	bucket := doc.Buckets[0]
	assert.Len(t, bucket.Columns, 6)
	assert.Len(t, bucket.Rows, 2)

	// Stored cells come back as the operator entered them
	qtyKey := columnKey(t, bucket, "Qty")
	priceKey := columnKey(t, bucket, "Unit Price")
	assert.Equal(t, "3", bucket.Rows[0].Value(qtyKey).Raw())
	assert.Equal(t, "25.00", bucket.Rows[0].Value(priceKey).Raw())

	// Computed columns store nothing
	totalKey := columnKey(t, bucket, "Total")
	assert.Equal(t, "", bucket.Rows[0].Value(totalKey).Raw())

	assert.Equal(t, fmt.Sprintf("http://example.com/v1/templates/%s/totals", response.Data.ID), response.Data.Links.Totals)
}

func (suite *TestSuiteStandard) TestTemplatesGetFilter() {
	_ = createTestTemplate(suite.T(), v1.TemplateEditable{
		Name: "Emergency shelter",
		Note: "A note for this template",
	})

	_ = createTestTemplate(suite.T(), v1.TemplateEditable{
		Name: "Groceries",
		Note: "For Groceries",
	})

	_ = createTestTemplate(suite.T(), v1.TemplateEditable{
		Name: "Daily stuff",
		Note: "Groceries, Drug Store, …",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Empty Note", "note=", 0},
		{"Empty Name", "name=", 0},
		{"Name & Note", "name=Emergency shelter&note=A note for this template", 1},
		{"Fuzzy name", "name=e", 2},
		{"Fuzzy note, no name", "name=&note=Groceries", 0},
		{"Fuzzy note", "note=Groceries", 2},
		{"Search for 'groceries'", "search=groceries", 2},
		{"Search for 'FOR'", "search=FOR", 2},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.TemplateListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/templates?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestTemplatesCreateFails() {
	// Test template for uniqueness
	tpl := createTestTemplate(suite.T(), v1.TemplateEditable{
		Name: "Unique Template Name",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, r v1.TemplateCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.TemplateCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field TemplateEditable.note of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.TemplateCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Duplicate name",
			[]v1.TemplateEditable{
				{
					Name: tpl.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.TemplateCreateResponse) {
				assert.Equal(t, "the template name is already in use", *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/templates", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TemplateCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

// Verify that updating templates works as desired
func (suite *TestSuiteStandard) TestTemplatesUpdate() {
	tpl := createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Name of the template"})

	tests := []struct {
		name     string                                    // name of the test
		template map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.TemplateResponse) // tests to perform against the updated template resource
	}{
		{
			"Name, Note",
			map[string]any{
				"name": "Another name",
				"note": "New note!",
			},
			func(t *testing.T, r v1.TemplateResponse) {
				assert.Equal(t, "New note!", r.Data.Note)
				assert.Equal(t, "Another name", r.Data.Name)
			},
		},
		{
			"Document",
			map[string]any{
				"document": testDocument(),
			},
			func(t *testing.T, r v1.TemplateResponse) {
				assert.Len(t, r.Data.Document.Buckets, 1)
				assert.Equal(t, "Food & Water", r.Data.Document.Buckets[0].Name)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tpl.Data.Links.Self, tt.template)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TemplateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTemplatesUpdateFails() {
	tpl := createTestTemplate(suite.T(), v1.TemplateEditable{})

	r := test.Request(suite.T(), http.MethodPatch, tpl.Data.Links.Self, `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTemplatesDelete() {
	tpl := createTestTemplate(suite.T(), v1.TemplateEditable{})

	r := test.Request(suite.T(), http.MethodDelete, tpl.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that the template is gone
	r = test.Request(suite.T(), http.MethodGet, tpl.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTemplatesPagination() {
	for i := range 3 {
		_ = createTestTemplate(suite.T(), v1.TemplateEditable{Name: fmt.Sprint(i)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/templates?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 1, response.Pagination.Count)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 1, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}
