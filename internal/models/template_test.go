package models_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reliefsheet/backend/internal/document"
	"github.com/reliefsheet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() document.Document {
	var doc document.Document
	doc.Meta.PrimaryCurrency = "NGN"
	doc.Meta.PrimarySymbol = "₦"
	doc.Meta.SecondaryCurrency = "USD"
	doc.Meta.FXRate = "1600"

	bucket := doc.AddBucket("Food & Water")
	qty := bucket.AddColumn("Qty", document.ColumnNumber)
	price := bucket.AddColumn("Unit Price", document.ColumnCurrency)

	row := bucket.AddRow()
	bucket.SetValue(row.ID, qty.Key, "3")
	bucket.SetValue(row.ID, price.Key, "250.00")

	return doc
}

func (suite *TestSuiteStandard) TestTemplateTrimWhitespace() {
	name := "  There is whitespace here  \t"
	note := " Whitespace    "

	template := suite.createTestTemplate(models.Template{
		Name:     name,
		Note:     note,
		Document: testDocument(),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), template.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), template.Note)
}

func (suite *TestSuiteStandard) TestTemplateNameUnique() {
	_ = suite.createTestTemplate(models.Template{Name: "Unique template name"})

	duplicate := models.Template{Name: "Unique template name"}
	err := models.DB.Create(&duplicate).Error

	assert.ErrorIs(suite.T(), err, models.ErrTemplateNameNotUnique)
}

func (suite *TestSuiteStandard) TestTemplateDocumentRoundTrip() {
	t := suite.T()

	template := suite.createTestTemplate(models.Template{
		Name:     "Round trip",
		Document: testDocument(),
	})

	var reloaded models.Template
	err := models.DB.First(&reloaded, template.ID).Error
	require.Nil(t, err)

	require.Len(t, reloaded.Document.Buckets, 1)
	bucket := reloaded.Document.Buckets[0]
	assert.Equal(t, "Food & Water", bucket.Name)
	require.Len(t, bucket.Columns, 2)
	require.Len(t, bucket.Rows, 1)

	// Stored values survive persistence untouched
	row := bucket.Rows[0]
	assert.Equal(t, "3", row.Value(bucket.Columns[0].Key).Raw())
	assert.Equal(t, "250.00", row.Value(bucket.Columns[1].Key).Raw())

	// Column roles are usable directly after loading
	_, ok := bucket.ColumnByRole(document.RolePrice)
	assert.True(t, ok, "price column not found after load")
}

func (suite *TestSuiteStandard) TestTemplateNotFoundError() {
	err := models.DB.First(&models.Template{}, "id = ?", "65392deb-5e92-4268-b114-297faad6cdce").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "template", "error does not name the resource type")
}

func (suite *TestSuiteStandard) TestTemplateExport() {
	t := suite.T()

	for i := range 2 {
		_ = suite.createTestTemplate(models.Template{Name: fmt.Sprint(i), Document: testDocument()})
	}

	raw, err := models.Template{}.Export()
	if err != nil {
		require.Fail(t, "template export failed", err)
	}

	var templates []models.Template
	err = json.Unmarshal(raw, &templates)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, templates, 2, "Number of templates in export is wrong")
}
