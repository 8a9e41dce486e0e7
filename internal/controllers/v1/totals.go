package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reliefsheet/backend/internal/compute"
	"github.com/reliefsheet/backend/internal/httputil"
	"github.com/reliefsheet/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TotalAmounts is an amount in both configured currencies.
type TotalAmounts struct {
	Amount    decimal.Decimal `json:"amount" example:"3600"`        // The raw amount
	Primary   string          `json:"primary" example:"₦3,600.00"`  // The amount formatted in the primary currency
	Secondary string          `json:"secondary" example:"$2.25"`    // The amount converted and formatted in the secondary currency
}

// ResolvedRow is a row with all computed columns resolved to display strings.
type ResolvedRow struct {
	ID     string            `json:"id"`     // ID of the row
	Values map[string]string `json:"values"` // Display value per column key
}

type BucketTotals struct {
	ID       string        `json:"id"`       // ID of the bucket
	Name     string        `json:"name"`     // Name of the bucket
	Rows     []ResolvedRow `json:"rows"`     // Rows with computed columns resolved
	Subtotal TotalAmounts  `json:"subtotal"` // Subtotal over all rows of the bucket
}

type TemplateTotals struct {
	Buckets    []BucketTotals `json:"buckets"`    // Per bucket totals
	GrandTotal TotalAmounts   `json:"grandTotal"` // Sum of all bucket subtotals
}

type TemplateTotalsResponse struct {
	Data  *TemplateTotals `json:"data"`                                                          // The computed totals
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func newTotalAmounts(amount decimal.Decimal, ctx compute.Context) TotalAmounts {
	return TotalAmounts{
		Amount:    amount,
		Primary:   compute.Primary(amount, ctx),
		Secondary: compute.Secondary(amount, ctx),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id}/totals [options]
func OptionsTemplateTotals(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Template{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get template totals
// @Description	Computes all derived columns, bucket subtotals and the grand total for a template
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateTotalsResponse
// @Failure		400	{object}	TemplateTotalsResponse
// @Failure		404	{object}	TemplateTotalsResponse
// @Failure		500	{object}	TemplateTotalsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id}/totals [get]
func GetTemplateTotals(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateTotalsResponse{
			Error: &s,
		})
		return
	}

	var template models.Template
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateTotalsResponse{
			Error: &s,
		})
		return
	}

	doc := template.Document
	ctx := compute.NewContext(doc.Meta)

	data := TemplateTotals{
		Buckets: make([]BucketTotals, 0, len(doc.Buckets)),
	}

	for i := range doc.Buckets {
		bucket := &doc.Buckets[i]

		rows := make([]ResolvedRow, 0, len(bucket.Rows))
		for _, row := range bucket.Rows {
			resolved := ResolvedRow{
				ID:     row.ID,
				Values: make(map[string]string, len(bucket.Columns)),
			}
			for _, column := range bucket.Columns {
				resolved.Values[column.Key] = compute.Resolve(bucket, row, column, ctx)
			}
			rows = append(rows, resolved)
		}

		data.Buckets = append(data.Buckets, BucketTotals{
			ID:       bucket.ID,
			Name:     bucket.Name,
			Rows:     rows,
			Subtotal: newTotalAmounts(compute.Subtotal(bucket), ctx),
		})
	}

	data.GrandTotal = newTotalAmounts(compute.GrandTotal(&doc), ctx)

	c.JSON(http.StatusOK, TemplateTotalsResponse{Data: &data})
}
