package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/reliefsheet/backend/internal/document"
	"github.com/reliefsheet/backend/internal/models"
)

// TemplateEditable represents all user configurable parameters
type TemplateEditable struct {
	Name     string            `json:"name" example:"Flood relief Q3" default:""`            // Name of the template
	Note     string            `json:"note" example:"Draft for the field office" default:""` // Notes about the template
	Document document.Document `json:"document"`                                             // The budget document
}

func (editable TemplateEditable) model() models.Template {
	return models.Template{
		Name:     editable.Name,
		Note:     editable.Note,
		Document: editable.Document,
	}
}

type TemplateLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/templates/3b1ea324-d438-4419-882a-2fc91d71772f"`          // The template itself
	Totals string `json:"totals" example:"https://example.com/api/v1/templates/3b1ea324-d438-4419-882a-2fc91d71772f/totals"` // Computed totals for the template
}

type Template struct {
	models.DefaultModel
	TemplateEditable
	Links TemplateLinks `json:"links"`
}

func newTemplate(c *gin.Context, model models.Template) Template {
	url := c.GetString(string(models.DBContextURL))

	return Template{
		DefaultModel: model.DefaultModel,
		TemplateEditable: TemplateEditable{
			Name:     model.Name,
			Note:     model.Note,
			Document: model.Document,
		},
		Links: TemplateLinks{
			Self:   fmt.Sprintf("%s/v1/templates/%s", url, model.ID),
			Totals: fmt.Sprintf("%s/v1/templates/%s/totals", url, model.ID),
		},
	}
}

type TemplateListResponse struct {
	Data       []Template  `json:"data"`                                                          // List of Templates
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TemplateCreateResponse struct {
	Data  []TemplateResponse `json:"data"`                                                          // List of the created Templates or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TemplateCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TemplateResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TemplateResponse struct {
	Data  *Template `json:"data"`                                                          // Data for the Template
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TemplateQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Template returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Templates to return. Defaults to 50.
}

func (f TemplateQueryFilter) model() models.Template {
	return models.Template{}
}
