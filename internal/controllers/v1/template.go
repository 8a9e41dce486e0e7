package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reliefsheet/backend/internal/httputil"
	"github.com/reliefsheet/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTemplateRoutes registers the routes for templates with
// the RouterGroup that is passed.
func RegisterTemplateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTemplateList)
		r.GET("", GetTemplates)
		r.POST("", CreateTemplates)
	}

	// Template with ID
	{
		r.OPTIONS("/:id", OptionsTemplateDetail)
		r.GET("/:id", GetTemplate)
		r.PATCH("/:id", UpdateTemplate)
		r.DELETE("/:id", DeleteTemplate)
	}

	// Computed totals
	{
		r.OPTIONS("/:id/totals", OptionsTemplateTotals)
		r.GET("/:id/totals", GetTemplateTotals)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Router			/v1/templates [options]
func OptionsTemplateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [options]
func OptionsTemplateDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Template{})
}

// @Summary		Create templates
// @Description	Creates new templates
// @Tags			Templates
// @Produce		json
// @Success		201			{object}	TemplateCreateResponse
// @Failure		400			{object}	TemplateCreateResponse
// @Failure		500			{object}	TemplateCreateResponse
// @Param			templates	body		[]TemplateEditable	true	"Templates"
// @Router			/v1/templates [post]
func CreateTemplates(c *gin.Context) {
	var editables []TemplateEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TemplateCreateResponse{}

	for _, editable := range editables {
		template := editable.model()

		err = models.DB.Create(&template).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTemplate(c, template)
		r.Data = append(r.Data, TemplateResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get templates
// @Description	Returns a list of templates
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateListResponse
// @Failure		400	{object}	TemplateListResponse
// @Failure		500	{object}	TemplateListResponse
// @Router			/v1/templates [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Template returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Templates to return. Defaults to 50."
func GetTemplates(c *gin.Context) {
	var filter TemplateQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Templates and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var templates []models.Template
	err := q.Find(&templates).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TemplateListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Template, 0)
	for _, template := range templates {
		data = append(data, newTemplate(c, template))
	}

	c.JSON(http.StatusOK, TemplateListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get template
// @Description	Returns a specific template
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateResponse
// @Failure		400	{object}	TemplateResponse
// @Failure		404	{object}	TemplateResponse
// @Failure		500	{object}	TemplateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [get]
func GetTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	var template models.Template
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	data := newTemplate(c, template)
	c.JSON(http.StatusOK, TemplateResponse{Data: &data})
}

// @Summary		Update template
// @Description	Update an existing template. Only values to be updated need to be specified.
// @Tags			Templates
// @Accept			json
// @Produce		json
// @Success		200			{object}	TemplateResponse
// @Failure		400			{object}	TemplateResponse
// @Failure		404			{object}	TemplateResponse
// @Failure		500			{object}	TemplateResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			template	body		TemplateEditable	true	"Template"
// @Router			/v1/templates/{id} [patch]
func UpdateTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	var template models.Template
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TemplateEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	var data TemplateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&template).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	r := newTemplate(c, template)
	c.JSON(http.StatusOK, TemplateResponse{Data: &r})
}

// @Summary		Delete template
// @Description	Deletes a template
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	deleteResource[models.Template](c)
}
