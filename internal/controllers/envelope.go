package controllers

import (
	"net/http"

	"github.com/budget-ok/budget-ok/internal/httputil"
	"github.com/budget-ok/budget-ok/internal/models"
	dto "github.com/budget-ok/budget-ok/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func (co Controller) RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsEnvelopeList)
		r.GET("", co.GetEnvelopes)
		r.POST("", co.CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", co.OptionsEnvelopeDetail)
		r.GET("/:id", co.GetEnvelope)
		r.PATCH("/:id", co.UpdateEnvelope)
		r.DELETE("/:id", co.DeleteEnvelope)
	}

	// Expenses of the envelope
	{
		r.OPTIONS("/:id/expenses", co.OptionsEnvelopeExpenses)
		r.GET("/:id/expenses", co.GetEnvelopeExpenses)
		r.POST("/:id/expenses", co.CreateExpense)
	}
}

// getEnvelope returns the envelope with the ID from the path.
// If it cannot be found, the error response is written and ok is false.
func (co Controller) getEnvelope(c *gin.Context) (envelope models.Envelope, ok bool) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		abort(c, err)
		return envelope, false
	}

	err = co.DB.First(&envelope, id).Error
	if err != nil {
		abort(c, err)
		return envelope, false
	}

	return envelope, true
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Envelopes
//	@Success		204
//	@Router			/envelopes [options]
func (co Controller) OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Envelopes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/envelopes/{id} [options]
func (co Controller) OptionsEnvelopeDetail(c *gin.Context) {
	if _, ok := co.getEnvelope(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

//	@Summary		Get envelopes
//	@Description	Returns all envelopes ordered by creation time
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200				{array}		EnvelopeWithExpenses
//	@Failure		400				{object}	httpError
//	@Failure		500				{object}	httpError
//	@Param			includeExpenses	query		bool	false	"Embed the expenses of each envelope"
//	@Router			/envelopes [get]
func (co Controller) GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, httputil.ErrInvalidQueryString)
		return
	}

	q := co.DB.Order("created_at ASC, name ASC")
	if filter.IncludeExpenses {
		q = q.Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, created_at ASC")
		})
	}

	var envelopes []models.Envelope
	err := q.Find(&envelopes).Error
	if err != nil {
		abort(c, err)
		return
	}

	if filter.IncludeExpenses {
		data := make([]EnvelopeWithExpenses, 0, len(envelopes))
		for _, envelope := range envelopes {
			data = append(data, newEnvelopeWithExpenses(envelope))
		}

		c.JSON(http.StatusOK, data)
		return
	}

	data := make([]dto.Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, newEnvelope(envelope))
	}

	c.JSON(http.StatusOK, data)
}

//	@Summary		Create envelope
//	@Description	Creates a new envelope. The name must be unique.
//	@Tags			Envelopes
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	dto.Envelope
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			envelope	body		dto.EnvelopeEditable	true	"Envelope"
//	@Router			/envelopes [post]
func (co Controller) CreateEnvelope(c *gin.Context) {
	var data dto.EnvelopeEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	data = data.Normalize()
	if err := data.Validate(); err != nil {
		abort(c, err)
		return
	}

	envelope := models.Envelope{
		Name:   data.Name,
		Budget: data.Budget.Decimal,
	}

	err = co.DB.Create(&envelope).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, newEnvelope(envelope))
}

//	@Summary		Get envelope
//	@Description	Returns a specific envelope with its expenses
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200	{object}	EnvelopeWithExpenses
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/envelopes/{id} [get]
func (co Controller) GetEnvelope(c *gin.Context) {
	envelope, ok := co.getEnvelope(c)
	if !ok {
		return
	}

	err := co.DB.
		Where(&models.Expense{EnvelopeID: envelope.ID}).
		Order("date ASC, created_at ASC").
		Find(&envelope.Expenses).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelopeWithExpenses(envelope))
}

//	@Summary		Update envelope
//	@Description	Updates an existing envelope. Only values to be updated need to be specified.
//	@Tags			Envelopes
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	dto.Envelope
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			id			path		string					true	"ID formatted as string"
//	@Param			envelope	body		dto.EnvelopeEditable	true	"Envelope"
//	@Router			/envelopes/{id} [patch]
func (co Controller) UpdateEnvelope(c *gin.Context) {
	envelope, ok := co.getEnvelope(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, dto.EnvelopeEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	// Unset fields keep their current value
	data := editable(envelope)
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	data = data.Normalize()
	if err := data.Validate(); err != nil {
		abort(c, err)
		return
	}

	err = co.DB.Model(&envelope).Select("", updateFields...).Updates(models.Envelope{
		Name:   data.Name,
		Budget: data.Budget.Decimal,
	}).Error
	if err != nil {
		abort(c, err)
		return
	}

	err = co.DB.First(&envelope, envelope.ID).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newEnvelope(envelope))
}

//	@Summary		Delete envelope
//	@Description	Deletes an envelope and all of its expenses
//	@Tags			Envelopes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/envelopes/{id} [delete]
func (co Controller) DeleteEnvelope(c *gin.Context) {
	envelope, ok := co.getEnvelope(c)
	if !ok {
		return
	}

	err := co.DB.Select("Expenses").Delete(&envelope).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
