package controllers

import (
	"net/http"
	"time"

	"github.com/budget-ok/budget-ok/internal/httputil"
	"github.com/budget-ok/budget-ok/internal/models"
	dto "github.com/budget-ok/budget-ok/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGet(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	if _, ok := co.getExpense(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Envelopes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/envelopes/{id}/expenses [options]
func (co Controller) OptionsEnvelopeExpenses(c *gin.Context) {
	if _, ok := co.getEnvelope(c); !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

func (co Controller) getExpense(c *gin.Context) (expense models.Expense, ok bool) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		abort(c, err)
		return expense, false
	}

	err = co.DB.First(&expense, id).Error
	if err != nil {
		abort(c, err)
		return expense, false
	}

	return expense, true
}

// listExpenses writes the expenses matching the filter ordered by date.
func (co Controller) listExpenses(c *gin.Context, filter models.Expense) {
	var expenses []models.Expense
	err := co.DB.
		Where(&filter).
		Order("date ASC, created_at ASC").
		Find(&expenses).Error
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]dto.Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

//	@Summary		Get expenses
//	@Description	Returns a list of expenses ordered by date
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{array}		dto.Expense
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			envelopeId	query		string	false	"Filter by envelope ID"
//	@Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, httputil.ErrInvalidQueryString)
		return
	}

	co.listExpenses(c, models.Expense{EnvelopeID: filter.EnvelopeID.UUID})
}

//	@Summary		Get expenses of an envelope
//	@Description	Returns the expenses of an envelope ordered by date
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200	{array}		dto.Expense
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/envelopes/{id}/expenses [get]
func (co Controller) GetEnvelopeExpenses(c *gin.Context) {
	envelope, ok := co.getEnvelope(c)
	if !ok {
		return
	}

	co.listExpenses(c, models.Expense{EnvelopeID: envelope.ID})
}

//	@Summary		Get expense
//	@Description	Returns a specific expense
//	@Tags			Expenses
//	@Produce		json
//	@Success		200	{object}	dto.Expense
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, ok := co.getExpense(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

//	@Summary		Create expense
//	@Description	Records an expense for an envelope. The amount must be positive, the direction is set with the transaction type.
//	@Tags			Envelopes
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	dto.Expense
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			id		path		string				true	"ID formatted as string"
//	@Param			expense	body		dto.ExpenseEditable	true	"Expense"
//	@Router			/envelopes/{id}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	envelope, ok := co.getEnvelope(c)
	if !ok {
		return
	}

	var data dto.ExpenseEditable
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

	date := time.Now().In(time.UTC)
	if data.Date != nil {
		date = data.Date.In(time.UTC)
	}

	expense := models.Expense{
		EnvelopeID:      envelope.ID,
		Amount:          data.Amount.Decimal,
		TransactionType: string(data.TransactionType),
		Memo:            data.Memo,
		Description:     data.Description,
		Date:            date,
	}

	err = co.DB.Create(&expense).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, newExpense(expense))
}
