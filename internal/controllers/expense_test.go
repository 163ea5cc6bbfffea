package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/budget-ok/budget-ok/internal/test"
	dto "github.com/budget-ok/budget-ok/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	envelope := suite.createEnvelope("Groceries", "300")

	r := suite.request(http.MethodPost, baseURL+"/envelopes/"+envelope.ID.String()+"/expenses", `{
		"amount": 45.5,
		"memo": " milk ",
		"description": "Weekly shopping",
		"transactionType": "WITHDRAW",
		"date": "2022-04-02T10:00:00+02:00"
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense dto.Expense
	test.DecodeResponse(suite.T(), &r, &expense)
	suite.Assert().NotEqual(uuid.Nil, expense.ID)
	suite.Assert().Equal(envelope.ID, expense.EnvelopeID)
	suite.Assert().Equal("45.50", expense.Amount.String())
	suite.Assert().Equal("milk", expense.Memo)
	suite.Assert().Equal("Weekly shopping", expense.Description)
	suite.Assert().Equal(dto.TransactionWithdraw, expense.TransactionType)
	suite.Assert().Equal(time.Date(2022, 4, 2, 8, 0, 0, 0, time.UTC), expense.Date.UTC())
}

func (suite *TestSuiteStandard) TestExpensesCreateDefaultDate() {
	envelope := suite.createEnvelope("Groceries", "300")
	before := time.Now().Add(-time.Minute)

	expense := suite.createExpense(envelope, "10", dto.TransactionDeposit, "refund")
	suite.Assert().True(expense.Date.After(before), "Date must default to now, is %s", expense.Date)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	envelope := suite.createEnvelope("Groceries", "300")
	url := baseURL + "/envelopes/" + envelope.ID.String() + "/expenses"

	tests := []struct {
		name    string
		url     string
		body    string
		status  int
		message string
	}{
		{"Zero amount", url, `{"amount": 0, "memo": "milk", "transactionType": "WITHDRAW"}`, http.StatusBadRequest, "the expense amount must be positive"},
		{"Negative amount", url, `{"amount": -4, "memo": "milk", "transactionType": "WITHDRAW"}`, http.StatusBadRequest, "the expense amount must be positive"},
		{"Blank memo", url, `{"amount": 4, "memo": "  ", "transactionType": "WITHDRAW"}`, http.StatusBadRequest, "the expense memo must not be empty"},
		{"Invalid type", url, `{"amount": 4, "memo": "milk", "transactionType": "TRANSFER"}`, http.StatusBadRequest, "the transaction type must be WITHDRAW or DEPOSIT"},
		{"Unknown envelope", baseURL + "/envelopes/" + uuid.NewString() + "/expenses", `{"amount": 4, "memo": "milk", "transactionType": "WITHDRAW"}`, http.StatusNotFound, "there is no envelope matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.r, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.message, test.DecodeError(t, &r))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesList() {
	groceries := suite.createEnvelope("Groceries", "300")
	rent := suite.createEnvelope("Rent", "1000")
	milk := suite.createExpense(groceries, "4.50", dto.TransactionWithdraw, "milk")
	suite.createExpense(rent, "1000", dto.TransactionWithdraw, "April")

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"By envelope", "?envelopeId=" + groceries.ID.String(), 1},
		{"Unknown envelope", "?envelopeId=" + uuid.NewString(), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.r, http.MethodGet, baseURL+"/expenses"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses []dto.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.count)
		})
	}

	r := suite.request(http.MethodGet, baseURL+"/envelopes/"+groceries.ID.String()+"/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []dto.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(milk.ID, expenses[0].ID)
}

func (suite *TestSuiteStandard) TestExpensesListInvalidQuery() {
	r := suite.request(http.MethodGet, baseURL+"/expenses?envelopeId=nope", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the query string contains unparseable data. Please check the values", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	envelope := suite.createEnvelope("Groceries", "300")
	expense := suite.createExpense(envelope, "4.50", dto.TransactionWithdraw, "milk")

	r := suite.request(http.MethodGet, baseURL+"/expenses/"+expense.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got dto.Expense
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Equal(expense.ID, got.ID)
	suite.Assert().Equal("4.50", got.Amount.String())

	r = suite.request(http.MethodGet, baseURL+"/expenses/"+uuid.NewString(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no expense matching your query", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	envelope := suite.createEnvelope("Groceries", "300")
	expense := suite.createExpense(envelope, "4.50", dto.TransactionWithdraw, "milk")

	r := suite.request(http.MethodOptions, baseURL+"/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, baseURL+"/expenses/"+expense.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, baseURL+"/expenses/"+uuid.NewString(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
