package controllers_test

import (
	"net/http"
	"testing"

	"github.com/budget-ok/budget-ok/internal/test"
	dto "github.com/budget-ok/budget-ok/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestEnvelopesEmpty() {
	r := suite.request(http.MethodGet, baseURL+"/envelopes", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestEnvelopesCreate() {
	envelope := suite.createEnvelope("  Groceries ", "300")

	suite.Assert().NotEqual(uuid.Nil, envelope.ID)
	suite.Assert().Equal("Groceries", envelope.Name, "Name must be trimmed")
	suite.Assert().Equal("300.00", envelope.Budget.String())
	suite.Assert().Nil(envelope.Expenses)
	suite.Assert().False(envelope.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestEnvelopesCreateFails() {
	suite.createEnvelope("Groceries", "300")

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Duplicate name", `{"name": "Groceries", "budget": 20}`, http.StatusBadRequest, "the envelope name must be unique"},
		{"Empty name", `{"name": "   ", "budget": 20}`, http.StatusBadRequest, "the envelope name must not be empty"},
		{"Negative budget", `{"name": "Rent", "budget": -1}`, http.StatusBadRequest, "the envelope budget must not be negative"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{"name": 2`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.r, http.MethodPost, baseURL+"/envelopes", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.message, test.DecodeError(t, &r))
		})
	}

	r := suite.request(http.MethodGet, baseURL+"/envelopes", nil)
	var envelopes []dto.Envelope
	test.DecodeResponse(suite.T(), &r, &envelopes)
	suite.Assert().Len(envelopes, 1, "Failed creates must not change the list")
}

func (suite *TestSuiteStandard) TestEnvelopesList() {
	groceries := suite.createEnvelope("Groceries", "300")
	rent := suite.createEnvelope("Rent", "1000")
	suite.createExpense(groceries, "45.50", dto.TransactionWithdraw, "milk")

	r := suite.request(http.MethodGet, baseURL+"/envelopes", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var envelopes []dto.Envelope
	test.DecodeResponse(suite.T(), &r, &envelopes)
	suite.Require().Len(envelopes, 2)
	suite.Assert().Equal(groceries.ID, envelopes[0].ID)
	suite.Assert().Equal(rent.ID, envelopes[1].ID)
	suite.Assert().Nil(envelopes[0].Expenses, "Expenses must only be embedded on request")

	r = suite.request(http.MethodGet, baseURL+"/envelopes?includeExpenses=true", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	envelopes = nil
	test.DecodeResponse(suite.T(), &r, &envelopes)
	suite.Require().Len(envelopes, 2)
	suite.Require().Len(envelopes[0].Expenses, 1)
	suite.Assert().Equal("milk", envelopes[0].Expenses[0].Memo)
	suite.Assert().Empty(envelopes[1].Expenses)
}

func (suite *TestSuiteStandard) TestEnvelopesEmbeddedExpensesRenderEmptyList() {
	envelope := suite.createEnvelope("Groceries", "300")

	for _, url := range []string{baseURL + "/envelopes?includeExpenses=true", baseURL + "/envelopes/" + envelope.ID.String()} {
		suite.T().Run(url, func(t *testing.T) {
			r := test.Request(t, suite.r, http.MethodGet, url, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			assert.Contains(t, r.Body.String(), `"expenses":[]`)
		})
	}

	r := suite.request(http.MethodGet, baseURL+"/envelopes", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().NotContains(r.Body.String(), `"expenses"`, "Expenses must only be rendered on request")
}

func (suite *TestSuiteStandard) TestEnvelopesListInvalidQuery() {
	r := suite.request(http.MethodGet, baseURL+"/envelopes?includeExpenses=maybe", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEnvelopesGet() {
	envelope := suite.createEnvelope("Groceries", "300")
	suite.createExpense(envelope, "300", dto.TransactionDeposit, "salary")
	suite.createExpense(envelope, "45.50", dto.TransactionWithdraw, "milk")

	r := suite.request(http.MethodGet, baseURL+"/envelopes/"+envelope.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got dto.Envelope
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Len(got.Expenses, 2)
	suite.Assert().True(got.Balance().Equal(decimal.RequireFromString("254.50")), "Balance is %s", got.Balance())
}

func (suite *TestSuiteStandard) TestEnvelopesGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Unknown", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodOptions, http.MethodPatch, http.MethodDelete} {
				r := test.Request(t, suite.r, method, baseURL+"/envelopes/"+tt.id, `{"name": "Test"}`)
				test.AssertHTTPStatus(t, &r, tt.status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesUpdate() {
	envelope := suite.createEnvelope("Groceries", "300")

	r := suite.request(http.MethodPatch, baseURL+"/envelopes/"+envelope.ID.String(), `{"budget": 500}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated dto.Envelope
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(envelope.ID, updated.ID)
	suite.Assert().Equal("Groceries", updated.Name, "Unset fields must keep their value")
	suite.Assert().Equal("500.00", updated.Budget.String())

	r = suite.request(http.MethodPatch, baseURL+"/envelopes/"+envelope.ID.String(), dto.EnvelopeEditable{Name: "Food", Budget: dto.MustAmount("0")})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	updated = dto.Envelope{}
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Food", updated.Name)
	suite.Assert().True(updated.Budget.IsZero(), "A zero budget must be written")
}

func (suite *TestSuiteStandard) TestEnvelopesUpdateFails() {
	suite.createEnvelope("Rent", "1000")
	envelope := suite.createEnvelope("Groceries", "300")
	url := baseURL + "/envelopes/" + envelope.ID.String()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"Duplicate name", `{"name": "Rent"}`, "the envelope name must be unique"},
		{"Empty name", `{"name": ""}`, "the envelope name must not be empty"},
		{"Negative budget", `{"budget": -20}`, "the envelope budget must not be negative"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.r, http.MethodPatch, url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.message, test.DecodeError(t, &r))
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	envelope := suite.createEnvelope("Groceries", "300")
	expense := suite.createExpense(envelope, "45.50", dto.TransactionWithdraw, "milk")

	r := suite.request(http.MethodDelete, baseURL+"/envelopes/"+envelope.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, baseURL+"/envelopes/"+envelope.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, baseURL+"/expenses/"+expense.ID.String(), nil)
	// Expenses are deleted with their envelope
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopesOptions() {
	envelope := suite.createEnvelope("Groceries", "300")

	tests := []struct {
		path  string
		allow string
	}{
		{"/envelopes", "OPTIONS, GET, POST"},
		{"/envelopes/" + envelope.ID.String(), "OPTIONS, GET, PATCH, DELETE"},
		{"/envelopes/" + envelope.ID.String() + "/expenses", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodOptions, baseURL+tt.path, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestEnvelopesDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, baseURL+"/envelopes", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = suite.request(http.MethodPost, baseURL+"/envelopes", `{"name": "Groceries"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
