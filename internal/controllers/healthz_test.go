package controllers_test

import (
	"net/http"

	"github.com/budget-ok/budget-ok/internal/test"
)

func (suite *TestSuiteStandard) TestHealthz() {
	r := suite.request(http.MethodGet, baseURL+"/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodOptions, baseURL+"/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzFails() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, baseURL+"/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("there is a problem with the database connection", test.DecodeError(suite.T(), &r))
}
