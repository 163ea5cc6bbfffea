package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-ok/budget-ok/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abort responds with the status for err and the error message.
func abort(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}

var errDatabaseUnavailable = errors.New("there is a problem with the database connection")
