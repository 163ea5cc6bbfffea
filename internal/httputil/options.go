package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Options sets the "allow" header to the methods passed in and responds
// with an empty body.
func Options(c *gin.Context, methods ...string) {
	allow := "OPTIONS"
	for _, m := range methods {
		allow += ", " + m
	}

	c.Header("allow", allow)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	Options(c, http.MethodGet)
}

func OptionsGetPost(c *gin.Context) {
	Options(c, http.MethodGet, http.MethodPost)
}

func OptionsGetPatchDelete(c *gin.Context) {
	Options(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
