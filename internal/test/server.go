package test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/budget-ok/budget-ok/internal/config"
	"github.com/budget-ok/budget-ok/internal/controllers"
	"github.com/budget-ok/budget-ok/internal/models"
	"github.com/budget-ok/budget-ok/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Server is a reference server backed by a temporary database.
type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	URL    string // Base URL of the API, including the /api prefix
}

// Engine returns an engine with all routes attached at /api and the database
// it uses. Everything is torn down when the test ends.
func Engine(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := models.Connect(TmpFile(t))
	require.NoError(t, err, "database could not be initialized")

	apiURL, _ := url.Parse("http://example.com/api")
	r, teardown, err := router.Config(config.Config{APIURL: apiURL})
	require.NoError(t, err, "router could not be initialized")

	router.AttachRoutes(controllers.Controller{DB: db}, r.Group(apiURL.Path))

	t.Cleanup(func() {
		teardown()

		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return r, db
}

// NewServer starts a reference server listening on a local port.
func NewServer(t *testing.T) Server {
	r, db := Engine(t)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return Server{
		Engine: r,
		DB:     db,
		URL:    srv.URL + "/api",
	}
}
