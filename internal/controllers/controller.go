// Package controllers implements the HTTP handlers of the reference server.
package controllers

import (
	"gorm.io/gorm"
)

// Controller holds the database all handlers work on.
type Controller struct {
	DB *gorm.DB
}
