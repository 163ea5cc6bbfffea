// Package uuid wraps google/uuid so that IDs can be bound from query
// parameters with gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// IsSet reports whether u is not the Nil UUID.
func (u UUID) IsSet() bool {
	return u.UUID != google_uuid.Nil
}

// UnmarshalParam parses a query or form parameter.
// An empty parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
