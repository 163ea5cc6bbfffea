package mutation

import (
	"errors"

	"github.com/budget-ok/budget-ok/pkg/api"
)

// Kind is the class of a mutation error.
type Kind int

const (
	KindNone Kind = iota
	KindNetwork
	KindValidation
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindRemote:
		return "remote"
	}

	return "unknown"
}

// Classify returns the class of err. Errors that are not returned by the
// API client are classified as KindRemote.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var networkErr *api.NetworkError
	if errors.As(err, &networkErr) {
		return KindNetwork
	}

	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}

	return KindRemote
}

// Messages are the user facing notifications of a mutation.
type Messages struct {
	Success string
	Network string

	// Validation is used for validation errors. If it is empty, the message
	// of the error is used.
	Validation string

	// Remote is used for all other errors.
	Remote string
}

// For returns the message for an error of kind.
func (m Messages) For(kind Kind, err error) string {
	switch kind {
	case KindNetwork:
		if m.Network != "" {
			return m.Network
		}

	case KindValidation:
		if m.Validation != "" {
			return m.Validation
		}

		var validationErr *api.ValidationError
		if errors.As(err, &validationErr) && validationErr.Message != "" {
			return validationErr.Message
		}
	}

	return m.Remote
}
