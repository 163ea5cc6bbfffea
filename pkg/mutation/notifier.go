package mutation

import "github.com/rs/zerolog"

// Notifier surfaces the outcome of mutations to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Success(message string) {
	n.Logger.Info().Str("notification", "success").Msg(message)
}

func (n LogNotifier) Error(message string) {
	n.Logger.Error().Str("notification", "error").Msg(message)
}
