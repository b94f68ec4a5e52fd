// Package notify provides access-code delivery collaborators.
// Delivery is fire-and-forget: the directory never consumes a delivery
// result, and a failed delivery does not roll back credential state.
package notify

import "github.com/rs/zerolog"

// Notifier delivers a one-time access code to a destination (a phone number
// in canonical form).
type Notifier interface {
	SendAccessCode(destination, code string)
}

// LogNotifier writes deliveries to the log. It stands in for a real SMS
// gateway, which is outside this subsystem.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

// SendAccessCode implements Notifier.
func (n *LogNotifier) SendAccessCode(destination, code string) {
	n.logger.Info().
		Str("destination", destination).
		Str("code", code).
		Msg("sending access code")
}

// Func adapts a function to the Notifier interface.
type Func func(destination, code string)

// SendAccessCode implements Notifier.
func (f Func) SendAccessCode(destination, code string) {
	f(destination, code)
}
