package codec

import "log/slog"

// EventKind classifies a non-fatal decode event.
type EventKind string

const (
	// EventFallback is emitted when an unrecognized value was replaced by the family default.
	EventFallback EventKind = "fallback"
	// EventInvalidEnum is emitted when a scalar enum value was dropped.
	EventInvalidEnum EventKind = "invalid_enum"
	// EventLegacyTag is emitted when a deprecated tag spelling was accepted.
	EventLegacyTag EventKind = "legacy_tag"
)

// Event describes input the decoder accepted without failing.
type Event struct {
	Kind   EventKind
	Family string
	Path   string
	Raw    any
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for fallback and invalid enum reports.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithStrict turns fallbacks and invalid enum values into errors.
func WithStrict(strict bool) Option {
	return func(d *Decoder) {
		d.strict = strict
	}
}

// WithObserver registers a callback invoked for every non-fatal event.
func WithObserver(fn func(Event)) Option {
	return func(d *Decoder) {
		d.observers = append(d.observers, fn)
	}
}
