package match

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every setup-time configuration error.
var ErrInvalidConfig = errors.New("invalid match configuration")

// ConfigError names the field that made a match setup invalid.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("match: %s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Finite reports whether every value is a real number, neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func positive(v float64) bool    { return v > 0 && Finite(v) }
func nonNegative(v float64) bool { return v >= 0 && Finite(v) }
