package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrReportNotFound  = errors.New("no static-analysis report found")
	ErrMalformedKey    = errors.New("malformed candidate key")
	ErrNoModule        = errors.New("module directory not found")
	ErrUnknownDetector = errors.New("unknown detector")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// KeyError represents a candidate key that cannot be split into its parts
type KeyError struct {
	Key    string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("cannot parse key %q: %s", e.Key, e.Reason)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

// DetectorError wraps a failure of one detector run
type DetectorError struct {
	Detector string
	Err      error
}

func (e *DetectorError) Error() string {
	return fmt.Sprintf("%s detector: %v", e.Detector, e.Err)
}

func (e *DetectorError) Unwrap() error {
	return e.Err
}
