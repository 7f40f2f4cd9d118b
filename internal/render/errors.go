package render

import "fmt"

// UnsupportedFeatureError reports a construct that has neither a native nor
// an emulated rendering strategy for the target dialect. It always fails the
// render; invalid SQL is never emitted instead.
type UnsupportedFeatureError struct {
	Dialect Dialect
	Feature string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates an unsupported feature error for a
// dialect, with an optional remediation hint.
func NewUnsupportedFeatureError(d Dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Dialect: d, Feature: feature}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
