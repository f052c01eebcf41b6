package errors

import (
	"regexp"
	"time"
)

// Limits applied to user-supplied input before it reaches a generator.
// Generators cope with any size, but playback of huge sequences is useless.
const (
	MaxValues     = 64
	MaxValue      = 1_000_000
	MaxTextLength = 64
	MaxNameLength = 64
)

var algorithmNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateAlgorithmName checks that name is a plausible kebab-case
// algorithm or topic identifier. It does not check registration.
func ValidateAlgorithmName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "algorithm name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "algorithm name too long (max %d characters)", MaxNameLength)
	}
	if !algorithmNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid algorithm name: %q", name)
	}
	return nil
}

// ValidateValues bounds the length and magnitude of an input array.
func ValidateValues(values []int) error {
	if len(values) > MaxValues {
		return New(ErrCodeInvalidInput, "too many values: %d (max %d)", len(values), MaxValues)
	}
	for i, v := range values {
		if v > MaxValue || v < -MaxValue {
			return New(ErrCodeInvalidInput, "value %d at index %d out of range (max magnitude %d)", v, i, MaxValue)
		}
	}
	return nil
}

// ValidateText bounds the length of a text input.
func ValidateText(text string) error {
	if n := len([]rune(text)); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long: %d characters (max %d)", n, MaxTextLength)
	}
	return nil
}

// ValidateSpeed rejects non-positive playback intervals. Positive values
// outside the playable range are clamped by the controller, not rejected.
func ValidateSpeed(d time.Duration) error {
	if d <= 0 {
		return New(ErrCodeInvalidInput, "speed must be positive, got %s", d)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if f == format {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", format, allowed)
}
