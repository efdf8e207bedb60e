package assert

import "fmt"

type settings struct {
	message    string
	tolerance  *float64
	ignoreCase bool
}

// Option adjusts a single check. Options only apply to the checks that
// understand them; handing Within to a non-numeric comparison or IgnoreCase to
// a non-string one is engine misuse.
type Option func(*settings)

// Msgf attaches a descriptive message to the failure raised when the check
// does not hold.
func Msgf(format string, args ...any) Option {
	return func(s *settings) {
		s.message = fmt.Sprintf(format, args...)
	}
}

// Within makes an equality check accept a numeric tolerance band:
// |reached-expected| <= tolerance. A negative tolerance is misuse, since the
// check could then never hold.
func Within(tolerance float64) Option {
	return func(s *settings) {
		s.tolerance = &tolerance
	}
}

// IgnoreCase folds both sides of a string comparison through the same case
// normalization before comparing.
func IgnoreCase() Option {
	return func(s *settings) {
		s.ignoreCase = true
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
