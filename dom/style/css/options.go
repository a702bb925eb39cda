package css

// Matcher decides wether selector paths apply to nodes. The zero value is a
// matcher with standard CSS semantics. Matchers are immutable and may be
// shared between goroutines.
type Matcher struct {
	legacyNthParity bool
}

// NewMatcher constructs a matcher with options, if you need any.
// Use it like this:
//
//     m := css.NewMatcher(css.LegacyNthParity())
//
func NewMatcher(opts ...Option) Matcher {
	m := Matcher{}
	for _, option := range opts {
		m = option(m)
	}
	return m
}

// Option is a type to help initializing matchers at creation time.
type Option func(Matcher) Matcher

// LegacyNthParity is an option to use inverted parity semantics:
// :nth-child(even) selects nodes at odd 1-based positions (1st, 3rd, …) and
// :nth-child(odd) selects nodes at even positions.
// Without this option, even and odd follow CSS.
func LegacyNthParity() Option {
	return func(m Matcher) Matcher {
		m.legacyNthParity = true
		return m
	}
}

// HasLegacyNthParity reports wether the matcher uses inverted even/odd semantics.
func (m Matcher) HasLegacyNthParity() bool {
	return m.legacyNthParity
}
