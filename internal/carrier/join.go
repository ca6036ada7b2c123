package carrier

import "carriertext/internal/carrier/models"

// Joiner concatenates display fragments with the configured separator.
type Joiner struct {
	separator string
}

// NewJoiner picks the device-variant carrier separator when it is enabled,
// otherwise the default separator.
func NewJoiner(separators models.Separators) Joiner {
	if separators.UseCarrier {
		return Joiner{separator: separators.Carrier}
	}
	return Joiner{separator: separators.Default}
}

// Separator returns the separator used between non-empty fragments.
func (j Joiner) Separator() string {
	return j.separator
}

// Join returns a+sep+b when both are non-empty, whichever is non-empty otherwise,
// and "" when neither is.
func (j Joiner) Join(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + j.separator + b
	case a != "":
		return a
	default:
		return b
	}
}
