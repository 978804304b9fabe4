// Package validate holds the pure input predicates shared by every form
// handler, plus the uniform field→message error type they all return.
package validate

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	upperRe   = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)

	// Intentionally permissive, not RFC-exhaustive: one @, non-whitespace
	// local and domain parts, dotted domain.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// PasswordRules is the per-rule breakdown of a password strength check,
// so callers can render targeted guidance for the rules still missing.
type PasswordRules struct {
	Length  bool `json:"length"`
	Upper   bool `json:"upper"`
	Digit   bool `json:"digit"`
	Special bool `json:"special"`
}

// OK reports whether all four rules hold.
func (r PasswordRules) OK() bool {
	return r.Length && r.Upper && r.Digit && r.Special
}

// Missing lists the rules that failed, in display order.
func (r PasswordRules) Missing() []string {
	var out []string
	if !r.Length {
		out = append(out, "at least 8 characters")
	}
	if !r.Upper {
		out = append(out, "an uppercase letter")
	}
	if !r.Digit {
		out = append(out, "a digit")
	}
	if !r.Special {
		out = append(out, "a special character")
	}
	return out
}

// PasswordStrength evaluates the four independent strength rules:
// length >= 8, an uppercase letter (accented Spanish letters count),
// a digit, and a character that is neither a letter nor a digit.
func PasswordStrength(pwd string) PasswordRules {
	return PasswordRules{
		Length:  len([]rune(pwd)) >= 8,
		Upper:   upperRe.MatchString(pwd),
		Digit:   digitRe.MatchString(pwd),
		Special: specialRe.MatchString(pwd),
	}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// NonNegativeInt reports whether v is an integral value >= 0.
func NonNegativeInt(v float64) bool {
	return !math.IsNaN(v) && v == math.Trunc(v) && v >= 0
}

// NonNegativePrice reports whether v is a usable price.
func NonNegativePrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Errors maps field names to human-readable messages. Every form
// endpoint surfaces validation failures through this one type.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+e[f])
	}
	return strings.Join(msgs, "; ")
}
