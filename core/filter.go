package core

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/alexmk92/combobox/core/types"
)

// FilterFunc decides whether an option stays visible for the current input text.
type FilterFunc func(option types.Option, input string) bool

// MatchFrom selects where in the candidate string the input has to match.
type MatchFrom int

const (
	MatchAny MatchFrom = iota
	MatchStart
)

// FilterConfig configures the default substring filter.
type FilterConfig struct {
	IgnoreCase    bool
	IgnoreAccents bool
	Trim          bool
	MatchFrom     MatchFrom
	// Stringify builds the candidate string for an option. Defaults to
	// "<label> <value>".
	Stringify func(option types.Option) string
}

func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		IgnoreCase:    true,
		IgnoreAccents: true,
		Trim:          true,
		MatchFrom:     MatchAny,
	}
}

// DefaultFilter is the predicate used when Config.FilterOption is nil.
var DefaultFilter = NewFilter(DefaultFilterConfig())

// NewFilter builds a substring predicate from a FilterConfig.
func NewFilter(cfg FilterConfig) FilterFunc {
	stringify := cfg.Stringify
	if stringify == nil {
		stringify = stringifyOption
	}

	return func(option types.Option, input string) bool {
		candidate := stringify(option)
		if cfg.IgnoreCase {
			input = strings.ToLower(input)
			candidate = strings.ToLower(candidate)
		}
		if cfg.IgnoreAccents {
			input = stripAccents(input)
			candidate = stripAccents(candidate)
		}
		if cfg.Trim {
			input = strings.TrimSpace(input)
			candidate = strings.TrimSpace(candidate)
		}

		if cfg.MatchFrom == MatchStart {
			return strings.HasPrefix(candidate, input)
		}
		return strings.Contains(candidate, input)
	}
}

// FuzzyFilter matches the input as a fuzzy pattern against the option label.
// An empty input matches everything.
func FuzzyFilter(option types.Option, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}
	return len(fuzzy.Find(input, []string{option.Label})) > 0
}

func stringifyOption(option types.Option) string {
	return option.Label + " " + option.ValueString()
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
