// Package parser turns free-form "Key: value" listing messages into typed
// submissions. Labels are matched against a fixed alias table with a
// normalized edit-distance score, so common typos still resolve to the right
// field.
package parser

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultMatchThreshold is the highest normalized edit distance at which a
// label still matches an alias. 0.4 tolerates roughly 60% character-level
// similarity.
const DefaultMatchThreshold = 0.4

// ValidationError reports why a message could not be accepted. Either
// MissingFields or Reason is set.
type ValidationError struct {
	MissingFields []Field
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		names := make([]string, len(e.MissingFields))
		for i, f := range e.MissingFields {
			names[i] = string(f)
		}
		return "missing required fields: " + strings.Join(names, ", ")
	}
	return e.Reason
}

// Config holds parser tuning.
type Config struct {
	// MatchThreshold overrides DefaultMatchThreshold when > 0.
	MatchThreshold float64
}

// Parser maps loosely-labeled message lines onto the listing schema.
// It is stateless and safe for concurrent use.
type Parser struct {
	threshold float64
}

// New creates a Parser with the given configuration.
func New(cfg Config) *Parser {
	t := cfg.MatchThreshold
	if t <= 0 {
		t = DefaultMatchThreshold
	}
	return &Parser{threshold: t}
}

// Parse extracts one Submission from text. Lines without a ":" separator and
// labels that match no alias are skipped silently; when the same field is
// matched twice the later value wins. Missing required fields are collected
// and reported together in a single *ValidationError.
func (p *Parser) Parse(text string) (*Submission, error) {
	raw := make(map[Field]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		field, ok := p.matchLabel(label)
		if !ok {
			continue
		}
		raw[field] = strings.TrimSpace(value)
	}

	sub := &Submission{}
	for field, value := range raw {
		sub.set(field, value)
	}

	var missing []Field
	for _, f := range requiredFields {
		if sub.has(f) {
			continue
		}
		// A fire NOC line with a blank value is still an answer; the yes/no
		// coercion alone cannot tell it apart from an absent line.
		if f == FieldFireNocAvailable {
			if _, ok := raw[f]; ok {
				continue
			}
		}
		missing = append(missing, f)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	// The field was present, but a zero rate is never a real listing. Units
	// and other trailing text are ignored: "0 per sqft" is still zero.
	if rate, ok := leadingFloat(sub.RatePerSqft); ok && rate == 0 {
		return nil, &ValidationError{Reason: "zero value is not allowed in rate per sqft"}
	}

	return sub, nil
}

// matchLabel resolves a label candidate to the best-scoring alias. The score
// is the Levenshtein distance divided by the longer string's rune length, so
// position inside the label does not matter and short labels are not unfairly
// penalized.
func (p *Parser) matchLabel(label string) (Field, bool) {
	norm := strings.ToLower(strings.TrimSpace(label))
	if norm == "" {
		return "", false
	}
	normLen := len([]rune(norm))

	var bestField Field
	bestScore := p.threshold + 1
	for _, spec := range fieldSpecs {
		d := levenshtein.ComputeDistance(norm, spec.Alias)
		n := len([]rune(spec.Alias))
		if normLen > n {
			n = normLen
		}
		score := float64(d) / float64(n)
		if score < bestScore {
			bestScore = score
			bestField = spec.Field
		}
	}
	return bestField, bestScore <= p.threshold
}

// leadingFloat reads the numeric prefix of s: an optional sign, digits and a
// decimal point. Trailing text is ignored, so "40/sqft" yields 40 and
// "negotiable" yields nothing.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseSizes splits a size listing like "25000, 30000, 45000 sqft" into the
// integers it mentions, in order. Comma segments that contain no digits are
// dropped; duplicates are kept.
func ParseSizes(input string) []int {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var sizes []int
	for _, part := range strings.Split(input, ",") {
		var digits strings.Builder
		for _, r := range part {
			if r >= '0' && r <= '9' {
				digits.WriteRune(r)
			}
		}
		if digits.Len() == 0 {
			continue
		}
		n, err := strconv.Atoi(digits.String())
		if err != nil {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}
