package classificationdomain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizedKey is the canonical form of a player name used for lookups.
// It is never shown to users.
type NormalizedKey string

// maxNormalizePasses bounds the fixed-point loop in Normalize. Every pass that
// changes an already normalized key makes it shorter, so this is never reached
// with real names.
const maxNormalizePasses = 16

// trailingSpace mirrors the whitespace class used when stripping a trailing token.
const trailingSpace = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*\z`

type tokenPattern struct {
	anywhere *regexp.Regexp
	trailing *regexp.Regexp
}

// Normalizer turns raw player names into NormalizedKeys.
// It is immutable and safe for concurrent use.
type Normalizer struct {
	tokens []tokenPattern
}

// NewNormalizer builds a Normalizer that strips the given country tokens.
// Tokens are applied in order; duplicates are ignored.
func NewNormalizer(countryTokens []string) *Normalizer {
	seen := make(map[string]struct{}, len(countryTokens))
	patterns := make([]tokenPattern, 0, len(countryTokens))
	for _, token := range countryTokens {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}

		quoted := regexp.QuoteMeta(token)
		patterns = append(patterns, tokenPattern{
			anywhere: regexp.MustCompile(`(?i)` + quoted),
			trailing: regexp.MustCompile(`(?i)` + quoted + trailingSpace),
		})
	}
	return &Normalizer{tokens: patterns}
}

// Normalize returns the matching key for raw. Names made only of country
// tokens or punctuation normalize to the empty key.
//
// The pipeline is applied until its output stops changing so that
// Normalize(string(Normalize(x))) == Normalize(x).
func (n *Normalizer) Normalize(raw string) NormalizedKey {
	key := n.pass(raw)
	for i := 0; i < maxNormalizePasses; i++ {
		next := n.pass(key)
		if next == key {
			break
		}
		key = next
	}
	return NormalizedKey(key)
}

func (n *Normalizer) pass(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}

	for _, token := range n.tokens {
		name = removeWholeWord(name, token.anywhere)
		name = token.trailing.ReplaceAllString(name, "")
	}

	name = strings.ReplaceAll(name, "©", "")
	name = collapseNonWord(name)
	name = cases.Lower(language.Und).String(name)
	name = strings.TrimSpace(name)

	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), name)
	if err == nil {
		name = stripped
	}

	return strings.Join(strings.Fields(name), " ")
}

// removeWholeWord deletes every match of re that starts and ends on a word boundary.
func removeWholeWord(s string, re *regexp.Regexp) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && atWordBoundary(s, start) && atWordBoundary(s, end) {
			b.WriteString(s[last:start])
			last, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func atWordBoundary(s string, i int) bool {
	before := false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	after := false
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// collapseNonWord replaces each run of characters that are not letters or
// numbers with a single space. Underscores count as separators.
func collapseNonWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r != '_' && (unicode.IsLetter(r) || unicode.IsNumber(r)) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(' ')
			inRun = true
		}
	}
	return b.String()
}
