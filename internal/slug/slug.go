// Package slug derives URL-safe identifiers from human-readable names.
package slug

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var vietnamese = map[rune]string{
	'à': "a", 'á': "a", 'ạ': "a", 'ả': "a", 'ã': "a",
	'â': "a", 'ầ': "a", 'ấ': "a", 'ậ': "a", 'ẩ': "a", 'ẫ': "a",
	'ă': "a", 'ằ': "a", 'ắ': "a", 'ặ': "a", 'ẳ': "a", 'ẵ': "a",
	'è': "e", 'é': "e", 'ẹ': "e", 'ẻ': "e", 'ẽ': "e",
	'ê': "e", 'ề': "e", 'ế': "e", 'ệ': "e", 'ể': "e", 'ễ': "e",
	'ì': "i", 'í': "i", 'ị': "i", 'ỉ': "i", 'ĩ': "i",
	'ò': "o", 'ó': "o", 'ọ': "o", 'ỏ': "o", 'õ': "o",
	'ô': "o", 'ồ': "o", 'ố': "o", 'ộ': "o", 'ổ': "o", 'ỗ': "o",
	'ơ': "o", 'ờ': "o", 'ớ': "o", 'ợ': "o", 'ở': "o", 'ỡ': "o",
	'ù': "u", 'ú': "u", 'ụ': "u", 'ủ': "u", 'ũ': "u",
	'ư': "u", 'ừ': "u", 'ứ': "u", 'ự': "u", 'ử': "u", 'ữ': "u",
	'ỳ': "y", 'ý': "y", 'ỵ': "y", 'ỷ': "y", 'ỹ': "y",
	'đ': "d",
}

var (
	nonWord    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make lowercases name, transliterates Vietnamese letters, drops anything
// that is not a word character, whitespace or hyphen, and joins words with
// single hyphens.
func Make(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		// Non-ASCII spaces (NBSP, ideographic space) separate words too.
		if unicode.IsSpace(r) {
			b.WriteByte(' ')
			continue
		}
		if repl, ok := vietnamese[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	// Letters outside the table (é in French names, ñ, ...) lose their marks
	// instead of disappearing.
	// A chained transformer keeps state, so each call builds its own.
	stripAccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripAccent, b.String())
	if err != nil {
		folded = b.String()
	}

	s := nonWord.ReplaceAllString(folded, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExistsFunc reports whether a candidate slug is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Unique tries base, base-1, base-2, ... in order and returns the first
// candidate exists reports as free. Probes are strictly sequential.
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
}
