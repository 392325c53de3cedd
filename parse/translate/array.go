package translate

import (
	"regexp"
	"strings"
)

// Item is one element of a parsed array: either a scalar literal or a
// parenthesized group, optionally named by the identifier that preceded it.
type Item struct {
	Scalar string
	Name   string
	Items  []Item
	Group  bool
}

var groupPattern = regexp.MustCompile(`(?s)^(\w*)\s*\((.*)\)$`)

// ParseArray splits the body of a parenthesized array into its top-level
// items, recursing into nested groups. Item order follows the source text.
func ParseArray(content string) []Item {
	segments := splitTopLevel(content, ',')
	items := make([]Item, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if sub := groupPattern.FindStringSubmatch(seg); sub != nil {
			items = append(items, Item{Name: sub[1], Items: ParseArray(sub[2]), Group: true})
			continue
		}
		items = append(items, Item{Scalar: seg})
	}
	return items
}

// String renders the item as a TOML value. Unnamed groups become arrays,
// named groups become a one-key inline table holding the array.
func (it Item) String() string {
	if !it.Group {
		return it.Scalar
	}
	arr := renderArray(it.Items)
	if it.Name == "" {
		return arr
	}
	return "{" + it.Name + " = " + arr + "}"
}

func renderArray(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

const (
	legacyGroupOpen = "array("
	legacyGroupName = "array"
)

// parseLegacyArray reproduces the historical behavior: text before a nested
// "(" is flushed as its own item, nested groups lose their name and are
// appended as "array = [...]" after all top-level items.
func parseLegacyArray(content string) []string {
	var (
		result []string
		nested []string
		depth  int
		cur    strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			result = append(result, s)
		}
		cur.Reset()
	}
	for _, ch := range content {
		switch {
		case ch == '(':
			depth++
			if depth == 1 {
				flush()
				cur.WriteString(legacyGroupOpen)
			} else {
				cur.WriteRune(ch)
			}
		case ch == ')':
			depth--
			cur.WriteRune(ch)
			if depth == 0 {
				s := cur.String()
				inner := parseLegacyArray(s[len(legacyGroupOpen) : len(s)-1])
				nested = append(nested, legacyGroupName+" = ["+strings.Join(inner, ", ")+"]")
				cur.Reset()
			}
		case ch == ',' && depth == 0:
			flush()
		default:
			cur.WriteRune(ch)
		}
	}
	flush()
	return append(result, nested...)
}

func dropLegacyPrefix(items []string) []string {
	out := items[:0]
	for _, it := range items {
		if it != legacyGroupName {
			out = append(out, it)
		}
	}
	return out
}

// splitTopLevel splits s on sep where sep is outside parentheses and
// double-quoted strings. Segments are trimmed.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts   []string
		cur     strings.Builder
		depth   int
		inQuote bool
		escape  bool
	)
	for _, ch := range s {
		if inQuote {
			cur.WriteRune(ch)
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inQuote = false
			}
			continue
		}
		switch {
		case ch == '"':
			inQuote = true
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		case ch == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteRune(ch)
	}
	if cur.Len() > 0 {
		parts = append(parts, strings.TrimSpace(cur.String()))
	}
	return parts
}
