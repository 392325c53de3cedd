package translate

import "strings"

// Dictionary buffers the physical lines of a $[ ... ] block until it closes.
type Dictionary struct {
	lines []string
	start int
	open  bool
}

func (d *Dictionary) Open() bool { return d.open }

// Start opens a new block at line. Blocks do not nest.
func (d *Dictionary) Start(line int, text string) error {
	if d.open {
		return errorf(errorKinds.NestedDictionary, line, "nested dictionaries are not allowed")
	}
	d.open = true
	d.start = line
	d.lines = append(d.lines[:0], text)
	return nil
}

// Append adds a line to the open block and reports whether it closed it.
func (d *Dictionary) Append(text string) bool {
	d.lines = append(d.lines, text)
	return strings.HasSuffix(text, dictionaryCloseSuffix)
}

// Close joins the buffered lines and returns the block body between $[ and ].
func (d *Dictionary) Close(line int) (string, error) {
	block := strings.TrimSpace(strings.Join(d.lines, " "))
	d.lines = d.lines[:0]
	d.open = false
	sub := dictionaryPattern.FindStringSubmatch(block)
	if sub == nil {
		return "", errorf(errorKinds.InvalidDictionaryFormat, line, "invalid dictionary format")
	}
	return strings.TrimSpace(sub[1]), nil
}

// Entry is a single key/value pair of a dictionary block with the value
// already rendered as TOML.
type Entry struct {
	Key   string
	Value string
}

// parseEntries splits a dictionary body into entries. render formats array
// values; numbers and quoted strings are kept verbatim.
func parseEntries(line int, body string, render func(content string) string) ([]Entry, error) {
	var entries []Entry
	for _, seg := range splitTopLevel(body, ',') {
		if seg == "" {
			continue
		}
		key, value, ok := strings.Cut(seg, ":")
		if !ok {
			return nil, errorf(errorKinds.MissingColon, line, "missing ':' in dictionary entry %q", seg)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch {
		case arrayPattern.MatchString(value):
			_, content, _ := splitArrayForm(value)
			value = render(content)
		case isNumber(value), isQuoted(value):
		default:
			return nil, errorf(errorKinds.InvalidDictionaryValue, line, "invalid value %q in dictionary entry", value)
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

func renderEntries(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Key + " = " + e.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
