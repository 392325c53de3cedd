package translate

// Package translate converts the line-oriented configuration language into
// TOML assignment lines.
//
// Grammar (one construct per trimmed line):
// - ! comment
// - (def NAME VALUE)    constant declaration, VALUE is a number or "string"
// - NUMBER              emitted as value<line> = NUMBER
// - NAME                emitted as NAME = ""
// - NAME(ITEMS)         emitted as NAME = [ITEMS]
// - $[ KEY: VALUE, ]    dictionary block, may span lines
// - |NAME|              constant reference, substituted before classification
//
// The first error stops the run; no partial output is produced.

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
)

const dictionaryKey = "dictionary"

// Options control rendering.
type Options struct {
	// Legacy reproduces the historical output: nested array groups are
	// rendered as "array = [...]" after the scalar items, and every
	// dictionary block is keyed "dictionary".
	Legacy bool
	Logger *slog.Logger
}

// Translator holds the state of a single run. It is not reusable across runs
// and not safe for concurrent use.
type Translator struct {
	opts         Options
	log          *slog.Logger
	constants    *Constants
	dict         Dictionary
	out          []string
	lineNo       int
	dictionaries int
}

func New(opts Options) *Translator {
	l := opts.Logger
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Translator{
		opts:      opts,
		log:       l,
		constants: NewConstants(),
	}
}

// Run consumes lines in order and returns the emitted TOML lines.
func (t *Translator) Run(lines iter.Seq[string]) ([]string, error) {
	for line := range lines {
		t.lineNo++
		if err := t.translateLine(strings.TrimSpace(line)); err != nil {
			return nil, err
		}
	}
	if t.dict.Open() {
		return nil, errorf(errorKinds.InvalidDictionaryFormat, t.dict.start, "dictionary opened on line %d is never closed", t.dict.start)
	}
	if len(t.out) == 0 {
		return nil, errorf(errorKinds.NoData, t.lineNo, "no valid TOML data to write")
	}
	return t.out, nil
}

// Translate runs a fresh Translator over s split into lines.
func Translate(s string, opts Options) ([]string, error) {
	return New(opts).Run(strings.Lines(s))
}

func (t *Translator) translateLine(line string) error {
	m := Classify(line)
	switch m.Class {
	case ClassComment:
		return nil
	case ClassDeclaration:
		if err := t.constants.Declare(t.lineNo, m.Name, m.Body); err != nil {
			return err
		}
		t.log.Debug("constant declared", slog.String("name", m.Name), slog.String("value", m.Body), slog.Int("constants", t.constants.Len()), slog.Int("line", t.lineNo))
		return nil
	}

	line, err := t.constants.Substitute(t.lineNo, line)
	if err != nil {
		return err
	}

	if t.dict.Open() {
		if strings.HasPrefix(line, dictionaryOpenPrefix) {
			return t.dict.Start(t.lineNo, line)
		}
		if t.dict.Append(line) {
			return t.closeDictionary()
		}
		return nil
	}

	m = Classify(line)
	switch m.Class {
	case ClassEmpty:
	case ClassNumber:
		t.emit(fmt.Sprintf("value%d = %s", t.lineNo, m.Body))
	case ClassName:
		t.emit(m.Name + ` = ""`)
	case ClassArray:
		t.emit(m.Name + " = " + t.renderArray(m.Body))
	case ClassDictionaryStart:
		if err := t.dict.Start(t.lineNo, line); err != nil {
			return err
		}
		if strings.HasSuffix(line, dictionaryCloseSuffix) {
			return t.closeDictionary()
		}
	default:
		return errorf(errorKinds.UnrecognizedSyntax, t.lineNo, "unrecognized syntax %q", line)
	}
	return nil
}

func (t *Translator) closeDictionary() error {
	body, err := t.dict.Close(t.lineNo)
	if err != nil {
		return err
	}
	entries, err := parseEntries(t.lineNo, body, t.renderEntryArray)
	if err != nil {
		return err
	}
	t.dictionaries++
	key := t.dictionaryKey()
	t.log.Debug("dictionary closed", slog.String("key", key), slog.Int("entries", len(entries)), slog.Int("line", t.lineNo))
	t.emit(key + " = " + renderEntries(entries))
	return nil
}

// dictionaryKey names the current block: "dictionary" for the first block,
// then "dictionary2", "dictionary3" and so on.
func (t *Translator) dictionaryKey() string {
	if t.opts.Legacy || t.dictionaries == 1 {
		return dictionaryKey
	}
	return fmt.Sprintf("%s%d", dictionaryKey, t.dictionaries)
}

func (t *Translator) renderArray(content string) string {
	if t.opts.Legacy {
		return "[" + strings.Join(dropLegacyPrefix(parseLegacyArray(content)), ", ") + "]"
	}
	return renderArray(ParseArray(content))
}

// renderEntryArray formats an array value inside a dictionary block. Legacy
// mode keeps bare "array" items here; only top-level arrays drop them.
func (t *Translator) renderEntryArray(content string) string {
	if t.opts.Legacy {
		return "[" + strings.Join(parseLegacyArray(content), ", ") + "]"
	}
	return renderArray(ParseArray(content))
}

func (t *Translator) emit(s string) {
	t.out = append(t.out, s)
}
