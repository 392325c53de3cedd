package translate

import (
	"regexp"
	"strings"
)

// Class is the syntactic category of a single trimmed input line.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassEmpty
	ClassComment
	ClassDeclaration
	ClassNumber
	ClassName
	ClassArray
	ClassDictionaryStart
)

var classNames = [...]string{
	ClassUnknown:         "unknown",
	ClassEmpty:           "empty",
	ClassComment:         "comment",
	ClassDeclaration:     "declaration",
	ClassNumber:          "number",
	ClassName:            "name",
	ClassArray:           "array",
	ClassDictionaryStart: "dictionary",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

var (
	declarationPattern = regexp.MustCompile(`^\(def\s+(\w+)\s+(.+?)\)$`)
	numberPattern      = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	namePattern        = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	arrayPattern       = regexp.MustCompile(`^(\w+)\((.*)\)$`)
	dictionaryPattern  = regexp.MustCompile(`(?s)^\$\[\s*(.*?)\s*\]$`)
	placeholderPattern = regexp.MustCompile(`\|(\w+)\|`)
)

const (
	commentPrefix         = "!"
	dictionaryOpenPrefix  = "$["
	dictionaryCloseSuffix = "]"
)

// Match is the result of classifying a line. Name and Body carry the
// captures of the matching rule, when it has any.
type Match struct {
	Class Class
	Name  string
	Body  string
}

type matcher func(line string) (Match, bool)

// matchers are tried in order; the first hit wins.
var matchers = []matcher{
	matchEmpty,
	matchComment,
	matchDeclaration,
	matchNumber,
	matchName,
	matchArray,
	matchDictionaryStart,
}

// Classify returns the category of a trimmed line, or ClassUnknown.
func Classify(line string) Match {
	for _, m := range matchers {
		if r, ok := m(line); ok {
			return r
		}
	}
	return Match{Class: ClassUnknown}
}

func matchEmpty(line string) (Match, bool) {
	return Match{Class: ClassEmpty}, line == ""
}

func matchComment(line string) (Match, bool) {
	return Match{Class: ClassComment}, strings.HasPrefix(line, commentPrefix)
}

func matchDeclaration(line string) (Match, bool) {
	sub := declarationPattern.FindStringSubmatch(line)
	if sub == nil {
		return Match{}, false
	}
	return Match{Class: ClassDeclaration, Name: sub[1], Body: sub[2]}, true
}

func matchNumber(line string) (Match, bool) {
	if !isNumber(line) {
		return Match{}, false
	}
	return Match{Class: ClassNumber, Body: line}, true
}

func matchName(line string) (Match, bool) {
	if !namePattern.MatchString(line) {
		return Match{}, false
	}
	return Match{Class: ClassName, Name: line}, true
}

func matchArray(line string) (Match, bool) {
	name, body, ok := splitArrayForm(line)
	if !ok {
		return Match{}, false
	}
	return Match{Class: ClassArray, Name: name, Body: body}, true
}

func matchDictionaryStart(line string) (Match, bool) {
	return Match{Class: ClassDictionaryStart}, strings.HasPrefix(line, dictionaryOpenPrefix)
}

func isNumber(s string) bool {
	return numberPattern.MatchString(s)
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

func splitArrayForm(s string) (name, body string, ok bool) {
	sub := arrayPattern.FindStringSubmatch(s)
	if sub == nil {
		return "", "", false
	}
	return sub[1], sub[2], true
}
