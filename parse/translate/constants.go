package translate

// Constants maps constant names to the literal text they stand for.
type Constants struct {
	items map[string]string
}

func NewConstants() *Constants {
	return &Constants{items: make(map[string]string)}
}

// Declare binds name to literal, replacing any earlier binding. The literal
// must be a number or a double-quoted string.
func (c *Constants) Declare(line int, name, literal string) error {
	if !isNumber(literal) && !isQuoted(literal) {
		return errorf(errorKinds.InvalidConstantValue, line, "invalid constant value %q", literal)
	}
	c.items[name] = literal
	return nil
}

func (c *Constants) Resolve(line int, name string) (string, error) {
	v, ok := c.items[name]
	if !ok {
		return "", errorf(errorKinds.UndefinedConstant, line, "undefined constant %q", name)
	}
	return v, nil
}

func (c *Constants) Len() int { return len(c.items) }

// Substitute replaces every |name| placeholder in s with its literal. The
// replacement text is not scanned again. The first unresolved name aborts.
func (c *Constants) Substitute(line int, s string) (string, error) {
	locs := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return s, nil
	}
	out := make([]byte, 0, len(s))
	last := 0
	for _, loc := range locs {
		v, err := c.Resolve(line, s[loc[2]:loc[3]])
		if err != nil {
			return "", err
		}
		out = append(out, s[last:loc[0]]...)
		out = append(out, v...)
		last = loc[1]
	}
	out = append(out, s[last:]...)
	return string(out), nil
}
