package claw

import "math"

// Unbounded marks a list parameter with no upper arity limit.
const Unbounded = math.MaxInt

// Parameter is the uniform contract the matcher works against, regardless
// of the concrete value type or cardinality behind it.
//
// Read consumes the sub-argument tokens allocated to one occurrence of the
// parameter. For value-bearing kinds it discards previously stored values
// first (duplicate occurrences follow a last-wins policy); Counter is the
// deliberate exception and accumulates. SetByUser flips true only when
// Read returns nil.
type Parameter interface {
	Read(tokens []string) error
	MinArgs() int
	MaxArgs() int
	IsRequired() bool
	SetByUser() bool
	Description() string
}

// NamedParameter is a Parameter identified by a short (-x) and/or long
// (--xxx) token.
type NamedParameter interface {
	Parameter
	ShortName() string
	LongName() string
}

// PositionalParameter is a Parameter identified purely by position.
type PositionalParameter interface {
	Parameter
	positional()
}

// VariableLength reports whether p can consume differing numbers of
// sub-arguments across invocations.
func VariableLength(p Parameter) bool {
	return p.MinArgs() != p.MaxArgs()
}

// paramBase carries the state every parameter kind shares.
type paramBase struct {
	description string
	required    bool
	setByUser   bool
}

func (b *paramBase) Description() string { return b.description }
func (b *paramBase) IsRequired() bool    { return b.required }
func (b *paramBase) SetByUser() bool     { return b.setByUser }

func (b *paramBase) markSet() { b.setByUser = true }

// namedBase adds flag identity on top of paramBase.
type namedBase struct {
	paramBase
	short string
	long  string
}

func (n *namedBase) ShortName() string { return n.short }
func (n *namedBase) LongName() string  { return n.long }

// displayName prefers the long name and falls back to the short one,
// rendered the way the user would type it. Error messages and help
// listings call the flag by this name.
func (n *namedBase) displayName() string {
	if n.long != "" {
		return "--" + n.long
	}
	return "-" + n.short
}

// representationName renders a parameter for messages: flag syntax for
// named parameters, the bare description for positionals.
func representationName(p Parameter) string {
	if n, ok := p.(interface{ displayName() string }); ok {
		return n.displayName()
	}
	return p.Description()
}

// decodeAll decodes each token in order, replacing prior values. Shared by
// every value-bearing parameter kind.
func decodeAll[T any](tokens []string, min int, what string) ([]T, error) {
	if len(tokens) < min {
		return nil, parseErrorf(ErrorTypeMissingValue,
			"missing value for %s", what)
	}
	values := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := Decode[T](tok)
		if err != nil {
			return nil, &ParseError{
				Type:    ErrorTypeInvalidValue,
				Message: "invalid value " + quote(tok) + " for " + what + ": " + err.Error(),
				Flag:    what,
				Cause:   err,
			}
		}
		values = append(values, v)
	}
	return values, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
