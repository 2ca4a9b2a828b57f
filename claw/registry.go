package claw

import (
	"github.com/dzonerzy/go-claw/internal/intern"
)

// Parser owns the set of registered parameters and drives matching. It
// holds references to caller-owned parameters; the caller must keep them
// alive for as long as the Parser is used, and reads results back out of
// the parameter objects themselves after Parse returns.
//
// Registration and parsing are distinct phases on a single goroutine; the
// Parser does no internal locking.
type Parser struct {
	shortIndex map[string]NamedParameter
	longIndex  map[string]NamedParameter
	ordered    []NamedParameter // registration order, used by help and validation
	positional PositionalParameter
}

// New creates an empty Parser.
func New() *Parser {
	return &Parser{
		shortIndex: make(map[string]NamedParameter),
		longIndex:  make(map[string]NamedParameter),
	}
}

// Add registers the parameter. For named parameters it fails with a
// *SetupError when both names are empty or either name collides with an
// earlier registration; a second positional registration fails the same
// way. Setup errors indicate a programming bug in the caller, never user
// input.
func (p *Parser) Add(param Parameter) error {
	switch t := param.(type) {
	case NamedParameter:
		return p.addNamed(t)
	case PositionalParameter:
		return p.addPositional(t)
	default:
		return setupErrorf("parameter %q is neither named nor positional", param.Description())
	}
}

// MustAdd registers every parameter, panicking on the first SetupError.
// Registration mistakes are defects, so the panic form keeps declarative
// setup code free of error plumbing.
func (p *Parser) MustAdd(params ...Parameter) *Parser {
	for _, param := range params {
		if err := p.Add(param); err != nil {
			panic(err)
		}
	}
	return p
}

func (p *Parser) addNamed(param NamedParameter) error {
	short, long := param.ShortName(), param.LongName()
	if short == "" && long == "" {
		return setupErrorf("named parameter %q requires at least one of a short or a long name",
			param.Description())
	}
	if param.MinArgs() > param.MaxArgs() {
		return setupErrorf("flag %s declares min arity %d greater than max arity %d",
			representationName(param), param.MinArgs(), param.MaxArgs())
	}
	if short != "" {
		if _, taken := p.shortIndex[short]; taken {
			return setupErrorf("short name %q already registered", short)
		}
	}
	if long != "" {
		if _, taken := p.longIndex[long]; taken {
			return setupErrorf("long name %q already registered", long)
		}
	}
	// Both names validated; index under each non-empty one.
	if short != "" {
		p.shortIndex[intern.Intern(short)] = param
	}
	if long != "" {
		p.longIndex[intern.Intern(long)] = param
	}
	p.ordered = append(p.ordered, param)
	return nil
}

func (p *Parser) addPositional(param PositionalParameter) error {
	if p.positional != nil {
		return setupErrorf("positional arguments specified more than once")
	}
	if param.MinArgs() > param.MaxArgs() {
		return setupErrorf("positional %q declares min arity %d greater than max arity %d",
			param.Description(), param.MinArgs(), param.MaxArgs())
	}
	p.positional = param
	return nil
}

// Ambiguous reports whether the registered configuration has an undecidable
// boundary between a variable-length named flag's values and the start of
// the positional run. When true, the user needs the explicit -- separator;
// help renders it in the synopsis. Ambiguity is a diagnostic, not a
// registration failure.
func (p *Parser) Ambiguous() bool {
	if p.positional == nil {
		return false
	}
	// A required fixed-arity positional pins the boundary exactly.
	if !VariableLength(p.positional) && p.positional.IsRequired() {
		return false
	}
	for _, param := range p.ordered {
		if VariableLength(param) {
			return true
		}
	}
	return false
}

// flagNames returns every registered short and long name, for suggestion
// candidates.
func (p *Parser) flagNames() []string {
	names := make([]string, 0, len(p.shortIndex)+len(p.longIndex))
	for name := range p.longIndex {
		names = append(names, name)
	}
	for name := range p.shortIndex {
		names = append(names, name)
	}
	return names
}
