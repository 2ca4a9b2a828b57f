package claw

// Positional parameter kinds. At most one positional group can be
// registered; it absorbs the tokens left over once the named-argument loop
// stops. The description doubles as the placeholder help renders.

// Positional is a single positional value.
type Positional[T any] struct {
	paramBase
	value T
	has   bool
}

// NewPositional creates a positional parameter consuming exactly one token.
func NewPositional[T any](description string) *Positional[T] {
	return &Positional[T]{paramBase: paramBase{description: description}}
}

// Required marks the positional as mandatory and returns it for chaining.
func (p *Positional[T]) Required() *Positional[T] { p.required = true; return p }

func (p *Positional[T]) positional() {}

func (p *Positional[T]) MinArgs() int { return 1 }
func (p *Positional[T]) MaxArgs() int { return 1 }

func (p *Positional[T]) Read(tokens []string) error {
	values, err := decodeAll[T](tokens, 1, p.description)
	if err != nil {
		return err
	}
	p.value, p.has = values[0], true
	p.markSet()
	return nil
}

// Value returns the decoded value and whether one was supplied.
func (p *Positional[T]) Value() (T, bool) { return p.value, p.has }

// ValueOr returns the decoded value, or def when none was supplied.
func (p *Positional[T]) ValueOr(def T) T {
	if p.has {
		return p.value
	}
	return def
}

// PositionalList is a positional group consuming between min and max
// tokens. Use Unbounded for max to accept any trailing run.
type PositionalList[T any] struct {
	paramBase
	min, max int
	values   []T
}

// NewPositionalList creates a positional group with the given arity bounds.
func NewPositionalList[T any](description string, min, max int) *PositionalList[T] {
	return &PositionalList[T]{
		paramBase: paramBase{description: description},
		min:       min,
		max:       max,
	}
}

// Required marks the group as mandatory and returns it for chaining.
func (p *PositionalList[T]) Required() *PositionalList[T] { p.required = true; return p }

func (p *PositionalList[T]) positional() {}

func (p *PositionalList[T]) MinArgs() int { return p.min }
func (p *PositionalList[T]) MaxArgs() int { return p.max }

func (p *PositionalList[T]) Read(tokens []string) error {
	values, err := decodeAll[T](tokens, p.min, p.description)
	if err != nil {
		return err
	}
	p.values = values
	p.markSet()
	return nil
}

// Values returns the decoded values.
func (p *PositionalList[T]) Values() []T { return p.values }

// At returns the i-th decoded value.
func (p *PositionalList[T]) At(i int) T { return p.values[i] }

// Len returns how many values were decoded.
func (p *PositionalList[T]) Len() int { return len(p.values) }
