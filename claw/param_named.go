package claw

// Named parameter kinds. Construction takes the flag identity up front;
// required-ness is opted into with a chained Required() call, mirroring how
// callers describe flags declaratively before registering them.

// Scalar is a named flag consuming exactly one sub-argument.
type Scalar[T any] struct {
	namedBase
	value T
	has   bool
}

// NewScalar creates a scalar flag. Either name may be empty, but not both.
func NewScalar[T any](short, long, description string) *Scalar[T] {
	return &Scalar[T]{namedBase: namedBase{
		paramBase: paramBase{description: description},
		short:     short,
		long:      long,
	}}
}

// Required marks the flag as mandatory and returns it for chaining.
func (s *Scalar[T]) Required() *Scalar[T] { s.required = true; return s }

func (s *Scalar[T]) MinArgs() int { return 1 }
func (s *Scalar[T]) MaxArgs() int { return 1 }

func (s *Scalar[T]) Read(tokens []string) error {
	values, err := decodeAll[T](tokens, 1, representationName(s))
	if err != nil {
		return err
	}
	s.value, s.has = values[0], true
	s.markSet()
	return nil
}

// Value returns the decoded value and whether one was supplied.
func (s *Scalar[T]) Value() (T, bool) { return s.value, s.has }

// ValueOr returns the decoded value, or def when the flag was not supplied.
func (s *Scalar[T]) ValueOr(def T) T {
	if s.has {
		return s.value
	}
	return def
}

// FixedList is a named flag consuming exactly Size sub-arguments, e.g. a
// two-value resolution flag.
type FixedList[T any] struct {
	namedBase
	size   int
	values []T
}

// NewFixedList creates a flag that consumes exactly size sub-arguments.
func NewFixedList[T any](short, long, description string, size int) *FixedList[T] {
	return &FixedList[T]{
		namedBase: namedBase{
			paramBase: paramBase{description: description},
			short:     short,
			long:      long,
		},
		size: size,
	}
}

// Required marks the flag as mandatory and returns it for chaining.
func (f *FixedList[T]) Required() *FixedList[T] { f.required = true; return f }

func (f *FixedList[T]) MinArgs() int { return f.size }
func (f *FixedList[T]) MaxArgs() int { return f.size }

func (f *FixedList[T]) Read(tokens []string) error {
	values, err := decodeAll[T](tokens, f.size, representationName(f))
	if err != nil {
		return err
	}
	f.values = values
	f.markSet()
	return nil
}

// Values returns the decoded values from the last occurrence.
func (f *FixedList[T]) Values() []T { return f.values }

// At returns the i-th decoded value.
func (f *FixedList[T]) At(i int) T { return f.values[i] }

// Len returns how many values were decoded.
func (f *FixedList[T]) Len() int { return len(f.values) }

// BoundedList is a named flag consuming between min and max sub-arguments,
// with the bounds supplied at construction time rather than fixed per kind.
// Use Unbounded for max to remove the upper limit.
type BoundedList[T any] struct {
	namedBase
	min, max int
	values   []T
}

// NewBoundedList creates a variable-arity flag. Bounds must satisfy
// min <= max; that is the caller's contract and is re-checked at Add time.
func NewBoundedList[T any](short, long, description string, min, max int) *BoundedList[T] {
	return &BoundedList[T]{
		namedBase: namedBase{
			paramBase: paramBase{description: description},
			short:     short,
			long:      long,
		},
		min: min,
		max: max,
	}
}

// Required marks the flag as mandatory and returns it for chaining.
func (b *BoundedList[T]) Required() *BoundedList[T] { b.required = true; return b }

func (b *BoundedList[T]) MinArgs() int { return b.min }
func (b *BoundedList[T]) MaxArgs() int { return b.max }

func (b *BoundedList[T]) Read(tokens []string) error {
	values, err := decodeAll[T](tokens, b.min, representationName(b))
	if err != nil {
		return err
	}
	b.values = values
	b.markSet()
	return nil
}

// Values returns the decoded values from the last occurrence.
func (b *BoundedList[T]) Values() []T { return b.values }

// At returns the i-th decoded value.
func (b *BoundedList[T]) At(i int) T { return b.values[i] }

// Len returns how many values were decoded.
func (b *BoundedList[T]) Len() int { return len(b.values) }

// Switch is a zero-arity boolean flag: present means true.
type Switch struct {
	namedBase
	enabled bool
}

// NewSwitch creates a zero-arity boolean flag.
func NewSwitch(short, long, description string) *Switch {
	return &Switch{namedBase: namedBase{
		paramBase: paramBase{description: description},
		short:     short,
		long:      long,
	}}
}

// Required marks the switch as mandatory and returns it for chaining.
func (s *Switch) Required() *Switch { s.required = true; return s }

func (s *Switch) MinArgs() int { return 0 }
func (s *Switch) MaxArgs() int { return 0 }

func (s *Switch) Read([]string) error {
	s.enabled = true
	s.markSet()
	return nil
}

// Enabled reports whether the switch appeared on the command line.
func (s *Switch) Enabled() bool { return s.enabled }

// Counter is a zero-arity flag whose value grows with each occurrence
// (-v -v -v). Unlike value-bearing flags, repeated occurrences accumulate
// instead of replacing; the asymmetry is intentional.
type Counter struct {
	namedBase
	count int
}

// NewCounter creates a zero-arity accumulating flag.
func NewCounter(short, long, description string) *Counter {
	return &Counter{namedBase: namedBase{
		paramBase: paramBase{description: description},
		short:     short,
		long:      long,
	}}
}

// Required marks the counter as mandatory and returns it for chaining.
func (c *Counter) Required() *Counter { c.required = true; return c }

func (c *Counter) MinArgs() int { return 0 }
func (c *Counter) MaxArgs() int { return 0 }

func (c *Counter) Read([]string) error {
	c.count++
	c.markSet()
	return nil
}

// Count returns how many times the flag occurred.
func (c *Counter) Count() int { return c.count }
