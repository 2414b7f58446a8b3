// Package options implements a generic functional-options pattern, used
// by the wire package and the root nbt package to configure reads and writes
// without exposing a constructor per combination of settings (spec §6
// "Options").
package options

// Option configures a target of type T, returning an error if the
// configuration is invalid (e.g. an out-of-range --space value).
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option that may reject the configuration it is
// given.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts over target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps fn as an Option that always succeeds, for settings with
// no invalid values (e.g. a boolean toggle).
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
