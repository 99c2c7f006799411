package option

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

// Get returns the value and whether it is present.
func (x Option[T]) Get() (T, bool) {
	return x.value, x.isSome
}

// MustGet panics if x is None.
func (x Option[T]) MustGet() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}
