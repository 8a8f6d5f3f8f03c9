package core

// Binding is a read-only view of an externally owned value.
type Binding[T any] interface {
	Value() T
}

// Listenable is implemented by values that broadcast change events.
type Listenable interface {
	AddListener(listener func()) func()
}

// Const is a Binding whose value never changes.
type Const[T any] struct {
	V T
}

// Value returns the wrapped value.
func (c Const[T]) Value() T {
	return c.V
}

// BindingFunc adapts a getter to the Binding interface.
type BindingFunc[T any] func() T

// Value calls f.
func (f BindingFunc[T]) Value() T {
	return f()
}

// Changes adapts an Observable to Listenable, dropping the value.
func Changes[T any](o *Observable[T]) Listenable {
	return observableChanges[T]{o}
}

type observableChanges[T any] struct {
	o *Observable[T]
}

func (c observableChanges[T]) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	return c.o.AddListener(func(T) { listener() })
}
