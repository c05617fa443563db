package validate

const unnamed = "unnamed"

type namer interface {
	Name() string
}

type named[T any] struct {
	name  string
	inner Validator[T]
}

func (n *named[T]) Run(value T) Result {
	return n.inner.Run(value)
}

func (n *named[T]) Name() string {
	return n.name
}

// Named attaches a name to v. The name labels metrics, spans and log lines
// produced by Instrument and RunContext.
func Named[T any](name string, v Validator[T]) Validator[T] {
	return &named[T]{name: name, inner: v}
}

// NameOf returns the name given with Named (or Instrument), or "unnamed".
func NameOf[T any](v Validator[T]) string {
	if n, ok := v.(namer); ok && n.Name() != "" {
		return n.Name()
	}

	return unnamed
}
