package labelgo

type options struct {
	name        string
	description string
	logger      *Logger
}

// Option configures Vector construction.
type Option func(*options)

// WithName sets the variable name carried by the vector. The name is an
// identifier, not metadata: it survives every transform, including Strip.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDescription sets the free-text variable description. Like the name, it
// rides along untouched until Strip discards it.
func WithDescription(desc string) Option {
	return func(o *options) {
		o.description = desc
	}
}

// WithLogger configures the logger used by transforms.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
