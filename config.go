package depot

import "github.com/rs/zerolog"

// Config holds the package-wide defaults new managers start from
var Config config = config{
	logger: zerolog.Nop(),
}

type config struct {
	logger         zerolog.Logger
	entityCapacity int
}

// SetLogger sets the logger managers use unless built WithLogger
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetEntityCapacity sets how many entities managers preallocate room for
func (c *config) SetEntityCapacity(n int) {
	c.entityCapacity = n
}

func (c *config) options() options {
	return options{
		logger:         c.logger,
		entityCapacity: c.entityCapacity,
	}
}

type options struct {
	logger         zerolog.Logger
	entityCapacity int
}

// Option overrides a Config default for a single manager
type Option func(*options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithEntityCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.entityCapacity = n
		}
	}
}
