package config

type Config interface {
	HasLatency() bool
	HasError() bool
}

type config struct {
	withLatency bool
	withError   bool
}

func (c *config) HasLatency() bool {
	return c.withLatency
}

func (c *config) HasError() bool {
	return c.withError
}

type option func(o *config)

func WithoutLatency() option {
	return func(o *config) {
		o.withLatency = false
	}
}

func WithoutError() option {
	return func(o *config) {
		o.withError = false
	}
}

func New(opts ...option) Config {
	h := &config{
		withLatency: true,
		withError:   true,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}
