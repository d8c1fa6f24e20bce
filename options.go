package stendhal

// Option configures tokenizing and conversion behavior.
type Option func(*config)

type config struct {
	validateInput bool
}

// WithInputValidation enables UTF-8 and binary-content checks on every input
// line before it is tokenized.
func WithInputValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validateInput = enabled
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
