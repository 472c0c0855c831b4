package relation

import "go.uber.org/zap"

// Option configures an operator.
type Option func(*options)

type options struct {
	broker BrokerRule
	logger *zap.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		broker: BrokerIntersection,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithBroker sets the bridging rule used by Composition. Other operators
// ignore it.
func WithBroker(rule BrokerRule) Option {
	return func(o *options) {
		o.broker = rule
	}
}

// WithLogger sets the logger operators report to at debug level. A nil
// logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
