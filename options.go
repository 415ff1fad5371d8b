package gochain

// Option configures an Engine.
type Option interface{ apply(eng *Engine) }

// Options combines several options into one.
func Options(opts ...Option) Option {
	return optionList(opts)
}

type optionList []Option

func (opts optionList) apply(eng *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(eng)
		}
	}
}

var defaultOptions = optionList{
	WithTier(Tier256),
	WithStepLimit(4096),
}

type tierOption Tier
type stepLimitOption int
type logfnOption func(mess string, args ...interface{})

// WithTier selects the arithmetic table range tier.
func WithTier(tier Tier) Option { return tierOption(tier) }

// WithStepLimit bounds how many operations one expansion may take; zero
// means unlimited.
func WithStepLimit(limit int) Option { return stepLimitOption(limit) }

// WithLogf enables step trace logging through the given printf-style
// function.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return logfnOption(logfn)
}

func (o tierOption) apply(eng *Engine)      { eng.tier = Tier(o) }
func (o stepLimitOption) apply(eng *Engine) { eng.limit = int(o) }
func (o logfnOption) apply(eng *Engine)     { eng.logfn = o }
