package cubie

import "context"

// DefaultMoveCap bounds the cycle harness when no cap is given.
const DefaultMoveCap = 1_000_000

// Option configures CycleOrder behavior.
type Option func(*config)

type config struct {
	ctx      context.Context
	moveCap  int
	progress func(repetitions, moves int)
}

func defaultConfig() *config {
	return &config{
		ctx:     context.Background(),
		moveCap: DefaultMoveCap,
	}
}

// WithMoveCap sets the number of quarter-turn moves after which the
// harness gives up. Values <= 0 keep the default.
func WithMoveCap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.moveCap = n
		}
	}
}

// WithProgress registers a callback invoked after every repetition.
func WithProgress(fn func(repetitions, moves int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithContext lets the caller cancel a long search. The context is
// checked between repetitions.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
