package cohort

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a clustering run.
type Option func(*config) error

type config struct {
	groups  int
	scaling bool
	logger  *zap.Logger
}

func (c *config) init(opts ...Option) error {
	c.scaling = true
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.groups == 0 {
		c.groups = 3
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return nil
}

// WithGroups sets the target number of groups to cut the merge sequence at.
// Values below 1 are rejected. The default is 3. A target at or above the
// record count yields one singleton group per record.
func WithGroups(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidGroupCount, n)
		}
		c.groups = n
		return nil
	}
}

// WithoutScaling clusters the raw feature values directly, for callers
// whose vectors are already on a comparable footing. Per-dimension
// statistics are still computed and reported.
func WithoutScaling() Option {
	return func(c *config) error {
		c.scaling = false
		return nil
	}
}

// WithLogger routes run diagnostics to the given logger instead of
// discarding them.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}
