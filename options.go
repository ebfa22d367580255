package collapse

import (
	"go.uber.org/zap"
)

// Option configures a Collapse.
type Option func(*Collapse)

// WithBaseHeight sets the collapsed height in px. Defaults to 0 (fully hidden).
func WithBaseHeight(height Source[float64]) Option {
	return func(c *Collapse) {
		c.baseHeight = height
	}
}

// OnExpand is called when the expand transition starts.
func OnExpand(fn func()) Option {
	return func(c *Collapse) { c.onExpand = fn }
}

// OnExpanded is called when the expand transition completes.
func OnExpanded(fn func()) Option {
	return func(c *Collapse) { c.onExpanded = fn }
}

// OnCollapse is called when the collapse transition starts.
func OnCollapse(fn func()) Option {
	return func(c *Collapse) { c.onCollapse = fn }
}

// OnCollapsed is called when the collapse transition completes.
func OnCollapsed(fn func()) Option {
	return func(c *Collapse) { c.onCollapsed = fn }
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collapse) {
		c.logger = logger
	}
}

// WithInstantSettle makes the engine skip straight to the settled state when
// the element has its height transition disabled or the user prefers reduced
// motion. Without it, such a transition waits for a transitionend that never comes.
func WithInstantSettle(enabled bool) Option {
	return func(c *Collapse) {
		c.instantSettle = enabled
	}
}
