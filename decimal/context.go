package decimal

import "github.com/arloliu/ionum/internal/options"

// RoundingMode selects how an inexact arithmetic result is rounded to fit
// a target precision.
type RoundingMode uint8

const (
	RoundHalfEven RoundingMode = iota // default: round to nearest, ties to even
	RoundHalfUp
	RoundDown
	RoundCeiling
	RoundFloor
)

// Context carries the decimal arithmetic's configurable state: rounding
// mode, digit precision, and an Inexact status flag, passed explicitly to
// every multi-operand operator rather than held as package-level mutable
// state.
//
// Precision bounds the Number fallback path (the "retry as Number" half
// of the try-Quad-then-retry pattern): a Number result needing more
// significant digits than Precision is itself inexact and the operator
// reports NumericOverflow rather than silently truncating.
type Context struct {
	Precision uint32
	Rounding  RoundingMode
	Inexact   bool
}

// DefaultContext returns a Context with generous Number precision (well
// beyond Quad's 34 digits) and round-half-even, matching typical decimal
// arithmetic defaults.
func DefaultContext() *Context {
	return &Context{Precision: 100, Rounding: RoundHalfEven}
}

// ContextOption configures a Context built by NewContext.
type ContextOption = options.Option[*Context]

// WithPrecision sets the maximum significant digits a Number result may
// carry before an operator reports NumericOverflow instead of rounding.
func WithPrecision(precision uint32) ContextOption {
	return options.NoError(func(c *Context) {
		c.Precision = precision
	})
}

// WithRoundingMode sets the rounding mode applied to inexact results.
func WithRoundingMode(mode RoundingMode) ContextOption {
	return options.NoError(func(c *Context) {
		c.Rounding = mode
	})
}

// NewContext builds a Context starting from DefaultContext's values and
// applying opts in order.
func NewContext(opts ...ContextOption) (*Context, error) {
	ctx := DefaultContext()
	if err := options.Apply(ctx, opts...); err != nil {
		return nil, err
	}
	return ctx, nil
}

// saveInexact and restoreInexact save and restore the Inexact flag around
// a computation whose inexactness must not reach the caller's context;
// ToIntegralValue uses them so its rounding never sets Inexact.
func (c *Context) saveInexact() bool {
	return c.Inexact
}

func (c *Context) restoreInexact(saved bool) {
	c.Inexact = saved
}

func (c *Context) setInexact() {
	c.Inexact = true
}
