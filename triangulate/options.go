package triangulate

import "github.com/arolek/p"

// options holds the resolved configuration for one Delaunay call. A zero
// value options means "all defaults" -- the pointer fields distinguish
// "caller didn't set this" from "caller explicitly set the zero value",
// the same role arolek/p's pointer-of-primitive helpers play when building
// it up from functional Options below.
type options struct {
	epsilon          *float64
	debug            *bool
	strictEmptyInput *bool
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) debugEnabled() bool {
	return o.debug != nil && *o.debug
}

func (o options) strictEmptyInputEnabled() bool {
	return o.strictEmptyInput != nil && *o.strictEmptyInput
}

// Option configures a Delaunay call. The zero value of every option
// applies the documented default, so callers only need to pass the
// options they want to override.
type Option func(*options)

// WithEpsilon sets the per-axis tolerance delaunay.DedupPointsTolerance
// uses to merge near-duplicate points before triangulation, in place of
// the default exact-equality DedupPoints. It does not touch cmp.Float or
// cmp.Epsilon, and the strict sign-of-determinant predicates
// (RightOf/LeftOf/InCircle) are unaffected -- see DESIGN.md's
// numeric-robustness resolution.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = p.Float64(epsilon)
	}
}

// WithDebug turns on verbose topological tracing for the duration of the
// call. The flag is call-local (threaded through the Subdivision this
// call constructs and into the quadedge operators it invokes), never a
// package-wide var, so concurrent calls with different settings don't
// race on it.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = p.Bool(debug)
	}
}

// WithStrictEmptyInput makes Delaunay return ErrEmptyInputAfterDedup when
// fewer than two points survive deduplication, instead of the default
// behavior of silently returning an empty edge list (spec.md §4.2, §7).
func WithStrictEmptyInput(strict bool) Option {
	return func(o *options) {
		o.strictEmptyInput = p.Bool(strict)
	}
}
