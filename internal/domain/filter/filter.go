package filter

import (
	"fmt"
	"math"
)

// MaxConditions bounds how many predicates a single expression may carry.
const MaxConditions = 16

// Expression is a conjunction of conditions. The zero value matches everything.
type Expression struct {
	conditions []Condition
}

// NewExpression validates and creates an AND-ed filter Expression.
func NewExpression(conditions ...Condition) (Expression, error) {
	if len(conditions) > MaxConditions {
		return Expression{}, fmt.Errorf("too many conditions (max %d)", MaxConditions)
	}
	seen := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		k := c.key
		if c.IsRange() {
			k += ":range"
		}
		if seen[k] {
			return Expression{}, fmt.Errorf("duplicate condition for key %q", c.key)
		}
		seen[k] = true
	}
	return Expression{conditions: conditions}, nil
}

// Conditions returns the AND-ed conditions in insertion order.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Condition is a single clause: either an exact tag match or an inclusive numeric range.
type Condition struct {
	key   string
	match string
	min   *float64
	max   *float64
}

// NewMatch creates an exact tag match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// NewRange creates an inclusive numeric range condition. At least one bound is required;
// supplied bounds must be finite.
func NewRange(key string, minV, maxV *float64) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if minV == nil && maxV == nil {
		return Condition{}, fmt.Errorf("at least one range boundary is required for key %q", key)
	}
	for _, v := range []*float64{minV, maxV} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return Condition{}, fmt.Errorf("range boundary for key %q must be finite, got %v", key, *v)
		}
	}
	if minV != nil && maxV != nil && *minV > *maxV {
		return Condition{}, fmt.Errorf("empty range for key %q: %v > %v", key, *minV, *maxV)
	}
	return Condition{key: key, min: minV, max: maxV}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Min returns the inclusive lower bound, nil when unbounded.
func (c Condition) Min() *float64 { return c.min }

// Max returns the inclusive upper bound, nil when unbounded.
func (c Condition) Max() *float64 { return c.max }

// IsMatch reports whether this is a match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsRange reports whether this is a range condition.
func (c Condition) IsRange() bool { return c.min != nil || c.max != nil }
