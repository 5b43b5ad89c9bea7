package predicate

import (
	"cmp"
	"slices"
	"strings"
)

// ValEq selects entries whose value equals target.
func ValEq[V cmp.Ordered](target V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val == target })
}

// ValIn selects entries whose value is one of targets.
func ValIn[V cmp.Ordered](targets ...V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return slices.Contains(targets, val) })
}

// ValGt selects entries whose value is greater than bound.
func ValGt[V cmp.Ordered](bound V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val > bound })
}

// ValGte selects entries whose value is greater than or equal to bound.
func ValGte[V cmp.Ordered](bound V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val >= bound })
}

// ValLt selects entries whose value is less than bound.
func ValLt[V cmp.Ordered](bound V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val < bound })
}

// ValLte selects entries whose value is less than or equal to bound.
func ValLte[V cmp.Ordered](bound V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val <= bound })
}

// ValRange selects entries whose value lies in [lo, hi], inclusive on both ends.
func ValRange[V cmp.Ordered](lo, hi V) Predicate[V] {
	return Func[V](func(val V, _ string) bool { return val >= lo && val <= hi })
}

// LblEq selects entries whose label equals target.
func LblEq[V cmp.Ordered](target string) Predicate[V] {
	return Func[V](func(_ V, lbl string) bool { return lbl == target })
}

// LblIn selects entries whose label is one of targets.
func LblIn[V cmp.Ordered](targets ...string) Predicate[V] {
	return Func[V](func(_ V, lbl string) bool { return slices.Contains(targets, lbl) })
}

// LblContains selects entries whose label contains substr.
func LblContains[V cmp.Ordered](substr string) Predicate[V] {
	return Func[V](func(_ V, lbl string) bool { return strings.Contains(lbl, substr) })
}

// LblPrefix selects entries whose label starts with prefix.
func LblPrefix[V cmp.Ordered](prefix string) Predicate[V] {
	return Func[V](func(_ V, lbl string) bool { return strings.HasPrefix(lbl, prefix) })
}

// And selects entries matched by every predicate.
func And[V cmp.Ordered](ps ...Predicate[V]) Predicate[V] {
	return TryFunc[V](func(val V, lbl string) (bool, error) {
		for _, p := range ps {
			ok, err := p.Match(val, lbl)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	})
}

// Or selects entries matched by at least one predicate.
func Or[V cmp.Ordered](ps ...Predicate[V]) Predicate[V] {
	return TryFunc[V](func(val V, lbl string) (bool, error) {
		for _, p := range ps {
			ok, err := p.Match(val, lbl)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

// Not inverts a predicate.
func Not[V cmp.Ordered](p Predicate[V]) Predicate[V] {
	return TryFunc[V](func(val V, lbl string) (bool, error) {
		ok, err := p.Match(val, lbl)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}
