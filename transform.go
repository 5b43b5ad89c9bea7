package labelgo

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/hupe1980/labelgo/label"
	"github.com/hupe1980/labelgo/predicate"
)

// MarkMissing removes the entries selected by p from the label map and masks
// every data row holding one of the removed values. Unselected entries keep
// their original relative order.
//
// Fails with a *ValidationError when p yields an undefined result for any
// entry.
func (v *Vector[V]) MarkMissing(p predicate.Predicate[V]) (*Vector[V], error) {
	sel, err := predicate.Evaluate(p, v.labels)
	if err != nil {
		err = translateError(err)
		v.logger.LogTransform(context.Background(), "mark-missing", len(v.labels), 0, err)
		return nil, err
	}

	out := v.clone()
	occ := v.occurrences()

	kept := make(label.Map[V], 0, len(v.labels))
	for i, e := range v.labels {
		if !sel[i] {
			kept = append(kept, e)
			continue
		}
		if s, ok := occ[e.Value]; ok {
			out.missing.Or(s)
		}
	}
	out.labels = kept

	v.logger.LogTransform(context.Background(), "mark-missing", len(v.labels), len(out.labels), nil)

	return out, nil
}

// Collapse applies fn to every entry and merges entries that map onto the
// same new value. When several originals collapse onto one value, the
// surviving label is taken from the original whose value is unchanged, or
// failing that from the smallest original value. Every data row holding a
// collapsed value is rewritten to its group's value.
//
// Merging formerly distinct categories is the intended semantics, not an
// error: the label is inherited, never newly assigned, so no collision can
// arise.
func (v *Vector[V]) Collapse(fn predicate.ValueFunc[V]) (*Vector[V], error) {
	if fn == nil {
		return nil, &ConfigurationError{Reason: "collapse requires a value function"}
	}

	remap := make(map[V]V, len(v.labels))
	chosen := make(map[V]label.Entry[V], len(v.labels))
	exact := make(map[V]bool, len(v.labels))
	for _, e := range v.labels {
		nv := fn(e.Value, e.Label)
		remap[e.Value] = nv

		cur, ok := chosen[nv]
		switch {
		case !ok:
			chosen[nv] = e
			exact[nv] = e.Value == nv
		case !exact[nv] && e.Value == nv:
			chosen[nv] = e
			exact[nv] = true
		case !exact[nv] && e.Value < cur.Value:
			chosen[nv] = e
		}
	}

	out := v.clone()

	entries := make(label.Map[V], 0, len(chosen))
	for nv, e := range chosen {
		entries = append(entries, label.Entry[V]{Value: nv, Label: e.Label})
	}
	out.labels = entries.Sorted()

	occ := v.occurrences()
	for old, nv := range remap {
		if old == nv {
			continue
		}
		if s, ok := occ[old]; ok {
			for row := range s.Iterator() {
				out.values[row] = nv
			}
		}
	}

	v.logger.LogTransform(context.Background(), "collapse", len(v.labels), len(out.labels), nil)

	return out, nil
}

// Step pairs a relabel target with the predicate selecting the entries to
// retarget onto it.
type Step[V cmp.Ordered] struct {
	// Target is resolved against the label map as seen by this step.
	Target label.Placeholder[V]
	// When selects the entries to retarget.
	When predicate.Predicate[V]
}

// Retarget builds a relabel step.
func Retarget[V cmp.Ordered](target label.Placeholder[V], when predicate.Predicate[V]) Step[V] {
	return Step[V]{Target: target, When: when}
}

// Relabel applies steps as a strict left fold: each step evaluates its
// predicate against, and resolves its target in, the label map produced by
// the previous step. Data rows holding a selected entry's value are rewritten
// to the resolved target value; the target entry replaces the selected ones.
//
// After each step's union the map is re-validated. A collision (one value
// with two labels, or one label with two values) aborts the whole call with a
// *ConflictError listing the offenders; no partial result is returned.
func (v *Vector[V]) Relabel(steps ...Step[V]) (*Vector[V], error) {
	out := v
	for i, st := range steps {
		next, err := out.relabelStep(st)
		if err != nil {
			err = fmt.Errorf("relabel step %d: %w", i+1, err)
			v.logger.LogTransform(context.Background(), "relabel", len(v.labels), 0, err)
			return nil, err
		}
		out = next
	}
	if out == v {
		out = v.clone()
	}

	v.logger.LogTransform(context.Background(), "relabel", len(v.labels), len(out.labels), nil)

	return out, nil
}

func (v *Vector[V]) relabelStep(st Step[V]) (*Vector[V], error) {
	if st.When == nil {
		return nil, &ConfigurationError{Reason: "relabel step requires a predicate"}
	}

	sel, err := predicate.Evaluate(st.When, v.labels)
	if err != nil {
		return nil, translateError(err)
	}

	target, err := st.Target.Resolve(v.labels)
	if err != nil {
		return nil, translateError(err)
	}

	selected := make(map[V]struct{}, len(v.labels))
	kept := make(label.Map[V], 0, len(v.labels)+1)
	for i, e := range v.labels {
		if sel[i] {
			selected[e.Value] = struct{}{}
		} else {
			kept = append(kept, e)
		}
	}
	// Dedup on the identical (value, label) pair only; near-misses must
	// surface as conflicts below.
	if !slices.Contains(kept, target) {
		kept = append(kept, target)
	}
	if err := kept.Validate(); err != nil {
		return nil, translateError(err)
	}

	out := v.clone()
	out.labels = kept.Sorted()

	occ := v.occurrences()
	for val := range selected {
		if val == target.Value {
			continue
		}
		if s, ok := occ[val]; ok {
			for row := range s.Iterator() {
				out.values[row] = target.Value
			}
		}
	}

	return out, nil
}

// AddLabels resolves each placeholder against the accumulating label map and
// unions it in, so later placeholders may reference entries introduced by
// earlier ones in the same call. A placeholder identical to an existing
// (value, label) pair is a no-op.
//
// Adding an entry whose value already carries a different label, or whose
// label already names a different value, fails with a *ConflictError naming
// the offender.
func (v *Vector[V]) AddLabels(placeholders ...label.Placeholder[V]) (*Vector[V], error) {
	out := v.clone()

	acc := out.labels
	for _, p := range placeholders {
		e, err := p.Resolve(acc)
		if err != nil {
			err = translateError(err)
			v.logger.LogTransform(context.Background(), "add-labels", len(v.labels), 0, err)
			return nil, err
		}
		if slices.Contains(acc, e) {
			continue
		}
		acc = append(acc, e)
		if err := acc.Validate(); err != nil {
			err = translateError(err)
			v.logger.LogTransform(context.Background(), "add-labels", len(v.labels), 0, err)
			return nil, err
		}
	}
	out.labels = acc.Sorted()

	v.logger.LogTransform(context.Background(), "add-labels", len(v.labels), len(out.labels), nil)

	return out, nil
}

// AddLabelsForValues backfills labels. With no explicit values, every
// distinct non-missing data value lacking an entry is labelled. A nil
// labeller defaults to stringification of the value.
//
// Collision semantics match AddLabels.
func (v *Vector[V]) AddLabelsForValues(labeller func(V) string, values ...V) (*Vector[V], error) {
	if labeller == nil {
		labeller = func(val V) string { return fmt.Sprint(val) }
	}

	vals := values
	if len(vals) == 0 {
		vals = v.unlabelledValues()
	}

	out := v.clone()

	acc := out.labels
	for _, val := range vals {
		e := label.Entry[V]{Value: val, Label: labeller(val)}
		if slices.Contains(acc, e) {
			continue
		}
		acc = append(acc, e)
		if err := acc.Validate(); err != nil {
			err = translateError(err)
			v.logger.LogTransform(context.Background(), "add-labels-for-values", len(v.labels), 0, err)
			return nil, err
		}
	}
	out.labels = acc.Sorted()

	v.logger.LogTransform(context.Background(), "add-labels-for-values", len(v.labels), len(out.labels), nil)

	return out, nil
}

// unlabelledValues returns the distinct non-missing data values without an
// entry, in ascending order.
func (v *Vector[V]) unlabelledValues() []V {
	seen := make(map[V]struct{})
	var vals []V
	for i, val := range v.values {
		if v.missing.Contains(uint32(i)) {
			continue
		}
		if v.labels.Has(val) {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		vals = append(vals, val)
	}
	slices.Sort(vals)
	return vals
}

// PruneUnused removes every entry whose value occurs in no non-missing data
// row. Pure filter: no data rewrite, no possible collision, idempotent.
func (v *Vector[V]) PruneUnused() *Vector[V] {
	occ := v.occurrences()

	out := v.clone()
	kept := make(label.Map[V], 0, len(v.labels))
	for _, e := range v.labels {
		if _, ok := occ[e.Value]; ok {
			kept = append(kept, e)
		}
	}
	out.labels = kept.Sorted()

	v.logger.LogTransform(context.Background(), "prune-unused", len(v.labels), len(out.labels), nil)

	return out
}
