package topic

import (
	"iter"
)

// All returns a restartable iterator over the whole subtree rooted at this
// collection in pre-order: every topic before its subtopics, siblings in
// insertion order. Each call yields an independent sequence reflecting the
// tree state at iteration time. The tree must not be mutated while iterating.
func (l *List) All() iter.Seq[*Topic] {
	return func(yield func(*Topic) bool) {
		l.walk(yield)
	}
}

func (l *List) walk(yield func(*Topic) bool) bool {
	if l == nil {
		return true
	}
	for _, t := range l.topics {
		if !yield(t) {
			return false
		}
		if !t.Subtopics.walk(yield) {
			return false
		}
	}
	return true
}

// Find returns a lazy pre-order iterator over topics for which pred holds: a
// matching topic is yielded before any matches among its subtopics. When
// expandParentIfFound is set, every topic whose subtree produced at least one
// match gets IsExpanded set as the recursion unwinds, so all ancestors of a
// match end up expanded once the sequence is fully consumed.
func (l *List) Find(pred func(*Topic) bool, expandParentIfFound bool) (iter.Seq[*Topic], error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	return func(yield func(*Topic) bool) {
		l.findWalk(pred, expandParentIfFound, yield)
	}, nil
}

// findWalk reports whether anything in the subtree matched and whether the
// consumer stopped the iteration early.
func (l *List) findWalk(pred func(*Topic) bool, expand bool, yield func(*Topic) bool) (matched, stopped bool) {
	if l == nil {
		return false, false
	}
	for _, t := range l.topics {
		if pred(t) {
			matched = true
			if !yield(t) {
				return matched, true
			}
		}
		m, stop := t.Subtopics.findWalk(pred, expand, yield)
		if m {
			matched = true
			if expand {
				t.IsExpanded = true
			}
		}
		if stop {
			return matched, true
		}
	}
	return matched, false
}
