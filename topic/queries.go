package topic

import (
	"strings"
)

// Tree-wide "first match in tree order" queries. All of them share the same
// traversal shape: check every topic before recursing into its subtopics,
// siblings in insertion order.

func (l *List) first(match func(*Topic) bool) *Topic {
	if l == nil {
		return nil
	}
	for _, t := range l.topics {
		if match(t) {
			return t
		}
		if found := t.Subtopics.first(match); found != nil {
			return found
		}
	}
	return nil
}

// LookupByID returns the first topic whose id equals the given one ignoring
// case, nil when there is no match. Duplicate ids are tolerated - the first
// match in traversal order wins.
func (l *List) LookupByID(id string) *Topic {
	return l.first(func(t *Topic) bool { return strings.EqualFold(t.ID, id) })
}

// DefaultTopic returns the topic designated as the documentation entry
// point, nil when none is marked.
func (l *List) DefaultTopic() *Topic {
	return l.first(func(t *Topic) bool { return t.IsDefaultTopic })
}

// APIInsertionPoint returns the first topic marked as the attachment point
// for externally generated API reference content, nil when none is marked.
func (l *List) APIInsertionPoint() *Topic {
	return l.first(func(t *Topic) bool { return t.APIParentMode.IsSet() })
}

// MSHVRootContainer returns the topic serving as the MS Help Viewer root
// content container, nil when none is marked.
func (l *List) MSHVRootContainer() *Topic {
	return l.first(func(t *Topic) bool { return t.IsMSHVRootContainer })
}
