package topic

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrNilTopic     = errors.New("nil topic")
	ErrNilPredicate = errors.New("nil predicate")
)

// Change identifies the kind of structural mutation published to the change
// subscriber installed at the tree root.
type Change int

const (
	ChangeInsert Change = iota
	ChangeReplace
	ChangeRemove
	ChangeReset
)

// List is an ordered, mutable collection of topics with automatic parent
// maintenance. The same type serves as the tree root and as every topic's
// subtopic collection. Insertion order is caller-significant and preserved by
// every operation except Sort.
type List struct {
	owner  *Topic // nil for the tree root
	topics []*Topic
	notify func(Change)
}

// NewList creates an empty root collection.
func NewList() *List {
	return &List{}
}

// Owner returns the topic whose subtopic collection this is, nil for the
// tree root.
func (l *List) Owner() *Topic {
	return l.owner
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.topics)
}

// At returns the topic at the given position among immediate children.
func (l *List) At(i int) *Topic {
	return l.topics[i]
}

// Topics returns a copy of the immediate children slice. Mutating the tree
// does not affect a previously obtained copy.
func (l *List) Topics() []*Topic {
	return slices.Clone(l.topics)
}

// OnChange installs the structural change subscriber. Intended to be called
// on the tree root - every collection in the subtree publishes to the same
// callback. Passing nil unsubscribes.
func (l *List) OnChange(fn func(Change)) {
	l.setNotify(fn)
}

func (l *List) setNotify(fn func(Change)) {
	l.notify = fn
	for _, t := range l.topics {
		if t.Subtopics != nil {
			t.Subtopics.setNotify(fn)
		}
	}
}

func (l *List) publish(c Change) {
	if l.notify != nil {
		l.notify(c)
	}
}

// adopt points the topic (and its subtree collections) at this list.
func (l *List) adopt(t *Topic) {
	t.parent = l
	if t.Subtopics != nil {
		t.Subtopics.setNotify(l.notify)
	}
}

// orphan detaches the topic from this list. The topic's own subtree is left
// intact and remains valid and reusable.
func (l *List) orphan(t *Topic) {
	t.parent = nil
	if t.Subtopics != nil {
		t.Subtopics.setNotify(nil)
	}
}

// Add appends a topic to the collection.
func (l *List) Add(t *Topic) error {
	return l.Insert(len(l.topics), t)
}

// Insert places a topic at the given position among immediate children and
// makes this collection its parent. The index must be within [0, Len()].
func (l *List) Insert(i int, t *Topic) error {
	if t == nil {
		return ErrNilTopic
	}
	l.topics = slices.Insert(l.topics, i, t)
	l.adopt(t)
	l.publish(ChangeInsert)
	return nil
}

// Set replaces the topic at the given position, detaching the old one.
func (l *List) Set(i int, t *Topic) error {
	if t == nil {
		return ErrNilTopic
	}
	l.orphan(l.topics[i])
	l.topics[i] = t
	l.adopt(t)
	l.publish(ChangeReplace)
	return nil
}

// RemoveAt detaches and returns the topic at the given position. The removed
// topic's parent reference is cleared but its own subtree is not touched.
func (l *List) RemoveAt(i int) *Topic {
	t := l.topics[i]
	l.orphan(t)
	l.topics = slices.Delete(l.topics, i, i+1)
	l.publish(ChangeRemove)
	return t
}

// Remove detaches the given topic if it is an immediate child of this
// collection and reports whether it was found.
func (l *List) Remove(t *Topic) bool {
	for i := range l.topics {
		if l.topics[i] == t {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

// Clear detaches all immediate children.
func (l *List) Clear() {
	for _, t := range l.topics {
		l.orphan(t)
	}
	l.topics = nil
	l.publish(ChangeReset)
}

// Sort reorders immediate children by ordinal comparison of their display
// titles. Descendant collections are not touched.
func (l *List) Sort() {
	slices.SortFunc(l.topics, func(a, b *Topic) int {
		return strings.Compare(a.DisplayTitle(), b.DisplayTitle())
	})
	l.publish(ChangeReset)
}
