package topic

import (
	"strings"
	"testing"
)

// a(b(d), c) plus a second root e(f)
func buildTree(t *testing.T) (*List, map[string]*Topic) {
	t.Helper()

	nodes := make(map[string]*Topic)
	mk := func(id string) *Topic {
		tp := New(id)
		nodes[id] = tp
		return tp
	}

	root := NewList()
	a, b, c, d, e, f := mk("a"), mk("b"), mk("c"), mk("d"), mk("e"), mk("f")
	root.Add(a)
	a.Subtopics.Add(b)
	b.Subtopics.Add(d)
	a.Subtopics.Add(c)
	root.Add(e)
	e.Subtopics.Add(f)
	return root, nodes
}

func TestAllPreOrder(t *testing.T) {
	root, _ := buildTree(t)

	var ids []string
	for tp := range root.All() {
		ids = append(ids, tp.ID)
	}
	if got, want := strings.Join(ids, ""), "abdcef"; got != want {
		t.Errorf("traversal order = %s, want %s", got, want)
	}
}

func TestAllRestartable(t *testing.T) {
	root, _ := buildTree(t)
	seq := root.All()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != second {
		t.Errorf("second iteration yielded %d topics, first %d", second, first)
	}
}

func TestAllEarlyBreak(t *testing.T) {
	root, _ := buildTree(t)

	var ids []string
	for tp := range root.All() {
		ids = append(ids, tp.ID)
		if tp.ID == "d" {
			break
		}
	}
	if got, want := strings.Join(ids, ""), "abd"; got != want {
		t.Errorf("traversal before break = %s, want %s", got, want)
	}
}

func TestFindNilPredicate(t *testing.T) {
	root, _ := buildTree(t)
	if _, err := root.Find(nil, false); err != ErrNilPredicate {
		t.Errorf("Find(nil) error = %v, want %v", err, ErrNilPredicate)
	}
}

func TestFindYieldsMatchesInOrder(t *testing.T) {
	root, _ := buildTree(t)

	seq, err := root.Find(func(tp *Topic) bool { return tp.ID == "d" || tp.ID == "c" || tp.ID == "f" }, false)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	var ids []string
	for tp := range seq {
		ids = append(ids, tp.ID)
	}
	if got, want := strings.Join(ids, ""), "dcf"; got != want {
		t.Errorf("matches = %s, want %s", got, want)
	}
}

func TestFindExpandsAncestors(t *testing.T) {
	root, nodes := buildTree(t)

	seq, err := root.Find(func(tp *Topic) bool { return tp.ID == "d" }, true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	n := 0
	for range seq {
		n++
	}
	if n != 1 {
		t.Fatalf("got %d matches, want 1", n)
	}

	for _, id := range []string{"a", "b"} {
		if !nodes[id].IsExpanded {
			t.Errorf("ancestor %s not expanded", id)
		}
	}
	for _, id := range []string{"c", "d", "e", "f"} {
		if nodes[id].IsExpanded {
			t.Errorf("topic %s unexpectedly expanded", id)
		}
	}
}

func TestFindWithoutExpandLeavesStateAlone(t *testing.T) {
	root, nodes := buildTree(t)

	seq, err := root.Find(func(tp *Topic) bool { return tp.ID == "d" }, false)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	for range seq {
	}

	for id, tp := range nodes {
		if tp.IsExpanded {
			t.Errorf("topic %s expanded without expandParentIfFound", id)
		}
	}
}
