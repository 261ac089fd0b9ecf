package drawio

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestIDGenerator(t *testing.T) {
	g := newIDGenerator(time.UnixMilli(1700000000123))

	want := []string{
		"description-1700000000123-1",
		"lifeline-1700000000123-2",
		"lifeline-1700000000123-3",
		"activation-1700000000123-4",
		"message-1700000000123-5",
	}
	kinds := []ElementKind{KindDescription, KindLifeline, KindLifeline, KindActivation, KindMessage}

	for i, k := range kinds {
		if got := g.next(k); got != want[i] {
			t.Errorf("next(%s) = %q, want %q", k, got, want[i])
		}
	}
}

func TestIDGeneratorIncreasing(t *testing.T) {
	g := newIDGenerator(time.UnixMilli(42))
	seen := make(map[string]bool)
	last := 0

	for i := 0; i < 100; i++ {
		id := g.next(KindMessage)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true

		seq, err := strconv.Atoi(id[strings.LastIndex(id, "-")+1:])
		if err != nil {
			t.Fatalf("id %q has no numeric sequence: %v", id, err)
		}
		if seq <= last {
			t.Fatalf("sequence %d not greater than %d", seq, last)
		}
		last = seq
	}
}

func TestIDGeneratorRunsAreIndependent(t *testing.T) {
	now := time.UnixMilli(7)
	a := newIDGenerator(now)
	a.next(KindLifeline)
	a.next(KindLifeline)

	b := newIDGenerator(now)
	if got := b.next(KindLifeline); got != "lifeline-7-1" {
		t.Errorf("fresh generator next() = %q, want lifeline-7-1", got)
	}
}
