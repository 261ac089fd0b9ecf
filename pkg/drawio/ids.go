package drawio

import (
	"strconv"
	"time"
)

// ElementKind names the kind of element an identifier is issued for.
// Its value is the identifier prefix.
type ElementKind string

const (
	KindDescription ElementKind = "description"
	KindLifeline    ElementKind = "lifeline"
	KindActivation  ElementKind = "activation"
	KindMessage     ElementKind = "message"
)

// idGenerator issues "<kind>-<timestamp>-<seq>" identifiers for one run.
// The sequence starts at 1 and is shared by all kinds.
type idGenerator struct {
	timestamp string
	seq       int
}

func newIDGenerator(now time.Time) *idGenerator {
	return &idGenerator{timestamp: strconv.FormatInt(now.UnixMilli(), 10)}
}

func (g *idGenerator) next(kind ElementKind) string {
	g.seq++
	return string(kind) + "-" + g.timestamp + "-" + strconv.Itoa(g.seq)
}
