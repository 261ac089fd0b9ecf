package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

// MessageKind identifies how a message is drawn. The set is closed:
// every switch over MessageKind handles all four values.
type MessageKind int

const (
	// Request is a synchronous call, drawn as a solid line with a filled arrow.
	Request MessageKind = iota + 1
	// Response is a synchronous return, drawn dashed with an open arrow.
	Response
	// Self is a call from a lifeline to itself, drawn as an outward loop.
	Self
	// Async is a fire-and-forget message with an open arrow.
	Async
)

var kindNames = map[MessageKind]string{
	Request:  "request",
	Response: "response",
	Self:     "self",
	Async:    "async",
}

// String returns the lower-case name used in JSON.
func (k MessageKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("MessageKind(%d)", int(k))
}

// Valid reports whether k is one of the four known kinds.
func (k MessageKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseMessageKind converts a name such as "request" to its MessageKind.
// Matching is case-insensitive.
func ParseMessageKind(s string) (MessageKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidMessageKind, "unknown message kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k MessageKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMessageKind, "cannot encode %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MessageKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMessageKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
