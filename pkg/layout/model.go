package layout

import (
	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

// Model is the fully resolved layout of one sequence diagram.
//
// Activations are keyed by the index of the owning lifeline in Lifelines.
// A lifeline without activations simply has no entry.
type Model struct {
	Description *Description         `json:"description,omitempty"`
	Lifelines   []Lifeline           `json:"lifelines"`
	Activations map[int][]Activation `json:"activations,omitempty"`
	Messages    []Message            `json:"messages"`

	TotalWidth          decimal.Decimal `json:"total_width"`
	LifelineBoxWidth    decimal.Decimal `json:"lifeline_box_width"`
	LifelineBoxHeight   decimal.Decimal `json:"lifeline_box_height"`
	LifelineTotalHeight decimal.Decimal `json:"lifeline_total_height"`
}

// Description is the free text drawn above the lifelines.
type Description struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
	Used bool   `json:"used"`
}

// Lifeline is one participant, positioned by the center of its header box.
type Lifeline struct {
	DisplayedName string          `json:"name"`
	CenterX       decimal.Decimal `json:"center_x"`
	StartY        decimal.Decimal `json:"start_y"`
}

// Activation is a vertical interval during which a lifeline is active.
type Activation struct {
	TopY    decimal.Decimal `json:"top_y"`
	BottomY decimal.Decimal `json:"bottom_y"`
}

// Message is a directed arrow between lifelines.
//
// Request, Response and Async messages use MiddleY. Self messages use TopY
// and BottomY, and EndX is the outer x of the loop.
type Message struct {
	Kind    MessageKind     `json:"kind"`
	Text    string          `json:"text"`
	Link    string          `json:"link,omitempty"`
	StartX  decimal.Decimal `json:"start_x"`
	EndX    decimal.Decimal `json:"end_x"`
	MiddleY decimal.Decimal `json:"middle_y"`
	TopY    decimal.Decimal `json:"top_y"`
	BottomY decimal.Decimal `json:"bottom_y"`
}

// DescriptionUsed reports whether a description element should be drawn.
func (m *Model) DescriptionUsed() bool {
	return m.Description != nil && m.Description.Used
}

// LifelineBoxHalfWidth is half of LifelineBoxWidth.
func (m *Model) LifelineBoxHalfWidth() decimal.Decimal {
	return m.LifelineBoxWidth.Div(decimal.NewFromInt(2))
}

// ActivationCount returns the number of activations owned by existing lifelines.
func (m *Model) ActivationCount() int {
	n := 0
	for i := range m.Lifelines {
		n += len(m.Activations[i])
	}
	return n
}

// Validate checks the model for structural consistency.
//
// Validate does not require lifelines or messages to be present; an empty
// model is consistent, it just has nothing to draw.
func (m *Model) Validate() error {
	for idx, acts := range m.Activations {
		if idx < 0 || idx >= len(m.Lifelines) {
			return errors.New(errors.ErrCodeInvalidLayout, "activations reference unknown lifeline %d (have %d lifelines)", idx, len(m.Lifelines))
		}
		for j, a := range acts {
			if a.BottomY.LessThan(a.TopY) {
				return errors.New(errors.ErrCodeInvalidLayout, "lifeline %d activation %d: bottom_y %s is above top_y %s", idx, j, a.BottomY, a.TopY)
			}
		}
	}
	for i, msg := range m.Messages {
		if !msg.Kind.Valid() {
			return errors.New(errors.ErrCodeInvalidMessageKind, "message %d: %s", i, msg.Kind)
		}
		if msg.Kind == Self && msg.BottomY.LessThan(msg.TopY) {
			return errors.New(errors.ErrCodeInvalidLayout, "message %d: self call bottom_y %s is above top_y %s", i, msg.BottomY, msg.TopY)
		}
	}
	if m.LifelineBoxWidth.IsNegative() || m.LifelineBoxHeight.IsNegative() || m.LifelineTotalHeight.IsNegative() {
		return errors.New(errors.ErrCodeInvalidLayout, "lifeline dimensions must not be negative")
	}
	return nil
}

// Stats summarizes the elements of a model.
type Stats struct {
	Lifelines       int
	Activations     int
	Messages        int
	MessagesByKind  map[MessageKind]int
	DescriptionUsed bool
}

// Nodes returns the number of element nodes a document for this model
// holds, excluding the two structural cells.
func (s Stats) Nodes() int {
	n := s.Lifelines + s.Activations + s.Messages
	if s.DescriptionUsed {
		n++
	}
	return n
}

// Stats counts the elements of m.
func (m *Model) Stats() Stats {
	s := Stats{
		Lifelines:       len(m.Lifelines),
		Activations:     m.ActivationCount(),
		Messages:        len(m.Messages),
		MessagesByKind:  make(map[MessageKind]int),
		DescriptionUsed: m.DescriptionUsed(),
	}
	for _, msg := range m.Messages {
		s.MessagesByKind[msg.Kind]++
	}
	return s
}
