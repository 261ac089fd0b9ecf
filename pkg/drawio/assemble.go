package drawio

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/config"
	"github.com/matzehuels/seqdraw/pkg/errors"
	"github.com/matzehuels/seqdraw/pkg/layout"
)

// Precondition failures. A model without lifelines or messages is valid
// but has nothing to draw.
var (
	ErrNoLifelines = errors.New(errors.ErrCodePreconditionNotMet, "no lifelines specified")
	ErrNoMessages  = errors.New(errors.ErrCodePreconditionNotMet, "no messages specified")
)

// run is the state of one assembly: the identifier sequence and the
// options it reads. It is created per call and never shared.
type run struct {
	ids             *idGenerator
	model           *layout.Model
	style           config.Style
	activationWidth decimal.Decimal
	doc             *Document
}

// assemble checks the preconditions and builds the document for m.
func assemble(m *layout.Model, pos config.Position, style config.Style, now time.Time) (*Document, error) {
	if len(m.Lifelines) == 0 {
		return nil, ErrNoLifelines
	}
	if len(m.Messages) == 0 {
		return nil, ErrNoMessages
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		ids:             newIDGenerator(now),
		model:           m,
		style:           style,
		activationWidth: pos.ActivationWidthDecimal(),
		doc:             newDocument(m.Stats().Nodes()),
	}
	r.addDescription()
	r.addLifelines()
	r.addActivations()
	if err := r.addMessages(); err != nil {
		return nil, err
	}
	return r.doc, nil
}

func (r *run) add(obj UserObject) {
	r.doc.Root.Objects = append(r.doc.Root.Objects, obj)
}

func vertex(style string, g *Geometry) Cell {
	return Cell{Style: style, Vertex: "1", Parent: LayerCellID, Geometry: g}
}

func (r *run) addDescription() {
	if !r.model.DescriptionUsed() {
		return
	}
	d := r.model.Description
	r.add(UserObject{
		ID:    r.ids.next(KindDescription),
		Label: d.Text,
		Link:  d.Link,
		Cell:  vertex(DescriptionStyle(), DescriptionGeometry(r.model)),
	})
}

func (r *run) addLifelines() {
	font := r.style.LifelineFont()
	style := LifelineStyle(r.style, r.model.LifelineBoxHeight)
	for _, l := range r.model.Lifelines {
		r.add(UserObject{
			ID:      r.ids.next(KindLifeline),
			Label:   FontLabel(l.DisplayedName, font),
			Tooltip: l.DisplayedName,
			Cell:    vertex(style, LifelineGeometry(r.model, l)),
		})
	}
}

// addActivations walks lifelines in order so activations of earlier
// lifelines always precede later ones, independent of map iteration.
func (r *run) addActivations() {
	style := ActivationStyle(r.style)
	for i, l := range r.model.Lifelines {
		for _, a := range r.model.Activations[i] {
			r.add(UserObject{
				ID:      r.ids.next(KindActivation),
				Label:   "",
				Tooltip: l.DisplayedName,
				Cell:    vertex(style, ActivationGeometry(l, a, r.activationWidth)),
			})
		}
	}
}

func (r *run) addMessages() error {
	font := r.style.MessageFont()
	for i, msg := range r.model.Messages {
		style, err := MessageStyle(msg.Kind, r.style)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMessageKind, err, "message %d", i)
		}
		geom, err := MessageGeometry(msg)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMessageKind, err, "message %d", i)
		}
		r.add(UserObject{
			ID:    r.ids.next(KindMessage),
			Label: FontLabel(msg.Text, font),
			Link:  msg.Link,
			Cell:  Cell{Style: style, Edge: "1", Parent: LayerCellID, Geometry: geom},
		})
	}
	return nil
}
