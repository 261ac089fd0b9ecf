package drawio

import (
	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/errors"
	"github.com/matzehuels/seqdraw/pkg/layout"
)

// DescriptionHeight is the fixed height of the description block.
var DescriptionHeight = decimal.NewFromInt(20)

var two = decimal.NewFromInt(2)

func box(x, y, width, height decimal.Decimal) *Geometry {
	return &Geometry{
		X:      x.String(),
		Y:      y.String(),
		Width:  width.String(),
		Height: height.String(),
		As:     asGeometry,
	}
}

func point(x, y decimal.Decimal, as string) Point {
	return Point{X: x.String(), Y: y.String(), As: as}
}

// DescriptionGeometry spans the full diagram width at the top of the page.
func DescriptionGeometry(m *layout.Model) *Geometry {
	return box(decimal.Zero, decimal.Zero, m.TotalWidth, DescriptionHeight)
}

// LifelineGeometry centers the lifeline box on its center x.
func LifelineGeometry(m *layout.Model, l layout.Lifeline) *Geometry {
	return box(l.CenterX.Sub(m.LifelineBoxHalfWidth()), l.StartY, m.LifelineBoxWidth, m.LifelineTotalHeight)
}

// ActivationGeometry centers an activation of the given width on the
// owning lifeline.
func ActivationGeometry(l layout.Lifeline, a layout.Activation, width decimal.Decimal) *Geometry {
	return box(l.CenterX.Sub(width.Div(two)), a.TopY, width, a.BottomY.Sub(a.TopY))
}

// MessageGeometry returns the relative edge geometry of a message.
//
// Request, Response and Async messages are straight horizontal edges at
// MiddleY. A Self message keeps both endpoints on StartX and routes through
// two waypoints on EndX, so the rendered path leaves the lifeline, runs
// parallel to it and returns.
func MessageGeometry(msg layout.Message) (*Geometry, error) {
	g := &Geometry{Relative: "1", As: asGeometry}

	switch msg.Kind {
	case layout.Request, layout.Response, layout.Async:
		g.Points = []Point{
			point(msg.StartX, msg.MiddleY, asSourcePoint),
			point(msg.EndX, msg.MiddleY, asTargetPoint),
		}
	case layout.Self:
		g.Points = []Point{
			point(msg.StartX, msg.TopY, asSourcePoint),
			point(msg.StartX, msg.BottomY, asTargetPoint),
		}
		g.Array = &Array{
			As: asPoints,
			Points: []Point{
				point(msg.EndX, msg.TopY, ""),
				point(msg.EndX, msg.BottomY, ""),
			},
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidMessageKind, "no geometry for %s", msg.Kind)
	}
	return g, nil
}
