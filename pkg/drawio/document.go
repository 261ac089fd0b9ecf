package drawio

import "encoding/xml"

// Identifiers of the two structural cells every document starts with.
const (
	RootCellID  = "0"
	LayerCellID = "1"
)

// Values of the "as" attribute on geometry and point elements.
const (
	asGeometry    = "geometry"
	asSourcePoint = "sourcePoint"
	asTargetPoint = "targetPoint"
	asPoints      = "points"
)

// Document is the draw.io mxGraphModel element.
type Document struct {
	XMLName    xml.Name `xml:"mxGraphModel"`
	Dx         string   `xml:"dx,attr"`
	Dy         string   `xml:"dy,attr"`
	Grid       string   `xml:"grid,attr"`
	GridSize   string   `xml:"gridSize,attr"`
	Guides     string   `xml:"guides,attr"`
	Tooltips   string   `xml:"tooltips,attr"`
	Connect    string   `xml:"connect,attr"`
	Arrows     string   `xml:"arrows,attr"`
	Fold       string   `xml:"fold,attr"`
	Page       string   `xml:"page,attr"`
	PageScale  string   `xml:"pageScale,attr"`
	PageWidth  string   `xml:"pageWidth,attr"`
	PageHeight string   `xml:"pageHeight,attr"`
	Math       string   `xml:"math,attr"`
	Shadow     string   `xml:"shadow,attr"`
	Root       Root     `xml:"root"`
}

// Root holds the structural cells followed by the element nodes.
type Root struct {
	Cells   []Cell       `xml:"mxCell"`
	Objects []UserObject `xml:"UserObject"`
}

// UserObject wraps one element cell and carries its label, tooltip and link.
type UserObject struct {
	ID      string `xml:"id,attr"`
	Label   string `xml:"label,attr"`
	Tooltip string `xml:"tooltip,attr,omitempty"`
	Link    string `xml:"link,attr,omitempty"`
	Cell    Cell   `xml:"mxCell"`
}

// Cell is an mxCell. Structural cells only carry ID and Parent; element
// cells carry a style, one of Vertex or Edge, and a geometry.
type Cell struct {
	ID       string    `xml:"id,attr,omitempty"`
	Style    string    `xml:"style,attr,omitempty"`
	Vertex   string    `xml:"vertex,attr,omitempty"`
	Edge     string    `xml:"edge,attr,omitempty"`
	Parent   string    `xml:"parent,attr,omitempty"`
	Geometry *Geometry `xml:"mxGeometry,omitempty"`
}

// Geometry is either a box (X, Y, Width, Height) or a relative edge
// geometry with source/target points and optional waypoints.
type Geometry struct {
	X        string  `xml:"x,attr,omitempty"`
	Y        string  `xml:"y,attr,omitempty"`
	Width    string  `xml:"width,attr,omitempty"`
	Height   string  `xml:"height,attr,omitempty"`
	Relative string  `xml:"relative,attr,omitempty"`
	As       string  `xml:"as,attr"`
	Points   []Point `xml:"mxPoint,omitempty"`
	Array    *Array  `xml:"Array,omitempty"`
}

// Point is an mxPoint.
type Point struct {
	X  string `xml:"x,attr"`
	Y  string `xml:"y,attr"`
	As string `xml:"as,attr,omitempty"`
}

// Array is the waypoint list of an edge geometry.
type Array struct {
	As     string  `xml:"as,attr"`
	Points []Point `xml:"mxPoint"`
}

// IsEdge reports whether the cell is drawn as an edge.
func (c Cell) IsEdge() bool { return c.Edge == "1" }

// SourcePoint returns the edge point tagged sourcePoint, if any.
func (g *Geometry) SourcePoint() (Point, bool) { return g.point(asSourcePoint) }

// TargetPoint returns the edge point tagged targetPoint, if any.
func (g *Geometry) TargetPoint() (Point, bool) { return g.point(asTargetPoint) }

// Waypoints returns the extra points of an edge, or nil.
func (g *Geometry) Waypoints() []Point {
	if g.Array == nil {
		return nil
	}
	return g.Array.Points
}

func (g *Geometry) point(as string) (Point, bool) {
	for _, p := range g.Points {
		if p.As == as {
			return p, true
		}
	}
	return Point{}, false
}

// newDocument returns an empty document with the fixed page attributes and
// the two structural cells.
func newDocument(capacity int) *Document {
	return &Document{
		Dx:         "0",
		Dy:         "0",
		Grid:       "1",
		GridSize:   "10",
		Guides:     "1",
		Tooltips:   "1",
		Connect:    "1",
		Arrows:     "1",
		Fold:       "1",
		Page:       "1",
		PageScale:  "1",
		PageWidth:  "100",
		PageHeight: "100",
		Math:       "0",
		Shadow:     "0",
		Root: Root{
			Cells: []Cell{
				{ID: RootCellID},
				{ID: LayerCellID, Parent: RootCellID},
			},
			Objects: make([]UserObject, 0, capacity),
		},
	}
}
