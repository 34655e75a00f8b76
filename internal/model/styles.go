package model

// Shape is the rendered shape of an element style.
type Shape string

const (
	ShapeBox           Shape = "Box"
	ShapeRoundedBox    Shape = "RoundedBox"
	ShapeCircle        Shape = "Circle"
	ShapeEllipse       Shape = "Ellipse"
	ShapeHexagon       Shape = "Hexagon"
	ShapeCylinder      Shape = "Cylinder"
	ShapePipe          Shape = "Pipe"
	ShapePerson        Shape = "Person"
	ShapeRobot         Shape = "Robot"
	ShapeFolder        Shape = "Folder"
	ShapeWebBrowser    Shape = "WebBrowser"
	ShapeMobileDevice  Shape = "MobileDevicePortrait"
	ShapeComponentBox  Shape = "Component"
	ShapeDefaultUnset  Shape = ""
)

// ParseShape maps a DSL shape keyword to a Shape. The second return value is
// false for unknown keywords; callers substitute DefaultShape and warn.
func ParseShape(s string) (Shape, bool) {
	switch s {
	case "box":
		return ShapeBox, true
	case "roundedbox", "rounded_box":
		return ShapeRoundedBox, true
	case "circle":
		return ShapeCircle, true
	case "ellipse":
		return ShapeEllipse, true
	case "hexagon":
		return ShapeHexagon, true
	case "cylinder":
		return ShapeCylinder, true
	case "pipe":
		return ShapePipe, true
	case "person":
		return ShapePerson, true
	case "robot":
		return ShapeRobot, true
	case "folder":
		return ShapeFolder, true
	case "webbrowser", "web_browser":
		return ShapeWebBrowser, true
	case "mobiledevice", "mobile_device":
		return ShapeMobileDevice, true
	case "component":
		return ShapeComponentBox, true
	default:
		return ShapeDefaultUnset, false
	}
}

// DefaultShape is substituted for unknown shape keywords.
const DefaultShape = ShapeBox

// Border is the border style of an element style.
type Border string

const (
	BorderSolid  Border = "Solid"
	BorderDashed Border = "Dashed"
	BorderDotted Border = "Dotted"
)

// ParseBorder maps a DSL border keyword to a Border.
func ParseBorder(s string) (Border, bool) {
	switch s {
	case "solid":
		return BorderSolid, true
	case "dashed":
		return BorderDashed, true
	case "dotted":
		return BorderDotted, true
	default:
		return "", false
	}
}

// DefaultBorder is substituted for unknown border keywords.
const DefaultBorder = BorderSolid

// LineStyle is the line style of a relationship style.
type LineStyle string

const (
	LineSolid  LineStyle = "Solid"
	LineDashed LineStyle = "Dashed"
	LineDotted LineStyle = "Dotted"
)

// ParseLineStyle maps a DSL line-style keyword to a LineStyle.
func ParseLineStyle(s string) (LineStyle, bool) {
	switch s {
	case "solid":
		return LineSolid, true
	case "dashed":
		return LineDashed, true
	case "dotted":
		return LineDotted, true
	default:
		return "", false
	}
}

// DefaultLineStyle is substituted for unknown line-style keywords.
const DefaultLineStyle = LineSolid

// Routing is the edge routing of a relationship style.
type Routing string

const (
	RoutingDirect     Routing = "Direct"
	RoutingCurved     Routing = "Curved"
	RoutingOrthogonal Routing = "Orthogonal"
)

// ParseRouting maps a DSL routing keyword to a Routing.
func ParseRouting(s string) (Routing, bool) {
	switch s {
	case "direct":
		return RoutingDirect, true
	case "curved":
		return RoutingCurved, true
	case "orthogonal":
		return RoutingOrthogonal, true
	default:
		return "", false
	}
}

// DefaultRouting is substituted for unknown routing keywords.
const DefaultRouting = RoutingDirect

// ElementStyle styles every element carrying Tag.
type ElementStyle struct {
	Tag        string
	Shape      Shape
	Background string
	Color      string
	Stroke     string
	Border     Border
	Opacity    int
	Icon       string
}

// RelationshipStyle styles every relationship carrying Tag.
type RelationshipStyle struct {
	Tag       string
	Color     string
	LineStyle LineStyle
	Routing   Routing
	Thickness int
	Opacity   int
}

// Styles is the workspace-level style collection, in declaration order with
// defaults appended by the view populator.
type Styles struct {
	Elements      []ElementStyle
	Relationships []RelationshipStyle
}

// HasElementStyle reports whether a style for the tag already exists. The
// populator uses this to keep default injection idempotent.
func (s *Styles) HasElementStyle(tag string) bool {
	for _, st := range s.Elements {
		if st.Tag == tag {
			return true
		}
	}
	return false
}

// HasRelationshipStyle reports whether a relationship style for the tag
// already exists.
func (s *Styles) HasRelationshipStyle(tag string) bool {
	for _, st := range s.Relationships {
		if st.Tag == tag {
			return true
		}
	}
	return false
}
