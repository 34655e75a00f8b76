package views

import (
	"strings"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
)

// DefaultAutoLayout is substituted for unknown auto-layout directions.
const DefaultAutoLayout = "tb"

// Convert creates the view records from the views AST, in source order.
// Membership stays empty until Populate runs. Duplicate keys and unknown
// enumerated values are reported here; a view with a duplicate key is
// dropped, unknown keywords are defaulted.
func Convert(vs *ast.Views, sink *diag.Sink) []model.View {
	if vs == nil {
		return nil
	}
	var out []model.View
	seen := make(map[string]bool)
	for _, node := range vs.Nodes {
		v, ok := convertView(node, sink)
		if !ok {
			continue
		}
		if seen[v.Key] {
			sink.Errorf(rangePtr(node.Range()), "duplicate view key %q; the view is dropped", v.Key)
			continue
		}
		seen[v.Key] = true
		out = append(out, v)
	}
	return out
}

func convertView(node ast.Node, sink *diag.Sink) (model.View, bool) {
	var (
		kind model.ViewKind
		base *ast.View
	)
	v := model.View{}
	switch n := node.(type) {
	case *ast.SystemLandscapeView:
		kind, base = model.SystemLandscapeView, &n.View
	case *ast.SystemContextView:
		kind, base = model.SystemContextView, &n.View
	case *ast.ContainerViewNode:
		kind, base = model.ContainerView, &n.View
	case *ast.ComponentViewNode:
		kind, base = model.ComponentView, &n.View
	case *ast.DynamicViewNode:
		kind, base = model.DynamicView, &n.View
	case *ast.DeploymentViewNode:
		kind, base = model.DeploymentView, &n.View
	case *ast.FilteredViewNode:
		kind, base = model.FilteredView, &n.View
		v.BaseViewKey = n.BaseViewRef
		v.Mode = parseFilterMode(n.Mode, n, sink)
		v.FilterTags = n.FilterTags
	case *ast.CustomViewNode:
		kind, base = model.CustomView, &n.View
	case *ast.ImageViewNode:
		kind, base = model.ImageView, &n.View
		v.ImageSource = n.Source
	default:
		return model.View{}, false
	}

	v.Kind = kind
	v.Key = base.Key
	v.Title = base.Title
	v.Description = base.Description
	v.SoftwareSystemID = base.SoftwareSystemRef
	v.ContainerID = base.ContainerRef
	v.ElementID = base.ElementRef
	v.EnvironmentID = base.EnvironmentRef
	v.IncludeTags = base.Include
	v.ExcludeTags = base.Exclude
	v.AutoLayout = parseAutoLayout(base, sink)
	v.AnimationSteps = base.Animations
	return v, true
}

func parseAutoLayout(base *ast.View, sink *diag.Sink) string {
	switch base.AutoLayout {
	case "", "tb", "bt", "lr", "rl":
		return base.AutoLayout
	default:
		sink.Warnf(rangePtr(base.DefRange), "unknown auto_layout direction %q in view %q; using %q", base.AutoLayout, base.Key, DefaultAutoLayout)
		return DefaultAutoLayout
	}
}

func parseFilterMode(mode string, n *ast.FilteredViewNode, sink *diag.Sink) model.FilterMode {
	switch strings.ToLower(mode) {
	case "", "include":
		return model.FilterInclude
	case "exclude":
		return model.FilterExclude
	default:
		sink.Warnf(rangePtr(n.DefRange), "unknown filter mode %q in view %q; using %q", mode, n.Key, model.FilterInclude)
		return model.FilterInclude
	}
}

// ConvertStyles creates the style records, substituting documented defaults
// for unknown keywords so the build always produces usable styles.
func ConvertStyles(s *ast.Styles, sink *diag.Sink) model.Styles {
	out := model.Styles{}
	if s == nil {
		return out
	}
	for _, es := range s.Elements {
		st := model.ElementStyle{
			Tag:        es.Tag,
			Background: es.Background,
			Color:      es.Color,
			Stroke:     es.Stroke,
			Icon:       es.Icon,
			Opacity:    es.Opacity,
		}
		if es.Shape != "" {
			shape, ok := model.ParseShape(es.Shape)
			if !ok {
				sink.Warnf(rangePtr(es.DefRange), "unknown shape %q for tag %q; using %q", es.Shape, es.Tag, model.DefaultShape)
				shape = model.DefaultShape
			}
			st.Shape = shape
		}
		if es.Border != "" {
			border, ok := model.ParseBorder(es.Border)
			if !ok {
				sink.Warnf(rangePtr(es.DefRange), "unknown border %q for tag %q; using %q", es.Border, es.Tag, model.DefaultBorder)
				border = model.DefaultBorder
			}
			st.Border = border
		}
		out.Elements = append(out.Elements, st)
	}
	for _, rs := range s.Relationships {
		st := model.RelationshipStyle{
			Tag:       rs.Tag,
			Color:     rs.Color,
			Thickness: rs.Thickness,
			Opacity:   rs.Opacity,
		}
		if rs.LineStyle != "" {
			line, ok := model.ParseLineStyle(rs.LineStyle)
			if !ok {
				sink.Warnf(rangePtr(rs.DefRange), "unknown line style %q for tag %q; using %q", rs.LineStyle, rs.Tag, model.DefaultLineStyle)
				line = model.DefaultLineStyle
			}
			st.LineStyle = line
		}
		if rs.Routing != "" {
			routing, ok := model.ParseRouting(rs.Routing)
			if !ok {
				sink.Warnf(rangePtr(rs.DefRange), "unknown routing %q for tag %q; using %q", rs.Routing, rs.Tag, model.DefaultRouting)
				routing = model.DefaultRouting
			}
			st.Routing = routing
		}
		out.Relationships = append(out.Relationships, st)
	}
	return out
}
