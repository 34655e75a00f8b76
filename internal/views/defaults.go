package views

import "github.com/vk/archgridgo/internal/model"

// Default style records applied to every workspace. Injection is idempotent:
// a tag that already has a style keeps it.

var defaultElementStyles = []model.ElementStyle{
	{Tag: "Element", Shape: model.ShapeBox, Background: "#dddddd", Color: "#000000"},
	{Tag: "Person", Shape: model.ShapePerson, Background: "#dddddd", Color: "#000000"},
	{Tag: "Software System", Shape: model.ShapeBox, Background: "#dddddd", Color: "#000000"},
}

var defaultRelationshipStyle = model.RelationshipStyle{
	Tag:       "Relationship",
	Color:     "#707070",
	LineStyle: model.LineDashed,
	Routing:   model.RoutingDirect,
	Thickness: 2,
}

func injectDefaultStyles(s *model.Styles) {
	for _, st := range defaultElementStyles {
		if !s.HasElementStyle(st.Tag) {
			s.Elements = append(s.Elements, st)
		}
	}
	if !s.HasRelationshipStyle(defaultRelationshipStyle.Tag) {
		s.Relationships = append(s.Relationships, defaultRelationshipStyle)
	}
}
