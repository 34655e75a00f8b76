package ast

import "github.com/hashicorp/hcl/v2"

// Styles is the `styles` block: element and relationship style declarations
// in source order.
type Styles struct {
	Elements      []*ElementStyle
	Relationships []*RelationshipStyle
	DefRange      hcl.Range
}

// Range implements Node.
func (s *Styles) Range() hcl.Range { return s.DefRange }

// ElementStyle is an `element` style block keyed by tag. Keyword fields
// (Shape, Border) hold the raw DSL keyword; the builder validates them and
// substitutes documented defaults for unknown values.
type ElementStyle struct {
	Tag        string
	Shape      string
	Background string
	Color      string
	Stroke     string
	Border     string
	Icon       string
	Opacity    int
	DefRange   hcl.Range
}

// Range implements Node.
func (s *ElementStyle) Range() hcl.Range { return s.DefRange }

// RelationshipStyle is a `relationship` style block keyed by tag.
type RelationshipStyle struct {
	Tag       string
	Color     string
	LineStyle string
	Routing   string
	Thickness int
	Opacity   int
	DefRange  hcl.Range
}

// Range implements Node.
func (s *RelationshipStyle) Range() hcl.Range { return s.DefRange }
