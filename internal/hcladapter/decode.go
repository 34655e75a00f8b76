package hcladapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/diag"
)

// decoder translates matched HCL content into AST nodes, reporting every
// problem to the sink and pressing on with whatever did decode.
type decoder struct {
	sink *diag.Sink
}

// content matches a body against a schema. Unknown attributes and blocks
// surface as recoverable diagnostics, not as a failed decode.
func (d *decoder) content(body hcl.Body, schema *hcl.BodySchema) *hcl.BodyContent {
	content, diags := body.Content(schema)
	d.sink.ExtendHCL(diags)
	return content
}

// value evaluates an attribute expression. Expressions have no evaluation
// context; only literals are legal.
func (d *decoder) value(attr *hcl.Attribute) (cty.Value, bool) {
	val, diags := attr.Expr.Value(nil)
	d.sink.ExtendHCL(diags)
	if diags.HasErrors() || val.IsNull() {
		return cty.NilVal, false
	}
	return val, true
}

func (d *decoder) str(attrs hcl.Attributes, name string) string {
	attr, ok := attrs[name]
	if !ok {
		return ""
	}
	val, ok := d.value(attr)
	if !ok {
		return ""
	}
	conv, err := convert.Convert(val, cty.String)
	if err != nil {
		d.sink.Errorf(&attr.Range, "attribute %q must be a string", name)
		return ""
	}
	return conv.AsString()
}

func (d *decoder) strList(attrs hcl.Attributes, name string) []string {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	val, ok := d.value(attr)
	if !ok {
		return nil
	}
	if !val.CanIterateElements() {
		d.sink.Errorf(&attr.Range, "attribute %q must be a list of strings", name)
		return nil
	}
	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		conv, err := convert.Convert(ev, cty.String)
		if err != nil {
			d.sink.Errorf(&attr.Range, "attribute %q must be a list of strings", name)
			return out
		}
		out = append(out, conv.AsString())
	}
	return out
}

func (d *decoder) strMap(attrs hcl.Attributes, name string) map[string]string {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	val, ok := d.value(attr)
	if !ok {
		return nil
	}
	if !val.CanIterateElements() {
		d.sink.Errorf(&attr.Range, "attribute %q must be a map of strings", name)
		return nil
	}
	out := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		kv, ev := it.Element()
		key, err := convert.Convert(kv, cty.String)
		if err != nil {
			d.sink.Errorf(&attr.Range, "attribute %q must be a map of strings", name)
			return out
		}
		value, err := convert.Convert(ev, cty.String)
		if err != nil {
			d.sink.Errorf(&attr.Range, "attribute %q must be a map of strings", name)
			return out
		}
		out[key.AsString()] = value.AsString()
	}
	return out
}

func (d *decoder) integer(attrs hcl.Attributes, name string) int {
	attr, ok := attrs[name]
	if !ok {
		return 0
	}
	val, ok := d.value(attr)
	if !ok {
		return 0
	}
	conv, err := convert.Convert(val, cty.Number)
	if err != nil {
		d.sink.Errorf(&attr.Range, "attribute %q must be a number", name)
		return 0
	}
	n, _ := conv.AsBigFloat().Int64()
	return int(n)
}

// decodeFile decodes a parsed file body into the AST root.
func (d *decoder) decodeFile(body hcl.Body) *ast.File {
	file := &ast.File{}
	content := d.content(body, fileSchema)
	for _, block := range content.Blocks {
		switch block.Type {
		case blockWorkspace:
			if file.Workspace != nil {
				d.sink.Errorf(&block.DefRange, "only one workspace may be declared per file")
				continue
			}
			file.Workspace = d.decodeWorkspace(block)
		case blockInclude:
			file.Includes = append(file.Includes, &ast.Include{Path: block.Labels[0], DefRange: block.DefRange})
		}
	}
	return file
}

func (d *decoder) decodeWorkspace(block *hcl.Block) *ast.Workspace {
	content := d.content(block.Body, workspaceSchema)
	ws := &ast.Workspace{
		Name:          d.str(content.Attributes, "name"),
		Description:   d.str(content.Attributes, "description"),
		Properties:    d.strMap(content.Attributes, "properties"),
		Configuration: d.strMap(content.Attributes, "configuration"),
		DefRange:      block.DefRange,
	}
	for _, inner := range content.Blocks {
		switch inner.Type {
		case blockModel:
			ws.Model = d.decodeModel(inner)
		case blockViews:
			ws.Views = d.decodeViews(inner)
		case blockStyles:
			ws.Styles = d.decodeStyles(inner)
		case blockBranding:
			ws.Branding = d.decodeBranding(inner)
		case blockTerminology:
			ws.Terminology = d.decodeTerminology(inner)
		}
	}
	return ws
}

func (d *decoder) decodeModel(block *hcl.Block) *ast.Model {
	content := d.content(block.Body, modelSchema)
	m := &ast.Model{DefRange: block.DefRange}
	for _, inner := range content.Blocks {
		if inner.Type == blockAlias {
			m.Nodes = append(m.Nodes, d.decodeAlias(inner))
			continue
		}
		if node := d.decodeModelNode(inner); node != nil {
			m.Nodes = append(m.Nodes, node)
		}
	}
	return m
}

func (d *decoder) decodeAlias(block *hcl.Block) *ast.Alias {
	content := d.content(block.Body, aliasSchema)
	return &ast.Alias{
		Name:     block.Labels[0],
		Target:   d.str(content.Attributes, "target"),
		DefRange: block.DefRange,
	}
}

// decodeModelNode decodes one element or relationship block, recursing into
// nested children in source order.
func (d *decoder) decodeModelNode(block *hcl.Block) ast.Node {
	if block.Type == blockRelationship {
		return d.decodeRelationship(block)
	}

	content := d.content(block.Body, elementSchema)
	base := ast.Element{
		ID:          block.Labels[0],
		Name:        d.str(content.Attributes, "name"),
		Description: d.str(content.Attributes, "description"),
		Technology:  d.str(content.Attributes, "technology"),
		Location:    d.str(content.Attributes, "location"),
		Tags:        d.strList(content.Attributes, "tags"),
		Properties:  d.strMap(content.Attributes, "properties"),
		DefRange:    block.DefRange,
	}
	for _, inner := range content.Blocks {
		if child := d.decodeModelNode(inner); child != nil {
			base.Children = append(base.Children, child)
		}
	}

	switch block.Type {
	case blockPerson:
		return &ast.Person{Element: base}
	case blockSoftwareSystem:
		return &ast.SoftwareSystem{Element: base}
	case blockContainer:
		return &ast.Container{Element: base}
	case blockComponent:
		return &ast.Component{Element: base}
	case blockGroup:
		return &ast.Group{Element: base}
	case blockDeploymentEnv:
		return &ast.DeploymentEnvironment{Element: base}
	case blockDeploymentNode:
		return &ast.DeploymentNode{Element: base}
	case blockInfrastructureNode:
		return &ast.InfrastructureNode{Element: base}
	case blockContainerInstance:
		return &ast.ContainerInstance{Element: base, ContainerRef: d.str(content.Attributes, "container")}
	default:
		d.sink.Errorf(&block.DefRange, "unexpected block %q in model", block.Type)
		return nil
	}
}

func (d *decoder) decodeRelationship(block *hcl.Block) *ast.Relationship {
	content := d.content(block.Body, relationshipSchema)
	return &ast.Relationship{
		Source:      d.str(content.Attributes, "source"),
		Destination: d.str(content.Attributes, "destination"),
		Description: d.str(content.Attributes, "description"),
		Technology:  d.str(content.Attributes, "technology"),
		Tags:        d.strList(content.Attributes, "tags"),
		Properties:  d.strMap(content.Attributes, "properties"),
		DefRange:    block.DefRange,
	}
}

func (d *decoder) decodeViews(block *hcl.Block) *ast.Views {
	content := d.content(block.Body, viewsSchema)
	vs := &ast.Views{DefRange: block.DefRange}
	for _, inner := range content.Blocks {
		if node := d.decodeView(inner); node != nil {
			vs.Nodes = append(vs.Nodes, node)
		}
	}
	return vs
}

func (d *decoder) decodeView(block *hcl.Block) ast.Node {
	content := d.content(block.Body, viewSchema)
	base := ast.View{
		Key:               block.Labels[0],
		Title:             d.str(content.Attributes, "title"),
		Description:       d.str(content.Attributes, "description"),
		SoftwareSystemRef: d.str(content.Attributes, "software_system"),
		ContainerRef:      d.str(content.Attributes, "container"),
		ElementRef:        d.str(content.Attributes, "element"),
		EnvironmentRef:    d.str(content.Attributes, "environment"),
		Include:           d.strList(content.Attributes, "include"),
		Exclude:           d.strList(content.Attributes, "exclude"),
		AutoLayout:        d.str(content.Attributes, "auto_layout"),
		DefRange:          block.DefRange,
	}
	if scope := d.str(content.Attributes, "scope"); scope != "" {
		base.ElementRef = scope
	}
	for _, inner := range content.Blocks {
		if inner.Type != blockAnimation {
			continue
		}
		animContent := d.content(inner.Body, animationSchema)
		base.Animations = append(base.Animations, d.strList(animContent.Attributes, "elements"))
	}

	switch block.Type {
	case blockSystemLandscape:
		return &ast.SystemLandscapeView{View: base}
	case blockSystemContext:
		return &ast.SystemContextView{View: base}
	case blockContainer:
		return &ast.ContainerViewNode{View: base}
	case blockComponent:
		return &ast.ComponentViewNode{View: base}
	case blockDynamic:
		return &ast.DynamicViewNode{View: base}
	case blockDeployment:
		return &ast.DeploymentViewNode{View: base}
	case blockFiltered:
		return &ast.FilteredViewNode{
			View:        base,
			BaseViewRef: d.str(content.Attributes, "base_view"),
			Mode:        d.str(content.Attributes, "mode"),
			FilterTags:  d.strList(content.Attributes, "tags"),
		}
	case blockCustom:
		return &ast.CustomViewNode{View: base}
	case blockImage:
		return &ast.ImageViewNode{View: base, Source: d.str(content.Attributes, "source")}
	default:
		d.sink.Errorf(&block.DefRange, "unexpected block %q in views", block.Type)
		return nil
	}
}

func (d *decoder) decodeStyles(block *hcl.Block) *ast.Styles {
	content := d.content(block.Body, stylesSchema)
	s := &ast.Styles{DefRange: block.DefRange}
	for _, inner := range content.Blocks {
		switch inner.Type {
		case blockElementStyle:
			ec := d.content(inner.Body, elementStyleSchema)
			s.Elements = append(s.Elements, &ast.ElementStyle{
				Tag:        inner.Labels[0],
				Shape:      d.str(ec.Attributes, "shape"),
				Background: d.str(ec.Attributes, "background"),
				Color:      d.str(ec.Attributes, "color"),
				Stroke:     d.str(ec.Attributes, "stroke"),
				Border:     d.str(ec.Attributes, "border"),
				Icon:       d.str(ec.Attributes, "icon"),
				Opacity:    d.integer(ec.Attributes, "opacity"),
				DefRange:   inner.DefRange,
			})
		case blockRelationshipStyle:
			rc := d.content(inner.Body, relationshipStyleSchema)
			s.Relationships = append(s.Relationships, &ast.RelationshipStyle{
				Tag:       inner.Labels[0],
				Color:     d.str(rc.Attributes, "color"),
				LineStyle: d.str(rc.Attributes, "line_style"),
				Routing:   d.str(rc.Attributes, "routing"),
				Thickness: d.integer(rc.Attributes, "thickness"),
				Opacity:   d.integer(rc.Attributes, "opacity"),
				DefRange:  inner.DefRange,
			})
		}
	}
	return s
}

func (d *decoder) decodeBranding(block *hcl.Block) *ast.Branding {
	content := d.content(block.Body, brandingSchema)
	return &ast.Branding{
		Logo:     d.str(content.Attributes, "logo"),
		Font:     d.str(content.Attributes, "font"),
		DefRange: block.DefRange,
	}
}

func (d *decoder) decodeTerminology(block *hcl.Block) *ast.Terminology {
	content := d.content(block.Body, terminologySchema)
	return &ast.Terminology{
		Person:             d.str(content.Attributes, "person"),
		SoftwareSystem:     d.str(content.Attributes, "software_system"),
		Container:          d.str(content.Attributes, "container"),
		Component:          d.str(content.Attributes, "component"),
		DeploymentNode:     d.str(content.Attributes, "deployment_node"),
		InfrastructureNode: d.str(content.Attributes, "infrastructure_node"),
		Relationship:       d.str(content.Attributes, "relationship"),
		DefRange:           block.DefRange,
	}
}
