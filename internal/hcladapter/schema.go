package hcladapter

import "github.com/hashicorp/hcl/v2"

// Block type names, one per DSL construct.
const (
	blockWorkspace          = "workspace"
	blockInclude            = "include"
	blockModel              = "model"
	blockViews              = "views"
	blockStyles             = "styles"
	blockBranding           = "branding"
	blockTerminology        = "terminology"
	blockPerson             = "person"
	blockSoftwareSystem     = "software_system"
	blockContainer          = "container"
	blockComponent          = "component"
	blockGroup              = "group"
	blockRelationship       = "relationship"
	blockDeploymentEnv      = "deployment_environment"
	blockDeploymentNode     = "deployment_node"
	blockInfrastructureNode = "infrastructure_node"
	blockContainerInstance  = "container_instance"
	blockAlias              = "alias"
	blockSystemLandscape    = "system_landscape"
	blockSystemContext      = "system_context"
	blockDynamic            = "dynamic"
	blockDeployment         = "deployment"
	blockFiltered           = "filtered"
	blockCustom             = "custom"
	blockImage              = "image"
	blockAnimation          = "animation"
	blockElementStyle       = "element"
	blockRelationshipStyle  = "relationship"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockWorkspace},
		{Type: blockInclude, LabelNames: []string{"path"}},
	},
}

var workspaceSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "description"},
		{Name: "properties"},
		{Name: "configuration"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockModel},
		{Type: blockViews},
		{Type: blockStyles},
		{Type: blockBranding},
		{Type: blockTerminology},
	},
}

// elementBlocks lists every block type that declares an element or a nested
// relationship. The same set is legal at the model root and inside element
// bodies; structural placement is the builder's concern, not the parser's.
var elementBlocks = []hcl.BlockHeaderSchema{
	{Type: blockPerson, LabelNames: []string{"id"}},
	{Type: blockSoftwareSystem, LabelNames: []string{"id"}},
	{Type: blockContainer, LabelNames: []string{"id"}},
	{Type: blockComponent, LabelNames: []string{"id"}},
	{Type: blockGroup, LabelNames: []string{"id"}},
	{Type: blockDeploymentEnv, LabelNames: []string{"id"}},
	{Type: blockDeploymentNode, LabelNames: []string{"id"}},
	{Type: blockInfrastructureNode, LabelNames: []string{"id"}},
	{Type: blockContainerInstance, LabelNames: []string{"id"}},
	{Type: blockRelationship},
}

var modelSchema = &hcl.BodySchema{
	Blocks: append([]hcl.BlockHeaderSchema{
		{Type: blockAlias, LabelNames: []string{"name"}},
	}, elementBlocks...),
}

var elementSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "description"},
		{Name: "technology"},
		{Name: "location"},
		{Name: "tags"},
		{Name: "properties"},
		{Name: "container"}, // container_instance target
	},
	Blocks: elementBlocks,
}

var relationshipSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "source"},
		{Name: "destination", Required: true},
		{Name: "description"},
		{Name: "technology"},
		{Name: "tags"},
		{Name: "properties"},
	},
}

var aliasSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "target", Required: true},
	},
}

var viewsSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockSystemLandscape, LabelNames: []string{"key"}},
		{Type: blockSystemContext, LabelNames: []string{"key"}},
		{Type: blockContainer, LabelNames: []string{"key"}},
		{Type: blockComponent, LabelNames: []string{"key"}},
		{Type: blockDynamic, LabelNames: []string{"key"}},
		{Type: blockDeployment, LabelNames: []string{"key"}},
		{Type: blockFiltered, LabelNames: []string{"key"}},
		{Type: blockCustom, LabelNames: []string{"key"}},
		{Type: blockImage, LabelNames: []string{"key"}},
	},
}

var viewSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
		{Name: "description"},
		{Name: "software_system"},
		{Name: "container"},
		{Name: "element"},
		{Name: "environment"},
		{Name: "scope"},
		{Name: "include"},
		{Name: "exclude"},
		{Name: "auto_layout"},
		{Name: "base_view"},
		{Name: "mode"},
		{Name: "tags"},
		{Name: "source"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockAnimation},
	},
}

var animationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "elements", Required: true},
	},
}

var stylesSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockElementStyle, LabelNames: []string{"tag"}},
		{Type: blockRelationshipStyle, LabelNames: []string{"tag"}},
	},
}

var elementStyleSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "shape"},
		{Name: "background"},
		{Name: "color"},
		{Name: "stroke"},
		{Name: "border"},
		{Name: "icon"},
		{Name: "opacity"},
	},
}

var relationshipStyleSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "color"},
		{Name: "line_style"},
		{Name: "routing"},
		{Name: "thickness"},
		{Name: "opacity"},
	},
}

var brandingSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "logo"},
		{Name: "font"},
	},
}

var terminologySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "person"},
		{Name: "software_system"},
		{Name: "container"},
		{Name: "component"},
		{Name: "deployment_node"},
		{Name: "infrastructure_node"},
		{Name: "relationship"},
	},
}
