package model

// ViewKind discriminates the closed set of view variants.
type ViewKind int

const (
	SystemLandscapeView ViewKind = iota
	SystemContextView
	ContainerView
	ComponentView
	DynamicView
	DeploymentView
	FilteredView
	CustomView
	ImageView
)

// String returns the human-readable view kind name.
func (k ViewKind) String() string {
	switch k {
	case SystemLandscapeView:
		return "SystemLandscape"
	case SystemContextView:
		return "SystemContext"
	case ContainerView:
		return "Container"
	case ComponentView:
		return "Component"
	case DynamicView:
		return "Dynamic"
	case DeploymentView:
		return "Deployment"
	case FilteredView:
		return "Filtered"
	case CustomView:
		return "Custom"
	case ImageView:
		return "Image"
	default:
		return "Unknown"
	}
}

// FilterMode selects whether a filtered view keeps or removes its tags.
type FilterMode string

const (
	FilterInclude FilterMode = "Include"
	FilterExclude FilterMode = "Exclude"
)

// View is a single diagram definition plus its resolved membership. Scope
// fields that do not apply to a kind stay empty.
type View struct {
	Kind        ViewKind
	Key         string
	Title       string
	Description string

	// Scoping references, all weak.
	SoftwareSystemID string // context, container, deployment views
	ContainerID      string // component views
	ElementID        string // dynamic-view scope, image-view subject
	EnvironmentID    string // deployment views

	// Filtered-view configuration.
	BaseViewKey string
	Mode        FilterMode
	FilterTags  []string

	// ImageSource is the image-view file reference.
	ImageSource string

	IncludeTags []string
	ExcludeTags []string

	// AutoLayout is the rank direction ("tb", "bt", "lr", "rl"), empty when
	// the view has no auto-layout directive.
	AutoLayout string

	// AnimationSteps are ordered groups of element IDs revealed per step.
	AnimationSteps [][]string

	// Resolved membership, populated after the model is stable.
	ElementIDs      []string
	RelationshipIDs []string
}

// ContainsElement reports whether the element is part of the view's resolved
// membership.
func (v *View) ContainsElement(id string) bool {
	for _, e := range v.ElementIDs {
		if e == id {
			return true
		}
	}
	return false
}

// ContainsRelationship reports whether the relationship is part of the
// view's resolved membership.
func (v *View) ContainsRelationship(id string) bool {
	for _, r := range v.RelationshipIDs {
		if r == id {
			return true
		}
	}
	return false
}
