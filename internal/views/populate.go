package views

import (
	"context"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/archgridgo/internal/ctxlog"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
	"github.com/vk/archgridgo/internal/resolve"
)

// Wildcard matches every candidate element in an include list.
const Wildcard = "*"

// Populate computes the element and relationship membership of every view in
// the workspace and injects the default styles. Views whose scoping
// reference does not resolve are dropped with an error; the build continues.
func Populate(ctx context.Context, ws *model.Workspace, table *resolve.Table, sink *diag.Sink) {
	logger := ctxlog.FromContext(ctx)
	injectDefaultStyles(&ws.Styles)

	populated := make(map[string]model.View)
	var kept []model.View

	// Filtered views derive from their base view's membership, so every
	// other kind populates first.
	for _, v := range ws.Views {
		if v.Kind == model.FilteredView {
			continue
		}
		if !populateView(&v, ws, table, sink) {
			continue
		}
		populated[v.Key] = v
	}
	for _, v := range ws.Views {
		if v.Kind != model.FilteredView {
			if pv, ok := populated[v.Key]; ok {
				kept = append(kept, pv)
			}
			continue
		}
		if !populateFiltered(&v, ws, table, populated, sink) {
			continue
		}
		kept = append(kept, v)
	}

	ws.Views = kept
	logger.Debug("Views: population complete.", "views", len(kept))
}

// populateView resolves the view's scope and computes membership. It returns
// false when the view must be dropped.
func populateView(v *model.View, ws *model.Workspace, table *resolve.Table, sink *diag.Sink) bool {
	rootID, ok := resolveScope(v, table, sink)
	if !ok {
		return false
	}

	members := map[string]bool{}
	var order []string
	add := func(id string) {
		if !members[id] {
			members[id] = true
			order = append(order, id)
		}
	}

	for _, el := range candidates(v, ws, table, rootID) {
		if el.ID == rootID || includeByTags(el, v.IncludeTags, v.ExcludeTags) {
			add(el.ID)
		}
	}
	if rootID != "" {
		add(rootID) // forced regardless of tag rules
	}

	// Context, container and component views also show everything the scoped
	// element talks to.
	if rootID != "" {
		switch v.Kind {
		case model.SystemContextView, model.ContainerView, model.ComponentView:
			for _, rel := range ws.Model.AllRelationships() {
				var other string
				switch rootID {
				case rel.SourceID:
					other = rel.DestinationID
				case rel.DestinationID:
					other = rel.SourceID
				default:
					continue
				}
				el, found := table.Lookup(other)
				if found && !el.HasAnyTag(v.ExcludeTags) {
					add(other)
				}
			}
		}
	}

	v.ElementIDs = order
	v.RelationshipIDs = memberRelationships(ws.Model.AllRelationships(), members)
	v.AnimationSteps = resolveAnimations(v, table, sink)
	return true
}

// resolveScope resolves the view's scoping reference(s). The returned root
// is the force-included element, empty when the view kind has no root.
func resolveScope(v *model.View, table *resolve.Table, sink *diag.Sink) (string, bool) {
	opts := resolve.Options{SearchByName: true}
	fail := func(ref, what string) (string, bool) {
		sink.Errorf(nil, "view %q references unknown %s %q; the view is dropped", v.Key, what, ref)
		return "", false
	}

	switch v.Kind {
	case model.SystemContextView, model.ContainerView:
		el, ok := table.Resolve(v.SoftwareSystemID, resolve.Scope{}, opts)
		if !ok || el.Kind != model.SoftwareSystem {
			return fail(v.SoftwareSystemID, "software system")
		}
		v.SoftwareSystemID = el.ID
		return el.ID, true
	case model.ComponentView:
		el, ok := table.Resolve(v.ContainerID, resolve.Scope{}, opts)
		if !ok || el.Kind != model.Container {
			return fail(v.ContainerID, "container")
		}
		v.ContainerID = el.ID
		return el.ID, true
	case model.DynamicView:
		if v.ElementID == "" {
			return "", true
		}
		el, ok := table.Resolve(v.ElementID, resolve.Scope{}, opts)
		if !ok {
			return fail(v.ElementID, "scope element")
		}
		v.ElementID = el.ID
		return el.ID, true
	case model.DeploymentView:
		env, ok := table.Resolve(v.EnvironmentID, resolve.Scope{}, opts)
		if !ok || env.Kind != model.DeploymentEnvironment {
			return fail(v.EnvironmentID, "deployment environment")
		}
		v.EnvironmentID = env.ID
		if v.SoftwareSystemID != "" {
			sys, ok := table.Resolve(v.SoftwareSystemID, resolve.Scope{}, opts)
			if !ok || sys.Kind != model.SoftwareSystem {
				return fail(v.SoftwareSystemID, "software system")
			}
			v.SoftwareSystemID = sys.ID
		}
		return env.ID, true
	case model.ImageView:
		if v.ElementID == "" {
			return "", true
		}
		el, ok := table.Resolve(v.ElementID, resolve.Scope{}, opts)
		if !ok {
			return fail(v.ElementID, "subject element")
		}
		v.ElementID = el.ID
		return "", true
	default: // landscape, custom
		return "", true
	}
}

// candidates returns the elements a view kind considers for membership,
// before tag rules.
func candidates(v *model.View, ws *model.Workspace, table *resolve.Table, rootID string) []model.Element {
	staticKinds := func(el model.Element) bool {
		switch el.Kind {
		case model.Person, model.SoftwareSystem:
			return true
		default:
			return false
		}
	}

	all := ws.Model.AllElements()
	var out []model.Element
	switch v.Kind {
	case model.SystemLandscapeView, model.SystemContextView:
		for _, el := range all {
			if staticKinds(el) {
				out = append(out, el)
			}
		}
	case model.ContainerView:
		for _, el := range all {
			if staticKinds(el) || (el.Kind == model.Container && isDescendant(el, rootID, table)) {
				out = append(out, el)
			}
		}
	case model.ComponentView:
		for _, el := range all {
			if staticKinds(el) || el.Kind == model.Container ||
				(el.Kind == model.Component && isDescendant(el, rootID, table)) {
				out = append(out, el)
			}
		}
	case model.DynamicView:
		for _, el := range all {
			switch el.Kind {
			case model.Person, model.SoftwareSystem, model.Container, model.Component:
				out = append(out, el)
			}
		}
	case model.DeploymentView:
		for _, el := range all {
			switch el.Kind {
			case model.DeploymentNode, model.InfrastructureNode, model.ContainerInstance:
				if !isDescendant(el, rootID, table) {
					continue
				}
				if el.Kind == model.ContainerInstance && v.SoftwareSystemID != "" &&
					!instanceOfSystem(el, v.SoftwareSystemID, table) {
					continue
				}
				out = append(out, el)
			}
		}
	}
	return out
}

// includeByTags applies the include/exclude expressions. An exclude match
// always wins; the wildcard short-circuits the include side only.
func includeByTags(el model.Element, include, exclude []string) bool {
	if el.HasAnyTag(exclude) {
		return false
	}
	if len(include) == 0 {
		return true
	}
	for _, t := range include {
		if t == Wildcard {
			return true
		}
	}
	return el.HasAnyTag(include)
}

// memberRelationships keeps the relationships with both endpoints in the view.
func memberRelationships(rels []model.Relationship, members map[string]bool) []string {
	var out []string
	for _, rel := range rels {
		if members[rel.SourceID] && members[rel.DestinationID] {
			out = append(out, rel.ID)
		}
	}
	return out
}

// resolveAnimations rewrites each animation step's raw references to element
// IDs, dropping references that do not resolve.
func resolveAnimations(v *model.View, table *resolve.Table, sink *diag.Sink) [][]string {
	var steps [][]string
	for _, step := range v.AnimationSteps {
		var ids []string
		for _, ref := range step {
			el, ok := table.Resolve(ref, resolve.Scope{}, resolve.Options{SearchByName: true})
			if !ok {
				sink.Errorf(nil, "unresolved reference %q in animation step of view %q", ref, v.Key)
				continue
			}
			ids = append(ids, el.ID)
		}
		if len(ids) > 0 {
			steps = append(steps, ids)
		}
	}
	return steps
}

// populateFiltered derives a filtered view's membership from its base view.
func populateFiltered(v *model.View, ws *model.Workspace, table *resolve.Table, populated map[string]model.View, sink *diag.Sink) bool {
	base, ok := populated[v.BaseViewKey]
	if !ok {
		sink.Errorf(nil, "filtered view %q references unknown base view %q; the view is dropped", v.Key, v.BaseViewKey)
		return false
	}

	members := map[string]bool{}
	var order []string
	for _, id := range base.ElementIDs {
		el, found := table.Lookup(id)
		if !found {
			continue
		}
		matches := el.HasAnyTag(v.FilterTags)
		if (v.Mode == model.FilterInclude) == matches {
			members[id] = true
			order = append(order, id)
		}
	}

	v.ElementIDs = order
	v.RelationshipIDs = memberRelationships(ws.Model.AllRelationships(), members)
	return true
}

// isDescendant reports whether el sits (transitively) under ancestorID.
func isDescendant(el model.Element, ancestorID string, table *resolve.Table) bool {
	id := el.ParentID
	for id != "" {
		if id == ancestorID {
			return true
		}
		parent, ok := table.Lookup(id)
		if !ok {
			return false
		}
		id = parent.ParentID
	}
	return false
}

// instanceOfSystem reports whether a container instance deploys a container
// belonging to the given software system.
func instanceOfSystem(instance model.Element, systemID string, table *resolve.Table) bool {
	container, ok := table.Lookup(instance.ContainerID)
	if !ok {
		return false
	}
	return isDescendant(container, systemID, table)
}

func rangePtr(r hcl.Range) *hcl.Range {
	return &r
}
