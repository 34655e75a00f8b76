package builder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/archgridgo/internal/ast"
	"github.com/vk/archgridgo/internal/ctxlog"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/model"
	"github.com/vk/archgridgo/internal/resolve"
)

// RelationshipTag is carried by every relationship.
const RelationshipTag = "Relationship"

// pendingRelationship is one queued relationship declaration. The context ID
// is captured at declaration time because `this`/`parent` are only
// meaningful there, never re-derived during the linking pass.
type pendingRelationship struct {
	node      *ast.Relationship
	sourceRef string
	contextID string
}

// pendingInstance is a container instance whose container reference awaits
// the linking pass (the container may be declared later in the source).
type pendingInstance struct {
	elementID string
	ref       string
	subject   hcl.Range
}

// Builder is the single-shot model builder. It owns the symbol table and the
// tree arena for exactly one build and must not be reused.
type Builder struct {
	sink      *diag.Sink
	table     *resolve.Table
	tree      *tree
	pending   []pendingRelationship
	instances []pendingInstance
}

// Result is the finished element model plus the symbol table, which the view
// populator reuses for scope resolution.
type Result struct {
	Model model.Model
	Table *resolve.Table
}

// New returns a builder reporting to sink.
func New(sink *diag.Sink) *Builder {
	return &Builder{
		sink:  sink,
		table: resolve.NewTable(sink),
		tree:  newTree(),
	}
}

// BuildModel runs both passes over the model AST and the post-link
// validation scan. It always returns a usable result; problems are recorded
// in the sink.
func (b *Builder) BuildModel(ctx context.Context, m *ast.Model) Result {
	logger := ctxlog.FromContext(ctx)
	if m != nil {
		logger.Debug("Build: starting registration pass.")
		for _, node := range m.Nodes {
			b.registerNode(ctx, node, resolve.Scope{}, "")
		}
		logger.Debug("Build: registration pass complete.",
			"elements", len(b.table.IDs()), "pending_relationships", len(b.pending))

		logger.Debug("Build: starting linking pass.")
		b.linkInstances(ctx)
		b.linkRelationships(ctx)
		logger.Debug("Build: linking pass complete.")

		b.validate(ctx)
	}
	return Result{Model: b.tree.m, Table: b.table}
}

// registerNode handles one AST node of the registration pass. scope is the
// immutable resolution context of the enclosing element; parentID is the
// structural parent for the node's children.
func (b *Builder) registerNode(ctx context.Context, node ast.Node, scope resolve.Scope, parentID string) {
	switch n := node.(type) {
	case *ast.Person:
		b.registerElement(ctx, NewPerson(n, parentID), n.Children, "", n.DefRange)
	case *ast.SoftwareSystem:
		b.registerElement(ctx, NewSoftwareSystem(n, parentID), n.Children, "", n.DefRange)
	case *ast.Container:
		b.registerElement(ctx, NewContainer(n, parentID), n.Children, model.SoftwareSystem.String(), n.DefRange)
	case *ast.Component:
		b.registerElement(ctx, NewComponent(n, parentID), n.Children, model.Container.String(), n.DefRange)
	case *ast.Group:
		b.registerElement(ctx, NewGroup(n, parentID), n.Children, "", n.DefRange)
	case *ast.DeploymentEnvironment:
		b.registerElement(ctx, NewDeploymentEnvironment(n, parentID), n.Children, "", n.DefRange)
	case *ast.DeploymentNode:
		b.registerElement(ctx, NewDeploymentNode(n, parentID), n.Children, model.DeploymentEnvironment.String(), n.DefRange)
	case *ast.InfrastructureNode:
		b.registerElement(ctx, NewInfrastructureNode(n, parentID), n.Children, model.DeploymentNode.String(), n.DefRange)
	case *ast.ContainerInstance:
		el := NewContainerInstance(n, parentID)
		if b.registerElement(ctx, el, n.Children, model.DeploymentNode.String(), n.DefRange) {
			b.instances = append(b.instances, pendingInstance{elementID: el.ID, ref: n.ContainerRef, subject: n.DefRange})
		}
	case *ast.Relationship:
		sourceRef := n.Source
		if sourceRef == "" {
			if scope.CurrentID == "" {
				b.sink.Errorf(rangePtr(n.DefRange), "relationship outside an element must declare a source")
				return
			}
			sourceRef = resolve.KeywordThis
		}
		b.pending = append(b.pending, pendingRelationship{node: n, sourceRef: sourceRef, contextID: scope.CurrentID})
	case *ast.Alias:
		b.table.RegisterAlias(n.Name, n.Target)
	default:
		panic(fmt.Sprintf("internal error: unexpected model node %T", node))
	}
}

// registerElement checks placement, registers the element, inserts it into
// the tree and recurses into its children with a fresh scope. It reports and
// skips the whole subtree on a placement violation. The return value tells
// the caller whether the element was accepted.
func (b *Builder) registerElement(ctx context.Context, el model.Element, children []ast.Node, requiredOwner string, defRange hcl.Range) bool {
	if !b.placementOK(el) {
		where := "at the top level of the model"
		if requiredOwner != "" {
			where = fmt.Sprintf("inside a %s", lowerKind(requiredOwner))
		}
		b.sink.Errorf(rangePtr(defRange), "%s %q must be declared %s", lowerKind(el.Kind.String()), el.ID, where)
		return false
	}
	if _, dup := b.table.Lookup(el.ID); dup {
		b.sink.Warnf(rangePtr(defRange), "element %q is declared more than once; the later declaration wins", el.ID)
		if b.replaceable(el) {
			if removed, updated, ok := b.tree.remove(el.ID); ok {
				for _, ancestor := range updated {
					b.table.Register(ancestor)
				}
				// The replaced subtree's own children are gone from the
				// model unless the new declaration re-declares them.
				b.dropDescendants(removed)
			}
		}
	}

	b.table.Register(el)
	for _, ancestor := range b.tree.insert(el.ParentID, el) {
		b.table.Register(ancestor)
	}

	childScope := resolve.Scope{}.Enter(el.ID)
	for _, child := range children {
		b.registerNode(ctx, child, childScope, el.ID)
	}
	return true
}

// replaceable reports whether a re-declared element's earlier copy can be
// detached from the tree. A declaration nested inside the very subtree it
// would replace cannot be, because removal would orphan the traversal; only
// the symbol table's last-wins rule applies there.
func (b *Builder) replaceable(el model.Element) bool {
	if el.ParentID == "" {
		return true
	}
	parentPath, ok := b.tree.paths[el.ParentID]
	if !ok {
		return true
	}
	oldPath := b.tree.paths[el.ID]
	if len(oldPath) > len(parentPath) {
		return true
	}
	for i := range oldPath {
		if parentPath[i] != oldPath[i] {
			return true
		}
	}
	return false
}

// dropDescendants unregisters the subtree below a removed element. The
// element's own ID is re-registered by the caller.
func (b *Builder) dropDescendants(el model.Element) {
	for _, c := range el.Children {
		b.table.Remove(c.ID)
		b.dropDescendants(c)
	}
}

// placementOK enforces the structural placement rules. Groups are
// transparent: the requirement applies to the nearest non-group ancestor.
func (b *Builder) placementOK(el model.Element) bool {
	owner, hasOwner := b.nearestOwner(el.ParentID)
	switch el.Kind {
	case model.Person, model.SoftwareSystem, model.DeploymentEnvironment:
		return !hasOwner
	case model.Container:
		return hasOwner && owner.Kind == model.SoftwareSystem
	case model.Component:
		return hasOwner && owner.Kind == model.Container
	case model.DeploymentNode:
		return hasOwner && (owner.Kind == model.DeploymentEnvironment || owner.Kind == model.DeploymentNode)
	case model.InfrastructureNode, model.ContainerInstance:
		return hasOwner && owner.Kind == model.DeploymentNode
	case model.Group:
		return true
	default:
		return true
	}
}

// nearestOwner walks the parent chain past any groups to the first element
// that imposes placement requirements.
func (b *Builder) nearestOwner(parentID string) (model.Element, bool) {
	for parentID != "" {
		parent, ok := b.table.Lookup(parentID)
		if !ok {
			return model.Element{}, false
		}
		if parent.Kind != model.Group {
			return parent, true
		}
		parentID = parent.ParentID
	}
	return model.Element{}, false
}

// linkInstances resolves each container instance's container reference and
// rewrites the instance with the resolved ID and the container's name.
func (b *Builder) linkInstances(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	for _, p := range b.instances {
		target, ok := b.table.Resolve(p.ref, resolve.Scope{}, resolve.Options{SearchByName: true, Subject: &p.subject})
		if !ok {
			continue // reported by the resolver; instance keeps its raw reference
		}
		if target.Kind != model.Container {
			b.sink.Errorf(&p.subject, "container instance %q references %q, which is a %s, not a container", p.elementID, p.ref, lowerKind(target.Kind.String()))
			continue
		}
		instance, ok := b.tree.lookup(p.elementID)
		if !ok {
			panic(fmt.Sprintf("internal error: container instance %q missing from tree after registration", p.elementID))
		}
		instance.ContainerID = target.ID
		instance.Name = target.Name
		b.replaceAndReregister(instance)
		logger.Debug("Build: container instance linked.", "instance", p.elementID, "container", target.ID)
	}
}

// linkRelationships drains the pending queue in declaration order.
func (b *Builder) linkRelationships(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	for _, p := range b.pending {
		subject := p.node.DefRange
		declScope := resolve.Scope{CurrentID: p.contextID}

		src, ok := b.table.Resolve(p.sourceRef, declScope, resolve.Options{SearchByName: true, Subject: &subject})
		if !ok {
			continue // reported; this relationship is dropped
		}

		// Destination references such as `parent` resolve relative to the
		// resolved source, not the declaration site.
		srcScope := declScope.Enter(src.ID)
		dst, ok := b.table.Resolve(p.node.Destination, srcScope, resolve.Options{SearchByName: true, Subject: &subject})
		if !ok {
			continue
		}

		rel := model.Relationship{
			ID:            uuid.NewString(),
			SourceID:      src.ID,
			DestinationID: dst.ID,
			Description:   p.node.Description,
			Technology:    p.node.Technology,
			Tags:          relationshipTags(p.node.Tags),
			Properties:    copyProperties(p.node.Properties),
		}

		b.replaceAndReregister(src.WithRelationship(rel))

		// The relationship must be observable immediately; anything else is
		// a builder defect.
		check, ok := b.table.Lookup(src.ID)
		if !ok || !hasRelationship(check, rel.ID) {
			panic(fmt.Sprintf("internal error: relationship %s not found on %q after insertion", rel.ID, src.ID))
		}
		logger.Debug("Build: relationship linked.", "source", src.ID, "destination", dst.ID)
	}
}

// replaceAndReregister propagates a new element version through the tree and
// re-registers it and every updated ancestor so subsequent resolutions see
// the latest state.
func (b *Builder) replaceAndReregister(el model.Element) {
	b.table.Register(el)
	for _, ancestor := range b.tree.replaceAndPropagate(el) {
		b.table.Register(ancestor)
	}
}

// validate runs the post-link scan: every relationship endpoint and every
// parent reference must still resolve. Violations are reported, the records
// stay in place.
func (b *Builder) validate(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	all := b.table.All()
	for _, id := range b.table.IDs() {
		el := all[id]
		if el.ParentID != "" {
			if _, ok := all[el.ParentID]; !ok {
				b.sink.Errorf(nil, "element %q has non-existent parent %q", el.ID, el.ParentID)
			}
		}
		for _, rel := range el.Relationships {
			if _, ok := all[rel.SourceID]; !ok {
				b.sink.Errorf(nil, "relationship %s has non-existent source %q", rel.ID, rel.SourceID)
			}
			if _, ok := all[rel.DestinationID]; !ok {
				b.sink.Errorf(nil, "relationship %s has non-existent destination %q", rel.ID, rel.DestinationID)
			}
		}
	}
	logger.Debug("Build: validation scan complete.")
}

func relationshipTags(declared []string) []string {
	tags := []string{RelationshipTag}
	for _, t := range declared {
		if t == "" || t == RelationshipTag {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

func hasRelationship(el model.Element, relID string) bool {
	for _, r := range el.Relationships {
		if r.ID == relID {
			return true
		}
	}
	return false
}

func rangePtr(r hcl.Range) *hcl.Range {
	return &r
}

// lowerKind renders a kind name for message text ("Software System" →
// "software system").
func lowerKind(kind string) string {
	out := []rune(kind)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}
