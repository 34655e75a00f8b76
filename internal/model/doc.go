/*
Package model defines the format-agnostic domain records produced by a build:
the Workspace aggregate, the hierarchical element Model, diagram Views and
style records.

Elements form a closed set of kinds (person, software system, container,
component, deployment environment, deployment node, infrastructure node,
container instance, group) expressed as one Element struct with a Kind
discriminator rather than a subtype hierarchy. Ownership is a uniform value
tree: an Element owns its Children by value, and the Model owns the root
elements. Cross-references (ParentID, relationship endpoints, view scopes)
are plain ID strings that must be resolved through the builder's symbol
table; they never imply ownership.

Records in this package are treated as immutable values. "Mutation" during a
build means constructing a replacement value and writing it back into every
owning collection, which is the builder's replace-and-propagate operation.
The helpers here (WithRelationship, WithChild) return such replacements and
never alias the slices of the value they were derived from.
*/
package model
