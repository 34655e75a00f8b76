/*
Package ast defines the typed syntax tree the semantic builder consumes: one
node variant per DSL construct, each carrying the source range it was
declared at. Nodes are produced by a front end (the hcladapter package) and
are immutable once handed to the builder.

The tree is purely syntactic. References between constructs (relationship
endpoints, view scopes, container-instance targets) are raw strings exactly
as written; resolving them against the declared elements is the builder's
job, not the parser's.
*/
package ast
