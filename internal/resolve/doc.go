/*
Package resolve owns identifier semantics: the symbol table mapping element
IDs, names and aliases to elements, and the Resolve operation that turns a
raw DSL reference into an element.

A reference resolves through a fixed strategy order: the context keywords
`this` and `parent`, exact ID (or alias) match, name lookup when requested
(registered name, then a case-sensitive scan, then a case-insensitive scan),
and finally dot-separated composite paths whose first segment resolves like
any other reference and whose remaining segments match child names.

Context for the keywords is an explicit immutable Scope value passed by the
caller, not a mutable current-context field. Each recursive traversal level
derives a new Scope and passes it down, so sibling subtrees can never
observe each other's context.

Resolution failures are reported to the diagnostics sink (when the caller
supplied a subject range) and returned as absence. The table never raises
for a bad reference; callers decide whether absence is fatal for their
construct.
*/
package resolve
