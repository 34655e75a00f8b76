/*
Package builder performs the semantic analysis of a parsed architecture
description: it walks the AST and produces the validated, cross-referenced
element tree of the model.

The build is a two-pass process:

 1. Registration: a single depth-first traversal creates an element for
    every element node via the factory, registers it in the symbol table and
    inserts it into the ownership tree. Relationship nodes are never wired
    during this pass; each one is appended to a pending queue together with
    the context it was declared in, because forward references are legal and
    the `this`/`parent` keywords are only meaningful at declaration time.

 2. Linking: the pending queue is drained in declaration order. Each
    relationship's source is resolved first (names allowed), the destination
    is then resolved relative to the source, and the finished relationship
    is appended to the source element. Because elements are immutable
    values, the append is a replace-and-propagate: a new version of the
    source and of every ancestor up to the root collection is produced, and
    the symbol table is re-registered with each updated version.

After the queue is drained a validation scan confirms that no relationship
endpoint and no parent reference dangles; violations are reported to the
diagnostics sink, never raised. The only faults that abort a build are
internal invariant violations, which panic with an "internal error:" prefix
because they indicate a defect in the builder itself.
*/
package builder
