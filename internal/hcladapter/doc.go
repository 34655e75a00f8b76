/*
Package hcladapter is the concrete front end: it parses architecture
description files written in HCL and translates the raw syntax into the
typed AST the semantic builder consumes.

The adapter is deliberately shallow. It evaluates attribute expressions with
no evaluation context (literals only), attaches source ranges to every node,
and forwards any native HCL diagnostics into the build's diagnostics sink.
It performs no reference resolution and no placement validation; a container
declared inside a person parses fine here and is rejected by the builder,
which owns those rules.
*/
package hcladapter
