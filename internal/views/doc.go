/*
Package views turns view declarations into resolved diagram definitions once
the model is stable.

Each view's scoping reference is resolved through the symbol table; a scope
that does not resolve is a hard error for that view (the view is dropped,
the build continues). Membership is then computed from the include/exclude
tag expressions: `*` includes every candidate, an element is included when
the include list is empty or matches one of its tags, and an exclude match
always wins. The scoped root element is force-included regardless of its
tags. Context, container and component views additionally pull in every
element with a relationship to or from the scoped element. A relationship
joins a view when both of its endpoints are members.

The populator also injects the default Element, Person, Software System and
Relationship style records, skipping any tag a style already exists for.
*/
package views
