package model

// Relationship is a directed link between two elements. It is stored inside
// its source element's relationship list; SourceID and DestinationID are weak
// references resolved through the symbol table.
type Relationship struct {
	ID            string
	SourceID      string
	DestinationID string
	Description   string
	Technology    string
	Tags          []string
	Properties    map[string]string
}

// ModeledRelationship pairs a relationship with its resolved endpoints so
// consumers that already hold the finished model get O(1) access without
// re-resolving.
type ModeledRelationship struct {
	Relationship
	Source      Element
	Destination Element
}
