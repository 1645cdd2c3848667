// Package conceptnet provides the semantic relation lookup: given a word,
// it returns the set of related words with relation labels and directions.
// Two backends implement the lookup, a local SQLite database built from a
// ConceptNet assertions dump and a client for the public HTTP API.
package conceptnet

import "context"

// Direction records which side of a relation edge the queried word sits on.
type Direction int

const (
	// Forward means the queried word is the subject of the relation
	// (e.g. cat -RelatedTo-> pet).
	Forward Direction = iota
	// Backward means the queried word is the object
	// (e.g. kitten -IsA-> cat, queried with "cat").
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Edge is a single relation touching the queried word.
type Edge struct {
	// Word is the other end of the edge, lowercase.
	Word string
	// Relation is the open, string-valued relation label, e.g. "Antonym".
	Relation string
	Direction Direction
	Weight    float64
}

// Lookup resolves relation edges for a word. Implementations return an
// empty slice, never an error, for words with no known relations.
type Lookup interface {
	Related(ctx context.Context, word string) ([]Edge, error)
}
