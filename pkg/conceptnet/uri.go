package conceptnet

import "strings"

// ExtractWord pulls the surface form out of a concept URI:
// "/c/en/cat/n" -> "cat", "/c/en/hot_dog" -> "hot dog".
// Returns "" for URIs that do not carry a word.
func ExtractWord(uri string) string {
	parts := strings.Split(uri, "/")
	if len(parts) < 4 {
		return ""
	}
	return strings.ReplaceAll(parts[3], "_", " ")
}

// ExtractRelation pulls the relation name out of a relation URI:
// "/r/RelatedTo" -> "RelatedTo".
func ExtractRelation(uri string) string {
	parts := strings.Split(uri, "/")
	return parts[len(parts)-1]
}

// IsEnglish reports whether a concept URI belongs to the English graph.
func IsEnglish(uri string) bool {
	return strings.HasPrefix(uri, "/c/en/")
}

// NormalizeConcept turns a user-supplied word or phrase into the form
// ConceptNet keys on: lowercase with underscores for spaces.
func NormalizeConcept(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}
