// Package match provides argument compatibility checks for method overload
// selection and fuzzy member-name suggestions for resolution diagnostics.
//
// Key functions:
//   - ScoreArguments: checks argument classes against descriptor parameters
//   - NormalizeMember: normalizes member names for fuzzy matching
//   - Similarity: Levenshtein and Jaro-Winkler name similarity
//   - Suggest: ranks known member names close to an unresolved one
package match
