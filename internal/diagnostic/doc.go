// Package diagnostic provides structured warnings, errors, and
// "why this resolved the way it did" notes for mapping files and
// member resolution.
//
// Key capabilities:
//   - Missing or malformed mapping entries
//   - Class dictionary collisions
//   - Near-miss suggestions when a member falls back to its own name
package diagnostic
