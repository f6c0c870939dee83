package remap

//go:generate go tool stringer -type=Outcome -linecomment -output=outcome_string.go

// Outcome tells how a resolution ended.
type Outcome int

const (
	// OutcomeResolved means a runtime name was found.
	OutcomeResolved Outcome = iota // resolved
	// OutcomeUnmappedClass means the owner is in neither class scheme.
	OutcomeUnmappedClass // unmapped_class
	// OutcomeUnmappedMember means no intermediate entry matched, so there is
	// no bridge.
	OutcomeUnmappedMember // unmapped_member
	// OutcomeNoRuntimeName means the bridge has no runtime entry.
	OutcomeNoRuntimeName // no_runtime_name
	// OutcomeDescriptorError means a candidate's descriptor could not be
	// resolved to parameter classes.
	OutcomeDescriptorError // descriptor_error
)

// Fallback reports whether the symbol was returned unchanged for lack of a
// mapping.
func (o Outcome) Fallback() bool {
	return o == OutcomeUnmappedClass || o == OutcomeUnmappedMember || o == OutcomeNoRuntimeName
}
