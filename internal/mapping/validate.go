package mapping

import (
	"fmt"

	"reflex-remapper/internal/descriptor"
	"reflex-remapper/internal/diagnostic"
)

// Validate checks a mapping file structurally. It does not try to prove the
// tables consistent with each other; it only reports entries the resolver
// could never use and class pairs that collide.
func Validate(f *File, name string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", name, "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddWarning("unknown_version",
			fmt.Sprintf("schema version %q is not %q", f.Version, CurrentVersion), name, "")
	}

	validateClasses(res, name, f.Classes)

	validateMembers(res, name, "intermediate", &f.Intermediate)
	validateMembers(res, name, "runtime", &f.Runtime)

	return res
}

func validateClasses(res *diagnostic.Diagnostics, name string, classes ClassList) {
	seenIntermediate := map[string]struct{}{}
	seenCanonical := map[string]struct{}{}

	for i, pair := range classes {
		loc := fmt.Sprintf("%s: classes[%d]", name, i)

		if pair.Intermediate == "" || pair.Canonical == "" {
			res.AddError("incomplete_class_pair", "class pair needs both an intermediate and a canonical name",
				loc, pair.Intermediate+pair.Canonical)

			continue
		}

		if _, ok := seenIntermediate[pair.Intermediate]; ok {
			res.AddError("duplicate_intermediate_class",
				fmt.Sprintf("intermediate class %s is mapped more than once", pair.Intermediate), loc, pair.Intermediate)
		}

		// a canonical class reachable from two intermediate names cannot be
		// mapped back unambiguously
		if _, ok := seenCanonical[pair.Canonical]; ok {
			res.AddWarning("duplicate_canonical_class",
				fmt.Sprintf("canonical class %s is the target of more than one intermediate class", pair.Canonical),
				loc, pair.Canonical)
		}

		seenIntermediate[pair.Intermediate] = struct{}{}
		seenCanonical[pair.Canonical] = struct{}{}
	}
}

func validateMembers(res *diagnostic.Diagnostics, name, table string, m *Members) {
	for _, kind := range []Kind{KindField, KindMethod} {
		for i, e := range m.Of(kind) {
			loc := fmt.Sprintf("%s: %s.%ss[%d]", name, table, kind, i)
			validateEntry(res, loc, kind, &e)
		}
	}
}

func validateEntry(res *diagnostic.Diagnostics, loc string, kind Kind, e *Entry) {
	subject := e.Owner + "#" + e.Name

	if e.Owner == "" {
		res.AddError("missing_owner", "entry has no owner class", loc, subject)
	}

	if e.Name == "" {
		res.AddError("missing_name", "entry has no name", loc, subject)
	}

	if e.Canonical == "" {
		res.AddError("missing_canonical", "entry has no canonical name", loc, subject)
	}

	if kind != KindMethod {
		return
	}

	if e.Descriptor == "" {
		res.AddError("missing_descriptor", "method entry has no descriptor", loc, subject)
		return
	}

	if _, err := descriptor.Parse(e.Descriptor); err != nil {
		res.AddError("invalid_descriptor", err.Error(), loc, subject)
	}
}
