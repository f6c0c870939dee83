package remap

import (
	"fmt"
	"strings"

	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/diagnostic"
	"reflex-remapper/internal/mapping"
	"reflex-remapper/internal/match"
)

// Resolution describes one resolution step by step.
type Resolution struct {
	// Name is the resolved name, the symbol itself on fallback.
	Name    string
	Outcome Outcome
	// Intermediate and Canonical are the owner in both class schemes;
	// Canonical is empty for an unmapped class.
	Intermediate string
	Canonical    string
	// Bridge is the canonical member name, empty when stage one missed.
	Bridge string
	// Suggestions are known member names close to the symbol, filled on
	// member fallbacks.
	Suggestions []string
}

// String renders the resolution on one line.
func (r Resolution) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s [%s]", r.Name, r.Outcome)

	if r.Canonical != "" {
		fmt.Fprintf(&b, " class=%s->%s", r.Intermediate, r.Canonical)
	}

	if r.Bridge != "" {
		fmt.Fprintf(&b, " bridge=%s", r.Bridge)
	}

	b.WriteString(diagnostic.DidYouMean(r.Suggestions))

	return b.String()
}

// ExplainField resolves a field like ResolveField, bypassing the cache, and
// reports how the answer was reached.
func (r *Resolver) ExplainField(owner, name string) Resolution {
	res, _ := r.resolve(mapping.KindField, owner, name, nil)
	r.suggest(mapping.KindField, name, &res)

	return res
}

// ExplainMethod resolves a method like ResolveMethod, bypassing the cache,
// and reports how the answer was reached.
func (r *Resolver) ExplainMethod(owner, name string, args []classpath.Class) (Resolution, error) {
	res, err := r.resolve(mapping.KindMethod, owner, name, args)
	if err != nil {
		return res, err
	}

	r.suggest(mapping.KindMethod, name, &res)

	return res, nil
}

func (r *Resolver) suggest(kind mapping.Kind, name string, res *Resolution) {
	var known []string

	switch res.Outcome {
	case OutcomeUnmappedMember:
		for _, e := range r.table.Intermediate.Of(kind) {
			if e.Owner == res.Intermediate {
				known = append(known, e.Name, e.Canonical)
			}
		}
	case OutcomeNoRuntimeName:
		name = res.Bridge

		for _, e := range r.table.Runtime.Of(kind) {
			if e.Owner == res.Canonical {
				known = append(known, e.Canonical)
			}
		}
	default:
		return
	}

	res.Suggestions = match.Suggest(name, known, r.config.MaxSuggestions)
}
