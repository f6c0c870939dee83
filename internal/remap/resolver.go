package remap

import (
	"github.com/sirupsen/logrus"

	"reflex-remapper/internal/cache"
	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/common"
	"reflex-remapper/internal/descriptor"
	"reflex-remapper/internal/mapping"
	"reflex-remapper/internal/match"
)

// Resolver performs member name resolution against one mapping table.
type Resolver struct {
	table       *mapping.Table
	descriptors *descriptor.Parser
	fields      *cache.Map[string]
	methods     *cache.Map[string]
	config      Config
	log         logrus.FieldLogger
}

// NewResolver creates a new Resolver. The table must be fully populated and
// is not copied; loader resolves the class names found in method descriptors.
func NewResolver(table *mapping.Table, loader classpath.Loader, config Config) *Resolver {
	if table == nil {
		table = mapping.NewTable()
	}

	if config.Logger == nil {
		config.Logger = discardLogger()
	}

	return &Resolver{
		table:       table,
		descriptors: descriptor.NewParser(loader, config.Shards),
		fields:      cache.New[string](config.Shards),
		methods:     cache.New[string](config.Shards),
		config:      config,
		log:         config.Logger,
	}
}

// Disambiguate tells which scheme className belongs to and returns its
// (intermediate, canonical) pair. A canonical name is tried first. ok is
// false when the name is in neither scheme; intermediate is then the
// normalized name and canonical is empty.
func (r *Resolver) Disambiguate(className string) (intermediate, canonical string, ok bool) {
	name := common.NormalizeClassName(className)

	if i, found := r.table.Classes.Intermediate(name); found {
		return i, name, true
	}

	if c, found := r.table.Classes.Canonical(name); found {
		return name, c, true
	}

	return name, "", false
}

// TranslateClassName returns the canonical name of an intermediate class,
// or key unchanged when it has none.
func (r *Resolver) TranslateClassName(key string) string {
	if c, ok := r.table.Classes.Canonical(common.NormalizeClassName(key)); ok {
		return c
	}

	return key
}

// ResolveField returns the runtime name of field name declared by owner,
// or name itself when no mapping applies. Never fails.
func (r *Resolver) ResolveField(owner, name string) string {
	// field lookups cannot fail
	v, _ := r.fields.GetOrCompute(fieldKey(owner, name), func() (string, error) {
		res, err := r.resolve(mapping.KindField, owner, name, nil)
		return res.Name, err
	})

	return v
}

// ResolveMethod returns the runtime name of method name declared by owner
// for a call with the given argument classes (nil for an absent value), or
// name itself when no mapping applies. The only error is a
// *descriptor.Error for a candidate entry whose descriptor is malformed or
// names a class the loader cannot find; such results are not cached.
func (r *Resolver) ResolveMethod(owner, name string, args []classpath.Class) (string, error) {
	return r.methods.GetOrCompute(methodKey(owner, name, args), func() (string, error) {
		res, err := r.resolve(mapping.KindMethod, owner, name, args)
		return res.Name, err
	})
}

// MustResolveMethod is like ResolveMethod but panics on a descriptor error.
func (r *Resolver) MustResolveMethod(owner, name string, args []classpath.Class) string {
	v, err := r.ResolveMethod(owner, name, args)
	if err != nil {
		panic(err)
	}

	return v
}

func fieldKey(owner, name string) string {
	return owner + "#" + name
}

func methodKey(owner, name string, args []classpath.Class) string {
	return owner + "#" + name + classpath.Signature(args)
}

// resolve runs the uncached two-stage lookup.
func (r *Resolver) resolve(kind mapping.Kind, owner, name string, args []classpath.Class) (Resolution, error) {
	res := Resolution{Name: name}

	intermediate, canonical, ok := r.Disambiguate(owner)
	res.Intermediate, res.Canonical = intermediate, canonical

	if !ok {
		res.Outcome = OutcomeUnmappedClass
		r.logFallback(kind, owner, name, res.Outcome)

		return res, nil
	}

	bridge, found, err := r.find(kind, r.table.Intermediate.Of(kind), args, func(e *mapping.Entry) bool {
		return e.Owner == intermediate && (e.Name == name || e.Canonical == name)
	})
	if err != nil {
		return r.descriptorFailure(kind, owner, name, err)
	}

	if !found {
		res.Outcome = OutcomeUnmappedMember
		r.logFallback(kind, owner, name, res.Outcome)

		return res, nil
	}

	res.Bridge = bridge.Canonical

	runtime, found, err := r.find(kind, r.table.Runtime.Of(kind), args, func(e *mapping.Entry) bool {
		return e.Owner == canonical && e.Canonical == res.Bridge
	})
	if err != nil {
		return r.descriptorFailure(kind, owner, name, err)
	}

	if !found {
		res.Outcome = OutcomeNoRuntimeName
		r.logFallback(kind, owner, name, res.Outcome)

		return res, nil
	}

	res.Name = runtime.Name
	res.Outcome = OutcomeResolved

	return res, nil
}

// find returns the first entry accepted by matches whose descriptor, for
// methods, takes args.
func (r *Resolver) find(
	kind mapping.Kind,
	entries []mapping.Entry,
	args []classpath.Class,
	matches func(*mapping.Entry) bool,
) (*mapping.Entry, bool, error) {
	for i := range entries {
		e := &entries[i]
		if !matches(e) {
			continue
		}

		if kind == mapping.KindField {
			return e, true, nil
		}

		params, err := r.descriptors.ParameterTypes(e.Descriptor)
		if err != nil {
			return nil, false, err
		}

		if match.ArgumentsCompatible(params, args) {
			return e, true, nil
		}
	}

	return nil, false, nil
}

func (r *Resolver) descriptorFailure(kind mapping.Kind, owner, name string, err error) (Resolution, error) {
	r.log.WithFields(logrus.Fields{
		"kind":   kind.String(),
		"owner":  owner,
		"member": name,
	}).WithError(err).Error("cannot resolve method descriptor")

	return Resolution{Name: name, Outcome: OutcomeDescriptorError}, err
}

func (r *Resolver) logFallback(kind mapping.Kind, owner, name string, outcome Outcome) {
	r.log.WithFields(logrus.Fields{
		"kind":    kind.String(),
		"owner":   owner,
		"member":  name,
		"outcome": outcome.String(),
	}).Debug("no mapping, using symbol as is")
}
