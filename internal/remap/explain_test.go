package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflex-remapper/internal/classpath"
)

func TestExplainField(t *testing.T) {
	r, _, _ := newTestResolver(t)

	res := r.ExplainField(cbEntity, "world")
	assert.Equal(t, Resolution{
		Name:         "a",
		Outcome:      OutcomeResolved,
		Intermediate: cbEntity,
		Canonical:    nmEntity,
		Bridge:       "level",
	}, res)
	assert.False(t, res.Outcome.Fallback())
	assert.Equal(t, "a [resolved] class=org.bukkit.craftbukkit.Entity->net.minecraft.world.Entity bridge=level", res.String())

	// explain never fills the cache
	assert.Zero(t, r.Stats().Fields.Entries)
}

func TestExplainField_Fallbacks(t *testing.T) {
	r, _, _ := newTestResolver(t)

	res := r.ExplainField("com.unknown.Thing", "x")
	assert.Equal(t, OutcomeUnmappedClass, res.Outcome)
	assert.Equal(t, "x", res.Name)
	assert.True(t, res.Outcome.Fallback())
	assert.Empty(t, res.Suggestions)

	res = r.ExplainField(cbEntity, "wrld")
	assert.Equal(t, OutcomeUnmappedMember, res.Outcome)
	assert.Equal(t, "wrld", res.Name)
	assert.Empty(t, res.Bridge)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "world", res.Suggestions[0])
	assert.Contains(t, res.String(), "(did you mean world")

	res = r.ExplainField(cbEntity, "orphan")
	assert.Equal(t, OutcomeNoRuntimeName, res.Outcome)
	assert.Equal(t, "orphan", res.Name)
	assert.Equal(t, "orphanCanonical", res.Bridge)
}

func TestExplainMethod(t *testing.T) {
	r, _, h := newTestResolver(t)

	res, err := r.ExplainMethod(cbEntity, "m", args(t, h, "com.example.Bar"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, "f2", res.Name)
	assert.Equal(t, "mBar", res.Bridge)

	res, err = r.ExplainMethod(cbEntity, "m", []classpath.Class{nil, nil})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnmappedMember, res.Outcome)

	res, err = r.ExplainMethod(cbEntity, "broken", nil)
	require.Error(t, err)
	assert.Equal(t, OutcomeDescriptorError, res.Outcome)
	assert.Equal(t, "broken", res.Name)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "resolved", OutcomeResolved.String())
	assert.Equal(t, "unmapped_class", OutcomeUnmappedClass.String())
	assert.Equal(t, "unmapped_member", OutcomeUnmappedMember.String())
	assert.Equal(t, "no_runtime_name", OutcomeNoRuntimeName.String())
	assert.Equal(t, "descriptor_error", OutcomeDescriptorError.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
	assert.False(t, OutcomeDescriptorError.Fallback())
}
