package classpath

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntity struct{ ID int }

type testNamed interface{ EntityName() string }

func (*testEntity) EntityName() string { return "entity" }

func TestReflectName(t *testing.T) {
	assert.Equal(t, "reflex-remapper.internal.classpath.testEntity", ReflectName(reflect.TypeFor[testEntity]()))
	assert.Equal(t, "reflex-remapper.internal.classpath.testEntity", ReflectName(reflect.TypeFor[*testEntity]()))
	assert.Equal(t, "string", ReflectName(reflect.TypeFor[string]()))
	assert.Equal(t, "[]int", ReflectName(reflect.TypeFor[[]int]()))
}

func TestReflectClass_IsAssignableFrom(t *testing.T) {
	entity := TypeFor[testEntity]()
	named := TypeFor[testNamed]()
	stringer := TypeFor[fmt.Stringer]()

	assert.True(t, entity.IsAssignableFrom(TypeOf(testEntity{})))
	assert.True(t, entity.IsAssignableFrom(TypeOf(&testEntity{})), "pointers are references to T")
	assert.True(t, named.IsAssignableFrom(TypeOf(&testEntity{})))
	assert.True(t, named.IsAssignableFrom(TypeOf(testEntity{})), "T and *T are one class")
	assert.False(t, stringer.IsAssignableFrom(TypeOf(&testEntity{})))
	assert.False(t, entity.IsAssignableFrom(NewHierarchy("").Root()))
}

func TestReflectClass_SameNameSameAnswer(t *testing.T) {
	value, pointer := TypeOf(testEntity{}), TypeOf(&testEntity{})
	require.Equal(t, value.Name(), pointer.Name())

	targets := []Class{
		TypeFor[testEntity](),
		TypeFor[*testEntity](),
		TypeFor[testNamed](),
		TypeFor[fmt.Stringer](),
		TypeFor[any](),
	}

	for _, target := range targets {
		assert.Equal(t, target.IsAssignableFrom(value), target.IsAssignableFrom(pointer), target.Name())
	}

	// unnamed types keep distinct names and are not widened
	slice, slicePtr := TypeOf([]int{}), TypeOf(&[]int{})
	assert.NotEqual(t, slice.Name(), slicePtr.Name())
	assert.False(t, TypeFor[[]int]().IsAssignableFrom(slicePtr))
}

func TestTypesOf(t *testing.T) {
	classes := TypesOf(&testEntity{}, nil, "x")
	require.Len(t, classes, 3)
	assert.Equal(t, "reflex-remapper.internal.classpath.testEntity", classes[0].Name())
	assert.Nil(t, classes[1])
	assert.Equal(t, "string", classes[2].Name())
	assert.Nil(t, TypeOf(nil))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	name := r.Register(reflect.TypeFor[testEntity]())
	r.RegisterAs("net/minecraft/world/Entity", reflect.TypeFor[testEntity]())

	c, err := r.Load(name)
	require.NoError(t, err)
	assert.True(t, c.IsAssignableFrom(TypeOf(&testEntity{})))

	c, err = r.Load("net.minecraft.world.Entity")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[testEntity](), c.(ReflectClass).Type())

	_, err = r.Load("net.minecraft.world.Missing")
	assert.True(t, errors.Is(err, ErrClassNotFound))
}
