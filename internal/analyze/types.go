package analyze

import (
	"go/types"

	"reflex-remapper/internal/common"
)

// TypeKind represents the kind of an indexed type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindAlias              // named type wrapping a non-struct type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// ClassName returns the dotted class name of a type declared in pkgPath,
// e.g. "example.com/world" and "Entity" give "example.com.world.Entity".
func ClassName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return common.NormalizeClassName(pkgPath) + "." + name
}

// TypeClass is a go/types type seen as a class. Values of a struct class
// are taken to be passed by pointer, the way Go code holds object
// references, so an interface class accepts T when either T or *T
// implements it.
type TypeClass struct {
	name string
	kind TypeKind
	typ  types.Type
}

// NewTypeClass wraps t under the given class name.
func NewTypeClass(name string, t types.Type) *TypeClass {
	return &TypeClass{name: name, kind: kindOf(t), typ: t}
}

// Name implements classpath.Class.
func (c *TypeClass) Name() string {
	return c.name
}

// Kind returns the kind of the underlying type.
func (c *TypeClass) Kind() TypeKind {
	return c.kind
}

// Type returns the go/types type.
func (c *TypeClass) Type() types.Type {
	return c.typ
}

// IsAssignableFrom implements classpath.Class. Only other TypeClass values
// are considered.
func (c *TypeClass) IsAssignableFrom(other Class) bool {
	o, ok := other.(*TypeClass)
	if !ok || o == nil {
		return false
	}

	if types.Identical(o.typ, c.typ) || types.AssignableTo(o.typ, c.typ) {
		return true
	}

	if _, isPtr := o.typ.(*types.Pointer); isPtr {
		return false
	}

	return types.AssignableTo(types.NewPointer(o.typ), c.typ)
}

func kindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Basic:
		if _, named := t.(*types.Named); named {
			return TypeKindAlias
		}

		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	default:
		return TypeKindAlias
	}
}
