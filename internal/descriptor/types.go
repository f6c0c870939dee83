package descriptor

import (
	"strings"

	"reflex-remapper/internal/common"
)

// Kind is the kind of a descriptor type.
type Kind int

const (
	KindVoid Kind = iota
	KindPrimitive
	KindClass
	KindArray
	KindTypeVariable
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindPrimitive:
		return "primitive"
	case KindClass:
		return "class"
	case KindArray:
		return "array"
	case KindTypeVariable:
		return "type_variable"
	default:
		return common.UnknownStr
	}
}

var primitiveNames = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// Type is one type appearing in a descriptor.
type Type struct {
	Kind      Kind
	Primitive byte   // descriptor letter, for KindPrimitive
	Name      string // dotted class name (inner classes joined by '$'), or the type variable name
	Elem      *Type  // element type, for KindArray
}

// String renders the type in source form, e.g. "int", "com.example.Foo[]".
func (t Type) String() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindPrimitive:
		return primitiveNames[t.Primitive]
	case KindClass, KindTypeVariable:
		return t.Name
	case KindArray:
		if t.Elem == nil {
			return "[]"
		}

		return t.Elem.String() + "[]"
	default:
		return common.UnknownStr
	}
}

// ClassName returns the class this type contributes to overload matching.
func (t Type) ClassName() (string, bool) {
	switch t.Kind {
	case KindClass:
		return t.Name, true
	case KindArray:
		if t.Elem == nil {
			return "", false
		}

		return t.Elem.ClassName()
	default:
		return "", false
	}
}

// Method is a parsed method descriptor or signature.
type Method struct {
	TypeParams []string
	Params     []Type
	Return     Type
	Throws     []Type
}

// ParameterClassNames returns, in declaration order, the class names the
// parameters contribute to overload matching.
func (m *Method) ParameterClassNames() []string {
	var names []string

	for _, p := range m.Params {
		if name, ok := p.ClassName(); ok {
			names = append(names, name)
		}
	}

	return names
}

// String renders the method in source form, e.g. "void (int, com.example.Foo)".
func (m *Method) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}

	return m.Return.String() + " (" + strings.Join(params, ", ") + ")"
}
