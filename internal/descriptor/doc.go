// Package descriptor parses JVM method descriptors and generic method
// signatures, and turns their parameter lists into runtime classes for
// overload matching.
//
// Grammar accepted by Parse:
//
//	MethodSignature  = [TypeParameters] "(" {Type} ")" Result {"^" ReferenceType}
//	TypeParameters   = "<" TypeParameter {TypeParameter} ">"
//	TypeParameter    = Ident ":" [ReferenceType] {":" ReferenceType}
//	Result           = "V" | Type
//	Type             = "B" | "C" | "D" | "F" | "I" | "J" | "S" | "Z" | ReferenceType
//	ReferenceType    = ClassType | "[" Type | "T" Ident ";"
//	ClassType        = "L" Path [TypeArguments] {"." Ident [TypeArguments]} ";"
//	TypeArguments    = "<" TypeArgument {TypeArgument} ">"
//	TypeArgument     = "*" | ["+" | "-"] ReferenceType
//
// Only class types contribute to overload matching: a parameter yields its
// class, or the innermost element class for arrays of objects. Primitives,
// primitive arrays and type variables yield nothing, and type arguments are
// ignored.
package descriptor
