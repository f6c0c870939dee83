package match

import (
	"fmt"

	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/common"
)

// TypeCompatibility represents how an argument relates to a parameter class.
type TypeCompatibility int

const (
	// TypeIncompatible means the argument cannot be passed for the parameter.
	TypeIncompatible TypeCompatibility = iota
	// TypeNull means the argument is absent, which any reference parameter accepts.
	TypeNull
	// TypeAssignable means the argument class is a subtype of the parameter class.
	TypeAssignable
	// TypeIdentical means the argument class is the parameter class.
	TypeIdentical
)

const (
	VerdictIdentical    = "identical"
	VerdictAssignable   = "assignable"
	VerdictNull         = "null"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeNull:
		return VerdictNull
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// Score returns a numeric score for sorting (higher is better).
func (c TypeCompatibility) Score() int {
	return int(c)
}

// ScoreArgument determines whether arg can be passed where param is expected.
// A nil arg stands for an absent value and is accepted by any parameter.
func ScoreArgument(param, arg classpath.Class) TypeCompatibility {
	switch {
	case arg == nil:
		return TypeNull
	case param == nil:
		return TypeIncompatible
	case param.Name() == arg.Name():
		return TypeIdentical
	case param.IsAssignableFrom(arg):
		return TypeAssignable
	default:
		return TypeIncompatible
	}
}

// ArgumentsResult contains detailed information about an argument list check.
type ArgumentsResult struct {
	Compatible bool
	Reason     string              // Human-readable explanation
	Verdicts   []TypeCompatibility // One per position when arities agree
}

// ScoreArguments checks args position by position against params.
// Arities must agree; every position must be at least TypeNull.
func ScoreArguments(params, args []classpath.Class) ArgumentsResult {
	if len(params) != len(args) {
		return ArgumentsResult{
			Reason: fmt.Sprintf("expected %d arguments, got %d", len(params), len(args)),
		}
	}

	res := ArgumentsResult{
		Compatible: true,
		Reason:     "all arguments are compatible",
		Verdicts:   make([]TypeCompatibility, len(params)),
	}

	for i := range params {
		v := ScoreArgument(params[i], args[i])
		res.Verdicts[i] = v

		if v == TypeIncompatible && res.Compatible {
			res.Compatible = false
			res.Reason = fmt.Sprintf("argument %d: %s is not assignable to %s",
				i, classpath.NameOf(args[i]), classpath.NameOf(params[i]))
		}
	}

	return res
}

// ArgumentsCompatible reports whether args can be passed to a method
// whose parameter classes are params.
func ArgumentsCompatible(params, args []classpath.Class) bool {
	if len(params) != len(args) {
		return false
	}

	for i := range params {
		if ScoreArgument(params[i], args[i]) == TypeIncompatible {
			return false
		}
	}

	return true
}
