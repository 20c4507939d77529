package fin

import "strings"

// Signature mangling, grounded line for line on fin_mod.c's
// fin_mod_*_get_signature helpers: "name(t1,t2)" for calls, optionally
// qualified as "Module.name(...)", and a fixed name per operator/unary
// kind. Type names here are plain strings rather than the Value Kind enum
// because a signature can reference a user struct type ("Point"), not just
// the five built-in value kinds.

func unaryOpName(op UnaryOp) string {
	switch op {
	case UnaryPos:
		return "__op_pos"
	case UnaryNeg:
		return "__op_neg"
	case UnaryNot:
		return "__op_not"
	case UnaryBNot:
		return "__op_bnot"
	case UnaryInc:
		return "__op_inc"
	case UnaryDec:
		return "__op_dec"
	default:
		return "__op_unknown"
	}
}

func binaryOpName(op BinaryOp) string {
	switch op {
	case BinaryAdd:
		return "__op_add"
	case BinarySub:
		return "__op_sub"
	case BinaryMul:
		return "__op_mul"
	case BinaryDiv:
		return "__op_div"
	case BinaryMod:
		return "__op_mod"
	case BinaryShl:
		return "__op_shl"
	case BinaryShr:
		return "__op_shr"
	case BinaryLs:
		return "__op_lt"
	case BinaryLeq:
		return "__op_leq"
	case BinaryGr:
		return "__op_gt"
	case BinaryGeq:
		return "__op_geq"
	case BinaryEq:
		return "__op_eq"
	case BinaryNeq:
		return "__op_neq"
	case BinaryBand:
		return "__op_band"
	case BinaryBor:
		return "__op_bor"
	case BinaryBxor:
		return "__op_bxor"
	case BinaryAnd:
		return "__op_and"
	case BinaryOr:
		return "__op_or"
	default:
		return "__op_unknown"
	}
}

func unarySignature(op UnaryOp, operandType string) string {
	return unaryOpName(op) + "(" + operandType + ")"
}

func binarySignature(op BinaryOp, lhs, rhs string) string {
	return binaryOpName(op) + "(" + lhs + "," + rhs + ")"
}

func invokeSignature(moduleQualifier, name string, argTypes []string) string {
	var b strings.Builder
	if moduleQualifier != "" {
		b.WriteString(moduleQualifier)
		b.WriteByte('.')
	}
	b.WriteString(name)
	b.WriteByte('(')
	for i, t := range argTypes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t)
	}
	b.WriteByte(')')
	return b.String()
}

func conversionSignature(to string, from string) string {
	return to + "(" + from + ")"
}
