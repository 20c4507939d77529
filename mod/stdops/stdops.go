// Package stdops registers fin's primitive operator table: the
// __op_*/conversion signatures listed in Register for bool/int/float/string.
// It does not cover every signature the compiler can mangle: bool has only
// __op_and and __op_or, so `!b` or `b == c` on bools does not resolve, and
// float has no __op_pos/__op_inc/__op_dec. Grounded on fin_std.c's unqualified (empty
// module name) registration — every fin program needs this module
// registered before any arithmetic, comparison, or string-conversion
// expression will resolve.
package stdops

import (
	"math"
	"strconv"

	"github.com/naleksiev/fin"
)

func boolAnd(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Bool() && args[1].Bool())
}
func boolOr(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Bool() || args[1].Bool())
}

func intPos(ctx *fin.Context, args []fin.Value) fin.Value { return args[0] }
func intNeg(ctx *fin.Context, args []fin.Value) fin.Value { return fin.IntValue(-args[0].Int()) }
func intNot(ctx *fin.Context, args []fin.Value) fin.Value {
	if args[0].Int() == 0 {
		return fin.IntValue(1)
	}
	return fin.IntValue(0)
}
func intBNot(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(^args[0].Int())
}
func intInc(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() + 1)
}
func intDec(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() - 1)
}
func intAdd(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() + args[1].Int())
}
func intSub(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() - args[1].Int())
}
func intMul(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() * args[1].Int())
}
func intDiv(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() / args[1].Int())
}
func intMod(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() % args[1].Int())
}
func intBand(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() & args[1].Int())
}
func intBor(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() | args[1].Int())
}
func intBxor(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() ^ args[1].Int())
}
func intShl(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() << uint(args[1].Int()))
}
func intShr(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(args[0].Int() >> uint(args[1].Int()))
}
func intLt(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() < args[1].Int())
}
func intLeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() <= args[1].Int())
}
func intGt(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() > args[1].Int())
}
func intGeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() >= args[1].Int())
}
func intEq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() == args[1].Int())
}
func intNeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Int() != args[1].Int())
}
func intToFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(float64(args[0].Int()))
}
func intToStr(ctx *fin.Context, args []fin.Value) fin.Value {
	return ctx.NewString(strconv.FormatInt(args[0].Int(), 10))
}

func floatNeg(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(-args[0].Float())
}
func floatAdd(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(args[0].Float() + args[1].Float())
}
func floatSub(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(args[0].Float() - args[1].Float())
}
func floatMul(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(args[0].Float() * args[1].Float())
}
func floatDiv(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(args[0].Float() / args[1].Float())
}
func floatMod(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Mod(args[0].Float(), args[1].Float()))
}
func floatLt(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() < args[1].Float())
}
func floatLeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() <= args[1].Float())
}
func floatGt(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() > args[1].Float())
}
func floatGeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() >= args[1].Float())
}
func floatEq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() == args[1].Float())
}
func floatNeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Float() != args[1].Float())
}
func floatToInt(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.IntValue(int64(args[0].Float()))
}
func floatToStr(ctx *fin.Context, args []fin.Value) fin.Value {
	return ctx.NewString(strconv.FormatFloat(args[0].Float(), 'g', -1, 64))
}

func strAdd(ctx *fin.Context, args []fin.Value) fin.Value {
	return ctx.NewString(args[0].String() + args[1].String())
}
func strEq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(args[0].Equal(args[1]))
}
func strNeq(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.BoolValue(!args[0].Equal(args[1]))
}

// Register binds every primitive operator and conversion signature into
// ctx under the unqualified (empty-string) module name, matching
// fin_std_register's fin_mod_create(ctx, "", descs, ...) call.
func Register(ctx *fin.Context) error {
	descs := []fin.FuncDesc{
		{Sign: "bool __op_and(bool,bool)", Func: boolAnd},
		{Sign: "bool __op_or(bool,bool)", Func: boolOr},

		{Sign: "int __op_pos(int)", Func: intPos},
		{Sign: "int __op_neg(int)", Func: intNeg},
		{Sign: "int __op_not(int)", Func: intNot},
		{Sign: "int __op_bnot(int)", Func: intBNot},
		{Sign: "int __op_inc(int)", Func: intInc},
		{Sign: "int __op_dec(int)", Func: intDec},
		{Sign: "int __op_add(int,int)", Func: intAdd},
		{Sign: "int __op_sub(int,int)", Func: intSub},
		{Sign: "int __op_mul(int,int)", Func: intMul},
		{Sign: "int __op_div(int,int)", Func: intDiv},
		{Sign: "int __op_mod(int,int)", Func: intMod},
		{Sign: "int __op_bor(int,int)", Func: intBor},
		{Sign: "int __op_bxor(int,int)", Func: intBxor},
		{Sign: "int __op_shl(int,int)", Func: intShl},
		{Sign: "int __op_shr(int,int)", Func: intShr},
		{Sign: "int __op_band(int,int)", Func: intBand},
		{Sign: "bool __op_lt(int,int)", Func: intLt},
		{Sign: "bool __op_leq(int,int)", Func: intLeq},
		{Sign: "bool __op_gt(int,int)", Func: intGt},
		{Sign: "bool __op_geq(int,int)", Func: intGeq},
		{Sign: "bool __op_eq(int,int)", Func: intEq},
		{Sign: "bool __op_neq(int,int)", Func: intNeq},
		{Sign: "float float(int)", Func: intToFloat},
		{Sign: "string string(int)", Func: intToStr},

		{Sign: "float __op_neg(float)", Func: floatNeg},
		{Sign: "float __op_add(float,float)", Func: floatAdd},
		{Sign: "float __op_sub(float,float)", Func: floatSub},
		{Sign: "float __op_mul(float,float)", Func: floatMul},
		{Sign: "float __op_div(float,float)", Func: floatDiv},
		{Sign: "float __op_mod(float,float)", Func: floatMod},
		{Sign: "bool __op_lt(float,float)", Func: floatLt},
		{Sign: "bool __op_leq(float,float)", Func: floatLeq},
		{Sign: "bool __op_gt(float,float)", Func: floatGt},
		{Sign: "bool __op_geq(float,float)", Func: floatGeq},
		{Sign: "bool __op_eq(float,float)", Func: floatEq},
		{Sign: "bool __op_neq(float,float)", Func: floatNeq},
		{Sign: "int int(float)", Func: floatToInt},
		{Sign: "string string(float)", Func: floatToStr},

		{Sign: "string __op_add(string,string)", Func: strAdd},
		{Sign: "bool __op_eq(string,string)", Func: strEq},
		{Sign: "bool __op_neq(string,string)", Func: strNeq},
	}
	_, err := fin.CreateModule(ctx, "", descs)
	return err
}
