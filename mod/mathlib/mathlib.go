// Package mathlib registers fin's "math" native module: the trig/rounding/
// comparison helpers grounded on mod/fin_math.c. The original's Max/Min
// signatures ("int Max(int)") declare one parameter while their bodies
// read a second argument — a latent bug in the reference source. This
// port declares the correct two-argument signature instead of reproducing
// the mismatch, the same "fix a known-wrong reference detail" call made
// for the parser's `&` handling.
package mathlib

import (
	"math"

	"github.com/naleksiev/fin"
)

func absInt(ctx *fin.Context, args []fin.Value) fin.Value {
	v := args[0].Int()
	if v < 0 {
		v = -v
	}
	return fin.IntValue(v)
}
func absFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Abs(args[0].Float()))
}
func ceiling(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Ceil(args[0].Float()))
}
func floorFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Floor(args[0].Float()))
}
func logFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Log(args[0].Float()))
}
func log2Fn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Log2(args[0].Float()))
}
func log10Fn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Log10(args[0].Float()))
}
func maxInt(ctx *fin.Context, args []fin.Value) fin.Value {
	a, b := args[0].Int(), args[1].Int()
	if a > b {
		return fin.IntValue(a)
	}
	return fin.IntValue(b)
}
func maxFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Max(args[0].Float(), args[1].Float()))
}
func minInt(ctx *fin.Context, args []fin.Value) fin.Value {
	a, b := args[0].Int(), args[1].Int()
	if a < b {
		return fin.IntValue(a)
	}
	return fin.IntValue(b)
}
func minFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Min(args[0].Float(), args[1].Float()))
}
func powFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Pow(args[0].Float(), args[1].Float()))
}
func roundFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Round(args[0].Float()))
}
func signInt(ctx *fin.Context, args []fin.Value) fin.Value {
	if args[0].Int() < 0 {
		return fin.IntValue(-1)
	}
	return fin.IntValue(1)
}
func signFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	if args[0].Float() < 0.0 {
		return fin.FloatValue(-1.0)
	}
	return fin.FloatValue(1.0)
}
func sqrtFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Sqrt(args[0].Float()))
}

func acosFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Acos(args[0].Float()))
}
func asinFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Asin(args[0].Float()))
}
func atanFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Atan(args[0].Float()))
}
func atan2Fn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Atan2(args[0].Float(), args[1].Float()))
}
func cosFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Cos(args[0].Float()))
}
func sinFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Sin(args[0].Float()))
}
func tanFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Tan(args[0].Float()))
}
func acoshFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Acosh(args[0].Float()))
}
func asinhFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Asinh(args[0].Float()))
}
func atanhFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Atanh(args[0].Float()))
}
func coshFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Cosh(args[0].Float()))
}
func sinhFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Sinh(args[0].Float()))
}
func tanhFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(math.Tanh(args[0].Float()))
}

// Register binds the math module into ctx, matching fin_math_register.
func Register(ctx *fin.Context) error {
	descs := []fin.FuncDesc{
		{Sign: "int Abs(int)", Func: absInt},
		{Sign: "float Abs(float)", Func: absFloat},
		{Sign: "float Ceiling(float)", Func: ceiling},
		{Sign: "float Floor(float)", Func: floorFn},
		{Sign: "float Log(float)", Func: logFn},
		{Sign: "float Log2(float)", Func: log2Fn},
		{Sign: "float Log10(float)", Func: log10Fn},
		{Sign: "int Max(int,int)", Func: maxInt},
		{Sign: "float Max(float,float)", Func: maxFloat},
		{Sign: "int Min(int,int)", Func: minInt},
		{Sign: "float Min(float,float)", Func: minFloat},
		{Sign: "float Pow(float,float)", Func: powFn},
		{Sign: "float Round(float)", Func: roundFn},
		{Sign: "int Sign(int)", Func: signInt},
		{Sign: "float Sign(float)", Func: signFloat},
		{Sign: "float Sqrt(float)", Func: sqrtFn},

		{Sign: "float ACos(float)", Func: acosFn},
		{Sign: "float ASin(float)", Func: asinFn},
		{Sign: "float ATan(float)", Func: atanFn},
		{Sign: "float ATan2(float,float)", Func: atan2Fn},
		{Sign: "float Cos(float)", Func: cosFn},
		{Sign: "float Sin(float)", Func: sinFn},
		{Sign: "float Tan(float)", Func: tanFn},
		{Sign: "float ACosH(float)", Func: acoshFn},
		{Sign: "float ASinH(float)", Func: asinhFn},
		{Sign: "float ATanH(float)", Func: atanhFn},
		{Sign: "float CosH(float)", Func: coshFn},
		{Sign: "float SinH(float)", Func: sinhFn},
		{Sign: "float TanH(float)", Func: tanhFn},
	}
	_, err := fin.CreateModule(ctx, "math", descs)
	return err
}
