// Package io registers fin's console-output native module, grounded on
// fin_io.c: four print functions taking a string, int or float argument
// and writing to stdout.
package io

import (
	"fmt"

	"github.com/naleksiev/fin"
)

func write(ctx *fin.Context, args []fin.Value) fin.Value {
	fmt.Print(args[0].String())
	return fin.Value{}
}

func writeLine(ctx *fin.Context, args []fin.Value) fin.Value {
	fmt.Println(args[0].String())
	return fin.Value{}
}

func writeLineInt(ctx *fin.Context, args []fin.Value) fin.Value {
	fmt.Println(args[0].Int())
	return fin.Value{}
}

func writeLineFloat(ctx *fin.Context, args []fin.Value) fin.Value {
	fmt.Println(args[0].Float())
	return fin.Value{}
}

// Register binds the io module ("Write", "WriteLine" overloads) into ctx,
// matching fin_io_register.
func Register(ctx *fin.Context) error {
	descs := []fin.FuncDesc{
		{Sign: "void Write(string)", Func: write},
		{Sign: "void WriteLine(string)", Func: writeLine},
		{Sign: "void WriteLine(int)", Func: writeLineInt},
		{Sign: "void WriteLine(float)", Func: writeLineFloat},
	}
	_, err := fin.CreateModule(ctx, "io", descs)
	return err
}
