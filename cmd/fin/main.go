// Command fin is a thin embedding shell: it creates a context, registers
// the standard built-in modules, and evaluates either a fixed demo
// program or a named source file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/naleksiev/fin"
	"github.com/naleksiev/fin/ascii"
	"github.com/naleksiev/fin/mod/io"
	"github.com/naleksiev/fin/mod/mathlib"
	"github.com/naleksiev/fin/mod/stdops"
	"github.com/naleksiev/fin/mod/timelib"
)

const demo = `void Main() { io.WriteLine("Hello, world!"); }`

func registerBuiltins(ctx *fin.Context) error {
	if err := stdops.Register(ctx); err != nil {
		return err
	}
	if err := io.Register(ctx); err != nil {
		return err
	}
	if err := mathlib.Register(ctx); err != nil {
		return err
	}
	if err := timelib.Register(ctx); err != nil {
		return err
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [path]\n", os.Args[0])
	}
	flag.Parse()

	ctx := fin.NewDefaultContext()
	defer ctx.Close()

	if err := registerBuiltins(ctx); err != nil {
		log.Fatal(ascii.Color(ascii.Red, "fin: %s", err))
	}

	var err error
	if path := flag.Arg(0); path != "" {
		err = ctx.EvalFile(path)
	} else {
		err = ctx.EvalString(demo)
	}
	if err != nil {
		log.Fatal(ascii.Color(ascii.Red, "fin: %s", err))
	}
}
