// Package timelib registers fin's "time" native module: a single Clock()
// function, grounded on mod/fin_time.c's fin_time_clock, which reports
// elapsed process time in seconds (the C original divides clock() by
// CLOCKS_PER_SEC; the Go port measures wall-clock time since the package
// was loaded, the closest equivalent without cgo access to clock(3)).
package timelib

import (
	"time"

	"github.com/naleksiev/fin"
)

var start = time.Now()

func clockFn(ctx *fin.Context, args []fin.Value) fin.Value {
	return fin.FloatValue(time.Since(start).Seconds())
}

// Register binds the time module into ctx, matching fin_time_register.
func Register(ctx *fin.Context) error {
	descs := []fin.FuncDesc{
		{Sign: "float Clock()", Func: clockFn},
	}
	_, err := fin.CreateModule(ctx, "time", descs)
	return err
}
