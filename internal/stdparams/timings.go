package stdparams

import (
	"github.com/cmtstrip/utilities/internal/callstack"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const paramNameShowTimings = "show-timings"

// AddTiming adds the show-timings parameter which sets the ShowTimings
// field of the callstack.Stack. Any options given are applied to the
// parameter after the standard ones.
func AddTiming(
	ps *param.PSet,
	cs *callstack.Stack,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append([]param.OptFunc{
		param.Attrs(param.DontShowInStdUsage | param.CommandLineOnly),
		param.AltNames("show-timing", "show-times"),
	}, opt...)

	return ps.Add(paramNameShowTimings, psetter.Bool{Value: &cs.ShowTimings},
		"report the time taken for each stage of the program:"+
			" the directory search and the processing of each file.",
		opt...)
}
