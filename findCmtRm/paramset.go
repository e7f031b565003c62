package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),

		addExamples,
		addNotes,
		addRefs,

		param.SetProgramDescription(
			"This finds the files in the given directory"+
				" (by default: "+dfltDir+") and in all its"+
				" sub-directories. Each file with a recognised"+
				" extension is searched for comments. Each comment"+
				" is shown and you are asked whether to delete it."+
				" The command name echoes this: find, comment, remove."+
				"\n\n"+
				"Any file that is changed is first copied into the"+
				" backup directory (by default: "+dfltBackupDir+")"+
				" so that the original contents can be recovered."),
	)
}
