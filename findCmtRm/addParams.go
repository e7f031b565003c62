package main

import (
	"errors"
	"strings"

	"github.com/cmtstrip/utilities/internal/stdparams"
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameDir          = "dir"
	paramNameBackupDir    = "backup-dir"
	paramNameExtension    = "extension"
	paramNameEncoding     = "encoding"
	paramNameAction       = "action"
	paramNameDeleteAll    = "delete-all"
	paramNameListGrammars = "list-grammars"
)

// isSingleDirName returns an error if the name is not usable as the name
// of a single directory directly under the search directory
func isSingleDirName(name string) error {
	if strings.ContainsAny(name, `/\`) {
		return errors.New("the name must not contain a path separator")
	}

	if name == "." || name == ".." {
		return errors.New("the name must not be '.' or '..'")
	}

	return nil
}

// addParams will add parameters to the passed ParamSet
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameDir,
			psetter.Pathname{
				Value:       &prog.searchDir,
				Expectation: filecheck.DirExists(),
			},
			"give the name of the directory to search for files."+
				" All the sub-directories are searched as well,"+
				" apart from any with the same name as the backup directory.",
			param.AltNames("d"),
		)

		ps.Add(paramNameBackupDir,
			psetter.String[string]{
				Value: &prog.backupDir,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
					isSingleDirName,
				},
			},
			"give the name of the directory where the original copies of"+
				" any changed files are kept. It is created directly"+
				" under the search directory and any directory with"+
				" this name is not searched.",
			param.AltNames("backup"),
			param.Attrs(param.DontShowInStdUsage),
		)

		ps.Add(paramNameExtension,
			extMapSetter{Value: &prog.extMap},
			"map the file extension to the grammar used to find comments."+
				" This parameter may be given more than once, each"+
				" time it is used the mapping is added, replacing any"+
				" existing mapping for the extension.",
			param.AltNames("ext"),
			param.SeeAlso(paramNameListGrammars),
		)

		ps.Add(paramNameEncoding,
			psetter.Enum[string]{
				Value: &prog.encoding,
				AllowedVals: psetter.AllowedVals[string]{
					encUTF8: "UTF-8, invalid byte sequences" +
						" are dropped when the file is read",
					encLatin1: "ISO 8859-1",
					encWindows1252: "Windows code page 1252, characters" +
						" which cannot be represented are replaced",
				},
			},
			"the character encoding of the files. Files are read and"+
				" written in this encoding.",
			param.AltNames("enc"),
			param.Attrs(param.DontShowInStdUsage),
		)

		ps.Add(paramNameAction,
			psetter.Enum[string]{
				Value: &prog.action,
				AllowedVals: psetter.AllowedVals[string]{
					actQuery: "ask for each comment whether" +
						" it should be deleted",
					actDeleteAll: "delete every comment without asking",
					actList: "show every comment without" +
						" changing any file",
				},
			},
			"what should be done with the comments that are found",
			param.AltNames("a"),
			param.Attrs(param.CommandLineOnly),
		)

		ps.Add(paramNameDeleteAll, psetter.Nil{},
			"delete every comment without asking.",
			param.AltNames("yes"),
			param.PostAction(paction.SetVal(&prog.action, actDeleteAll)),
			param.Attrs(param.CommandLineOnly),
			param.SeeAlso(paramNameAction),
		)

		ps.Add(paramNameListGrammars, psetter.Nil{},
			"show the grammars and the extensions that use them"+
				" and then exit.",
			param.AltNames("grammars"),
			param.PostAction(
				func(_ location.L, _ *param.ByName, _ []string) error {
					prog.listGrammars = true
					return nil
				}),
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
		)

		stdparams.AddTiming(ps, prog.dbgStack)

		return nil
	}
}
