package main

import (
	"sort"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/dirsearch.mod/v2/dirsearch"
)

// getFiles finds all the regular files under the search directory. Any
// directory with the same name as the backup directory is not searched.
// The names are sorted so that the order of processing is repeatable.
func (prog *prog) getFiles() ([]string, []error) {
	defer prog.dbgStack.Start("getFiles", "finding the files")()

	entries, errs := dirsearch.FindRecursePrune(prog.searchDir, -1,
		[]check.FileInfo{
			check.FileInfoName(check.Not[string](
				check.ValEQ[string](prog.backupDir),
				"the backup directory")),
		},
		check.FileInfoIsRegular)
	if len(errs) != 0 {
		return nil, errs
	}

	filenames := make([]string, 0, len(entries))
	for name := range entries {
		filenames = append(filenames, name)
	}

	sort.Strings(filenames)

	return filenames, nil
}
