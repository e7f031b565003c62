package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples will add examples to the program help message
func addExamples(ps *param.PSet) error {
	ps.AddExample(
		"findCmtRm -d web",
		"This will search the web directory and its sub-directories"+
			" and ask about each comment found in any"+
			" .js, .css or .html file.")
	ps.AddExample(
		"findCmtRm -action list",
		"This will show all the comments that would be offered for"+
			" deletion but will not change any file.")
	ps.AddExample(
		"findCmtRm -ext .mjs=js -ext .htm=html -delete-all",
		"This will also process files with extensions of .mjs and .htm"+
			" and will delete every comment without asking."+
			" The original files are kept in the backup directory.")
	ps.AddExample(
		"findCmtRm -ext .css=none",
		"This will leave any stylesheets unchanged.")

	return nil
}
