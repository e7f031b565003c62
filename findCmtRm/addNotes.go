package main

import "github.com/nickwells/param.mod/v6/param"

const (
	noteNameGrammars  = "Grammars"
	noteNameResponses = "Responses"
	noteNameBackups   = "Backups"
)

// addNotes will add the notes to the standard help message
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteNameGrammars,
		"The comments in a file are found using the grammar for its"+
			" extension. A grammar is an ordered list of rules, each of"+
			" which describes one form of comment. All the comments for"+
			" one rule are offered before the next rule is used."+
			"\n\n"+
			"Comments are matched by pattern alone; a comment marker"+
			" inside a string or a regular expression will also be"+
			" offered for deletion. A comment is removed exactly,"+
			" the surrounding text is left as it was.",
		param.NoteSeeParam(paramNameExtension, paramNameListGrammars))

	ps.AddNote(noteNameResponses,
		"For each comment you are asked: Delete this comment? [Y/n]"+
			"\n\n"+
			"A response of 'n' or 'no' (in any case) keeps the comment,"+
			" any other response, including an empty one, deletes it."+
			" If the input is closed before a response is given the"+
			" program stops and the file being processed is not changed.",
		param.NoteSeeParam(paramNameAction, paramNameDeleteAll))

	ps.AddNote(noteNameBackups,
		"Before a file is changed its original contents are copied"+
			" into the backup directory, at the same path relative to"+
			" the search directory. The copy keeps the permissions and"+
			" modification time of the original. Any earlier copy is"+
			" replaced."+
			"\n\n"+
			"Files are only changed if at least one comment is deleted.",
		param.NoteSeeParam(paramNameBackupDir))

	return nil
}
