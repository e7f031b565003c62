/*
The findCmtRm command finds all the files under a given directory and
removes comments from them. The comments are found using a grammar chosen
by the file extension; by default .js, .css and .html files are processed.

Each comment is shown in turn and the user is asked whether to delete it.
Pressing Enter deletes the comment, typing 'n' keeps it. Alternatively all
the comments can be deleted without asking or simply listed.

Before a file is changed its original contents are copied into a backup
directory under the search directory.
*/
package main
