package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cmtstrip/utilities/internal/callstack"
	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/twrap.mod/twrap"
)

// Created: Sun Oct 18 10:12:37 2026

const (
	progName = "findCmtRm"

	dfltDir       = "."
	dfltBackupDir = "_comment_backup"

	actQuery     = "query"
	actDeleteAll = "delete-all"
	actList      = "list"

	msgIndent = 4
)

// errSearchFailed is returned when the directory search reports errors
var errSearchFailed = errors.New("the directory search failed")

// prog holds program parameters and status
type prog struct {
	// parameters
	searchDir string
	backupDir string
	extMap    extMap
	encoding  string
	action    string

	listGrammars bool

	// the source of the keep/delete decisions
	decider decider

	// display
	twc      *twrap.TWConf
	dbgStack *callstack.Stack

	// record the behaviour and outcomes
	status Status
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		searchDir: dfltDir,
		backupDir: dfltBackupDir,
		extMap:    dfltExtMap(),
		encoding:  encUTF8,
		action:    actQuery,

		twc:      twrap.NewTWConfOrPanic(),
		dbgStack: &callstack.Stack{},
	}
}

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	if prog.listGrammars {
		prog.showGrammars()
		os.Exit(0)
	}

	prog.decider = prog.makeDecider()

	if err := prog.run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// makeDecider returns the decider to use for the chosen action
func (prog *prog) makeDecider() decider {
	switch prog.action {
	case actDeleteAll:
		return fixedDecider{d: Delete, w: os.Stdout}
	case actList:
		return fixedDecider{d: Keep, w: os.Stdout}
	}

	return newPromptDecider(os.Stdin, os.Stdout)
}

// showIntro prints the banner at the start of the run
func (prog *prog) showIntro() {
	fmt.Println("Scanning project...")

	switch prog.action {
	case actDeleteAll:
		fmt.Println("All comments will be deleted")
	case actList:
		fmt.Println("Comments will be listed, nothing will be changed")
	default:
		fmt.Println("Press Enter to DELETE, type 'n' to KEEP")
	}

	fmt.Println("Backup folder:", prog.backupDir)
}

// run processes every file under the search directory, one at a time. It
// stops at the first error.
func (prog *prog) run() error {
	defer prog.dbgStack.Start("run", "removing comments")()

	prog.showIntro()

	filenames, errs := prog.getFiles()
	if len(errs) != 0 {
		em := errutil.NewErrMap()
		for _, err := range errs {
			em.AddError("directory search", err)
		}

		em.Report(os.Stderr, progName)

		return errSearchFailed
	}

	prog.status.filesFound = len(filenames)

	for _, name := range filenames {
		if err := prog.processFile(name); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("Finished.")
	prog.status.Report()

	return nil
}

// processFile resolves all the comments in the file. If any comment is
// deleted the original is copied to the backup directory and then
// replaced. Files with no recognised grammar are not read.
func (prog *prog) processFile(name string) error {
	g, ok := grammarFor(name, prog.extMap)
	if !ok {
		prog.status.filesSkipped++
		return nil
	}

	defer prog.dbgStack.Start("processFile", "processing: "+name)()

	prog.status.filesScanned++

	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	content, err := os.ReadFile(name) //nolint:gosec
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	s := newStripper(decodeText(content, prog.encoding))

	res, err := s.strip(name, g, prog.decider)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	prog.status.cmtsDeleted += res.deleted
	prog.status.cmtsKept += res.kept

	if !res.modified {
		prog.dbgStack.Println("unchanged")
		return nil
	}

	newContent, err := encodeText(res.text, prog.encoding)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	backupName, err := backupPathName(prog.searchDir, prog.backupDir, name)
	if err != nil {
		return err
	}

	if err := backupFile(backupName, content, info); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	prog.dbgStack.Println("backed up to: ", backupName)

	if err := replaceFile(name, newContent, info); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	prog.status.filesChanged++

	return nil
}

// showGrammars prints the known grammars and the extensions which use them
func (prog *prog) showGrammars() {
	fmt.Println("Grammars:")

	for _, name := range grammarNames() {
		g := grammars[name]
		fmt.Println(strings.Repeat(" ", msgIndent) + name)
		prog.twc.Wrap(g.desc, 2*msgIndent)

		exts := prog.extMap.extsFor(name)
		if len(exts) > 0 {
			prog.twc.Wrap("used for: "+joinExts(exts), 2*msgIndent)
		}
	}
}
