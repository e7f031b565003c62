package main

import (
	"fmt"
	"strings"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/mathutil.mod/v2/mathutil"
)

// Status holds counts of the files found and the comments processed
type Status struct {
	filesFound   int
	filesSkipped int
	filesScanned int
	filesChanged int

	cmtsDeleted int
	cmtsKept    int
}

// width returns the number of digits needed to show the largest count
func (s Status) width() int {
	maxVal := max(s.filesFound, s.filesSkipped, s.filesScanned,
		s.filesChanged, s.cmtsDeleted, s.cmtsKept)

	return mathutil.Digits(int64(maxVal))
}

// reportVal reports the value if it is greater than zero
func reportVal(n int, name string, indent, width int) {
	if n <= 0 {
		return
	}

	fmt.Printf("%s%*d %s\n", strings.Repeat(" ", indent), width, n, name)
}

// Report will print out the Status structure
func (s Status) Report() {
	fmt.Println("Summary")

	if s.filesFound == 0 {
		fmt.Println("No files found")
		return
	}

	w := s.width()

	reportVal(s.filesFound, english.Plural("file", s.filesFound)+" found", 4, w)
	reportVal(s.filesSkipped, "skipped", 8, w)
	reportVal(s.filesScanned, "scanned", 8, w)
	reportVal(s.filesChanged, "changed", 8, w)

	cmtCount := s.cmtsDeleted + s.cmtsKept
	if cmtCount == 0 {
		fmt.Println("No comments found")
		return
	}

	reportVal(cmtCount, english.Plural("comment", cmtCount)+" found", 4, w)
	reportVal(s.cmtsDeleted, "deleted", 8, w)
	reportVal(s.cmtsKept, "kept", 8, w)
}
