package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decision records what should be done with a comment
type Decision int

const (
	Delete Decision = iota
	Keep
)

// String returns the past-tense description of the decision, as echoed to
// the operator
func (d Decision) String() string {
	if d == Keep {
		return "Kept."
	}

	return "Deleted."
}

// errNoResponse is returned when the input closes before the operator has
// answered
var errNoResponse = errors.New("no response: the input has been closed")

const sepLineLen = 80

// Candidate describes a comment found in a file which is to be offered to
// the operator
type Candidate struct {
	fileName string
	rule     Rule
	match    Match
}

// decider is the source of the keep/delete decision for each comment
type decider interface {
	Decide(c Candidate) (Decision, error)
}

// parseDecision converts the operator's response into a Decision. Only an
// explicit "n" or "no" (in any case, ignoring surrounding space) keeps the
// comment; any other response, including an empty one, deletes it.
func parseDecision(resp string) Decision {
	switch strings.ToLower(strings.TrimSpace(resp)) {
	case "n", "no":
		return Keep
	}

	return Delete
}

// showCandidate writes the description of the candidate comment
func showCandidate(w io.Writer, c Candidate) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", sepLineLen))
	fmt.Fprintf(w, "FILE: %s\n", c.fileName)
	fmt.Fprintf(w, "%s FOUND:\n\n", strings.ToUpper(c.rule.name))
	fmt.Fprintln(w, strings.TrimSpace(c.match.text))
	fmt.Fprintln(w)
}

// promptDecider asks the operator about each comment, reading one line of
// response for each
type promptDecider struct {
	r *bufio.Reader
	w io.Writer
}

// newPromptDecider returns a promptDecider reading responses from r and
// writing prompts to w
func newPromptDecider(r io.Reader, w io.Writer) *promptDecider {
	return &promptDecider{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Decide shows the comment, reads the operator's response and echoes the
// resulting decision. It returns an error if the input is closed before
// any response is given.
func (pd *promptDecider) Decide(c Candidate) (Decision, error) {
	showCandidate(pd.w, c)
	fmt.Fprint(pd.w, "Delete this comment? [Y/n]: ")

	resp, err := pd.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Keep, fmt.Errorf("cannot read the response: %w", err)
		}

		if resp == "" {
			fmt.Fprintln(pd.w)
			return Keep, errNoResponse
		}
	}

	d := parseDecision(resp)
	fmt.Fprintln(pd.w, d)

	return d, nil
}

// fixedDecider gives the same decision for every comment without asking.
// It still shows each comment so the operator can see what was done.
type fixedDecider struct {
	d Decision
	w io.Writer
}

// Decide shows the comment and returns the fixed decision
func (fd fixedDecider) Decide(c Candidate) (Decision, error) {
	showCandidate(fd.w, c)
	fmt.Fprintln(fd.w, fd.d)

	return fd.d, nil
}
