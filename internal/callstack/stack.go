package callstack

import (
	"fmt"
	"strings"
	"time"

	"github.com/nickwells/timer.mod/timer"
	"github.com/nickwells/verbose.mod/verbose"
)

const maxStackWidth = 30

// Stack records the current stages of the program. Used in conjunction
// with the timer and verbose packages it reports how long each stage took.
type Stack struct {
	ShowTimings bool
	stack       []string
}

// Start records the start of the stage, prints the message if verbose
// messages are on and returns the function to be called when the stage
// ends.
func (s *Stack) Start(tag, msg string) func() {
	s.stack = append(s.stack, tag)

	switch {
	case verbose.IsOn():
		fmt.Println(s.Tag(), msg)
	case s.ShowTimings:
		fmt.Println(s.Tag(), "Start")
	default:
		return func() { s.popStack() }
	}

	return timer.Start(tag, s)
}

// Println prints the values, prefixed with the current tag, if verbose
// messages are on
func (s *Stack) Println(vals ...any) {
	if !verbose.IsOn() {
		return
	}

	fmt.Println(s.Tag(), fmt.Sprint(vals...))
}

// Tag returns a stacked tag reflecting the current stack depth and
// right-filled. It returns an empty string if no stage has been started.
func (s *Stack) Tag() string {
	if len(s.stack) == 0 {
		return ""
	}

	t := strings.Repeat("|    ", len(s.stack)-1) +
		s.stack[len(s.stack)-1]
	if len(t) < maxStackWidth {
		t += strings.Repeat(".", maxStackWidth-len(t))
	}

	return t + ":"
}

// popStack removes the last stack entry
func (s *Stack) popStack() {
	s.stack = s.stack[:len(s.stack)-1]
}

// Act satisfies the action function interface for a timer. It prints out
// the tag and the duration in milliseconds if the program is in verbose
// mode or timings are being shown.
func (s *Stack) Act(_ string, d time.Duration) {
	tag := s.Tag()
	s.popStack()

	if verbose.IsOn() || s.ShowTimings {
		fmt.Printf("%s%12.3f msecs\n",
			tag, float64(d/time.Microsecond)/1000.0)
	}
}
