package main

import "strings"

// Match records a comment found in the current text. The offsets are
// positions in the current text, not in the original.
type Match struct {
	start, end int
	text       string
}

// span is a part of the original text which has been retained
type span struct {
	start, end int
}

// stripper holds the text of a file as an ordered list of the retained
// parts of the original. Deleting a comment removes it from the spans;
// the original text is never changed.
type stripper struct {
	src   string
	spans []span

	deleted int
	kept    int
}

// stripResult holds the outcome of resolving all the comments in a file
type stripResult struct {
	text     string
	modified bool
	deleted  int
	kept     int
}

// newStripper returns a stripper holding the whole of the given text
func newStripper(src string) *stripper {
	s := &stripper{src: src}
	if src != "" {
		s.spans = []span{{start: 0, end: len(src)}}
	}

	return s
}

// text returns the current text, made up from the retained spans
func (s *stripper) text() string {
	var b strings.Builder

	for _, sp := range s.spans {
		b.WriteString(s.src[sp.start:sp.end])
	}

	return b.String()
}

// cut removes the part of the current text between from and to
func (s *stripper) cut(from, to int) {
	if from >= to {
		return
	}

	newSpans := make([]span, 0, len(s.spans)+1)
	pos := 0

	for _, sp := range s.spans {
		spLen := sp.end - sp.start
		spFrom, spTo := pos, pos+spLen
		pos = spTo

		if spTo <= from || spFrom >= to {
			newSpans = append(newSpans, sp)
			continue
		}

		if spFrom < from {
			newSpans = append(newSpans,
				span{start: sp.start, end: sp.start + (from - spFrom)})
		}

		if spTo > to {
			newSpans = append(newSpans,
				span{start: sp.start + (to - spFrom), end: sp.end})
		}
	}

	s.spans = newSpans
}

// find returns the first match of the rule in the current text at or after
// the cursor. The boolean is false if there is none.
func (s *stripper) find(r Rule, cursor int) (Match, bool) {
	text := s.text()
	if cursor > len(text) {
		return Match{}, false
	}

	loc := r.pattern.FindStringIndex(text[cursor:])
	if loc == nil {
		return Match{}, false
	}

	start, end := cursor+loc[0], cursor+loc[1]

	return Match{start: start, end: end, text: text[start:end]}, true
}

// pass applies the rule until it finds no more comments. The cursor marks
// how much of the text has already been offered to the operator. It moves
// past a kept comment and stays where it is when a comment is deleted,
// since the text following it moves back to meet it.
func (s *stripper) pass(fileName string, r Rule, d decider) error {
	cursor := 0

	for {
		m, ok := s.find(r, cursor)
		if !ok {
			return nil
		}

		decision, err := d.Decide(
			Candidate{fileName: fileName, rule: r, match: m})
		if err != nil {
			return err
		}

		if decision == Keep {
			s.kept++
			cursor = m.end

			continue
		}

		s.cut(m.start, m.end)
		s.deleted++
	}
}

// strip offers each comment matched by the grammar to the decider and
// returns the resulting text. Any error from the decider stops the
// processing and the partial result is discarded.
func (s *stripper) strip(fileName string, g Grammar, d decider) (
	stripResult, error,
) {
	for _, r := range g.rules {
		if err := s.pass(fileName, r, d); err != nil {
			return stripResult{}, err
		}
	}

	return stripResult{
		text:     s.text(),
		modified: s.deleted > 0,
		deleted:  s.deleted,
		kept:     s.kept,
	}, nil
}
