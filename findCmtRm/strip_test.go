package main

import (
	"errors"
	"testing"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

var errScriptEnded = errors.New("no more scripted decisions")

// scriptedDecider returns the decisions in order and records the text of
// each comment offered. It returns an error if it is asked for more
// decisions than it has.
type scriptedDecider struct {
	decisions []Decision
	offered   []string
}

// Decide returns the next scripted decision
func (sd *scriptedDecider) Decide(c Candidate) (Decision, error) {
	if len(sd.offered) >= len(sd.decisions) {
		return Keep, errScriptEnded
	}

	sd.offered = append(sd.offered, c.match.text)

	return sd.decisions[len(sd.offered)-1], nil
}

func TestStrip(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		grammar     string
		src         string
		decisions   []Decision
		expOffered  []string
		expText     string
		expModified bool
		expDeleted  int
		expKept     int
		testhelper.ExpErr
	}{
		{
			ID:          testhelper.MkID("js: delete line, keep block"),
			grammar:     grammarJS,
			src:         "// remove me\nconst x = 1; /* keep */",
			decisions:   []Decision{Delete, Keep},
			expOffered:  []string{"// remove me", "/* keep */"},
			expText:     "\nconst x = 1; /* keep */",
			expModified: true,
			expDeleted:  1,
			expKept:     1,
		},
		{
			ID:          testhelper.MkID("html: delete both"),
			grammar:     grammarHTML,
			src:         "<p>a</p><!-- one --><p>b</p><!-- two\nlines -->",
			decisions:   []Decision{Delete, Delete},
			expOffered:  []string{"<!-- one -->", "<!-- two\nlines -->"},
			expText:     "<p>a</p><p>b</p>",
			expModified: true,
			expDeleted:  2,
		},
		{
			ID:      testhelper.MkID("css: no comments"),
			grammar: grammarCSS,
			src:     "body { color: red; }\n",
			expText: "body { color: red; }\n",
		},
		{
			ID:          testhelper.MkID("js: keep then delete"),
			grammar:     grammarJS,
			src:         "// a\n// b\n",
			decisions:   []Decision{Keep, Delete},
			expOffered:  []string{"// a", "// b"},
			expText:     "// a\n\n",
			expModified: true,
			expDeleted:  1,
			expKept:     1,
		},
		{
			ID:         testhelper.MkID("js: keep all"),
			grammar:    grammarJS,
			src:        "// a\n// b",
			decisions:  []Decision{Keep, Keep},
			expOffered: []string{"// a", "// b"},
			expText:    "// a\n// b",
			expKept:    2,
		},
		{
			ID:          testhelper.MkID("css: adjacent comments"),
			grammar:     grammarCSS,
			src:         "/* a *//* b */x",
			decisions:   []Decision{Delete, Delete},
			expOffered:  []string{"/* a */", "/* b */"},
			expText:     "x",
			expModified: true,
			expDeleted:  2,
		},
		{
			ID:          testhelper.MkID("css: delete, keep, delete"),
			grammar:     grammarCSS,
			src:         "/* 1 */a/* 2 */b/* 3 */c",
			decisions:   []Decision{Delete, Keep, Delete},
			expOffered:  []string{"/* 1 */", "/* 2 */", "/* 3 */"},
			expText:     "a/* 2 */bc",
			expModified: true,
			expDeleted:  2,
			expKept:     1,
		},
		{
			ID:          testhelper.MkID("js: line rule runs before block rule"),
			grammar:     grammarJS,
			src:         "a /* b // c */ d",
			decisions:   []Decision{Keep, Delete},
			expOffered:  []string{"// c */ d", "/* b // c */"},
			expText:     "a  d",
			expModified: true,
			expDeleted:  1,
			expKept:     1,
		},
		{
			ID:          testhelper.MkID("js: deleted line comment hides block end"),
			grammar:     grammarJS,
			src:         "a /* b // c */ d",
			decisions:   []Decision{Delete},
			expOffered:  []string{"// c */ d"},
			expText:     "a /* b ",
			expModified: true,
			expDeleted:  1,
		},
		{
			ID:          testhelper.MkID("js: multi-byte text"),
			grammar:     grammarJS,
			src:         "x = 'é'; // café\ny = 'ü';",
			decisions:   []Decision{Delete},
			expOffered:  []string{"// café"},
			expText:     "x = 'é'; \ny = 'ü';",
			expModified: true,
			expDeleted:  1,
		},
		{
			ID:          testhelper.MkID("js: CRLF line endings kept"),
			grammar:     grammarJS,
			src:         "a = 1; // c\r\nb = 2;\r\n",
			decisions:   []Decision{Delete},
			expOffered:  []string{"// c"},
			expText:     "a = 1; \r\nb = 2;\r\n",
			expModified: true,
			expDeleted:  1,
		},
		{
			ID:          testhelper.MkID("js: CRLF, keep then delete"),
			grammar:     grammarJS,
			src:         "// a\r\n// b\r\nc\r\n",
			decisions:   []Decision{Keep, Delete},
			expOffered:  []string{"// a", "// b"},
			expText:     "// a\r\n\r\nc\r\n",
			expModified: true,
			expDeleted:  1,
			expKept:     1,
		},
		{
			ID:          testhelper.MkID("js: line comment at end of text"),
			grammar:     grammarJS,
			src:         "x; //",
			decisions:   []Decision{Delete},
			expOffered:  []string{"//"},
			expText:     "x; ",
			expModified: true,
			expDeleted:  1,
		},
		{
			ID:      testhelper.MkID("empty file"),
			grammar: grammarJS,
			src:     "",
			expText: "",
		},
		{
			ID:      testhelper.MkID("grammar with no rules"),
			grammar: grammarNone,
			src:     "// a",
			expText: "// a",
		},
		{
			ID:         testhelper.MkID("decider fails"),
			grammar:    grammarCSS,
			src:        "/* a */ /* b */",
			decisions:  []Decision{Delete},
			expOffered: []string{"/* a */"},
			ExpErr:     testhelper.MkExpErr(errScriptEnded.Error()),
		},
	}

	for _, tc := range testCases {
		sd := &scriptedDecider{decisions: tc.decisions}
		s := newStripper(tc.src)

		res, err := s.strip("test.file", grammars[tc.grammar], sd)

		testhelper.DiffStringSlice(t, tc.IDStr(), "offered comments",
			sd.offered, tc.expOffered)

		if !testhelper.CheckExpErr(t, err, tc) || err != nil {
			continue
		}

		testhelper.DiffString(t, tc.IDStr(), "text", res.text, tc.expText)
		testhelper.DiffInt(t, tc.IDStr(), "deleted", res.deleted, tc.expDeleted)
		testhelper.DiffInt(t, tc.IDStr(), "kept", res.kept, tc.expKept)

		if res.modified != tc.expModified {
			t.Log(tc.IDStr())
			t.Errorf("\t: expected modified: %t, got: %t",
				tc.expModified, res.modified)
		}
	}
}

func TestStripperCut(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		src     string
		cuts    [][2]int
		expText string
	}{
		{
			ID:      testhelper.MkID("no cuts"),
			src:     "abcdef",
			expText: "abcdef",
		},
		{
			ID:      testhelper.MkID("cut the middle"),
			src:     "abcdef",
			cuts:    [][2]int{{2, 4}},
			expText: "abef",
		},
		{
			ID:      testhelper.MkID("cut across an earlier cut"),
			src:     "abcdefgh",
			cuts:    [][2]int{{2, 4}, {1, 4}},
			expText: "agh",
		},
		{
			ID:      testhelper.MkID("cut everything"),
			src:     "abc",
			cuts:    [][2]int{{0, 1}, {0, 2}},
			expText: "",
		},
		{
			ID:      testhelper.MkID("empty cut"),
			src:     "abc",
			cuts:    [][2]int{{1, 1}},
			expText: "abc",
		},
	}

	for _, tc := range testCases {
		s := newStripper(tc.src)
		for _, c := range tc.cuts {
			s.cut(c[0], c[1])
		}

		testhelper.DiffString(t, tc.IDStr(), "text", s.text(), tc.expText)
	}
}
