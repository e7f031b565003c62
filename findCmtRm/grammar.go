package main

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/nickwells/english.mod/english"
)

const (
	grammarJS   = "js"
	grammarCSS  = "css"
	grammarHTML = "html"
	grammarNone = "none"
)

// Rule describes one syntactic form of comment. The pattern is applied to
// the whole text so it may span lines. A pattern must not match empty text.
type Rule struct {
	name    string
	pattern *regexp.Regexp
}

// Grammar is the ordered list of comment rules for a type of file. Each
// rule is applied until it finds no more comments before the next is
// started.
type Grammar struct {
	name  string
	desc  string
	rules []Rule
}

var (
	lineComment = Rule{
		name:    "line comment",
		pattern: regexp.MustCompile(`//[^\r\n]*`),
	}
	blockComment = Rule{
		name:    "block comment",
		pattern: regexp.MustCompile(`/\*[\s\S]*?\*/`),
	}
	markupComment = Rule{
		name:    "markup comment",
		pattern: regexp.MustCompile(`<!--[\s\S]*?-->`),
	}
)

// grammars holds the known grammars, indexed by name
var grammars = map[string]Grammar{
	grammarJS: {
		name:  grammarJS,
		desc:  "JavaScript: // to end of line, then /* ... */",
		rules: []Rule{lineComment, blockComment},
	},
	grammarCSS: {
		name:  grammarCSS,
		desc:  "stylesheet: /* ... */",
		rules: []Rule{blockComment},
	},
	grammarHTML: {
		name:  grammarHTML,
		desc:  "markup: <!-- ... -->",
		rules: []Rule{markupComment},
	},
	grammarNone: {
		name: grammarNone,
		desc: "no comments are recognised; files are skipped",
	},
}

// extMap maps a file extension (including the leading '.') to the name of
// a grammar
type extMap map[string]string

// dfltExtMap returns the standard mapping of extensions to grammars
func dfltExtMap() extMap {
	return extMap{
		".js":   grammarJS,
		".css":  grammarCSS,
		".html": grammarHTML,
	}
}

// extsFor returns the sorted extensions which use the named grammar
func (em extMap) extsFor(gName string) []string {
	var exts []string

	for ext, name := range em {
		if name == gName {
			exts = append(exts, ext)
		}
	}

	sort.Strings(exts)

	return exts
}

// joinExts returns the extensions as a single, readable string
func joinExts(exts []string) string {
	return english.Join(exts, ", ", " and ")
}

// grammarNames returns the sorted names of the known grammars
func grammarNames() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// grammarFor returns the grammar to be used for the named file. The
// boolean is false if the extension is not in the map or the grammar has
// no rules, in which case the file should be skipped.
func grammarFor(name string, em extMap) (Grammar, bool) {
	gName, ok := em[filepath.Ext(name)]
	if !ok {
		return Grammar{}, false
	}

	g, ok := grammars[gName]
	if !ok || len(g.rules) == 0 {
		return Grammar{}, false
	}

	return g, true
}
