package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nickwells/param.mod/v6/psetter"
)

// extMapSetter is used as a parameter setter for mapping file extensions
// to grammars
type extMapSetter struct {
	psetter.ValueReqMandatory

	Value *extMap
}

// SetWithVal checks that the parameter value is of the form ext=grammar.
// The extension must start with a '.', must have at least one character
// following the '.' and must not contain a path separator. The grammar
// must be one of the known grammars. The extension is then added to the
// map, replacing any existing entry.
func (s extMapSetter) SetWithVal(_, paramVal string) error {
	ext, gName, ok := strings.Cut(paramVal, "=")
	if !ok {
		return fmt.Errorf(
			"missing '=': the parameter %q should be of the form: ext=grammar",
			paramVal)
	}

	if !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("the extension %q must start with a '.'", ext)
	}

	if len(ext) == 1 {
		return fmt.Errorf("the extension %q has nothing after the '.'", ext)
	}

	if strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("the extension %q must not contain a path separator",
			ext)
	}

	if _, ok := grammars[gName]; !ok {
		return fmt.Errorf("unknown grammar: %q. Must be one of: %s",
			gName, strings.Join(grammarNames(), ", "))
	}

	(*s.Value)[ext] = gName

	return nil
}

// AllowedValues returns a description of a well-formed value
func (s extMapSetter) AllowedValues() string {
	return "a string of the form .ext=grammar." +
		"\n\n" +
		"The extension must start with a '.' and files with this" +
		" extension will have comments removed using the named grammar." +
		" Giving a grammar of '" + grammarNone + "' will stop files" +
		" with the extension from being processed." +
		"\n\n" +
		"The grammar must be one of: " +
		strings.Join(grammarNames(), ", ")
}

// CurrentValue returns the current setting of the parameter value
func (s extMapSetter) CurrentValue() string {
	exts := make([]string, 0, len(*s.Value))
	for ext := range *s.Value {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	rval := ""
	sep := ""

	for _, ext := range exts {
		rval += sep + ext + "=" + (*s.Value)[ext]
		sep = "\n"
	}

	return rval
}

// CheckSetter panics if the setter has not been properly created - if the
// Value is nil.
func (s extMapSetter) CheckSetter(name string) {
	if s.Value == nil {
		panic(psetter.NilValueMessage(name, "extMapSetter"))
	}
}

// ValDescribe returns a short string showing what the value should look like.
func (s extMapSetter) ValDescribe() string {
	return ".ext=grammar"
}
