// Package descriptor defines the contract a module script has to satisfy and
// the evaluators that query a script through that contract.
//
// A descriptor is a shell script that, once sourced, defines a handful of
// MODULE_* variables and a find_alternatives function printing one candidate
// per line in the form "path|name|priority".
package descriptor

import "fmt"

const (
	// Suffix marks a file inside a module directory as a descriptor script.
	Suffix = ".sh"

	// EntryPoint is the shell function a descriptor defines to enumerate its alternatives.
	EntryPoint = "find_alternatives"
)

// Field names one of the variables a descriptor may define.
type Field string

const (
	// FieldDescription is a one-line human description of the module.
	FieldDescription Field = "MODULE_DESCRIPTION"
	// FieldCategory groups modules for display (e.g. "editors").
	FieldCategory Field = "MODULE_CATEGORY"
	// FieldLink is the absolute path of the managed symlink.
	FieldLink Field = "MODULE_LINK"
	// FieldExtraLinks is a colon-separated list of additional links, display only.
	FieldExtraLinks Field = "MODULE_EXTRA_LINKS"
)

// Fields lists every protocol field in the order the metadata loader requests them.
var Fields = []Field{FieldDescription, FieldCategory, FieldLink, FieldExtraLinks}

// String returns the shell variable name.
func (f Field) String() string {
	return string(f)
}

// Valid reports whether f is one of the protocol fields.
// Only valid fields are ever spliced into a shell program.
func (f Field) Valid() bool {
	switch f {
	case FieldDescription, FieldCategory, FieldLink, FieldExtraLinks:
		return true
	default:
		return false
	}
}

// fieldProgram returns the shell program that sources the descriptor passed as $1
// and prints the value of field without a trailing newline.
func fieldProgram(f Field) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("unknown descriptor field %q", string(f))
	}
	return `source "$1" && printf '%s' "$` + string(f) + `"`, nil
}

// enumerateProgram sources the descriptor passed as $1 and calls its entry point.
const enumerateProgram = `source "$1" && ` + EntryPoint
