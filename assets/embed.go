// assets/embed.go
//
// Default word lists compiled into the binary so the solver runs with no
// files configured:
//   - answers.txt: candidate answers.
//   - allowed.txt: extra guesses that are never answers.
//
// Both are one word per line; '#' comment lines are allowed.

package assets

import (
	"embed"
	"io/fs"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Open returns one of the embedded lists for reading.
func Open(name string) (fs.File, error) {
	return FS.Open(name)
}
