package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var embedded embed.FS

// embeddedRoot is the search-root label reported for the built-in set.
const embeddedRoot = "embedded:files"

// EmbeddedFS returns the built-in template set rooted at its top directory,
// so ids look like "fastapi/sqlalchemy/main.py.tmpl".
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// "files" is a constant, valid path.
		panic(err)
	}
	return sub
}
