package vocab

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var builtin embed.FS

// Embedded returns the built-in vocabulary lists.
func Embedded() fs.FS {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
