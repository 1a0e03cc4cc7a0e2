// Package assets bundles the converted datasets into the binary.
package assets

import (
	"embed"
	"io/fs"
)

// FS holds json/{kind}.json for every bundled dataset.
//
//go:embed json/*.json
var FS embed.FS

// JSON returns the bundled datasets rooted at the json directory, so that
// files open as "{kind}.json".
func JSON() fs.FS {
	sub, err := fs.Sub(FS, "json")
	if err != nil {
		panic(err)
	}
	return sub
}
