// Package templates provides access to the embedded installer templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed templates
var content embed.FS

// Read returns the contents of the named template.
func Read(path string) ([]byte, error) {
	return content.ReadFile("templates/" + path)
}

// Walk walks the embedded template tree rooted at the given path.
func Walk(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(content, "templates/"+root, fn)
}
