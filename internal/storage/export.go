package storage

import (
	"os"

	"github.com/san-kum/moltop/internal/molfile"
)

// ExportJSON writes doc as JSON to path, or to stdout when path is "-".
func ExportJSON(path string, doc *molfile.Document) error {
	if path == "-" {
		return doc.EncodeJSON(os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return doc.EncodeJSON(file)
}
