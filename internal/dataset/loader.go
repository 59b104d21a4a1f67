package dataset

import "io"

// Loader decodes a weather dataset from one file format.
type Loader interface {
	CanLoad(filename string) bool
	Load(r io.Reader, opt Options) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// loaderFor picks the first registered loader for filename, falling back to CSV.
func loaderFor(filename string) Loader {
	for _, l := range registry {
		if l.CanLoad(filename) {
			return l
		}
	}
	return csvLoader{}
}

func init() {
	Register(csvLoader{})
	Register(tsvLoader{})
	Register(xlsxLoader{})
}
