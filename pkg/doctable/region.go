package doctable

import (
	"context"
	"io/fs"
	"time"
)

// Region is one table region of the documentation page: the heading text it
// belongs to, the header cells of its table, and the raw data rows. Cell text
// keeps its original leading whitespace since indentation encodes nesting.
type Region struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Loader fetches the raw documentation payload for a source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Parser turns a raw documentation payload into ordered table regions.
type Parser interface {
	Regions(ctx context.Context, doc Document) ([]Region, error)
}

// LoaderOptions configures the built-in loader implementation.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups. Optional.
	FileSystem fs.FS

	// RequestTimeout bounds HTTP fetches. Zero means no explicit timeout.
	RequestTimeout time.Duration

	// UserAgent overrides the User-Agent header sent on HTTP fetches.
	UserAgent string
}
