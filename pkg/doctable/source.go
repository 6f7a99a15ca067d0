// Package doctable defines the public contracts between the documentation
// fetch/parse layers and the schema inference core: where a document comes
// from, its raw payload, and the table regions extracted from it.
package doctable

// Source identifies where a documentation page originated, so loaders can
// operate on files, fs.FS entries, or URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct{ path string }

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

type fsSource struct{ name string }

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

type urlSource struct{ url string }

func (s urlSource) Kind() SourceKind { return SourceKindURL }
func (s urlSource) Location() string { return s.url }

// SourceFromFile references a document on the local filesystem.
func SourceFromFile(path string) Source { return fileSource{path: path} }

// SourceFromFS references a document inside a configured fs.FS.
func SourceFromFS(name string) Source { return fsSource{name: name} }

// SourceFromURL references a document fetched over HTTP(S).
func SourceFromURL(url string) Source { return urlSource{url: url} }
