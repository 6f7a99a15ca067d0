// Package htmldoc implements the documentation loader and the HTML table
// region parser behind the doctable contracts.
package htmldoc

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/docfold/tablegen/pkg/doctable"
)

// DefaultUserAgent identifies fetches against the documentation host.
const DefaultUserAgent = "tablegen/1.1"

// Loader implements doctable.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	timeout   time.Duration
	userAgent string
}

// Ensure the implementation satisfies the public interface.
var _ doctable.Loader = (*Loader)(nil)

// NewLoader constructs a Loader from pre-resolved options.
func NewLoader(options doctable.LoaderOptions) *Loader {
	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Loader{
		fs:        options.FileSystem,
		http:      &http.Client{Timeout: options.RequestTimeout},
		timeout:   options.RequestTimeout,
		userAgent: userAgent,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src doctable.Source) (doctable.Document, error) {
	if src == nil {
		return doctable.Document{}, errors.New("htmldoc loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case doctable.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case doctable.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case doctable.SourceKindURL:
		data, err = l.loadHTTP(ctx, src.Location())
	default:
		err = errors.New("htmldoc loader: unsupported source kind")
	}
	if err != nil {
		return doctable.Document{}, err
	}

	return doctable.NewDocument(src, data)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("htmldoc loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("htmldoc loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("htmldoc loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return fs.ReadFile(filesystem, name)
}

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("htmldoc loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if l.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("htmldoc loader: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}
