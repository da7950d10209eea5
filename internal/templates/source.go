package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yantr-labs/yantr/internal/branding"
)

// Fetcher returns the content of a template file addressed by its
// registry-relative path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// FetchError reports a non-200 response from a registry server.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: server returned status %d", e.URL, e.StatusCode)
}

// HTTPSource fetches files relative to a base URL.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures an HTTPSource.
type Option func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSource) {
		s.httpClient = c
	}
}

// WithTimeout bounds each request. Zero disables the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) {
		s.timeout = d
	}
}

// NewHTTPSource creates a source rooted at baseURL.
func NewHTTPSource(baseURL string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseURL returns the URL files are fetched relative to.
func (s *HTTPSource) BaseURL() string {
	return s.baseURL
}

// Fetch downloads baseURL/path.
func (s *HTTPSource) Fetch(ctx context.Context, path string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	url := s.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-cli")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}

// ErrOutsideRoot is returned by DirSource for paths that escape its root.
var ErrOutsideRoot = errors.New("path escapes registry root")

// DirSource reads files from a local registry directory.
type DirSource struct {
	Root string
}

// Fetch reads Root/path.
func (s DirSource) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideRoot)
	}

	data, err := os.ReadFile(filepath.Join(s.Root, rel))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// NewSource picks an HTTPSource for http(s) locations and a DirSource
// for everything else. Options apply only to HTTP sources.
func NewSource(location string, opts ...Option) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, opts...)
	}
	return DirSource{Root: location}
}
