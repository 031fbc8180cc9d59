package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"docfinder/internal/domain"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Source retrieves the full doctor directory
type Source interface {
	FetchAll(ctx context.Context) ([]domain.Doctor, error)
}

// HTTPSource fetches the directory with a single GET request
type HTTPSource struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTPSource creates an HTTP source with the given request timeout (0 means none)
func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    endpoint,
		Client: &http.Client{Timeout: timeout},
	}
}

// FetchAll performs the request and decodes the JSON array
func (s *HTTPSource) FetchAll(ctx context.Context) ([]domain.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return decode(resp.Body, s.Logger)
}

// FileSource reads the directory from a local JSON file
type FileSource struct {
	Path   string
	Logger *zap.Logger
}

// FetchAll reads and decodes the file
func (s *FileSource) FetchAll(ctx context.Context) ([]domain.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory file: %w", err)
	}
	defer f.Close()

	return decode(f, s.Logger)
}

// NewSource picks a source for the endpoint: http(s) URLs fetch remotely,
// file:// URLs and plain paths read from disk.
func NewSource(endpoint string, timeout time.Duration, logger *zap.Logger) (Source, error) {
	if endpoint == "" {
		return nil, errors.New("empty endpoint")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		src := NewHTTPSource(endpoint, timeout)
		src.Logger = logger
		return src, nil
	case "file":
		path := u.Path
		if u.Host != "" && u.Host != "localhost" {
			path = u.Host + u.Path
		}
		return &FileSource{Path: path, Logger: logger}, nil
	case "":
		return &FileSource{Path: endpoint, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
}

// decode reads a JSON array of records. A record that does not fit the
// Doctor shape is dropped and logged; only a payload that is not an array fails.
func decode(r io.Reader, logger *zap.Logger) ([]domain.Doctor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode directory: %w", err)
	}

	doctors := make([]domain.Doctor, 0, len(records))
	for i, record := range records {
		var d domain.Doctor
		if err := json.Unmarshal(record, &d); err != nil {
			logger.Warn("dropping malformed doctor record",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

var validate = validator.New()

// Sanitize drops records that fail validation and returns the rest in their
// original order together with the number of dropped records.
func Sanitize(doctors []domain.Doctor, logger *zap.Logger) ([]domain.Doctor, int) {
	kept := make([]domain.Doctor, 0, len(doctors))
	dropped := 0
	for i, d := range doctors {
		if err := validate.Struct(d); err != nil {
			dropped++
			logger.Warn("dropping invalid doctor record",
				zap.Int("index", i),
				zap.String("name", d.Name),
				zap.Error(err))
			continue
		}
		kept = append(kept, d)
	}
	return kept, dropped
}

// Load fetches the directory once. Any failure yields an empty directory;
// the error is logged and reported through failed, never returned.
func Load(ctx context.Context, src Source, logger *zap.Logger) (doctors []domain.Doctor, failed bool) {
	start := time.Now()
	raw, err := src.FetchAll(ctx)
	if err != nil {
		logger.Error("directory fetch failed, showing an empty directory", zap.Error(err))
		return []domain.Doctor{}, true
	}

	doctors, dropped := Sanitize(raw, logger)
	logger.Info("directory loaded",
		zap.Int("records", len(doctors)),
		zap.Int("dropped", dropped),
		zap.Duration("took", time.Since(start)))
	return doctors, false
}
