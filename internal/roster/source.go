package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source retrieves the raw player dataset. Implementations cover the local
// JSON file, a remote JSON document, and the curated Postgres table.
type Source interface {
	Fetch(ctx context.Context) ([]Player, error)
}

// FileSource reads the player dataset from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]Player, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	return decodePlayers(s.Path, data)
}

// HTTPSource fetches the player dataset from a remote JSON document. A
// non-2xx response is a load failure, distinct from transport errors.
type HTTPSource struct {
	URL    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client, timeout time.Duration) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: s.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: s.URL, Err: err}
	}
	return decodePlayers(s.URL, data)
}

func decodePlayers(source string, data []byte) ([]Player, error) {
	var players []Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return players, nil
}

// Load fetches the dataset from a source and validates it into a roster.
// This is the single suspension point of the whole service.
func Load(ctx context.Context, src Source) (*Roster, error) {
	players, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	r, err := New(players)
	if err != nil {
		return nil, &LoadError{Source: "dataset", Err: err}
	}
	return r, nil
}
