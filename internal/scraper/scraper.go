// Package scraper discovers a Concept3D campus map and downloads its data.
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/openindoormaps/gumap/internal/config"
)

var (
	// ErrNoPage indicates that no candidate URL served a campus map page.
	ErrNoPage = errors.New("no campus map page found")
	// ErrNoMapID indicates that no pattern matched a map ID in the page.
	ErrNoMapID = errors.New("no map ID found in page")
)

// Scraper holds the HTTP client and configuration for one run.
type Scraper struct {
	client *http.Client
	cfg    *config.Config
}

// New creates a Scraper using the given client for all requests.
func New(client *http.Client, cfg *config.Config) *Scraper {
	return &Scraper{client: client, cfg: cfg}
}

// get issues a GET with the configured User-Agent and returns the body
// for 200 responses.
func (s *Scraper) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
