// Package repository talks to the remote photo repository: a manifest
// endpoint listing available photos plus plain HTTP downloads.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ManifestEntry describes one photo available in the repository. Key is the
// match key against roster entries (the person's email).
type ManifestEntry struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manifest is the repository photo index.
type Manifest struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Photos      []ManifestEntry `json:"photos"`
}

// Client fetches the manifest and downloads photo files.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a repository client. baseURL is the manifest endpoint;
// token, when non-empty, is sent as a bearer token on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// FetchManifest downloads and parses the photo manifest.
func (c *Client) FetchManifest(ctx context.Context) (*Manifest, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("repository URL is not configured")
	}
	req, err := c.newRequest(ctx, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest request returned %s", resp.Status)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// resolveURL makes entry URLs absolute against the manifest endpoint so
// manifests may use relative paths.
func (c *Client) resolveURL(entryURL string) (string, error) {
	u, err := url.Parse(entryURL)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return entryURL, nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}

// Download fetches one photo into destPath. The write goes through a temp
// file in the same directory so a failed download never leaves a truncated
// photo behind.
func (c *Client) Download(ctx context.Context, entry ManifestEntry, destPath string) error {
	rawURL, err := c.resolveURL(entry.URL)
	if err != nil {
		return fmt.Errorf("bad photo URL %q: %w", entry.URL, err)
	}
	req, err := c.newRequest(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %q: %w", entry.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %q returned %s", entry.Key, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".rollcall-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", entry.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), destPath)
}
