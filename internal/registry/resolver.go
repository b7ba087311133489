// Package registry resolves npm package versions from a registry endpoint.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/exgen-dev/exgen/pkg/models"
)

const (
	// DefaultBaseURL is the public npm registry.
	DefaultBaseURL = "https://registry.npmjs.org"

	// acceptHeader requests the abbreviated packument, which still
	// carries the dist-tags the resolver needs.
	acceptHeader = "application/vnd.npm.install-v1+json"

	userAgent = "exgen"

	defaultTimeout = 10 * time.Second
)

// packument is the subset of the npm registry document the resolver reads.
type packument struct {
	Name     string            `json:"name"`
	DistTags map[string]string `json:"dist-tags"`
}

// Resolver looks up the latest published version of npm packages.
type Resolver interface {
	// Resolve fetches the package metadata and returns the package
	// name paired with its latest published version.
	Resolve(ctx context.Context, name string) (models.Dependency, error)
}

type resolver struct {
	baseURL string
	client  *http.Client
}

// NewResolver creates a Resolver against the given registry base URL.
// An empty baseURL selects the public npm registry. A nil client gets
// a default client with a 10 second timeout; tests pass an
// httptest.Server URL and client instead.
func NewResolver(baseURL string, client *http.Client) Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Resolve performs a single GET {baseURL}/{name} lookup and extracts
// dist-tags.latest from the response.
func (r *resolver) Resolve(ctx context.Context, name string) (models.Dependency, error) {
	endpoint := r.baseURL + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Dependency{}, fmt.Errorf("registry: create request for %s: %w", name, err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return models.Dependency{}, fmt.Errorf("registry: request %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return models.Dependency{}, fmt.Errorf("registry: package %s not found", name)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Dependency{}, fmt.Errorf("registry: unexpected status %d for %s", resp.StatusCode, name)
	}

	var doc packument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return models.Dependency{}, fmt.Errorf("registry: decode response for %s: %w", name, err)
	}

	latest, ok := doc.DistTags["latest"]
	if !ok || latest == "" {
		return models.Dependency{}, fmt.Errorf("registry: no latest dist-tag for %s", name)
	}
	if _, err := semver.NewVersion(latest); err != nil {
		return models.Dependency{}, fmt.Errorf("registry: invalid version %q for %s: %w", latest, name, err)
	}

	resolved := doc.Name
	if resolved == "" {
		resolved = name
	}
	return models.Dependency{Name: resolved, Version: latest}, nil
}
