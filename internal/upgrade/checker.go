package upgrade

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	soonerrors "github.com/chazuruo/soon/internal/errors"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// devVersion is the version string of untagged builds.
const devVersion = "dev"

// Checker checks for available updates.
type Checker struct {
	// BaseURL is the API root. Tests point it at an httptest server.
	BaseURL string

	repoOwner  string
	repoName   string
	includePre bool
	httpClient *http.Client
	logger     *zap.Logger
}

// NewChecker creates a new Checker for the GitHub repository "owner/name".
func NewChecker(repository string, includePre bool, logger *zap.Logger) (*Checker, error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return nil, NewError(ExitGenericError, fmt.Sprintf("Invalid repository %q", repository), soonerrors.ErrInvalid)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		BaseURL:    DefaultBaseURL,
		repoOwner:  owner,
		repoName:   name,
		includePre: includePre,
		httpClient: http.DefaultClient,
		logger:     logger,
	}, nil
}

// CheckLatest fetches the newest published release from GitHub.
// Drafts are always skipped, pre-releases unless the checker includes them,
// and releases whose tag is not a semantic version.
func (c *Checker) CheckLatest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases", strings.TrimRight(c.BaseURL, "/"), c.repoOwner, c.repoName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewError(ExitNetworkError, "Failed to create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "soon-update")

	c.logger.Debug("fetching releases", zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewError(ExitNetworkError, "Failed to fetch releases", fmt.Errorf("%w: %w", soonerrors.ErrNetwork, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewError(ExitNetworkError,
			fmt.Sprintf("GitHub API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			soonerrors.ErrNetwork)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, NewError(ExitGenericError, "Failed to decode releases", err)
	}

	for i := range releases {
		r := &releases[i]
		if r.Draft || r.TagName == "" {
			continue
		}
		if !c.includePre && r.Prerelease {
			continue
		}
		if _, err := r.Version(); err != nil {
			c.logger.Debug("skipping release with non-semver tag", zap.String("tag", r.TagName))
			continue
		}
		return r, nil
	}

	return nil, NewError(ExitGenericError, "No suitable release found", soonerrors.ErrNotFound)
}

// Check compares current against the latest release.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	release, err := c.CheckLatest(ctx)
	if err != nil {
		return nil, err
	}

	cmp, err := CompareVersions(current, release.TagName)
	if err != nil {
		return nil, NewError(ExitGenericError, "Failed to compare versions", err)
	}

	c.logger.Debug("compared versions",
		zap.String("current", current),
		zap.String("latest", release.TagName),
		zap.Int("cmp", cmp))

	return &Result{
		Current:         current,
		Latest:          release.TagName,
		URL:             release.HTMLURL,
		UpdateAvailable: cmp < 0,
		Release:         release,
	}, nil
}

// CompareVersions compares two version strings.
// Returns: -1 if current < latest, 0 if equal, 1 if current > latest.
// A "dev" or empty current version is older than any release.
func CompareVersions(current, latest string) (int, error) {
	if current == "" || current == devVersion {
		return -1, nil
	}
	if latest == devVersion {
		return 1, nil
	}

	cv, err := semver.NewVersion(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}

	return cv.Compare(lv), nil
}

// SetHTTPClient sets the HTTP client (useful for testing).
func (c *Checker) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
