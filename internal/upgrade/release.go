// Package upgrade checks GitHub releases for a newer soon.
package upgrade

import (
	"github.com/Masterminds/semver/v3"
)

// Release represents a GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Draft       bool   `json:"draft"`
	Prerelease  bool   `json:"prerelease"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
	Body        string `json:"body"`
}

// Version parses the release tag as a semantic version.
func (r *Release) Version() (*semver.Version, error) {
	return semver.NewVersion(r.TagName)
}

// Result is the outcome of comparing the running version to the latest release.
type Result struct {
	Current         string   `json:"current" yaml:"current"`
	Latest          string   `json:"latest" yaml:"latest"`
	URL             string   `json:"url,omitempty" yaml:"url,omitempty"`
	UpdateAvailable bool     `json:"update_available" yaml:"update_available"`
	Release         *Release `json:"-" yaml:"-"`
}
