// Package fs provides filesystem-backed site profiles, letting operators add
// publisher-specific extraction rules without rebuilding the binary.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/newsclip"
)

// Ensure ProfileStore implements newsclip.ProfileRegistry at compile time.
var _ newsclip.ProfileRegistry = (*ProfileStore)(nil)

// ProfileStore loads site profiles from JSON files in a directory. Profiles
// are read once at construction; the store is immutable afterwards and safe
// for concurrent use. Lookups that miss fall through to an optional fallback
// registry.
type ProfileStore struct {
	profiles map[string]*newsclip.SiteProfile
	fallback newsclip.ProfileRegistry
}

// profileFile is the JSON representation of a site profile.
type profileFile struct {
	Domain           string   `json:"domain"`
	BodySelectors    []string `json:"bodySelectors"`
	AuthorSelectors  []string `json:"authorSelectors"`
	AuthorPatterns   []string `json:"authorPatterns"`
	DateSelectors    []string `json:"dateSelectors"`
	ExcludeSelectors []string `json:"excludeSelectors"`
}

// NewProfileStore loads every *.json profile in dir. The fallback registry,
// if non-nil, serves domains the directory does not cover.
func NewProfileStore(dir string, fallback newsclip.ProfileRegistry) (*ProfileStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile directory: %w", err)
	}

	profiles := make(map[string]*newsclip.SiteProfile)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		profile, err := loadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("loading profile %s: %w", entry.Name(), err)
		}
		profiles[profile.Domain] = profile
	}

	return &ProfileStore{profiles: profiles, fallback: fallback}, nil
}

// Lookup returns the profile for a domain, or nil if none is registered.
func (s *ProfileStore) Lookup(domain string) *newsclip.SiteProfile {
	if p, ok := s.profiles[domain]; ok {
		return p
	}
	if s.fallback != nil {
		return s.fallback.Lookup(domain)
	}
	return nil
}

// Domains returns the domains loaded from the directory, excluding fallback.
func (s *ProfileStore) Domains() []string {
	domains := make([]string, 0, len(s.profiles))
	for d := range s.profiles {
		domains = append(domains, d)
	}
	return domains
}

// loadProfile reads and validates one profile file.
func loadProfile(path string) (*newsclip.SiteProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf profileFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if pf.Domain == "" {
		return nil, fmt.Errorf("profile is missing the domain field")
	}

	profile := &newsclip.SiteProfile{
		Domain:           pf.Domain,
		BodySelectors:    pf.BodySelectors,
		AuthorSelectors:  pf.AuthorSelectors,
		DateSelectors:    pf.DateSelectors,
		ExcludeSelectors: pf.ExcludeSelectors,
	}
	for _, pattern := range pf.AuthorPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling author pattern %q: %w", pattern, err)
		}
		profile.AuthorPatterns = append(profile.AuthorPatterns, re)
	}

	return profile, nil
}
