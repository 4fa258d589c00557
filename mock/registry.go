package mock

import "github.com/fwojciec/newsclip"

var _ newsclip.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of newsclip.ProfileRegistry.
type ProfileRegistry struct {
	LookupFn func(domain string) *newsclip.SiteProfile
}

func (r *ProfileRegistry) Lookup(domain string) *newsclip.SiteProfile {
	return r.LookupFn(domain)
}
