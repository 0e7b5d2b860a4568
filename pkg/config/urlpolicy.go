package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// URLPolicy decides whether the navigate command may load a URL, based on
// compiled allow and deny glob patterns from NavigationConfig.
type URLPolicy struct {
	allow []glob.Glob
	deny  []glob.Glob
}

// NewURLPolicy compiles the navigation patterns. An invalid pattern is a
// configuration error and reported immediately rather than at match time.
func NewURLPolicy(nav NavigationConfig) (*URLPolicy, error) {
	p := &URLPolicy{}

	for _, pattern := range nav.Allow {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allow pattern %q: %w", pattern, err)
		}
		p.allow = append(p.allow, g)
	}

	for _, pattern := range nav.Deny {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid deny pattern %q: %w", pattern, err)
		}
		p.deny = append(p.deny, g)
	}

	return p, nil
}

// Allows returns true if the URL may be navigated to. Deny patterns take
// precedence; with no allow patterns, everything not denied is allowed.
func (p *URLPolicy) Allows(url string) bool {
	for _, pattern := range p.deny {
		if pattern.Match(url) {
			return false
		}
	}

	if len(p.allow) == 0 {
		return true
	}

	for _, pattern := range p.allow {
		if pattern.Match(url) {
			return true
		}
	}
	return false
}
