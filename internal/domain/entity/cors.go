package entity

import (
	"net/http"
	"slices"
	"strings"
)

const (
	wildcard          = "*"
	DefaultCORSMaxAge = 3600
)

type CORSRule struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposeHeaders  []string
	MaxAgeSeconds  int32
}

// DefaultCORSRules lets any origin read and write objects with signed URLs.
func DefaultCORSRules() []CORSRule {
	return []CORSRule{
		{
			AllowedOrigins: []string{wildcard},
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut},
			AllowedHeaders: []string{wildcard},
			ExposeHeaders:  []string{"ETag"},
			MaxAgeSeconds:  DefaultCORSMaxAge,
		},
	}
}

// AllowsBrowserUploads reports whether the rule admits signed GET, HEAD and
// PUT requests with arbitrary headers from any origin.
func (r CORSRule) AllowsBrowserUploads() bool {
	if !slices.Contains(r.AllowedOrigins, wildcard) || !slices.Contains(r.AllowedHeaders, wildcard) {
		return false
	}

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut} {
		if !slices.ContainsFunc(r.AllowedMethods, func(m string) bool {
			return strings.EqualFold(m, method)
		}) {
			return false
		}
	}

	return true
}

func AnyAllowsBrowserUploads(rules []CORSRule) bool {
	return slices.ContainsFunc(rules, CORSRule.AllowsBrowserUploads)
}
