package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxNonce is used for prefixing login nonce redis key
	PfxNonce = "nonce"
	// PfxListing is used for prefixing listing index keys
	PfxListing = "listing"
	// PfxHistory is used for prefixing per account transaction history
	PfxHistory = "history"
	// PfxEns is used for prefixing ens name cache
	PfxEns = "ens"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpcache"
)

// CustomKey joins components with delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins components with ":"
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// RedisLuaKey wraps the joined key in a hash tag. Keys sharing the same tag
// land on one cluster slot, which lua scripts touching several keys require.
func RedisLuaKey(components ...string) string {
	return "{" + CustomKey(":", components...) + "}"
}

// GetPrefix returns the first component of a key, used as a metrics tag.
func GetPrefix(key string) string {
	key = strings.TrimPrefix(key, "{")
	if i := strings.IndexAny(key, ":}"); i > 0 {
		return key[:i]
	}
	return ""
}
