package module

import (
	"adloom/internal/platform/config"
)

// Options configures the recommend module
type Options struct {
	DefaultMaxResults int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("RECOMMEND_")
	return Options{
		DefaultMaxResults: rc.MayInt("DEFAULT_MAX_RESULTS", 3),
	}
}
