package module

import (
	"adloom/internal/platform/config"
)

// Options configures the issues module
type Options struct {
	MaxKeywords      int
	SummarySentences int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	is := cfg.Prefix("ISSUES_")
	return Options{
		MaxKeywords:      is.MayInt("MAX_KEYWORDS", 0),
		SummarySentences: is.MayInt("SUMMARY_SENTENCES", 0),
	}
}
