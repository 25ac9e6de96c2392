package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"wayfind/internal/config"
)

// caseMode is the --case flag: auto follows the config, the other two force
// a comparison mode for this invocation. Forcing applies to the pre-filter
// and the ranking together; there is no way to set them apart.
type caseMode string

const (
	caseAuto        caseMode = "auto"
	caseSensitive   caseMode = "sensitive"
	caseInsensitive caseMode = "insensitive"
)

var caseOverride = caseAuto

var _ pflag.Value = (*caseMode)(nil)

func (c *caseMode) String() string { return string(*c) }

func (c *caseMode) Set(v string) error {
	switch caseMode(v) {
	case caseAuto, caseSensitive, caseInsensitive:
		*c = caseMode(v)
		return nil
	}
	return fmt.Errorf("must be one of: auto, sensitive, insensitive")
}

func (c *caseMode) Type() string { return "mode" }

func applyCaseOverride(cfg *config.Config) {
	switch caseOverride {
	case caseSensitive:
		cfg.Search.CaseSensitive = true
	case caseInsensitive:
		cfg.Search.CaseSensitive = false
	}
}
