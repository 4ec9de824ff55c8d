package encoder

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects how hardware acceleration is resolved.
type Mode int

const (
	// ModeDisabled skips probing entirely and resolves to the null
	// configuration.
	ModeDisabled Mode = iota
	// ModeAuto probes the platform-ordered candidate list and accepts the
	// first success.
	ModeAuto
	// ModeExplicit probes exactly one named candidate.
	ModeExplicit
)

// ParseMode interprets a configuration value: "off"/"none"/"disabled",
// "auto" (or empty), or an accelerator name from the catalog.
func ParseMode(value string) (Mode, string, error) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	switch cleaned {
	case "off", "none", "disabled":
		return ModeDisabled, "", nil
	case "", "auto":
		return ModeAuto, "", nil
	}
	if _, ok := Lookup(cleaned); ok {
		return ModeExplicit, cleaned, nil
	}
	known := Names()
	sort.Strings(known)
	return ModeDisabled, "", fmt.Errorf("unknown hwaccel mode %q (expected off, auto, or one of %s)", value, strings.Join(known, ", "))
}

// Config is the resolved encoder selection for a run. The zero value is the
// null configuration: no hardware path, callers fall back to the configured
// software codec or stream copy. Resolved once per run and never mutated.
type Config struct {
	Name      string
	EncoderID string
	ExtraArgs []string
}

// IsNull reports whether no hardware encoder was resolved.
func (c Config) IsNull() bool {
	return c.EncoderID == ""
}

// Null returns the no-acceleration configuration.
func Null() Config {
	return Config{}
}
