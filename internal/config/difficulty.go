package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMode is the block difficulty used until the player picks one.
const DefaultMode = 1

// ParseMode resolves a difficulty given as a mode number ("2") or a
// preset name ("intermediate"). Empty input yields DefaultMode.
func (c Config) ParseMode(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultMode, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := c.Difficulty(n); ok {
			return n, nil
		}
		return 0, fmt.Errorf("%w: unknown difficulty mode %d", ErrInvalid, n)
	}
	for _, d := range c.Blocks.Difficulties {
		if strings.ToLower(d.Name) == s {
			return d.Mode, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q, want one of %s", ErrInvalid, s, strings.Join(c.Names(), ", "))
}

// Names returns the difficulty names in mode order as listed in the config.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Blocks.Difficulties))
	for _, d := range c.Blocks.Difficulties {
		names = append(names, d.Name)
	}
	return names
}
