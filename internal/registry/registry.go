// Package registry holds the static identity registry of the upstream bots
// and classifies message authors into logical roles.
package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bwmarrin/snowflake"
)

// Role is a bitmask: one identity can be both a status and a confirmation
// source, so callers check each bit independently.
type Role uint8

const (
	Unrelated          Role = 0
	StatusSource       Role = 1 << 0
	ConfirmationSource Role = 1 << 1
)

func (r Role) IsStatus() bool {
	return r&StatusSource != 0
}

func (r Role) IsConfirmation() bool {
	return r&ConfirmationSource != 0
}

// Registry maps the four known upstream accounts to their roles. It is built
// once at startup and read-only afterwards.
type Registry struct {
	statusPrimary   snowflake.ID
	statusSecondary snowflake.ID
	confirmation    snowflake.ID
	confirmationAux snowflake.ID
}

// Default returns the registry with the production account IDs baked in.
func Default() *Registry {
	return &Registry{
		statusPrimary:   607661949194469376,
		statusSecondary: 640402425395675178,
		confirmation:    661826254215053324,
		confirmationAux: 1014282115086565486,
	}
}

type botsFile struct {
	Bots struct {
		StatusPrimary   int64 `toml:"status-primary"`
		StatusSecondary int64 `toml:"status-secondary"`
		Confirmation    int64 `toml:"confirmation"`
		ConfirmationAux int64 `toml:"confirmation-aux"`
	} `toml:"bots"`
}

// LoadFile builds a registry from a TOML override file. All four entries are
// required; a zero or missing ID is a configuration error.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bots file: %w", err)
	}

	var bf botsFile
	if err := toml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing bots file %s: %w", path, err)
	}

	b := bf.Bots
	if b.StatusPrimary == 0 || b.StatusSecondary == 0 || b.Confirmation == 0 || b.ConfirmationAux == 0 {
		return nil, fmt.Errorf("bots file %s: all four bot IDs must be set and non-zero", path)
	}

	return &Registry{
		statusPrimary:   snowflake.ID(b.StatusPrimary),
		statusSecondary: snowflake.ID(b.StatusSecondary),
		confirmation:    snowflake.ID(b.Confirmation),
		confirmationAux: snowflake.ID(b.ConfirmationAux),
	}, nil
}

// IsStatusSource reports whether id belongs to a bot whose messages carry
// stage snapshots or retryable trigger lines.
func (r *Registry) IsStatusSource(id snowflake.ID) bool {
	return id == r.statusPrimary || id == r.statusSecondary
}

// IsConfirmationSource reports whether id belongs to a bot that announces
// lookup results. The secondary status account is also a confirmation source.
func (r *Registry) IsConfirmationSource(id snowflake.ID) bool {
	return id == r.statusSecondary || id == r.confirmation || id == r.confirmationAux
}

// Classify returns the role bitmask for id.
func (r *Registry) Classify(id snowflake.ID) Role {
	role := Unrelated
	if r.IsStatusSource(id) {
		role |= StatusSource
	}
	if r.IsConfirmationSource(id) {
		role |= ConfirmationSource
	}
	return role
}
