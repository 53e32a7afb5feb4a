package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default agent ports.
const (
	PortFlights    = 12021
	PortHotels     = 12022
	PortActivities = 12023
	PortBudget     = 12024
	PortHost       = 11020
)

// remotesFile is the on-disk shape of the remote agents file.
type remotesFile struct {
	RemoteAgents map[string]string `yaml:"remote_agents"`
}

// DefaultRemotes maps agent names to their localhost base URLs.
func DefaultRemotes() map[string]string {
	return map[string]string{
		"flights":    fmt.Sprintf("http://localhost:%d", PortFlights),
		"hotels":     fmt.Sprintf("http://localhost:%d", PortHotels),
		"activities": fmt.Sprintf("http://localhost:%d", PortActivities),
		"budget":     fmt.Sprintf("http://localhost:%d", PortBudget),
	}
}

// LoadRemotes reads the YAML remotes file, overlaying its entries on the
// defaults. An empty path returns the defaults unchanged.
func LoadRemotes(path string) (map[string]string, error) {
	remotes := DefaultRemotes()
	if path == "" {
		return remotes, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read remotes file: %w", err)
	}
	var file remotesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse remotes file: %w", err)
	}
	for name, url := range file.RemoteAgents {
		if url != "" {
			remotes[name] = url
		}
	}
	return remotes, nil
}
