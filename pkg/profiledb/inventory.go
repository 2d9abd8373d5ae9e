package profiledb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/macshift-net/macshift/pkg/util"
)

// InventoryDevice is one legacy switch to collect profiles from.
type InventoryDevice struct {
	Hostname string `yaml:"hostname"`
	Host     string `yaml:"host"`
	Username string `yaml:"username,omitempty"` // falls back to the CLI-level default
	Password string `yaml:"password,omitempty"`
}

// Inventory is the parsed device inventory file.
type Inventory struct {
	Devices []InventoryDevice `yaml:"devices"`
}

// LoadInventory reads and validates a YAML inventory file.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}

	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory: %w", err)
	}

	for i, d := range inv.Devices {
		if d.Hostname == "" {
			return nil, fmt.Errorf("inventory device %d: hostname is required: %w", i, util.ErrInvalidConfig)
		}
		if d.Host == "" {
			return nil, fmt.Errorf("inventory device %q: host is required: %w", d.Hostname, util.ErrInvalidConfig)
		}
	}
	return &inv, nil
}
