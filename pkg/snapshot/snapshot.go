// Package snapshot reads and writes the sectioned text document produced by
// collecting a legacy switch: a MAC address table, a VLAN name listing, and
// the raw running configuration, each under a "=== SECTION ===" marker.
package snapshot

import (
	"fmt"
	"os"
	"strings"

	"github.com/macshift-net/macshift/pkg/ios"
)

// Section markers in the collector output file.
const (
	SectionMACTable      = "MAC_ADDRESS_TABLE"
	SectionVLANNames     = "VLAN_NAMES"
	SectionRunningConfig = "RUNNING_CONFIG"
)

// MACRecord is one row of the snapshot's MAC table section:
// vlan, mac, interface as seen by the legacy device, and an optional role
// (the VLAN's name at collection time).
type MACRecord struct {
	VLAN      string `json:"vlan"`
	MAC       string `json:"mac"` // normalized
	Interface string `json:"interface"`
	Role      string `json:"role,omitempty"`
}

// Snapshot is one parsed legacy-device snapshot. A missing section leaves
// the corresponding field empty; that is the caller's signal to decide
// whether to proceed.
type Snapshot struct {
	Hostname      string
	MACRecords    []MACRecord
	Catalog       *VLANCatalog
	RunningConfig string
}

// Parse reads a sectioned snapshot document. Unknown sections are ignored,
// malformed rows are skipped, and missing sections yield empty fields,
// never an error.
func Parse(text string) *Snapshot {
	snap := &Snapshot{Catalog: NewVLANCatalog()}
	section := ""
	var configLines []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "===") {
			switch {
			case strings.Contains(line, SectionMACTable):
				section = SectionMACTable
			case strings.Contains(line, SectionVLANNames):
				section = SectionVLANNames
			case strings.Contains(line, SectionRunningConfig):
				section = SectionRunningConfig
			default:
				section = ""
			}
			continue
		}

		switch section {
		case SectionMACTable:
			if line == "" {
				continue
			}
			parts := strings.Split(line, ",")
			if len(parts) < 3 {
				continue
			}
			rec := MACRecord{
				VLAN:      strings.TrimSpace(parts[0]),
				MAC:       ios.NormalizeMAC(parts[1]),
				Interface: strings.TrimSpace(parts[2]),
			}
			if len(parts) >= 4 {
				rec.Role = strings.TrimSpace(parts[3])
			}
			snap.MACRecords = append(snap.MACRecords, rec)
		case SectionVLANNames:
			if line == "" {
				continue
			}
			parts := strings.Split(line, ",")
			if len(parts) < 2 {
				continue
			}
			snap.Catalog.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		case SectionRunningConfig:
			// Raw text: keep original spacing, running-configs are
			// whitespace-significant.
			configLines = append(configLines, raw)
		}
	}

	snap.RunningConfig = strings.Join(configLines, "\n")
	return snap
}

// ReadFile parses a snapshot document from disk.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(string(data)), nil
}

// Render serializes the snapshot back into the sectioned document format.
func (s *Snapshot) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", SectionMACTable)
	if len(s.MACRecords) == 0 {
		b.WriteString("No MAC addresses found on the switch.\n")
	}
	for _, rec := range s.MACRecords {
		fmt.Fprintf(&b, "%s,%s,%s,%s\n", rec.VLAN, rec.MAC, rec.Interface, rec.Role)
	}

	fmt.Fprintf(&b, "\n=== %s ===\n", SectionVLANNames)
	for _, id := range s.Catalog.IDs() {
		name, _ := s.Catalog.Name(id)
		fmt.Fprintf(&b, "%s,%s\n", id, name)
	}

	fmt.Fprintf(&b, "\n=== %s ===\n", SectionRunningConfig)
	b.WriteString(s.RunningConfig)
	return b.String()
}

// WriteFile writes the rendered snapshot document to disk.
func (s *Snapshot) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(s.Render()), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
