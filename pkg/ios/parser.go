package ios

import "strings"

// ParseMACTable parses "show mac address-table" output. A data row is any
// line whose first whitespace-delimited token is a VLAN number and which has
// at least four columns; headers, dash rules, and short lines are skipped.
// The hardware-address column is normalized, the port is the last column.
func ParseMACTable(output string) []MACEntry {
	var entries []MACEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "----") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 || !isDigits(parts[0]) {
			continue
		}
		entries = append(entries, MACEntry{
			VLAN:      parts[0],
			MAC:       NormalizeMAC(parts[1]),
			Type:      parts[2],
			Interface: parts[len(parts)-1],
		})
	}
	return entries
}

// ParseVLANBrief parses "show vlan brief" output. A data row is any line
// whose first token is numeric; the second token is the VLAN name.
func ParseVLANBrief(output string) []VLANBriefEntry {
	var entries []VLANBriefEntry
	for _, line := range strings.Split(output, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 || !isDigits(parts[0]) {
			continue
		}
		entries = append(entries, VLANBriefEntry{ID: parts[0], Name: parts[1]})
	}
	return entries
}

// switchport parser states
type switchportState int

const (
	spIdle         switchportState = iota // not inside an interface section
	spAwaitingMode                        // saw "Name:", waiting for "Operational Mode:"
)

// ParseSwitchportModes parses "show interfaces switchport" output into a map
// from interface name to operational mode. The parser is a two-state machine:
// a "Name:" line opens an interface's capture window, the first
// "Operational Mode:" line inside that window records the mode and closes it.
// A new "Name:" line always closes the previous window, so an interface whose
// section lacks a mode line is left out of the result.
func ParseSwitchportModes(output string) map[string]PortMode {
	modes := make(map[string]PortMode)
	state := spIdle
	current := ""

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "Name:") {
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				current = parts[1]
				state = spAwaitingMode
			} else {
				current = ""
				state = spIdle
			}
			continue
		}

		if state == spAwaitingMode && strings.Contains(line, "Operational Mode:") {
			_, value, _ := strings.Cut(line, "Operational Mode:")
			modes[current] = PortMode(strings.ToLower(strings.TrimSpace(value)))
			current = ""
			state = spIdle
		}
	}
	return modes
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
