package ios

import (
	"strconv"
	"strings"
)

// SegmentInterfaceBlocks splits a running-config into per-interface blocks.
// A block opens at a line beginning with "interface" (the next token is the
// interface name) and closes at a line that is exactly "!" or at the next
// interface declaration. A block still open at end of input is kept. Lines
// outside any block are ignored. The opening "interface" line is included
// in the block.
func SegmentInterfaceBlocks(config string) map[string][]string {
	blocks := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(config, "\n") {
		if strings.HasPrefix(line, "interface") {
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				current = parts[1]
				blocks[current] = []string{line}
				continue
			}
			current = ""
			continue
		}
		if current == "" {
			continue
		}
		if strings.TrimSpace(line) == "!" {
			current = ""
			continue
		}
		blocks[current] = append(blocks[current], line)
	}
	return blocks
}

// ExtractProfile builds an InterfaceProfile from one interface block's lines.
// Directives are applied in line order: scalar fields take the last value
// seen, boolean flags are set once and never reset. Unknown lines are
// ignored. A non-numeric trailing token on a vlan directive leaves the field
// unset rather than erroring.
func ExtractProfile(lines []string) InterfaceProfile {
	profile := NewInterfaceProfile()

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "description"):
			_, desc, _ := strings.Cut(line, " ")
			profile.Description = desc
		case strings.Contains(line, "switchport mode access"):
			profile.Mode = "access"
		case strings.Contains(line, "switchport mode trunk"):
			profile.Mode = "trunk"
		case strings.Contains(line, "switchport access vlan"):
			if id, ok := trailingInt(line); ok {
				profile.AccessVLAN = &id
			}
		case strings.Contains(line, "switchport voice vlan"):
			if id, ok := trailingInt(line); ok {
				profile.VoiceVLAN = &id
			}
		case strings.Contains(line, "spanning-tree portfast"):
			profile.PortFast = true
		case strings.Contains(line, "power inline never"):
			profile.PoE = PowerNever
		case strings.Contains(line, "power inline auto"):
			profile.PoE = PowerAuto
		case line == "shutdown":
			// Exact match only: "no shutdown" and directives that merely
			// contain the word must not set the flag.
			profile.Shutdown = true
		}
	}
	return profile
}

func trailingInt(line string) (int, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
