// Package profiledb builds a knowledge base mapping hardware addresses to
// the interface configuration profile they were seen behind, across a fleet
// of legacy switches. The result is keyed by normalized MAC and records
// which switch and interface owned the profile.
package profiledb

import (
	"github.com/macshift-net/macshift/pkg/correlate"
	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/util"
)

// Record is one knowledge-base entry: the profile of the interface a
// hardware address was learned on, plus its owner.
type Record struct {
	ios.InterfaceProfile
	Switch    string `json:"switch"`
	Interface string `json:"interface"`
}

// DB is the merged knowledge base across all collected switches.
// Keys are normalized hardware addresses; first device seen for an
// address wins, matching the correlation index contract.
type DB map[string]Record

// Merge adds records from another build into db, keeping existing entries
// on key collisions. Returns the number of records added.
func (db DB) Merge(other DB) int {
	added := 0
	for mac, rec := range other {
		if _, ok := db[mac]; ok {
			continue
		}
		db[mac] = rec
		added++
	}
	return added
}

// BuildDevice derives mac → profile records for one switch from its MAC
// table output and running configuration. Addresses learned on interfaces
// that have no config block are dropped (uplinks and SVIs have no
// switchport profile worth recording).
func BuildDevice(hostname, macTableOutput, runningConfig string) DB {
	entries := ios.ParseMACTable(macTableOutput)
	blocks := ios.SegmentInterfaceBlocks(runningConfig)

	ix := correlate.NewIndex()
	for _, e := range entries {
		lines, ok := findBlock(blocks, e.Interface)
		if !ok {
			continue
		}
		ix.InsertProfile(e.MAC, e.Interface, ios.ExtractProfile(lines))
	}

	db := make(DB, ix.Len())
	for _, mac := range ix.MACs() {
		entry, _ := ix.LookupEntry(mac)
		db[mac] = Record{
			InterfaceProfile: *entry.Profile,
			Switch:           hostname,
			Interface:        entry.Interface,
		}
	}

	util.WithSwitch(hostname).Debugf("built %d profile records", len(db))
	return db
}

// findBlock resolves a MAC-table port name against running-config block
// names. MAC tables abbreviate ("Gi0/1"), running configs do not
// ("GigabitEthernet0/1"), so fall back to suffix matching on the port
// number with a matching type prefix.
func findBlock(blocks map[string][]string, iface string) ([]string, bool) {
	if lines, ok := blocks[iface]; ok {
		return lines, true
	}
	short := shorten(iface)
	for name, lines := range blocks {
		if shorten(name) == short {
			return lines, true
		}
	}
	return nil, false
}

// shorten reduces an interface name to its two-letter type prefix plus
// port number: "GigabitEthernet0/1" → "Gi0/1".
func shorten(name string) string {
	i := 0
	for i < len(name) && !isDigit(name[i]) {
		i++
	}
	if i < 2 {
		return name
	}
	return name[:2] + name[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
