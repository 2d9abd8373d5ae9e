// Package correlate joins snapshots from two devices by hardware address.
package correlate

import "github.com/macshift-net/macshift/pkg/ios"

// Entry is what the index tracks for one hardware address.
type Entry struct {
	Interface string
	Profile   *ios.InterfaceProfile // nil unless inserted via InsertProfile
}

// Index maps normalized hardware addresses to the interface (and optionally
// the configuration profile) they were first seen on. Insertion is
// first-wins: a hardware address already present keeps its original entry
// and later insertions are dropped. Build the index fully before lookups;
// there is no way to replace or remove an entry.
type Index struct {
	entries map[string]Entry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// FromMACTable builds an index from parsed MAC-table rows.
func FromMACTable(entries []ios.MACEntry) *Index {
	idx := NewIndex()
	for _, e := range entries {
		idx.Insert(e.MAC, e.Interface)
	}
	return idx
}

// Insert records mac → iface unless mac is already present.
// Reports whether the pair was inserted.
func (ix *Index) Insert(mac, iface string) bool {
	mac = ios.NormalizeMAC(mac)
	if _, ok := ix.entries[mac]; ok {
		return false
	}
	ix.entries[mac] = Entry{Interface: iface}
	return true
}

// InsertProfile records mac → (iface, profile) unless mac is already present.
func (ix *Index) InsertProfile(mac, iface string, profile ios.InterfaceProfile) bool {
	mac = ios.NormalizeMAC(mac)
	if _, ok := ix.entries[mac]; ok {
		return false
	}
	ix.entries[mac] = Entry{Interface: iface, Profile: &profile}
	return true
}

// Lookup returns the interface first seen for mac. The second return value
// is false when mac was never inserted; no placeholder is ever returned.
func (ix *Index) Lookup(mac string) (string, bool) {
	e, ok := ix.entries[ios.NormalizeMAC(mac)]
	return e.Interface, ok
}

// LookupEntry returns the full entry for mac, including the profile when
// one was tracked.
func (ix *Index) LookupEntry(mac string) (Entry, bool) {
	e, ok := ix.entries[ios.NormalizeMAC(mac)]
	return e, ok
}

// Len returns the number of distinct hardware addresses in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// MACs returns the normalized hardware addresses in the index, in no
// particular order.
func (ix *Index) MACs() []string {
	macs := make([]string, 0, len(ix.entries))
	for mac := range ix.entries {
		macs = append(macs, mac)
	}
	return macs
}
