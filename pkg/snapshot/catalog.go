package snapshot

import (
	"sort"
	"strconv"

	"github.com/macshift-net/macshift/pkg/ios"
)

// VLANCatalog maps VLAN ids to names. Sources are added in precedence
// order: Add never overwrites an existing name, so a lower-precedence
// source can supplement the catalog but not silently replace entries.
type VLANCatalog struct {
	names map[string]string
	order []string
}

// NewVLANCatalog creates an empty catalog.
func NewVLANCatalog() *VLANCatalog {
	return &VLANCatalog{names: make(map[string]string)}
}

// Add records id → name unless id already has a name.
// Reports whether the entry was added.
func (c *VLANCatalog) Add(id, name string) bool {
	if _, ok := c.names[id]; ok {
		return false
	}
	c.names[id] = name
	c.order = append(c.order, id)
	return true
}

// AddBrief supplements the catalog from parsed "show vlan brief" rows.
func (c *VLANCatalog) AddBrief(entries []ios.VLANBriefEntry) {
	for _, e := range entries {
		c.Add(e.ID, e.Name)
	}
}

// Name returns the name recorded for id.
func (c *VLANCatalog) Name(id string) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

// Len returns the number of catalog entries.
func (c *VLANCatalog) Len() int {
	return len(c.names)
}

// IDs returns the catalog's VLAN ids in ascending numeric order.
func (c *VLANCatalog) IDs() []string {
	ids := append([]string(nil), c.order...)
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}
