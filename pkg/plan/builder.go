package plan

import (
	"sort"
	"strconv"

	"github.com/macshift-net/macshift/pkg/correlate"
	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/snapshot"
)

// Inputs are the read-only snapshots the builder works from. Legacy fields
// describe the switch being replaced; the rest describe the replacement
// switch's live state at plan time.
type Inputs struct {
	Legacy        []snapshot.MACRecord
	Catalog       *snapshot.VLANCatalog
	ExistingVLANs map[string]bool
	Index         *correlate.Index
	PortModes     map[string]ios.PortMode
	Exclude       map[string]bool
}

// FallbackName returns the synthesized name used for a VLAN absent from
// the catalog.
func FallbackName(id string) string {
	return "VLAN_" + id
}

// Build produces the migration plan:
//
//  1. VLAN creation pairs (vlan <id> / name <name>), one per distinct
//     non-excluded legacy VLAN missing from the replacement switch,
//     in ascending numeric id order.
//  2. Interface assignment pairs (interface <if> / switchport access
//     vlan <id>) for each legacy record whose hardware address resolves
//     to a static-access port on the replacement switch. Only the first
//     record resolving to a given port is kept.
//
// Records that cannot be placed produce diagnostics instead of commands.
// Re-running against post-migration live state yields a smaller or empty
// plan: VLANs now exist and resolved ports re-dedup the same way.
func Build(in Inputs) *Plan {
	p := &Plan{}

	catalog := in.Catalog
	if catalog == nil {
		catalog = snapshot.NewVLANCatalog()
	}

	// Pass 1: VLANs to create, deduplicated by id.
	pending := make(map[string]bool)
	for _, rec := range in.Legacy {
		if rec.VLAN == "" || in.Exclude[rec.VLAN] {
			continue
		}
		if !in.ExistingVLANs[rec.VLAN] {
			pending[rec.VLAN] = true
		}
	}

	ids := make([]string, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	for _, id := range ids {
		name, ok := catalog.Name(id)
		if !ok {
			name = FallbackName(id)
		}
		p.addCommand("vlan %s", id)
		p.addCommand(" name %s", name)
	}

	// Pass 2: port assignments, in legacy record order, first record per
	// replacement port wins.
	assigned := make(map[string]bool)
	vlanByMAC := make(map[string]string)
	for _, rec := range in.Legacy {
		if rec.VLAN == "" || rec.MAC == "" || in.Exclude[rec.VLAN] {
			continue
		}

		mac := ios.NormalizeMAC(rec.MAC)
		if prev, seen := vlanByMAC[mac]; seen {
			if prev != rec.VLAN {
				p.diag(SeverityInfo, "mac %s appears in both vlan %s and vlan %s; keeping vlan %s", mac, prev, rec.VLAN, prev)
			}
		} else {
			vlanByMAC[mac] = rec.VLAN
		}

		iface, ok := in.Index.Lookup(mac)
		if !ok {
			p.diag(SeverityWarning, "mac %s not found on replacement switch, skipping", mac)
			continue
		}

		mode := in.PortModes[iface]
		if mode != ios.ModeStaticAccess {
			p.diag(SeverityWarning, "interface %s is %q, not a static access port, skipping", iface, mode)
			continue
		}

		// Expected when several legacy VLAN memberships shared one
		// physical port: keep the first, no diagnostic.
		if assigned[iface] {
			continue
		}
		assigned[iface] = true

		p.addCommand("interface %s", iface)
		p.addCommand(" switchport access vlan %s", rec.VLAN)
	}

	return p
}
