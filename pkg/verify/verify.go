// Package verify checks a replacement switch against a legacy snapshot
// after migration.
package verify

import (
	"fmt"
	"sort"

	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/snapshot"
)

// Check result status values.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// Result represents the result of a single verification check.
type Result struct {
	Check   string `json:"check"`   // Check name (e.g., "vlans", "macs")
	Status  string `json:"status"`  // "pass", "warn", "fail"
	Message string `json:"message"` // Human-readable message
}

// Inputs carries the legacy expectations and the replacement's live state.
type Inputs struct {
	// Legacy holds the MAC records from the legacy snapshot.
	Legacy []snapshot.MACRecord

	// Exclude holds VLAN IDs that were excluded from migration.
	Exclude map[string]bool

	// ReplacementMACs is the replacement's parsed MAC address table.
	ReplacementMACs []ios.MACEntry

	// ExistingVLANs holds the VLAN IDs present on the replacement.
	ExistingVLANs map[string]bool
}

// Run executes verification checks against the migrated switch.
// If checkType is empty, all checks are run.
func Run(in Inputs, checkType string) []Result {
	var results []Result
	if checkType == "" || checkType == "vlans" {
		results = append(results, checkVLANs(in))
	}
	if checkType == "" || checkType == "macs" {
		results = append(results, checkMACs(in))
	}
	if checkType == "" || checkType == "assignments" {
		results = append(results, checkAssignments(in))
	}
	return results
}

// Failed reports whether any result carries a fail status.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// checkVLANs verifies every VLAN referenced by a migrated MAC exists on
// the replacement.
func checkVLANs(in Inputs) Result {
	needed := make(map[string]bool)
	for _, rec := range in.Legacy {
		if in.Exclude[rec.VLAN] {
			continue
		}
		needed[rec.VLAN] = true
	}
	if len(needed) == 0 {
		return Result{Check: "vlans", Status: StatusWarn, Message: "No VLANs expected from snapshot"}
	}

	var missing []string
	for id := range needed {
		if !in.ExistingVLANs[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sortVLANIDs(missing)
		return Result{Check: "vlans", Status: StatusFail,
			Message: fmt.Sprintf("%d expected VLANs missing: %v", len(missing), missing)}
	}
	return Result{Check: "vlans", Status: StatusPass,
		Message: fmt.Sprintf("All %d expected VLANs present", len(needed))}
}

// checkMACs verifies the legacy hosts have been learned by the
// replacement. Hosts that have not sent traffic yet are a warning, not
// a failure.
func checkMACs(in Inputs) Result {
	seen := replacementVLANByMAC(in.ReplacementMACs)

	total, missing := 0, 0
	for _, rec := range in.Legacy {
		if in.Exclude[rec.VLAN] {
			continue
		}
		total++
		if _, ok := seen[ios.NormalizeMAC(rec.MAC)]; !ok {
			missing++
		}
	}
	if total == 0 {
		return Result{Check: "macs", Status: StatusWarn, Message: "No MAC addresses expected from snapshot"}
	}
	if missing > 0 {
		return Result{Check: "macs", Status: StatusWarn,
			Message: fmt.Sprintf("%d of %d legacy hosts not yet learned", missing, total)}
	}
	return Result{Check: "macs", Status: StatusPass,
		Message: fmt.Sprintf("All %d legacy hosts learned", total)}
}

// checkAssignments verifies hosts that have been learned landed in the
// VLAN the legacy switch had them in.
func checkAssignments(in Inputs) Result {
	seen := replacementVLANByMAC(in.ReplacementMACs)

	checked, wrong := 0, 0
	var examples []string
	for _, rec := range in.Legacy {
		if in.Exclude[rec.VLAN] {
			continue
		}
		mac := ios.NormalizeMAC(rec.MAC)
		got, ok := seen[mac]
		if !ok {
			continue
		}
		checked++
		if got != rec.VLAN {
			wrong++
			if len(examples) < 3 {
				examples = append(examples, fmt.Sprintf("%s in VLAN %s, expected %s", mac, got, rec.VLAN))
			}
		}
	}
	if checked == 0 {
		return Result{Check: "assignments", Status: StatusWarn, Message: "No learned hosts to verify"}
	}
	if wrong > 0 {
		return Result{Check: "assignments", Status: StatusFail,
			Message: fmt.Sprintf("%d of %d hosts in the wrong VLAN (%v)", wrong, checked, examples)}
	}
	return Result{Check: "assignments", Status: StatusPass,
		Message: fmt.Sprintf("All %d learned hosts in the expected VLAN", checked)}
}

// replacementVLANByMAC indexes the replacement MAC table, keeping the
// first VLAN observed per address.
func replacementVLANByMAC(entries []ios.MACEntry) map[string]string {
	byMAC := make(map[string]string, len(entries))
	for _, e := range entries {
		mac := ios.NormalizeMAC(e.MAC)
		if _, ok := byMAC[mac]; !ok {
			byMAC[mac] = e.VLAN
		}
	}
	return byMAC
}

func sortVLANIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}
