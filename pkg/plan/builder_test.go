package plan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/macshift-net/macshift/pkg/correlate"
	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/snapshot"
)

func accessModes(ifaces ...string) map[string]ios.PortMode {
	m := make(map[string]ios.PortMode)
	for _, i := range ifaces {
		m[i] = ios.ModeStaticAccess
	}
	return m
}

func TestBuild_SingleRecord(t *testing.T) {
	// The worked example: one legacy record, mac relearned on Gi0/2,
	// VLAN 1100 missing on the replacement, catalog names it DATA.
	ix := correlate.NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/2")

	catalog := snapshot.NewVLANCatalog()
	catalog.Add("1100", "DATA")

	p := Build(Inputs{
		Legacy:        []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802", Interface: "Gi0/1", Role: "DATA"}},
		Catalog:       catalog,
		ExistingVLANs: map[string]bool{"1": true},
		Index:         ix,
		PortModes:     accessModes("Gi0/2"),
	})

	want := []string{
		"vlan 1100",
		" name DATA",
		"interface Gi0/2",
		" switchport access vlan 1100",
	}
	if !reflect.DeepEqual(p.Commands, want) {
		t.Errorf("Commands = %v, want %v", p.Commands, want)
	}
	if len(p.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", p.Diagnostics)
	}
}

func TestBuild_ExistingVLANNotCreated(t *testing.T) {
	ix := correlate.NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/2")

	p := Build(Inputs{
		Legacy:        []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802"}},
		ExistingVLANs: map[string]bool{"1100": true},
		Index:         ix,
		PortModes:     accessModes("Gi0/2"),
	})

	for _, cmd := range p.Commands {
		if strings.HasPrefix(cmd, "vlan ") {
			t.Errorf("creation command emitted for existing VLAN: %q", cmd)
		}
	}
	if len(p.Commands) != 2 {
		t.Errorf("Commands = %v, want assignment pair only", p.Commands)
	}
}

func TestBuild_ExcludedVLAN(t *testing.T) {
	ix := correlate.NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/2")

	p := Build(Inputs{
		Legacy:    []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802"}},
		Index:     ix,
		PortModes: accessModes("Gi0/2"),
		Exclude:   map[string]bool{"1100": true},
	})

	if !p.IsEmpty() {
		t.Errorf("excluded VLAN produced commands: %v", p.Commands)
	}
	for _, cmd := range p.Commands {
		if strings.Contains(cmd, "1100") {
			t.Errorf("command references excluded VLAN: %q", cmd)
		}
	}
}

func TestBuild_CreationOrderAscendingNumeric(t *testing.T) {
	ix := correlate.NewIndex()
	p := Build(Inputs{
		Legacy: []snapshot.MACRecord{
			{VLAN: "1100", MAC: "00:00:00:00:00:01"},
			{VLAN: "20", MAC: "00:00:00:00:00:02"},
			{VLAN: "3", MAC: "00:00:00:00:00:03"},
			{VLAN: "1100", MAC: "00:00:00:00:00:04"}, // duplicate id, one creation
		},
		Index: ix,
	})

	var created []string
	for _, cmd := range p.Commands {
		if strings.HasPrefix(cmd, "vlan ") {
			created = append(created, strings.TrimPrefix(cmd, "vlan "))
		}
	}
	want := []string{"3", "20", "1100"}
	if !reflect.DeepEqual(created, want) {
		t.Errorf("creation order = %v, want numeric ascending %v", created, want)
	}
}

func TestBuild_FallbackNameWhenAbsentFromCatalog(t *testing.T) {
	ix := correlate.NewIndex()
	p := Build(Inputs{
		Legacy: []snapshot.MACRecord{{VLAN: "1300", MAC: "00:00:00:00:00:01"}},
		Index:  ix,
	})

	found := false
	for _, cmd := range p.Commands {
		if cmd == " name VLAN_1300" {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback name command missing from %v", p.Commands)
	}
}

func TestFallbackName(t *testing.T) {
	if got := FallbackName("42"); got != "VLAN_42" {
		t.Errorf("FallbackName(42) = %q, want VLAN_42", got)
	}
}

func TestBuild_MACNotFoundDiagnostic(t *testing.T) {
	p := Build(Inputs{
		Legacy:        []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802"}},
		ExistingVLANs: map[string]bool{"1100": true},
		Index:         correlate.NewIndex(),
	})

	if !p.IsEmpty() {
		t.Errorf("unresolved mac produced commands: %v", p.Commands)
	}
	warnings := p.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", warnings)
	}
	if !strings.Contains(warnings[0].Message, "not found") {
		t.Errorf("warning message = %q", warnings[0].Message)
	}
}

func TestBuild_TrunkPortSkippedWithDiagnostic(t *testing.T) {
	ix := correlate.NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/2")

	p := Build(Inputs{
		Legacy:        []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802"}},
		ExistingVLANs: map[string]bool{"1100": true},
		Index:         ix,
		PortModes:     map[string]ios.PortMode{"Gi0/2": ios.ModeTrunk},
	})

	for _, cmd := range p.Commands {
		if strings.HasPrefix(cmd, "interface ") {
			t.Errorf("trunk port mutated: %q", cmd)
		}
	}
	if len(p.Warnings()) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", p.Warnings())
	}
	if !strings.Contains(p.Warnings()[0].Message, "static access") {
		t.Errorf("warning message = %q", p.Warnings()[0].Message)
	}
}

func TestBuild_UnknownModeSkipped(t *testing.T) {
	ix := correlate.NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/2")

	p := Build(Inputs{
		Legacy:        []snapshot.MACRecord{{VLAN: "1100", MAC: "0050.7966.6802"}},
		ExistingVLANs: map[string]bool{"1100": true},
		Index:         ix,
		PortModes:     map[string]ios.PortMode{}, // mode never observed
	})

	if !p.IsEmpty() {
		t.Errorf("port with unknown mode mutated: %v", p.Commands)
	}
	if len(p.Warnings()) != 1 {
		t.Errorf("Warnings = %v, want one", p.Warnings())
	}
}

func TestBuild_FirstRecordPerInterfaceWins(t *testing.T) {
	// Two legacy records, different macs and VLANs, both relearned on the
	// same replacement port. Only the first produces an assignment, and
	// the silent skip adds no diagnostic.
	ix := correlate.NewIndex()
	ix.Insert("00:00:00:00:00:01", "Gi0/5")
	ix.Insert("00:00:00:00:00:02", "Gi0/5")

	p := Build(Inputs{
		Legacy: []snapshot.MACRecord{
			{VLAN: "1100", MAC: "00:00:00:00:00:01"},
			{VLAN: "1200", MAC: "00:00:00:00:00:02"},
		},
		ExistingVLANs: map[string]bool{"1100": true, "1200": true},
		Index:         ix,
		PortModes:     accessModes("Gi0/5"),
	})

	want := []string{"interface Gi0/5", " switchport access vlan 1100"}
	if !reflect.DeepEqual(p.Commands, want) {
		t.Errorf("Commands = %v, want %v", p.Commands, want)
	}
	if len(p.Diagnostics) != 0 {
		t.Errorf("silent skip should add no diagnostics, got %v", p.Diagnostics)
	}
}

func TestBuild_DuplicateLegacyMACInfoDiagnostic(t *testing.T) {
	// The same hardware address claimed by two VLANs in the legacy data is
	// a data-quality smell: surfaced at info level, first VLAN kept.
	ix := correlate.NewIndex()
	ix.Insert("00:00:00:00:00:01", "Gi0/5")

	p := Build(Inputs{
		Legacy: []snapshot.MACRecord{
			{VLAN: "1100", MAC: "00:00:00:00:00:01"},
			{VLAN: "1200", MAC: "00:00:00:00:00:01"},
		},
		ExistingVLANs: map[string]bool{"1100": true, "1200": true},
		Index:         ix,
		PortModes:     accessModes("Gi0/5"),
	})

	want := []string{"interface Gi0/5", " switchport access vlan 1100"}
	if !reflect.DeepEqual(p.Commands, want) {
		t.Errorf("Commands = %v, want %v", p.Commands, want)
	}

	var infos []Diagnostic
	for _, d := range p.Diagnostics {
		if d.Severity == SeverityInfo {
			infos = append(infos, d)
		}
	}
	if len(infos) != 1 {
		t.Fatalf("info diagnostics = %v, want exactly one", infos)
	}
	if !strings.Contains(infos[0].Message, "vlan 1100") || !strings.Contains(infos[0].Message, "vlan 1200") {
		t.Errorf("info message = %q", infos[0].Message)
	}
	if len(p.Warnings()) != 0 {
		t.Errorf("Warnings = %v, want none", p.Warnings())
	}
}

func TestBuild_RoundTripIdempotency(t *testing.T) {
	// Feeding the simulated post-plan VLAN set back in yields no creations.
	ix := correlate.NewIndex()
	ix.Insert("00:00:00:00:00:01", "Gi0/1")
	ix.Insert("00:00:00:00:00:02", "Gi0/2")

	legacy := []snapshot.MACRecord{
		{VLAN: "1100", MAC: "00:00:00:00:00:01"},
		{VLAN: "1200", MAC: "00:00:00:00:00:02"},
	}
	existing := map[string]bool{"1": true}

	first := Build(Inputs{
		Legacy:        legacy,
		ExistingVLANs: existing,
		Index:         ix,
		PortModes:     accessModes("Gi0/1", "Gi0/2"),
	})

	// Simulated post-plan state: existing ∪ created.
	after := map[string]bool{}
	for id := range existing {
		after[id] = true
	}
	for _, cmd := range first.Commands {
		if strings.HasPrefix(cmd, "vlan ") {
			after[strings.TrimPrefix(cmd, "vlan ")] = true
		}
	}

	second := Build(Inputs{
		Legacy:        legacy,
		ExistingVLANs: after,
		Index:         ix,
		PortModes:     accessModes("Gi0/1", "Gi0/2"),
	})

	for _, cmd := range second.Commands {
		if strings.HasPrefix(cmd, "vlan ") || strings.HasPrefix(cmd, " name ") {
			t.Errorf("second run emitted creation command %q", cmd)
		}
	}
}

func TestBuild_NoLegacyRecords(t *testing.T) {
	p := Build(Inputs{Index: correlate.NewIndex()})
	if !p.IsEmpty() {
		t.Errorf("empty inputs produced commands: %v", p.Commands)
	}
	if len(p.Diagnostics) != 0 {
		t.Errorf("empty inputs produced diagnostics: %v", p.Diagnostics)
	}
}
