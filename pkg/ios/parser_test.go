package ios

import (
	"testing"

	"github.com/macshift-net/macshift/internal/testutil"
)

func TestParseMACTable(t *testing.T) {
	entries := ParseMACTable(testutil.MACTableOutput)
	if len(entries) != 4 {
		t.Fatalf("ParseMACTable() returned %d entries, want 4", len(entries))
	}

	first := entries[0]
	if first.VLAN != "1" {
		t.Errorf("VLAN = %q, want %q", first.VLAN, "1")
	}
	if first.MAC != "00:50:79:66:68:02" {
		t.Errorf("MAC = %q, want normalized form", first.MAC)
	}
	if first.Interface != "Gi0/2" {
		t.Errorf("Interface = %q, want %q", first.Interface, "Gi0/2")
	}

	if entries[3].Type != "STATIC" {
		t.Errorf("Type = %q, want %q", entries[3].Type, "STATIC")
	}
}

func TestParseMACTable_SkipsMalformedLines(t *testing.T) {
	output := `Vlan    Mac Address       Type        Ports
----    -----------       --------    -----
   1    0050.7966.6802    DYNAMIC     Gi0/2
   1    0050.7966.6803
garbage line here
`
	entries := ParseMACTable(output)
	if len(entries) != 1 {
		t.Fatalf("ParseMACTable() returned %d entries, want 1", len(entries))
	}
}

func TestParseMACTable_Empty(t *testing.T) {
	if got := ParseMACTable(""); len(got) != 0 {
		t.Errorf("ParseMACTable(\"\") = %v, want empty", got)
	}
}

func TestParseVLANBrief(t *testing.T) {
	entries := ParseVLANBrief(testutil.VLANBriefOutput)
	if len(entries) != 4 {
		t.Fatalf("ParseVLANBrief() returned %d entries, want 4", len(entries))
	}

	want := map[string]string{
		"1":    "default",
		"100":  "VLAN0100",
		"1100": "DATA",
		"1002": "fddi-default",
	}
	for _, e := range entries {
		if want[e.ID] != e.Name {
			t.Errorf("VLAN %s name = %q, want %q", e.ID, e.Name, want[e.ID])
		}
	}
}

func TestParseSwitchportModes(t *testing.T) {
	modes := ParseSwitchportModes(testutil.SwitchportOutput)

	if modes["Gi0/1"] != ModeStaticAccess {
		t.Errorf("Gi0/1 mode = %q, want %q", modes["Gi0/1"], ModeStaticAccess)
	}
	if modes["Gi0/2"] != ModeTrunk {
		t.Errorf("Gi0/2 mode = %q, want %q", modes["Gi0/2"], ModeTrunk)
	}
	if modes["Gi0/3"] != "down" {
		t.Errorf("Gi0/3 mode = %q, want %q", modes["Gi0/3"], "down")
	}
}

func TestParseSwitchportModes_ResetOnNewMarker(t *testing.T) {
	// Gi0/1's section has no mode line; the Gi0/2 marker must close Gi0/1's
	// capture window so the mode that follows is attributed to Gi0/2 only.
	output := `Name: Gi0/1
Switchport: Enabled

Name: Gi0/2
Operational Mode: static access
`
	modes := ParseSwitchportModes(output)
	if _, ok := modes["Gi0/1"]; ok {
		t.Errorf("Gi0/1 should have no recorded mode, got %q", modes["Gi0/1"])
	}
	if modes["Gi0/2"] != ModeStaticAccess {
		t.Errorf("Gi0/2 mode = %q, want %q", modes["Gi0/2"], ModeStaticAccess)
	}
}

func TestParseSwitchportModes_ModeOutsideWindow(t *testing.T) {
	// A mode line with no preceding Name: marker is ignored.
	output := `Operational Mode: static access
Name: Gi0/1
Operational Mode: trunk
Operational Mode: static access
`
	modes := ParseSwitchportModes(output)
	if len(modes) != 1 {
		t.Fatalf("got %d modes, want 1: %v", len(modes), modes)
	}
	if modes["Gi0/1"] != ModeTrunk {
		t.Errorf("Gi0/1 mode = %q, want first mode inside the window", modes["Gi0/1"])
	}
}
