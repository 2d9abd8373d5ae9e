package ios

import (
	"testing"

	"github.com/macshift-net/macshift/internal/testutil"
)

func TestSegmentInterfaceBlocks(t *testing.T) {
	blocks := SegmentInterfaceBlocks(testutil.RunningConfigOutput)

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %v", len(blocks), keys(blocks))
	}

	g2 := blocks["GigabitEthernet0/2"]
	if len(g2) != 5 {
		t.Fatalf("Gi0/2 block has %d lines, want 5: %v", len(g2), g2)
	}
	if g2[0] != "interface GigabitEthernet0/2" {
		t.Errorf("block does not start with the interface line: %q", g2[0])
	}

	// Lines outside interface blocks (hostname, line con 0) are dropped.
	for name := range blocks {
		if name == "con" || name == "0" {
			t.Errorf("non-interface block captured: %q", name)
		}
	}
}

func TestSegmentInterfaceBlocks_ImplicitCloseAtEOF(t *testing.T) {
	config := `interface Gi0/1
 switchport access vlan 10`
	blocks := SegmentInterfaceBlocks(config)
	if len(blocks["Gi0/1"]) != 2 {
		t.Errorf("unterminated block not captured: %v", blocks)
	}
}

func TestSegmentInterfaceBlocks_NextBlockCloses(t *testing.T) {
	config := `interface Gi0/1
 description one
interface Gi0/2
 description two
!`
	blocks := SegmentInterfaceBlocks(config)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if len(blocks["Gi0/1"]) != 2 {
		t.Errorf("Gi0/1 block = %v, want the two lines before the next interface", blocks["Gi0/1"])
	}
}

func TestExtractProfile_Defaults(t *testing.T) {
	p := ExtractProfile([]string{"interface Gi0/9"})
	if p.Mode != "access" {
		t.Errorf("default mode = %q, want access", p.Mode)
	}
	if p.PoE != PowerAuto {
		t.Errorf("default PoE = %q, want auto", p.PoE)
	}
	if p.AccessVLAN != nil || p.VoiceVLAN != nil {
		t.Error("VLAN fields should be unset by default")
	}
	if p.PortFast || p.Shutdown {
		t.Error("flags should default to false")
	}
}

func TestExtractProfile_FullBlock(t *testing.T) {
	blocks := SegmentInterfaceBlocks(testutil.RunningConfigOutput)
	p := ExtractProfile(blocks["GigabitEthernet0/2"])

	if p.Description != "user port - floor 3" {
		t.Errorf("Description = %q", p.Description)
	}
	if p.AccessVLAN == nil || *p.AccessVLAN != 1100 {
		t.Errorf("AccessVLAN = %v, want 1100", p.AccessVLAN)
	}
	if p.VoiceVLAN == nil || *p.VoiceVLAN != 1200 {
		t.Errorf("VoiceVLAN = %v, want 1200", p.VoiceVLAN)
	}
	if !p.PortFast {
		t.Error("PortFast should be set")
	}
}

func TestExtractProfile_LastDirectiveWins(t *testing.T) {
	p := ExtractProfile([]string{
		" switchport mode trunk",
		" switchport mode access",
		" power inline never",
		" power inline auto",
	})
	if p.Mode != "access" {
		t.Errorf("Mode = %q, want the later directive", p.Mode)
	}
	if p.PoE != PowerAuto {
		t.Errorf("PoE = %q, want the later directive", p.PoE)
	}
}

func TestExtractProfile_NonNumericVLANTolerated(t *testing.T) {
	p := ExtractProfile([]string{" switchport access vlan none"})
	if p.AccessVLAN != nil {
		t.Errorf("AccessVLAN = %v, want unset for non-numeric token", *p.AccessVLAN)
	}
}

func TestExtractProfile_ShutdownExactMatchOnly(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"shutdown", true},
		{"  shutdown  ", true},
		{"no shutdown", false},
		{"description do not shutdown", false},
	}
	for _, tt := range tests {
		p := ExtractProfile([]string{tt.line})
		if p.Shutdown != tt.want {
			t.Errorf("ExtractProfile([%q]).Shutdown = %v, want %v", tt.line, p.Shutdown, tt.want)
		}
	}
}

func keys(m map[string][]string) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
