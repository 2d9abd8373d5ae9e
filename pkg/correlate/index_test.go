package correlate

import (
	"testing"

	"github.com/macshift-net/macshift/pkg/ios"
)

func TestIndex_FirstInsertWins(t *testing.T) {
	ix := NewIndex()

	if !ix.Insert("0050.7966.6802", "Gi0/1") {
		t.Fatal("first Insert() should report true")
	}
	if ix.Insert("0050.7966.6802", "Gi0/9") {
		t.Error("second Insert() of same mac should report false")
	}

	iface, ok := ix.Lookup("0050.7966.6802")
	if !ok {
		t.Fatal("Lookup() should find inserted mac")
	}
	if iface != "Gi0/1" {
		t.Errorf("Lookup() = %q, want first-inserted interface Gi0/1", iface)
	}
}

func TestIndex_NormalizedKeys(t *testing.T) {
	ix := NewIndex()
	ix.Insert("0050.7966.6802", "Gi0/1")

	// A different spelling of the same address collides rather than
	// creating a second entry.
	if ix.Insert("00:50:79:66:68:02", "Gi0/2") {
		t.Error("Insert() with equivalent spelling should collide")
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}

	if _, ok := ix.Lookup("00-50-79-66-68-02"); !ok {
		t.Error("Lookup() with dashed spelling should find the entry")
	}
}

func TestIndex_LookupNotFound(t *testing.T) {
	ix := NewIndex()
	iface, ok := ix.Lookup("ff:ff:ff:ff:ff:ff")
	if ok {
		t.Error("Lookup() on empty index should report not found")
	}
	if iface != "" {
		t.Errorf("Lookup() not-found interface = %q, want empty", iface)
	}
}

func TestIndex_Profile(t *testing.T) {
	ix := NewIndex()
	vlan := 1100
	ix.InsertProfile("0050.7966.6802", "Gi0/1", ios.InterfaceProfile{Mode: "access", AccessVLAN: &vlan})

	e, ok := ix.LookupEntry("0050.7966.6802")
	if !ok {
		t.Fatal("LookupEntry() should find inserted mac")
	}
	if e.Profile == nil {
		t.Fatal("Profile should be tracked")
	}
	if e.Profile.AccessVLAN == nil || *e.Profile.AccessVLAN != 1100 {
		t.Errorf("Profile.AccessVLAN = %v, want 1100", e.Profile.AccessVLAN)
	}

	// Plain Insert never carries a profile.
	ix.Insert("0050.7966.6803", "Gi0/2")
	e2, _ := ix.LookupEntry("0050.7966.6803")
	if e2.Profile != nil {
		t.Error("Insert() should not attach a profile")
	}
}

func TestFromMACTable(t *testing.T) {
	ix := FromMACTable([]ios.MACEntry{
		{VLAN: "1", MAC: "00:50:79:66:68:02", Interface: "Gi0/2"},
		{VLAN: "100", MAC: "00:50:79:66:68:02", Interface: "Gi0/3"}, // duplicate mac, dropped
		{VLAN: "1", MAC: "00:50:79:66:68:03", Interface: "Gi0/3"},
	})
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}
	if iface, _ := ix.Lookup("00:50:79:66:68:02"); iface != "Gi0/2" {
		t.Errorf("duplicate mac resolved to %q, want first-seen Gi0/2", iface)
	}
}
