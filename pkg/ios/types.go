// Package ios parses Cisco IOS show-command output and running-config text
// into typed records. Parsing is best-effort: malformed lines are skipped,
// never fatal, and an empty input yields an empty result rather than an error.
package ios

// MACEntry is one row of a "show mac address-table" listing.
type MACEntry struct {
	VLAN      string `json:"vlan"`
	MAC       string `json:"mac"` // normalized, see NormalizeMAC
	Type      string `json:"type,omitempty"`
	Interface string `json:"interface"`
}

// VLANBriefEntry is one row of a "show vlan brief" listing.
type VLANBriefEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PortMode is an interface's operational switchport mode as reported by
// "show interfaces switchport".
type PortMode string

const (
	// ModeStaticAccess is the only mode eligible for VLAN reassignment.
	ModeStaticAccess PortMode = "static access"
	ModeTrunk        PortMode = "trunk"
)

// PowerInline is the power-inline policy of an interface.
type PowerInline string

const (
	PowerAuto  PowerInline = "auto"
	PowerNever PowerInline = "never"
)

// InterfaceProfile is the structured configuration of one switch interface,
// extracted from its running-config block. Zero values carry meaning only
// through NewInterfaceProfile, which applies IOS defaults.
type InterfaceProfile struct {
	Description string      `json:"description"`
	Mode        string      `json:"mode"`
	AccessVLAN  *int        `json:"access_vlan"`
	VoiceVLAN   *int        `json:"voice_vlan"`
	PortFast    bool        `json:"portfast"`
	PoE         PowerInline `json:"poe"`
	Shutdown    bool        `json:"shutdown"`
}

// NewInterfaceProfile returns a profile with IOS defaults: access mode,
// power inline auto, all flags off.
func NewInterfaceProfile() InterfaceProfile {
	return InterfaceProfile{
		Mode: "access",
		PoE:  PowerAuto,
	}
}
