// Package testutil holds canned Cisco IOS command output shared by tests.
package testutil

// MACTableOutput is a realistic "show mac address-table" response.
const MACTableOutput = `          Mac Address Table
-------------------------------------------

Vlan    Mac Address       Type        Ports
----    -----------       --------    -----
   1    0050.7966.6802    DYNAMIC     Gi0/2
   1    0050.7966.6803    DYNAMIC     Gi0/3
 100    0050.7966.6804    DYNAMIC     Gi1/0
 100    0050.7966.6805    STATIC      Gi0/1
Total Mac Addresses for this criterion: 4
`

// VLANBriefOutput is a realistic "show vlan brief" response.
const VLANBriefOutput = `
VLAN Name                             Status    Ports
---- -------------------------------- --------- -------------------------------
1    default                          active    Gi0/1, Gi0/2, Gi0/3
100  VLAN0100                         active
1100 DATA                             active    Gi1/0
1002 fddi-default                     act/unsup
`

// SwitchportOutput is a realistic "show interfaces switchport" response.
const SwitchportOutput = `Name: Gi0/1
Switchport: Enabled
Administrative Mode: static access
Operational Mode: static access
Administrative Trunking Encapsulation: negotiate
Negotiation of Trunking: Off
Access Mode VLAN: 1 (default)

Name: Gi0/2
Switchport: Enabled
Administrative Mode: trunk
Operational Mode: trunk
Administrative Trunking Encapsulation: dot1q

Name: Gi0/3
Switchport: Enabled
Administrative Mode: dynamic auto
Operational Mode: down
`

// RunningConfigOutput is a trimmed running-config with interface blocks.
const RunningConfigOutput = `version 15.2
hostname legacy-sw1
!
interface GigabitEthernet0/1
 description uplink to core
 switchport mode trunk
 power inline never
!
interface GigabitEthernet0/2
 description user port - floor 3
 switchport access vlan 1100
 switchport voice vlan 1200
 spanning-tree portfast
!
interface GigabitEthernet0/3
 shutdown
!
line con 0
end
`
