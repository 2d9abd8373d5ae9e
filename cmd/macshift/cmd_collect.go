package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/snapshot"
	"github.com/macshift-net/macshift/pkg/util"
)

var (
	collectHost   string
	collectOutput string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Snapshot a legacy switch into a sectioned file",
	Long: `Connect to the legacy switch and capture its MAC address table,
VLAN names, and running configuration into one sectioned snapshot file.

The default output filename is <hostname>_snapshot.txt in the configured
output directory.

Examples:
  macshift collect --host 10.10.0.11
  macshift collect --host 10.10.0.11 --output legacy-sw1.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(collectHost)
		if err != nil {
			return err
		}
		defer c.Close()

		macTable, err := c.Run("show mac address-table")
		if err != nil {
			return err
		}
		if strings.TrimSpace(macTable) == "" {
			util.Warnf("empty response from 'show mac address-table' on %s", collectHost)
		}

		vlanBrief, err := c.Run("show vlan brief")
		if err != nil {
			return err
		}
		runningConfig, err := c.Run("show running-config")
		if err != nil {
			return err
		}

		hostname := hostnameFromConfig(runningConfig)
		if hostname == "" {
			hostname = "UnknownSwitch"
		}

		snap := buildSnapshot(hostname, macTable, vlanBrief, runningConfig)
		util.WithSwitch(hostname).Infof("collected %d MAC entries, %d VLAN names", len(snap.MACRecords), snap.Catalog.Len())

		output := collectOutput
		if output == "" {
			output = filepath.Join(userSettings.GetOutputDir(), hostname+"_snapshot.txt")
		}
		if err := snap.WriteFile(output); err != nil {
			return err
		}

		fmt.Printf("Snapshot of %s saved to %s (%d MAC entries)\n", hostname, output, len(snap.MACRecords))
		return nil
	},
}

// buildSnapshot assembles the snapshot document from raw command output.
// The legacy device's own VLAN names fill the role column and the catalog.
func buildSnapshot(hostname, macTable, vlanBrief, runningConfig string) *snapshot.Snapshot {
	snap := &snapshot.Snapshot{
		Hostname:      hostname,
		Catalog:       snapshot.NewVLANCatalog(),
		RunningConfig: runningConfig,
	}
	snap.Catalog.AddBrief(ios.ParseVLANBrief(vlanBrief))

	for _, e := range ios.ParseMACTable(macTable) {
		role, _ := snap.Catalog.Name(e.VLAN)
		snap.MACRecords = append(snap.MACRecords, snapshot.MACRecord{
			VLAN:      e.VLAN,
			MAC:       e.MAC,
			Interface: e.Interface,
			Role:      role,
		})
	}
	return snap
}

// hostnameFromConfig finds the hostname directive in a running config.
func hostnameFromConfig(config string) string {
	for _, line := range strings.Split(config, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 2 && parts[0] == "hostname" {
			return parts[1]
		}
	}
	return ""
}

func init() {
	collectCmd.Flags().StringVar(&collectHost, "host", "", "Legacy switch address (required)")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "Output filename (default <hostname>_snapshot.txt)")
	collectCmd.MarkFlagRequired("host")
}
