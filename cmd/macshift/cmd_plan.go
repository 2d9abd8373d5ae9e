package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/cli"
	"github.com/macshift-net/macshift/pkg/plan"
	"github.com/macshift-net/macshift/pkg/snapshot"
)

var (
	planSnapshot   string
	planMACTable   string
	planVLANBrief  string
	planSwitchport string
	planExclude    string
	planJSON       bool
	planQuery      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the migration plan offline from saved command output",
	Long: `Build the migration plan without touching any device. The replacement
switch's state is read from files holding its saved command output:

  --mac-table    "show mac address-table"
  --vlan-brief   "show vlan brief"
  --switchport   "show interfaces switchport"

Useful for reviewing a migration in change control before the window.

Examples:
  macshift plan --snapshot legacy-sw1_snapshot.txt \
      --mac-table new-macs.txt --vlan-brief new-vlans.txt --switchport new-modes.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.ReadFile(planSnapshot)
		if err != nil {
			return err
		}

		macTable, err := os.ReadFile(planMACTable)
		if err != nil {
			return fmt.Errorf("reading mac table: %w", err)
		}
		vlanBrief, err := os.ReadFile(planVLANBrief)
		if err != nil {
			return fmt.Errorf("reading vlan brief: %w", err)
		}
		switchport, err := os.ReadFile(planSwitchport)
		if err != nil {
			return fmt.Errorf("reading switchport modes: %w", err)
		}

		exclude, err := parseExclusions(planExclude)
		if err != nil {
			return err
		}

		state := parseReplacementState(string(macTable), string(vlanBrief), string(switchport))
		p := plan.Build(plan.Inputs{
			Legacy:        snap.MACRecords,
			Catalog:       snap.Catalog,
			ExistingVLANs: state.ExistingVLANs,
			Index:         state.Index,
			PortModes:     state.PortModes,
			Exclude:       exclude,
		})

		if planQuery != "" {
			return cli.Query(os.Stdout, p, planQuery)
		}
		if planJSON {
			return json.NewEncoder(os.Stdout).Encode(p)
		}
		printPlan(p)
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planSnapshot, "snapshot", "", "Legacy snapshot file (required)")
	planCmd.Flags().StringVar(&planMACTable, "mac-table", "", "Saved replacement 'show mac address-table' output (required)")
	planCmd.Flags().StringVar(&planVLANBrief, "vlan-brief", "", "Saved replacement 'show vlan brief' output (required)")
	planCmd.Flags().StringVar(&planSwitchport, "switchport", "", "Saved replacement 'show interfaces switchport' output (required)")
	planCmd.Flags().StringVar(&planExclude, "exclude-vlans", "", "Comma-separated VLAN IDs or ranges to exclude")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Emit the plan as JSON")
	planCmd.Flags().StringVar(&planQuery, "query", "", "jq expression to filter the JSON plan")
	planCmd.MarkFlagRequired("snapshot")
	planCmd.MarkFlagRequired("mac-table")
	planCmd.MarkFlagRequired("vlan-brief")
	planCmd.MarkFlagRequired("switchport")
}
