package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/cli"
	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/snapshot"
	"github.com/macshift-net/macshift/pkg/verify"
)

var (
	verifySnapshot string
	verifyHost     string
	verifyExclude  string
	verifyCheck    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a replacement switch against a legacy snapshot",
	Long: `Check that a migration took: expected VLANs exist on the replacement,
legacy hosts have been learned, and learned hosts sit in the VLAN the
legacy switch had them in.

Hosts that have not sent traffic since the cutover show up as warnings;
run verify again once the ports have been active.

Examples:
  macshift verify --snapshot legacy-sw1_snapshot.txt --host 10.10.0.21
  macshift verify --snapshot legacy-sw1_snapshot.txt --host 10.10.0.21 --check assignments`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.ReadFile(verifySnapshot)
		if err != nil {
			return err
		}
		exclude, err := parseExclusions(verifyExclude)
		if err != nil {
			return err
		}

		c, err := connect(verifyHost)
		if err != nil {
			return err
		}
		defer c.Close()

		macTable, err := c.Run("show mac address-table")
		if err != nil {
			return err
		}
		vlanBrief, err := c.Run("show vlan brief")
		if err != nil {
			return err
		}

		existing := make(map[string]bool)
		for _, e := range ios.ParseVLANBrief(vlanBrief) {
			existing[e.ID] = true
		}

		results := verify.Run(verify.Inputs{
			Legacy:          snap.MACRecords,
			Exclude:         exclude,
			ReplacementMACs: ios.ParseMACTable(macTable),
			ExistingVLANs:   existing,
		}, verifyCheck)

		t := cli.NewTable("CHECK", "STATUS", "MESSAGE")
		for _, r := range results {
			status := r.Status
			switch r.Status {
			case verify.StatusPass:
				status = cli.Green(status)
			case verify.StatusWarn:
				status = cli.Yellow(status)
			case verify.StatusFail:
				status = cli.Red(status)
			}
			t.Row(r.Check, status, r.Message)
		}
		t.Flush()

		if verify.Failed(results) {
			return fmt.Errorf("verification failed")
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifySnapshot, "snapshot", "", "Legacy snapshot file from 'macshift collect' (required)")
	verifyCmd.Flags().StringVar(&verifyHost, "host", "", "Replacement switch address (required)")
	verifyCmd.Flags().StringVar(&verifyExclude, "exclude-vlans", "", "VLAN IDs excluded from the migration (e.g. 1,1002-1005)")
	verifyCmd.Flags().StringVar(&verifyCheck, "check", "", "Run a single check: vlans, macs, or assignments")
	verifyCmd.MarkFlagRequired("snapshot")
	verifyCmd.MarkFlagRequired("host")
}
