package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/audit"
	"github.com/macshift-net/macshift/pkg/plan"
	"github.com/macshift-net/macshift/pkg/snapshot"
	"github.com/macshift-net/macshift/pkg/util"
)

var (
	deploySnapshot string
	deployHost     string
	deployExclude  string
	deployExecute  bool
	deployYes      bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build the migration plan on the replacement switch",
	Long: `Parse a legacy snapshot, query the replacement switch's live state,
and build the VLAN migration plan.

The plan is previewed by default. With -x the commands are applied after
a confirmation prompt (skip the prompt with --yes), followed by
"end" and "write memory".

Only ports in "static access" mode are ever modified; trunks and routed
ports are skipped with a warning. VLANs listed in --exclude-vlans are
neither created nor assigned.

Examples:
  macshift deploy --snapshot legacy-sw1_snapshot.txt --host 10.10.0.21
  macshift deploy --snapshot legacy-sw1_snapshot.txt --host 10.10.0.21 --exclude-vlans 1,1002-1005
  macshift deploy --snapshot legacy-sw1_snapshot.txt --host 10.10.0.21 -x`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshot.ReadFile(deploySnapshot)
		if err != nil {
			return err
		}
		if len(snap.MACRecords) == 0 {
			util.Warnf("snapshot %s contains no MAC records", deploySnapshot)
		}

		exclude, err := parseExclusions(deployExclude)
		if err != nil {
			return err
		}
		if len(exclude) > 0 {
			util.Infof("excluding %d VLANs", len(exclude))
		}

		c, err := connect(deployHost)
		if err != nil {
			return err
		}
		defer c.Close()

		state, err := queryReplacementState(c)
		if err != nil {
			return err
		}
		util.Debugf("replacement state: %d macs, %d vlans, %d port modes",
			state.Index.Len(), len(state.ExistingVLANs), len(state.PortModes))

		p := plan.Build(plan.Inputs{
			Legacy:        snap.MACRecords,
			Catalog:       snap.Catalog,
			ExistingVLANs: state.ExistingVLANs,
			Index:         state.Index,
			PortModes:     state.PortModes,
			Exclude:       exclude,
		})

		printPlan(p)
		if p.IsEmpty() {
			return nil
		}

		if !deployExecute {
			fmt.Println("\nDry run - re-run with -x to apply these commands.")
			return nil
		}

		if !deployYes && !confirm("Do you want to apply these commands?") {
			fmt.Println("Aborting configuration changes.")
			return nil
		}

		commands := append(append([]string{}, p.Commands...), "end", "write memory")
		start := time.Now()
		output, err := c.SendConfig(commands)
		logDeploy(deployHost, p, err, time.Since(start))
		if err != nil {
			return fmt.Errorf("applying configuration: %w", err)
		}
		fmt.Println("Configuration applied. Device response:")
		fmt.Println(output)
		return nil
	},
}

// logDeploy records an applied plan in the audit log. Failures to write
// the log are reported but never fail the deploy itself.
func logDeploy(host string, p *plan.Plan, applyErr error, elapsed time.Duration) {
	logger, err := audit.NewFileLogger(userSettings.GetAuditLogPath())
	if err != nil {
		util.Warnf("could not open audit log: %v", err)
		return
	}
	defer logger.Close()

	ev := audit.NewEvent(username, host, "deploy").
		WithCommands(p.Commands).
		WithWarnings(len(p.Warnings())).
		WithExecuteMode(true).
		WithDuration(elapsed)
	if applyErr != nil {
		ev.WithError(applyErr)
	} else {
		ev.WithSuccess()
	}
	if err := logger.Log(ev); err != nil {
		util.Warnf("could not write audit event: %v", err)
	}
}

func init() {
	deployCmd.Flags().StringVar(&deploySnapshot, "snapshot", "", "Legacy snapshot file from 'macshift collect' (required)")
	deployCmd.Flags().StringVar(&deployHost, "host", "", "Replacement switch address (required)")
	deployCmd.Flags().StringVar(&deployExclude, "exclude-vlans", "", "Comma-separated VLAN IDs to exclude")
	deployCmd.Flags().BoolVarP(&deployExecute, "execute", "x", false, "Apply the plan (default is preview only)")
	deployCmd.Flags().BoolVar(&deployYes, "yes", false, "Skip the confirmation prompt")
	deployCmd.MarkFlagRequired("snapshot")
	deployCmd.MarkFlagRequired("host")
}
