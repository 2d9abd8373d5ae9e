// Macshift - Cisco IOS switch migration tool
//
// Macshift moves a legacy switch's VLAN layout onto its replacement by
// correlating the two devices' MAC address tables:
//
//	collect    Snapshot a legacy switch (MAC table, VLAN names, running config)
//	deploy     Build and optionally apply the migration plan on the replacement
//	plan       Build the plan offline from saved command output
//	verify     Check the replacement against the snapshot after cutover
//	profiledb  Build and query the fleet-wide MAC → interface-profile database
//
// Write operations preview by default; deploy requires -x to execute.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/settings"
	"github.com/macshift-net/macshift/pkg/util"
	"github.com/macshift-net/macshift/pkg/version"
)

var (
	// Global option flags
	verbose  bool
	username string
	password string

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "macshift",
	Short:         "Cisco IOS switch migration tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Macshift replicates a legacy switch's VLAN assignments onto a
replacement switch by joining the two devices' MAC address tables.

Workflow:
  macshift collect --host 10.0.0.1          # snapshot the legacy switch
  macshift deploy --snapshot legacy-sw1_snapshot.txt --host 10.0.0.2
  macshift deploy ... -x                    # apply after review

Deploy previews its command plan by default; -x executes it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		if username == "" {
			username = userSettings.DefaultUsername
		}

		// Quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("macshift", version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "SSH username (default from settings)")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "SSH password (prompted when omitted)")

	rootCmd.AddCommand(
		auditCmd,
		collectCmd,
		deployCmd,
		planCmd,
		profiledbCmd,
		settingsCmd,
		verifyCmd,
		versionCmd,
	)
}
