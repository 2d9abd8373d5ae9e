package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/audit"
	"github.com/macshift-net/macshift/pkg/cli"
)

var (
	auditSwitch   string
	auditUser     string
	auditFailures bool
	auditLimit    int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent deploy runs from the audit log",
	Long: `Every executed deploy is recorded in the audit log
(default ~/.macshift/audit.jsonl). This command lists recent runs,
newest first.

Examples:
  macshift audit
  macshift audit --switch 10.10.0.21
  macshift audit --failures`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := audit.NewFileLogger(userSettings.GetAuditLogPath())
		if err != nil {
			return err
		}
		defer logger.Close()

		events, err := logger.Query(audit.Filter{
			Switch:      auditSwitch,
			User:        auditUser,
			FailureOnly: auditFailures,
			Limit:       auditLimit,
		})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No audit events recorded.")
			return nil
		}

		t := cli.NewTable("TIME", "USER", "SWITCH", "COMMANDS", "RESULT")
		for _, ev := range events {
			result := cli.Green("ok")
			if !ev.Success {
				result = cli.Red("failed: " + ev.Error)
			}
			t.Row(
				ev.Timestamp.Format("2006-01-02 15:04:05"),
				ev.User,
				ev.Switch,
				fmt.Sprintf("%d", len(ev.Commands)),
				result,
			)
		}
		t.Flush()
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditSwitch, "switch", "", "Only show events for this switch")
	auditCmd.Flags().StringVar(&auditUser, "user", "", "Only show events for this user")
	auditCmd.Flags().BoolVar(&auditFailures, "failures", false, "Only show failed runs")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "Maximum events to show")
}
