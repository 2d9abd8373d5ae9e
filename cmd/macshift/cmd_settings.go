package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent user settings",
	Long: `Settings persist across invocations in ~/.macshift/settings.json.

Keys:
  username     default SSH username
  output-dir   directory for snapshot and profile-db files
  profile-db   profile-db JSON file path
  redis        default Redis address for the profile db
  audit-log    audit log file path

Examples:
  macshift settings set username netops
  macshift settings show
  macshift settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("username:    %s\n", orNone(userSettings.DefaultUsername))
		fmt.Printf("output-dir:  %s\n", orNone(userSettings.OutputDir))
		fmt.Printf("profile-db:  %s\n", orNone(userSettings.ProfileDBPath))
		fmt.Printf("redis:       %s\n", orNone(userSettings.RedisAddr))
		fmt.Printf("audit-log:   %s\n", orNone(userSettings.AuditLogPath))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "username":
			userSettings.DefaultUsername = value
		case "output-dir":
			userSettings.OutputDir = value
		case "profile-db":
			userSettings.ProfileDBPath = value
		case "redis":
			userSettings.RedisAddr = value
		case "audit-log":
			userSettings.AuditLogPath = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
		if err := userSettings.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		userSettings.Clear()
		if err := userSettings.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}
