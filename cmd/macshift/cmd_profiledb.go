package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macshift-net/macshift/pkg/cli"
	"github.com/macshift-net/macshift/pkg/device"
	"github.com/macshift-net/macshift/pkg/profiledb"
	"github.com/macshift-net/macshift/pkg/util"
)

var (
	profiledbInventory string
	profiledbOutput    string
	profiledbRedis     string
	profiledbHosts     string
	profiledbJSON      bool
	profiledbQuery     string
)

var profiledbCmd = &cobra.Command{
	Use:   "profiledb",
	Short: "Build and query the MAC → interface-profile database",
	Long: `The profile database maps every hardware address seen across the
legacy fleet to the configuration profile of the interface it was learned
on. It feeds replacement provisioning with per-endpoint port settings.

Examples:
  macshift profiledb build --inventory switches.yaml
  macshift profiledb build --inventory switches.yaml --redis 127.0.0.1:6379
  macshift profiledb show 0050.7966.6802
  macshift profiledb list --query '.[] | select(.mode == "trunk") | .switch'`,
}

var profiledbBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Collect profiles from every switch in the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := profiledb.LoadInventory(profiledbInventory)
		if err != nil {
			return err
		}

		only := util.StringSet(util.SplitCommaSeparated(profiledbHosts))

		db := profiledb.DB{}
		failed := 0
		for _, dev := range inv.Devices {
			if len(only) > 0 && !only[dev.Hostname] {
				continue
			}
			part, err := collectProfiles(dev)
			if err != nil {
				util.WithSwitch(dev.Hostname).Errorf("collection failed: %v", err)
				failed++
				continue
			}
			added := db.Merge(part)
			util.WithSwitch(dev.Hostname).Infof("added %d profile records", added)
		}

		store, closeStore, err := profileStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Save(db); err != nil {
			return err
		}

		fmt.Printf("Saved %d profile records", len(db))
		if failed > 0 {
			fmt.Printf(" (%d switches failed)", failed)
		}
		fmt.Println()
		return nil
	},
}

var profiledbShowCmd = &cobra.Command{
	Use:   "show <mac>",
	Short: "Look up one hardware address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := profileStore()
		if err != nil {
			return err
		}
		defer closeStore()

		rec, ok, err := store.Get(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("mac %s: %w", args[0], util.ErrNotFound)
		}

		if profiledbQuery != "" {
			return cli.Query(os.Stdout, rec, profiledbQuery)
		}
		if profiledbJSON {
			return json.NewEncoder(os.Stdout).Encode(rec)
		}
		fmt.Println(rec)
		return nil
	},
}

var profiledbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known hardware addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := profileStore()
		if err != nil {
			return err
		}
		defer closeStore()

		db, err := store.Load()
		if err != nil {
			return err
		}
		if profiledbQuery != "" {
			return cli.Query(os.Stdout, db, profiledbQuery)
		}
		if profiledbJSON {
			return json.NewEncoder(os.Stdout).Encode(db)
		}

		t := cli.NewTable("MAC", "SWITCH", "INTERFACE", "MODE", "ACCESS VLAN")
		for mac, rec := range db {
			access := "-"
			if rec.AccessVLAN != nil {
				access = fmt.Sprintf("%d", *rec.AccessVLAN)
			}
			t.Row(mac, rec.Switch, rec.Interface, rec.Mode, access)
		}
		t.Flush()
		if len(db) == 0 {
			fmt.Println("Profile database is empty")
		}
		return nil
	},
}

// collectProfiles snapshots one inventory device and derives its records.
func collectProfiles(dev profiledb.InventoryDevice) (profiledb.DB, error) {
	user := dev.Username
	if user == "" {
		user = username
	}
	pass := dev.Password
	if pass == "" {
		pass = password
	}
	if user == "" {
		return nil, fmt.Errorf("no username for %s: set it in the inventory or via --username", dev.Hostname)
	}

	c, err := device.Dial(device.Config{Host: dev.Host, Username: user, Password: pass})
	if err != nil {
		return nil, err
	}
	defer c.Close()

	macTable, err := c.Run("show mac address-table")
	if err != nil {
		return nil, err
	}
	runningConfig, err := c.Run("show running-config")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(runningConfig) == "" {
		return nil, fmt.Errorf("%s running-config: %w", dev.Hostname, util.ErrEmptyOutput)
	}

	return profiledb.BuildDevice(dev.Hostname, macTable, runningConfig), nil
}

// profileStore picks the store backend: Redis when an address is
// configured, the JSON file otherwise.
func profileStore() (profiledb.Store, func(), error) {
	addr := profiledbRedis
	if addr == "" {
		addr = userSettings.RedisAddr
	}
	if addr != "" {
		rs := profiledb.NewRedisStore(addr)
		if err := rs.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connecting to Redis at %s: %w", addr, err)
		}
		return rs, func() { rs.Close() }, nil
	}

	path := profiledbOutput
	if path == "" {
		path = userSettings.GetProfileDBPath()
	}
	return profiledb.NewFileStore(path), func() {}, nil
}

func init() {
	profiledbCmd.PersistentFlags().StringVar(&profiledbOutput, "db", "", "Profile-db JSON file (default from settings)")
	profiledbCmd.PersistentFlags().StringVar(&profiledbRedis, "redis", "", "Use Redis at this address instead of the JSON file")
	profiledbCmd.PersistentFlags().BoolVar(&profiledbJSON, "json", false, "Emit JSON output")
	profiledbCmd.PersistentFlags().StringVar(&profiledbQuery, "query", "", "jq expression to filter JSON output")

	profiledbBuildCmd.Flags().StringVar(&profiledbInventory, "inventory", "", "YAML inventory of legacy switches (required)")
	profiledbBuildCmd.Flags().StringVar(&profiledbHosts, "hosts", "", "Comma-separated hostnames to limit collection to")
	profiledbBuildCmd.MarkFlagRequired("inventory")

	profiledbCmd.AddCommand(profiledbBuildCmd, profiledbShowCmd, profiledbListCmd)
}
