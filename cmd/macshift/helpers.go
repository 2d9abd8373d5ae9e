package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/macshift-net/macshift/pkg/cli"
	"github.com/macshift-net/macshift/pkg/correlate"
	"github.com/macshift-net/macshift/pkg/device"
	"github.com/macshift-net/macshift/pkg/ios"
	"github.com/macshift-net/macshift/pkg/plan"
	"github.com/macshift-net/macshift/pkg/util"
)

// credentials resolves username/password from flags, settings, and
// interactive prompts, in that order.
func credentials() (string, string, error) {
	user := username
	if user == "" {
		return "", "", fmt.Errorf("no username: use --username or set one with 'macshift settings set username <name>'")
	}

	pass := password
	if pass == "" {
		fmt.Fprintf(os.Stderr, "Password for %s: ", user)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		pass = string(raw)
	}
	return user, pass, nil
}

// connect dials a switch with the resolved credentials.
func connect(host string) (*device.Client, error) {
	user, pass, err := credentials()
	if err != nil {
		return nil, err
	}
	util.WithSwitch(host).Debug("dialing")
	return device.Dial(device.Config{Host: host, Username: user, Password: pass})
}

// parseExclusions expands an --exclude-vlans spec ("1,1002-1005") into the
// exclusion set the plan builder consumes.
func parseExclusions(spec string) (map[string]bool, error) {
	ids, err := util.ExpandRange(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing --exclude-vlans: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[strconv.Itoa(id)] = true
	}
	return set, nil
}

// confirm asks a yes/no question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}

// replacementState is the live state queried from the replacement switch
// (or loaded from files in offline mode) that the plan builder consumes.
type replacementState struct {
	Index         *correlate.Index
	ExistingVLANs map[string]bool
	PortModes     map[string]ios.PortMode
}

// parseReplacementState derives builder inputs from the three command outputs.
func parseReplacementState(macTable, vlanBrief, switchport string) replacementState {
	existing := make(map[string]bool)
	for _, e := range ios.ParseVLANBrief(vlanBrief) {
		existing[e.ID] = true
	}
	return replacementState{
		Index:         correlate.FromMACTable(ios.ParseMACTable(macTable)),
		ExistingVLANs: existing,
		PortModes:     ios.ParseSwitchportModes(switchport),
	}
}

// queryReplacementState runs the three show commands against a live switch.
func queryReplacementState(c *device.Client) (replacementState, error) {
	macTable, err := c.Run("show mac address-table")
	if err != nil {
		return replacementState{}, err
	}
	vlanBrief, err := c.Run("show vlan brief")
	if err != nil {
		return replacementState{}, err
	}
	switchport, err := c.Run("show interfaces switchport")
	if err != nil {
		return replacementState{}, err
	}
	return parseReplacementState(macTable, vlanBrief, switchport), nil
}

// printPlan renders the command plan and its diagnostics for review.
func printPlan(p *plan.Plan) {
	if len(p.Diagnostics) > 0 {
		t := cli.NewTable("SEVERITY", "MESSAGE")
		for _, d := range p.Diagnostics {
			sev := string(d.Severity)
			if d.Severity == plan.SeverityWarning {
				sev = cli.Yellow(sev)
			}
			t.Row(sev, d.Message)
		}
		t.Flush()
		fmt.Println()
	}

	if p.IsEmpty() {
		fmt.Println("No configuration changes are necessary.")
		return
	}

	fmt.Println(cli.Bold("Proposed configuration commands:"))
	fmt.Println("--------------------------------")
	for _, cmd := range p.Commands {
		fmt.Println(cmd)
	}
	fmt.Println("--------------------------------")
}
