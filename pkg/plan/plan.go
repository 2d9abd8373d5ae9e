// Package plan derives the minimal configuration-command sequence that
// replicates a legacy switch's VLAN assignments onto a replacement switch.
// The builder is pure: it reads immutable snapshots and returns the plan
// and its diagnostics as data. Applying the plan is the caller's concern.
package plan

import "fmt"

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one skipped or noteworthy record from plan construction.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Plan is an ordered sequence of IOS configuration commands plus the
// diagnostics produced while building it. VLAN creation pairs come first,
// interface assignment pairs follow. The builder does not append the
// closing "end" / "write memory"; the transport caller does.
type Plan struct {
	Commands    []string     `json:"commands"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// IsEmpty returns true when the plan contains no commands.
func (p *Plan) IsEmpty() bool {
	return len(p.Commands) == 0
}

func (p *Plan) addCommand(format string, args ...interface{}) {
	p.Commands = append(p.Commands, fmt.Sprintf(format, args...))
}

func (p *Plan) diag(sev Severity, format string, args ...interface{}) {
	p.Diagnostics = append(p.Diagnostics, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnings returns only the warning-level diagnostics.
func (p *Plan) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range p.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
