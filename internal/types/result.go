package types

import (
	"time"

	"github.com/google/uuid"
)

// State is a configurator transaction state.
type State string

const (
	StateIdle        State = "idle"
	StateDiscovering State = "discovering"
	StateScoring     State = "scoring"
	StateSelecting   State = "selecting"
	StateValidating  State = "validating"
	StateApplying    State = "applying"
	StateReordering  State = "reordering"
	StateVerifying   State = "verifying"
	StateCommitted   State = "committed"
	StateRollingBack State = "rolling_back"
	StateFailed      State = "failed"
)

// Action is a single OS mutation planned or issued by a transaction.
type Action struct {
	Kind    string `yaml:"kind"` // set_address, disable_interface, set_service_order, set_wifi_power
	Target  string `yaml:"target"`
	Detail  string `yaml:"detail,omitempty"`
	Skipped bool   `yaml:"skipped,omitempty"`
}

// ProbeResult is the outcome of one reachability probe.
type ProbeResult struct {
	Target   string        `yaml:"target"`
	Kind     string        `yaml:"kind"`
	OK       bool          `yaml:"ok"`
	Latency  time.Duration `yaml:"latency,omitempty"`
	Required bool          `yaml:"required"`
	Error    string        `yaml:"error,omitempty"`
}

// Verification summarises the Verifying state.
type Verification struct {
	Skipped  bool                   `yaml:"skipped"`
	Probes   []ProbeResult          `yaml:"probes,omitempty"`
	Warnings []*ConnectivityWarning `yaml:"-"`
}

// Passed reports whether every probe succeeded.
func (v Verification) Passed() bool {
	return !v.Skipped && len(v.Warnings) == 0
}

// Rollback records what the RollingBack state did.
type Rollback struct {
	Performed       bool   `yaml:"performed"`
	InterfaceReset  bool   `yaml:"interface_reset"`
	OrderRestored   bool   `yaml:"order_restored"`
	InterfaceErr    string `yaml:"interface_error,omitempty"`
	OrderRestoreErr string `yaml:"order_restore_error,omitempty"`
}

// TransactionResult is the outcome of a single configurator run.
type TransactionResult struct {
	ID              uuid.UUID          `yaml:"id"`
	State           State              `yaml:"state"`
	Trace           []State            `yaml:"trace"`
	DryRun          bool               `yaml:"dry_run"`
	Selected        *NetworkInterface  `yaml:"selected,omitempty"`
	Candidates      []NetworkInterface `yaml:"candidates,omitempty"`
	OldServiceOrder ServiceOrder       `yaml:"old_service_order,omitempty"`
	NewServiceOrder ServiceOrder       `yaml:"new_service_order,omitempty"`
	Actions         []Action           `yaml:"actions,omitempty"`
	Verification    Verification       `yaml:"verification"`
	Rollback        Rollback           `yaml:"rollback"`
	Err             error              `yaml:"-"`
	StartedAt       time.Time          `yaml:"started_at"`
	FinishedAt      time.Time          `yaml:"finished_at"`
}

// Succeeded reports whether the transaction committed.
func (r *TransactionResult) Succeeded() bool {
	return r.State == StateCommitted
}

// Duration returns the wall-clock run time.
func (r *TransactionResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
