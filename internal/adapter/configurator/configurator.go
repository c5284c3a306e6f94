// Package configurator runs the management NIC transaction: discover, score,
// gate, apply, reorder, verify, then commit or roll back.
package configurator

import (
	"context"
	"fmt"
	"time"

	"darwin-nic/internal/adapter/gate"
	"darwin-nic/internal/adapter/scorer"
	"darwin-nic/internal/adapter/serviceorder"
	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/pkg/metrics"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultStepTimeout bounds every OS step of a transaction.
const DefaultStepTimeout = 10 * time.Second

// Config wires a Configurator.
type Config struct {
	Detector     port.Detector
	Commander    port.NetworkCommander
	Store        port.SnapshotStore
	Prober       port.Prober
	OrderOptions serviceorder.Options
	Verify       VerifyOptions
	Metrics      *metrics.Recorder
	StepTimeout  time.Duration
}

// RunOptions are per-invocation choices.
type RunOptions struct {
	// Interface requests a specific device instead of the top-ranked candidate.
	Interface string
}

// Configurator is the only component that mutates host network state.
type Configurator struct {
	detector    port.Detector
	commander   port.NetworkCommander
	store       port.SnapshotStore
	prober      port.Prober
	orderOpts   serviceorder.Options
	verify      VerifyOptions
	metrics     *metrics.Recorder
	stepTimeout time.Duration

	newID func() uuid.UUID
	now   func() time.Time
}

// New creates a Configurator.
func New(cfg Config) *Configurator {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}
	if cfg.Verify.Timeout == 0 && cfg.Verify.Endpoints == nil && cfg.Verify.DNSName == "" {
		disabled := cfg.Verify.Disabled
		cfg.Verify = DefaultVerifyOptions()
		cfg.Verify.Disabled = disabled
	}
	if cfg.Verify.Timeout <= 0 {
		cfg.Verify.Timeout = DefaultVerifyOptions().Timeout
	}
	return &Configurator{
		detector:    cfg.Detector,
		commander:   cfg.Commander,
		store:       cfg.Store,
		prober:      cfg.Prober,
		orderOpts:   cfg.OrderOptions,
		verify:      cfg.Verify,
		metrics:     cfg.Metrics,
		stepTimeout: cfg.StepTimeout,
		newID:       uuid.New,
		now:         time.Now,
	}
}

type transaction struct {
	c         *Configurator
	cfg       types.NetworkConfig
	result    *types.TransactionResult
	commander *recordingCommander
	orders    *serviceorder.Manager
	logger    *logrus.Entry
	entered   time.Time

	addressChanged bool
	captured       types.ServiceOrder
}

// Run executes one transaction. The returned result is never nil; the error
// is the same value stored in result.Err.
func (c *Configurator) Run(ctx context.Context, cfg types.NetworkConfig, opts RunOptions) (*types.TransactionResult, error) {
	result := &types.TransactionResult{
		ID:        c.newID(),
		DryRun:    cfg.DryRun(),
		StartedAt: c.now(),
	}

	commander := newRecordingCommander(c.commander, cfg.DryRun())
	store := c.store
	if cfg.DryRun() || store == nil {
		store = serviceorder.NewMemoryStore()
	}

	t := &transaction{
		c:         c,
		cfg:       cfg,
		result:    result,
		commander: commander,
		orders:    serviceorder.NewManager(commander, store, c.orderOpts),
		logger:    logging.WithTransaction("configurator", result.ID.String()),
	}
	if cfg.DryRun() {
		t.logger = t.logger.WithField("dry_run", true)
	}
	t.enter(types.StateIdle)

	// Discovering
	t.enter(types.StateDiscovering)
	if err := ctx.Err(); err != nil {
		return t.fail(err)
	}
	dctx, cancel := context.WithTimeout(ctx, c.stepTimeout)
	ifaces, err := c.detector.DetectInterfaces(dctx)
	cancel()
	if err != nil {
		return t.fail(err)
	}
	t.logger.WithField("count", len(ifaces)).Info("Interfaces detected")

	// Scoring
	t.enter(types.StateScoring)
	ranked := scorer.Rank(ifaces)
	result.Candidates = ranked

	// Selecting
	t.enter(types.StateSelecting)
	selected, err := selectInterface(ifaces, ranked, opts.Interface)
	if err != nil {
		return t.fail(err)
	}
	result.Selected = &selected
	t.logger = t.logger.WithField("interface", selected.Name)
	t.logger.WithFields(logrus.Fields{
		"score": selected.Score,
		"port":  selected.HardwarePort,
	}).Info("Interface selected")

	// Validating
	t.enter(types.StateValidating)
	if err := gate.ValidateInterfaceForConfig(selected); err != nil {
		return t.fail(err)
	}
	if err := ctx.Err(); err != nil {
		return t.fail(err)
	}

	// Caller cancellation no longer interrupts steps from here on.
	mctx := context.WithoutCancel(ctx)

	// Applying
	t.enter(types.StateApplying)
	if err := t.apply(mctx, selected); err != nil {
		return t.rollback(mctx, selected, err)
	}

	// Reordering
	if cfg.PreserveWifi() {
		t.enter(types.StateReordering)
		sctx, cancel := context.WithTimeout(mctx, c.stepTimeout)
		plan, err := t.orders.Reorder(sctx, selected, result.ID.String())
		cancel()
		result.OldServiceOrder = plan.Old
		result.NewServiceOrder = plan.New
		t.captured = plan.Old
		if err != nil {
			return t.rollback(mctx, selected, err)
		}
	}

	// Verifying
	t.enter(types.StateVerifying)
	if cfg.DryRun() || c.verify.Disabled {
		result.Verification = types.Verification{Skipped: true}
	} else {
		result.Verification = c.verifyConnectivity(mctx, cfg)
	}

	t.enter(types.StateCommitted)
	t.finish()
	t.logger.WithFields(logrus.Fields{
		"ip":       cfg.LaptopIP(),
		"warnings": len(result.Verification.Warnings),
		"duration": result.Duration().Round(time.Millisecond),
	}).Info("Configuration committed")
	return result, nil
}

// selectInterface picks the top-ranked candidate or the explicitly requested
// device. A requested device is returned even when ineligible so the gate can
// report why.
func selectInterface(all, ranked []types.NetworkInterface, requested string) (types.NetworkInterface, error) {
	if requested != "" {
		for _, iface := range ranked {
			if iface.Name == requested {
				return iface, nil
			}
		}
		for _, iface := range all {
			if iface.Name == requested {
				return iface, nil
			}
		}
		return types.NetworkInterface{}, &types.NoEligibleInterfaceError{Requested: requested}
	}
	if len(ranked) == 0 {
		return types.NetworkInterface{}, &types.NoEligibleInterfaceError{
			Reason: fmt.Sprintf("%d interfaces detected, none is a non-protected USB adapter", len(all)),
		}
	}
	return ranked[0], nil
}

func (t *transaction) apply(ctx context.Context, iface types.NetworkInterface) error {
	ip, netmask := t.cfg.LaptopIP(), t.cfg.Netmask()

	if iface.IPAddress == ip {
		t.logger.WithField("ip", ip).Info("IP address already configured, skipping")
		t.commander.record(types.Action{Kind: "set_address", Target: iface.Name, Detail: ip + "/" + netmask, Skipped: true})
		return nil
	}

	t.addressChanged = true
	sctx, cancel := context.WithTimeout(ctx, t.c.stepTimeout)
	defer cancel()
	if err := t.commander.SetInterfaceAddress(sctx, iface.Name, ip, netmask); err != nil {
		return &types.ApplyError{Interface: iface.Name, Err: err}
	}
	t.logger.WithFields(logrus.Fields{"ip": ip, "netmask": netmask}).Info("Management address applied")
	return nil
}

// rollback reverts the address and the service order, then fails with cause.
func (t *transaction) rollback(ctx context.Context, iface types.NetworkInterface, cause error) (*types.TransactionResult, error) {
	t.enter(types.StateRollingBack)
	t.logger.WithError(cause).Warn("Transaction failed, rolling back")

	rb := &t.result.Rollback
	rb.Performed = true

	if t.addressChanged {
		sctx, cancel := context.WithTimeout(ctx, t.c.stepTimeout)
		err := t.commander.DisableInterface(sctx, iface.Name)
		cancel()
		if err != nil {
			rb.InterfaceErr = err.Error()
			t.logger.WithError(err).Error("Failed to reset interface during rollback")
		} else {
			rb.InterfaceReset = true
		}
	}

	if len(t.captured) > 0 {
		sctx, cancel := context.WithTimeout(ctx, t.c.stepTimeout)
		err := t.orders.Rollback(sctx, t.captured)
		cancel()
		if err != nil {
			rb.OrderRestoreErr = err.Error()
			t.logger.WithError(err).Error("Failed to restore service order during rollback")
		} else {
			rb.OrderRestored = true
		}
	}

	return t.fail(cause)
}

func (t *transaction) enter(state types.State) {
	now := t.c.now()
	if len(t.result.Trace) > 0 {
		t.c.metrics.ObserveStep(t.result.State, now.Sub(t.entered))
	}
	t.result.State = state
	t.result.Trace = append(t.result.Trace, state)
	t.entered = now
	t.logger.WithField("state", state).Debug("State transition")
}

func (t *transaction) fail(err error) (*types.TransactionResult, error) {
	t.enter(types.StateFailed)
	t.result.Err = err
	t.finish()
	t.logger.WithError(err).Error("Transaction failed")
	return t.result, err
}

func (t *transaction) finish() {
	t.result.FinishedAt = t.c.now()
	t.result.Actions = t.commander.Actions()
	t.c.metrics.ObserveTransaction(t.result)
}
