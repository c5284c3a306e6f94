package configurator

import (
	"context"
	"sync"
	"time"

	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/types"
)

// VerifyOptions configure the Verifying state.
type VerifyOptions struct {
	Disabled  bool
	Timeout   time.Duration
	Endpoints []string
	DNSName   string
	DNSServer string
}

// DefaultVerifyOptions returns the check set used when nothing is configured.
func DefaultVerifyOptions() VerifyOptions {
	return VerifyOptions{
		Timeout:   3 * time.Second,
		Endpoints: []string{"1.1.1.1", "8.8.8.8"},
		DNSName:   "apple.com",
		DNSServer: "1.1.1.1",
	}
}

type checkSpec struct {
	target   string
	kind     string
	required bool
}

func (c *Configurator) checks(cfg types.NetworkConfig) []checkSpec {
	specs := []checkSpec{
		{target: cfg.DeviceIP(), kind: "icmp", required: true},
	}
	if mgmt := cfg.MgmtTestIP(); mgmt != "" {
		specs = append(specs, checkSpec{target: mgmt, kind: "icmp"})
	}
	for _, ep := range c.verify.Endpoints {
		specs = append(specs, checkSpec{target: ep, kind: "icmp"})
	}
	if c.verify.DNSName != "" && c.verify.DNSServer != "" {
		specs = append(specs, checkSpec{target: c.verify.DNSName, kind: "dns"})
	}
	return specs
}

// verifyConnectivity runs every check concurrently and waits for all of them. Failures
// become warnings; they never abort the transaction.
func (c *Configurator) verifyConnectivity(ctx context.Context, cfg types.NetworkConfig) types.Verification {
	logger := logging.WithComponent("configurator")

	specs := c.checks(cfg)
	results := make([]types.ProbeResult, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec checkSpec) {
			defer wg.Done()

			pctx, cancel := context.WithTimeout(ctx, c.verify.Timeout+time.Second)
			defer cancel()

			start := time.Now()
			var err error
			if spec.kind == "dns" {
				_, err = c.prober.Resolve(pctx, spec.target, c.verify.DNSServer, c.verify.Timeout)
			} else {
				_, err = c.prober.Ping(pctx, spec.target, c.verify.Timeout)
			}

			results[i] = types.ProbeResult{
				Target:   spec.target,
				Kind:     spec.kind,
				OK:       err == nil,
				Latency:  time.Since(start),
				Required: spec.required,
			}
			if err != nil {
				results[i].Error = err.Error()
				errs[i] = err
			}
		}(i, spec)
	}
	wg.Wait()

	v := types.Verification{Probes: results}
	for i, err := range errs {
		c.metrics.ObserveProbe(specs[i].kind, err == nil)
		if err == nil {
			continue
		}
		w := &types.ConnectivityWarning{Target: specs[i].target, Kind: specs[i].kind, Err: err}
		v.Warnings = append(v.Warnings, w)
		logger.WithError(err).WithField("target", specs[i].target).Warn("Connectivity check failed")
	}
	return v
}
