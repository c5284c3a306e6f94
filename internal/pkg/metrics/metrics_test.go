//go:build unit

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"darwin-nic/internal/types"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.ObserveStep(types.StateApplying, 250*time.Millisecond)
	r.ObserveProbe("icmp", false)
	r.ObserveProbe("icmp", true)
	r.ObserveProbe("dns", false)
	r.ObserveTransaction(&types.TransactionResult{
		State:      types.StateFailed,
		Candidates: []types.NetworkInterface{{Name: "en5"}, {Name: "en6"}},
		Rollback:   types.Rollback{Performed: true},
		FinishedAt: time.Unix(1700000000, 0),
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(r.ProbeFailures.WithLabelValues("icmp")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ProbeFailures.WithLabelValues("dns")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.Transactions.WithLabelValues("failed", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.Rollbacks))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.Candidates))
	assert.Equal(t, 1, testutil.CollectAndCount(r.StepDuration))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveStep(types.StateIdle, time.Second)
		r.ObserveProbe("icmp", false)
		r.ObserveTransaction(&types.TransactionResult{})
		assert.NoError(t, r.WriteTextfile("/nonexistent/metrics.prom"))
	})
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveTransaction(&types.TransactionResult{State: types.StateCommitted, FinishedAt: time.Now()})

	path := filepath.Join(t.TempDir(), "darwin_nic.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `darwin_nic_transactions_total{dry_run="false",state="committed"} 1`)
}
