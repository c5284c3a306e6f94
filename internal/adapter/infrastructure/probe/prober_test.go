//go:build unit

package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startDNSServer runs a UDP resolver on loopback answering from records.
func startDNSServer(t *testing.T, records map[string]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		q := r.Question[0]
		if ip, ok := records[q.Name]; ok {
			rr, err := dns.NewRR(q.Name + " 60 IN A " + ip)
			if err == nil {
				m.Answer = append(m.Answer, rr)
			}
		} else {
			m.Rcode = dns.RcodeNameError
		}
		_ = w.WriteMsg(m)
	})

	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: handler, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = srv.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestNewProberAdapter(t *testing.T) {
	p := NewProberAdapter(0, false)
	assert.Equal(t, 2, p.count)
	assert.False(t, p.privileged)
}

func TestProberAdapter_Resolve(t *testing.T) {
	addr := startDNSServer(t, map[string]string{"apple.com.": "203.0.113.7"})
	p := NewProberAdapter(1, false)
	ctx := context.Background()

	t.Run("Answer", func(t *testing.T) {
		addrs, err := p.Resolve(ctx, "apple.com", addr, time.Second)
		require.NoError(t, err)
		assert.Equal(t, []string{"203.0.113.7"}, addrs)
	})

	t.Run("NXDomain", func(t *testing.T) {
		_, err := p.Resolve(ctx, "missing.example", addr, time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NXDOMAIN")
	})
}
