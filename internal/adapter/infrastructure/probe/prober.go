// Package probe provides reachability checks over ICMP and DNS.
package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"darwin-nic/internal/port"

	"github.com/miekg/dns"
	probing "github.com/prometheus-community/pro-bing"
)

// ProberAdapter implements the Prober port using pro-bing and miekg/dns.
type ProberAdapter struct {
	count      int
	privileged bool
}

// Ensure ProberAdapter implements the Prober port
var _ port.Prober = (*ProberAdapter)(nil)

// NewProberAdapter creates a prober sending count echo requests per target.
// Unprivileged mode uses UDP ICMP sockets, which macOS allows without root.
func NewProberAdapter(count int, privileged bool) *ProberAdapter {
	if count <= 0 {
		count = 2
	}
	return &ProberAdapter{count: count, privileged: privileged}
}

// Ping returns the average round trip, or an error when no reply arrived.
func (p *ProberAdapter) Ping(ctx context.Context, target string, timeout time.Duration) (time.Duration, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return 0, fmt.Errorf("failed to create pinger for %s: %w", target, err)
	}

	pinger.Count = p.count
	pinger.Timeout = timeout
	pinger.Interval = 200 * time.Millisecond
	pinger.SetPrivileged(p.privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to ping %s: %w", target, err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, fmt.Errorf("no reply from %s (%d sent)", target, stats.PacketsSent)
	}
	return stats.AvgRtt, nil
}

// Resolve queries server for the A records of name. server may omit the port.
func (p *ProberAdapter) Resolve(ctx context.Context, name, server string, timeout time.Duration) ([]string, error) {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	client := &dns.Client{
		Net:     "udp",
		Timeout: timeout,
	}

	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(name), dns.TypeA)
	req.RecursionDesired = true

	resp, _, err := client.ExchangeContext(ctx, req, server)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s via %s: %w", name, server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("failed to resolve %s via %s: %s", name, server, dns.RcodeToString[resp.Rcode])
	}

	var addrs []string
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no A records for %s via %s", name, server)
	}
	return addrs, nil
}
