package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	// defaultUpstream is the default recursive resolver for seed queries.
	defaultUpstream = "8.8.8.8:53"

	// seedTimeout is the timeout for seed queries.
	seedTimeout = 10 * time.Second

	// seedDomain hosts TXT records listing node endpoints per network,
	// e.g. seed.testnet.emberchain.org.
	seedDomain = "emberchain.org"
)

// SeedResolver discovers node RPC endpoints from DNS seed records.
// Each TXT record under seed.<network>.<domain> lists one endpoint URL.
type SeedResolver struct {
	// Upstream is the recursive resolver address (e.g., "8.8.8.8:53").
	Upstream string

	// Domain overrides the default seed domain.
	Domain string
}

// NewSeedResolver creates a SeedResolver. If upstream is empty, it
// defaults to "8.8.8.8:53".
func NewSeedResolver(upstream string) *SeedResolver {
	if upstream == "" {
		upstream = defaultUpstream
	}
	return &SeedResolver{Upstream: upstream, Domain: seedDomain}
}

// LookupNodes returns the node endpoint URLs published for the network.
func (r *SeedResolver) LookupNodes(network string) ([]string, error) {
	qname := dns.Fqdn(fmt.Sprintf("seed.%s.%s", network, r.Domain))

	msg := new(dns.Msg)
	msg.SetQuestion(qname, dns.TypeTXT)
	msg.RecursionDesired = true

	client := &dns.Client{Timeout: seedTimeout}
	resp, _, err := client.Exchange(msg, r.Upstream)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s TXT: %w", ErrConnectionFailed, qname, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: query %s TXT: rcode %s",
			ErrConnectionFailed, qname, dns.RcodeToString[resp.Rcode])
	}

	var endpoints []string
	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		// Long URLs may be split across character-strings; rejoin them.
		endpoint := strings.Join(txt.Txt, "")
		if endpoint != "" {
			endpoints = append(endpoints, endpoint)
		}
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSeedRecords, qname)
	}
	return endpoints, nil
}
