package reconcile

import "time"

// Spec defines the configuration for a scan.
type Spec struct {
	// Adapter decides which objects are sources and what to probe.
	Adapter Adapter

	// Prefix restricts the listing. Empty lists the whole bucket.
	Prefix string

	// Limit stops the scan after that many missing sources. Zero means no limit.
	Limit int

	// CacheTTL is the time-to-live for cached plans.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey(bucket string) string {
	return s.Adapter.Name() + "|" + bucket + "|" + s.Prefix
}

// Summary provides aggregate counts for a scan.
type Summary struct {
	// Listed is the number of objects the listing returned.
	Listed int `json:"listed"`

	// Candidates counts objects the adapter accepted as sources.
	Candidates int `json:"candidates"`

	// Present counts sources whose probe key exists.
	Present int `json:"present"`

	// Missing counts sources whose probe key is absent or could not be checked.
	Missing int `json:"missing"`

	// ProbeErrors counts probes that failed for reasons other than absence.
	ProbeErrors int `json:"probe_errors"`
}

// Plan is the materialized result of a scan.
type Plan struct {
	// Missing lists source keys without derived outputs, in listing order.
	Missing []string `json:"missing"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Built is when the scan finished.
	Built time.Time `json:"built"`
}

// Sample returns at most n missing keys from the front of the plan.
func (p *Plan) Sample(n int) []string {
	if n <= 0 || len(p.Missing) <= n {
		return p.Missing
	}
	return p.Missing[:n]
}
