package metrics

import "github.com/prometheus/client_golang/prometheus"

// CoreMetrics records counters for the dialer core. All methods are nil-safe
// so components can run without a registry in tests.
type CoreMetrics struct {
	persistSuccess prometheus.Counter
	persistFailure prometheus.Counter
	callsStarted   prometheus.Counter
	regionChanges  prometheus.Counter
}

// NewCoreMetrics registers the core metrics on the provided registerer.
func NewCoreMetrics(reg prometheus.Registerer) *CoreMetrics {
	if reg == nil {
		return &CoreMetrics{}
	}
	persistSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "contact_persist_success_total",
		Help: "Successful contact store persists.",
	})
	persistFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "contact_persist_failure_total",
		Help: "Swallowed contact store persist failures.",
	})
	callsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calls_started_total",
		Help: "Simulated calls started.",
	})
	regionChanges := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "region_changes_total",
		Help: "Region switches triggered by location fixes.",
	})
	reg.MustRegister(persistSuccess, persistFailure, callsStarted, regionChanges)
	return &CoreMetrics{
		persistSuccess: persistSuccess,
		persistFailure: persistFailure,
		callsStarted:   callsStarted,
		regionChanges:  regionChanges,
	}
}

// IncPersistSuccess counts a completed persist.
func (c *CoreMetrics) IncPersistSuccess() {
	if c == nil || c.persistSuccess == nil {
		return
	}
	c.persistSuccess.Inc()
}

// IncPersistFailure counts a swallowed persist failure.
func (c *CoreMetrics) IncPersistFailure() {
	if c == nil || c.persistFailure == nil {
		return
	}
	c.persistFailure.Inc()
}

// IncCallsStarted counts a simulated call start.
func (c *CoreMetrics) IncCallsStarted() {
	if c == nil || c.callsStarted == nil {
		return
	}
	c.callsStarted.Inc()
}

// IncRegionChanges counts a region switch.
func (c *CoreMetrics) IncRegionChanges() {
	if c == nil || c.regionChanges == nil {
		return
	}
	c.regionChanges.Inc()
}
