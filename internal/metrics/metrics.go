// Package metrics exposes Prometheus counters for the privacy core.
// A nil *Metrics is valid and records nothing.
//
// The counters are the package's export surface: they are registered on the
// prometheus.Registerer given to New and this module serves no endpoint of
// its own. A process embedding the core scrapes them by serving that
// registry, e.g. promhttp.Handler() for prometheus.DefaultRegisterer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for audit, privacy and retention events.
type Metrics struct {
	AuditEvents         *prometheus.CounterVec
	AuditFailures       prometheus.Counter
	DecryptPassthroughs prometheus.Counter
	EncryptionSkipped   prometheus.Counter
	AnonymizeFailures   prometheus.Counter
	RetentionPurged     prometheus.Counter
	RedactedRows        prometheus.Counter
}

// New creates a Metrics instance registered with reg. Pass
// prometheus.DefaultRegisterer in binaries and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AuditEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "patientguard_audit_events_total",
			Help: "Total number of audit log entries written, by action",
		}, []string{"action"}),
		AuditFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_audit_failures_total",
			Help: "Total number of audit log writes that failed",
		}),
		DecryptPassthroughs: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_decrypt_passthrough_total",
			Help: "Total number of diagnosis values returned unchanged because decryption failed",
		}),
		EncryptionSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_encryption_skipped_total",
			Help: "Total number of writes stored as plaintext because no key was available",
		}),
		AnonymizeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_anonymize_failures_total",
			Help: "Total number of records that failed during bulk anonymization",
		}),
		RetentionPurged: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_retention_purged_total",
			Help: "Total number of patient records deleted by retention sweeps",
		}),
		RedactedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientguard_redacted_rows_total",
			Help: "Total number of patient rows redacted because of an integrity violation",
		}),
	}
}

// IncAuditEvent increments the audit counter for action.
func (m *Metrics) IncAuditEvent(action string) {
	if m == nil {
		return
	}
	m.AuditEvents.WithLabelValues(action).Inc()
}

// IncAuditFailure increments the failed audit write counter.
func (m *Metrics) IncAuditFailure() {
	if m == nil {
		return
	}
	m.AuditFailures.Inc()
}

// IncDecryptPassthrough increments the decrypt passthrough counter.
func (m *Metrics) IncDecryptPassthrough() {
	if m == nil {
		return
	}
	m.DecryptPassthroughs.Inc()
}

// IncEncryptionSkipped increments the plaintext fallback counter.
func (m *Metrics) IncEncryptionSkipped() {
	if m == nil {
		return
	}
	m.EncryptionSkipped.Inc()
}

// AddAnonymizeFailures adds n failed records from a bulk anonymization.
func (m *Metrics) AddAnonymizeFailures(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.AnonymizeFailures.Add(float64(n))
}

// AddRetentionPurged adds n records removed by a retention sweep.
func (m *Metrics) AddRetentionPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RetentionPurged.Add(float64(n))
}

// IncRedactedRow increments the redacted row counter.
func (m *Metrics) IncRedactedRow() {
	if m == nil {
		return
	}
	m.RedactedRows.Inc()
}
