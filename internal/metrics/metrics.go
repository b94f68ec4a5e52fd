// Package metrics exposes Prometheus instrumentation for the directory.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Login outcomes recorded by the logins counter.
const (
	LoginOK       = "ok"
	LoginRejected = "rejected"
	LoginUnknown  = "unknown_login"
)

// Metrics holds the directory's Prometheus collectors. A nil *Metrics is
// valid and records nothing, so instrumentation can be switched off without
// branching at every call site.
type Metrics struct {
	registrations     *prometheus.CounterVec
	logins            *prometheus.CounterVec
	accessCodesIssued prometheus.Counter
	usersImported     prometheus.Counter
}

// New creates the directory collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "registrations_total",
			Help:      "Successful user registrations by authentication mode.",
		}, []string{"auth"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		accessCodesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "access_codes_issued_total",
			Help:      "One-time access codes issued, including reissues.",
		}),
		usersImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "directory",
			Name:      "users_imported_total",
			Help:      "Users restored through bulk import.",
		}),
	}
	reg.MustRegister(m.registrations, m.logins, m.accessCodesIssued, m.usersImported)
	return m
}

// Registration records a successful registration for an auth mode
// ("password" or "sms").
func (m *Metrics) Registration(auth string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(auth).Inc()
}

// Login records a login attempt outcome.
func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// AccessCodeIssued records one issued access code.
func (m *Metrics) AccessCodeIssued() {
	if m == nil {
		return
	}
	m.accessCodesIssued.Inc()
}

// Imported records n users restored by a bulk import.
func (m *Metrics) Imported(n int) {
	if m == nil {
		return
	}
	m.usersImported.Add(float64(n))
}
