// Package metrics exposes Prometheus counters for the authentication
// operations. Counters register on the default registry and are served
// by the router's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginSuccess counts successful logins.
	LoginSuccess = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_login_success_total",
		Help: "Successful login attempts.",
	})
	// LoginFailure counts rejected logins. Unknown email and wrong
	// password are deliberately indistinguishable here as well.
	LoginFailure = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_login_failure_total",
		Help: "Rejected login attempts.",
	})
	// ResetRequested counts reset tickets issued.
	ResetRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_reset_requested_total",
		Help: "Password reset tickets issued.",
	})
	// ResetConfirmed counts successful ticket redemptions.
	ResetConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_reset_confirmed_total",
		Help: "Password resets completed.",
	})
	// ResetRejected counts redemption attempts rejected for any reason.
	ResetRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_reset_rejected_total",
		Help: "Password reset redemptions rejected.",
	})
	// MailFailure counts reset emails the transport refused.
	MailFailure = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authlite_mail_failure_total",
		Help: "Reset emails that failed to send.",
	})
)
