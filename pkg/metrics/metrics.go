package metrics

import (
	"errors"

	"github.com/automuteus/bank/pkg/bank"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bank"

// Metrics counts ledger activity; it implements bank.Recorder.
type Metrics struct {
	operations   *prometheus.CounterVec
	clamped      *prometheus.CounterVec
	modeSwitches *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of ledger operations, differentiated by operation/result",
		}, []string{"operation", "result"}),
		clamped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_accounts_total",
			Help:      "Number of account balances lowered to a new max balance",
		}, []string{"scope"}),
		modeSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mode_switches_total",
			Help:      "Number of global/per-guild mode switches, by the mode switched to",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.operations, m.clamped, m.modeSwitches)
	return m
}

var resultErrors = []struct {
	err    error
	result string
}{
	{bank.ErrInvalidAmount, "invalid_amount"},
	{bank.ErrEmptyName, "empty_name"},
	{bank.ErrBalanceTooHigh, "balance_too_high"},
	{bank.ErrInsufficientFunds, "insufficient_funds"},
	{bank.ErrSameAccount, "same_account"},
	{bank.ErrScopeInactive, "scope_inactive"},
	{bank.ErrGuildRequired, "guild_required"},
	{bank.ErrAccountNotFound, "account_not_found"},
}

func Result(err error) string {
	if err == nil {
		return "ok"
	}
	for _, r := range resultErrors {
		if errors.Is(err, r.err) {
			return r.result
		}
	}
	return "error"
}

func (m *Metrics) ObserveOperation(op string, err error) {
	m.operations.WithLabelValues(op, Result(err)).Inc()
}

func (m *Metrics) ObserveClamped(scope bank.Scope, n int64) {
	m.clamped.WithLabelValues(scopeLabel(scope)).Add(float64(n))
}

func (m *Metrics) ObserveModeSwitch(global bool) {
	mode := "guild"
	if global {
		mode = "global"
	}
	m.modeSwitches.WithLabelValues(mode).Inc()
}

func scopeLabel(scope bank.Scope) string {
	if scope.IsGlobal() {
		return "global"
	}
	return "guild"
}
