package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector reports the number of scopes holding bank data at scrape time.
type Collector struct {
	scopesDesc *prometheus.Desc
	counter    func() int64
	nodeID     string
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.scopesDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.scopesDesc,
		prometheus.GaugeValue,
		float64(c.counter()),
		c.nodeID,
	)
}

func NewCollector(counter func() int64, nodeID string) *Collector {
	return &Collector{
		scopesDesc: prometheus.NewDesc("bank_scopes", "Number of scopes holding a bank config or accounts, by node", []string{"nodeID"}, nil),
		counter:    counter,
		nodeID:     nodeID,
	}
}
