// Package metrics exposes a prometheus.Collector over the gateway's live
// state, adapted from flowpbx-flowpbx/internal/metrics/metrics.go's
// Describe/Collect shape and provider-interface pattern.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ActiveCallsProvider exposes the number of currently active calls.
type ActiveCallsProvider interface {
	GetActiveCallCount() int
}

// BlacklistProvider exposes blacklist/whitelist sizes.
type BlacklistProvider interface {
	BlacklistSize(ctx context.Context) (int64, error)
	WhitelistSize(ctx context.Context) (int64, error)
}

// RTPStatsProvider returns aggregate RTP statistics across active calls.
type RTPStatsProvider interface {
	AggregatePacketsSent() uint64
	AggregatePacketsReceived() uint64
	AggregateBytesSent() uint64
	AggregateBytesReceived() uint64
}

// CostProvider exposes cumulative call cost.
type CostProvider interface {
	TotalCostUSD() float64
}

// Collector gathers gateway metrics at scrape time. Any provider may be nil.
type Collector struct {
	activeCalls ActiveCallsProvider
	blacklist   BlacklistProvider
	rtp         RTPStatsProvider
	cost        CostProvider
	startTime   time.Time

	activeCallsDesc   *prometheus.Desc
	blacklistDesc     *prometheus.Desc
	whitelistDesc     *prometheus.Desc
	rtpPacketsSent    *prometheus.Desc
	rtpPacketsRecv    *prometheus.Desc
	rtpBytesSent      *prometheus.Desc
	rtpBytesRecv      *prometheus.Desc
	callCostTotalDesc *prometheus.Desc
	uptimeDesc        *prometheus.Desc
}

// NewCollector constructs a Collector bound to the given providers.
func NewCollector(activeCalls ActiveCallsProvider, blacklist BlacklistProvider, rtp RTPStatsProvider, cost CostProvider, startTime time.Time) *Collector {
	return &Collector{
		activeCalls: activeCalls,
		blacklist:   blacklist,
		rtp:         rtp,
		cost:        cost,
		startTime:   startTime,

		activeCallsDesc: prometheus.NewDesc(
			"voicegw_active_calls", "Number of currently active calls", nil, nil),
		blacklistDesc: prometheus.NewDesc(
			"voicegw_blacklist_entries", "Number of blacklisted caller numbers", nil, nil),
		whitelistDesc: prometheus.NewDesc(
			"voicegw_whitelist_entries", "Number of whitelisted caller numbers", nil, nil),
		rtpPacketsSent: prometheus.NewDesc(
			"voicegw_rtp_packets_sent_total", "Total RTP packets sent across all calls", nil, nil),
		rtpPacketsRecv: prometheus.NewDesc(
			"voicegw_rtp_packets_received_total", "Total RTP packets received across all calls", nil, nil),
		rtpBytesSent: prometheus.NewDesc(
			"voicegw_rtp_bytes_sent_total", "Total RTP bytes sent across all calls", nil, nil),
		rtpBytesRecv: prometheus.NewDesc(
			"voicegw_rtp_bytes_received_total", "Total RTP bytes received across all calls", nil, nil),
		callCostTotalDesc: prometheus.NewDesc(
			"voicegw_call_cost_usd_total", "Cumulative realtime AI cost across all calls, in USD", nil, nil),
		uptimeDesc: prometheus.NewDesc(
			"voicegw_uptime_seconds", "Seconds since the gateway process started", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.activeCallsDesc
	ch <- c.blacklistDesc
	ch <- c.whitelistDesc
	ch <- c.rtpPacketsSent
	ch <- c.rtpPacketsRecv
	ch <- c.rtpBytesSent
	ch <- c.rtpBytesRecv
	ch <- c.callCostTotalDesc
	ch <- c.uptimeDesc
}

// Collect implements prometheus.Collector, querying all providers at scrape time.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.activeCalls != nil {
		ch <- prometheus.MustNewConstMetric(c.activeCallsDesc, prometheus.GaugeValue, float64(c.activeCalls.GetActiveCallCount()))
	}

	if c.blacklist != nil {
		if n, err := c.blacklist.BlacklistSize(ctx); err != nil {
			slog.Error("metrics: failed to count blacklist", "error", err)
		} else {
			ch <- prometheus.MustNewConstMetric(c.blacklistDesc, prometheus.GaugeValue, float64(n))
		}
		if n, err := c.blacklist.WhitelistSize(ctx); err != nil {
			slog.Error("metrics: failed to count whitelist", "error", err)
		} else {
			ch <- prometheus.MustNewConstMetric(c.whitelistDesc, prometheus.GaugeValue, float64(n))
		}
	}

	if c.rtp != nil {
		ch <- prometheus.MustNewConstMetric(c.rtpPacketsSent, prometheus.CounterValue, float64(c.rtp.AggregatePacketsSent()))
		ch <- prometheus.MustNewConstMetric(c.rtpPacketsRecv, prometheus.CounterValue, float64(c.rtp.AggregatePacketsReceived()))
		ch <- prometheus.MustNewConstMetric(c.rtpBytesSent, prometheus.CounterValue, float64(c.rtp.AggregateBytesSent()))
		ch <- prometheus.MustNewConstMetric(c.rtpBytesRecv, prometheus.CounterValue, float64(c.rtp.AggregateBytesReceived()))
	}

	if c.cost != nil {
		ch <- prometheus.MustNewConstMetric(c.callCostTotalDesc, prometheus.CounterValue, c.cost.TotalCostUSD())
	}

	ch <- prometheus.MustNewConstMetric(c.uptimeDesc, prometheus.GaugeValue, time.Since(c.startTime).Seconds())
}
