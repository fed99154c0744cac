package topo

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "brite_as"

// Metrics collects per-run counters for placement and bandwidth assignment.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	NodesPlaced     *prometheus.CounterVec
	Collisions      *prometheus.CounterVec
	ClusterSize     prometheus.Histogram
	EdgesAssigned   *prometheus.CounterVec
	EdgeBandwidth   *prometheus.HistogramVec
	PlacementErrors *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Passing a nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodesPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "nodes_placed_total",
			Help:      "Nodes placed on the plane, by placement strategy.",
		}, []string{"strategy"}),
		Collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "placement_collisions_total",
			Help:      "Candidate coordinates rejected because their cell was taken.",
		}, []string{"strategy"}),
		ClusterSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cluster_size_nodes",
			Help:      "Clipped heavy-tailed cluster size drawn per sub-square.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		EdgesAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edges_assigned_total",
			Help:      "AS edges that received a bandwidth value, by distribution.",
		}, []string{"distribution"}),
		EdgeBandwidth: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "edge_bandwidth",
			Help:      "Sampled edge bandwidth values, by distribution.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"distribution"}),
		PlacementErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "placement_failures_total",
			Help:      "Placement runs that ended with an error, by strategy.",
		}, []string{"strategy"}),
	}
	if reg != nil {
		reg.MustRegister(m.NodesPlaced, m.Collisions, m.ClusterSize, m.EdgesAssigned, m.EdgeBandwidth, m.PlacementErrors)
	}
	return m
}

func (m *Metrics) nodePlaced(strategy string) {
	if m == nil {
		return
	}
	m.NodesPlaced.WithLabelValues(strategy).Inc()
}

func (m *Metrics) collision(strategy string) {
	if m == nil {
		return
	}
	m.Collisions.WithLabelValues(strategy).Inc()
}

func (m *Metrics) clusterDrawn(size int) {
	if m == nil {
		return
	}
	m.ClusterSize.Observe(float64(size))
}

func (m *Metrics) placementFailed(strategy string) {
	if m == nil {
		return
	}
	m.PlacementErrors.WithLabelValues(strategy).Inc()
}

func (m *Metrics) edgeAssigned(dist string, bw float64) {
	if m == nil {
		return
	}
	m.EdgesAssigned.WithLabelValues(dist).Inc()
	m.EdgeBandwidth.WithLabelValues(dist).Observe(bw)
}
