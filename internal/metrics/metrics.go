// Package metrics defines the core's in-process Prometheus instrumentation: chunk-size
// distribution, boundary-search (cut) latency, and hash-tree reduction depth. It only
// defines metrics and Registry; wiring Registry into an HTTP mux is left to the
// embedder, the same separation the teacher draws between metric definition and its
// own main.go's server wiring.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kado"

var (
	// Registry is a dedicated Prometheus registry for all of this module's metrics.
	Registry = prometheus.NewRegistry()

	// ChunkSizeBytes tracks the distribution of emitted chunk sizes.
	ChunkSizeBytes = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_size_bytes",
			Help:      "Distribution of chunk sizes produced by content-defined chunking",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		},
	)

	// ChunkTotal counts chunks produced, by source. Chop records every chunk under
	// "chop", including those it produces on behalf of the streaming Reader.
	ChunkTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_total",
			Help:      "Total chunks produced by the content-defined chunker",
		},
		[]string{"source"},
	)

	// CutDuration measures the latency of a single boundary search.
	CutDuration = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cut_duration_us",
			Help:      "Duration of a single chunk boundary search in microseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	// HashTreeReductionDepth records how many pairwise-reduction levels RootDigest
	// walked to fold a leaf sequence down to one digest.
	HashTreeReductionDepth = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hashtree_reduction_depth",
			Help:      "Number of pairwise-reduction levels walked computing a hash tree root",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20},
		},
	)

	// HashTreeLeaves gauges the leaf count of the most recently reduced hash tree.
	HashTreeLeaves = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hashtree_leaves",
			Help:      "Leaf count of the most recently reduced hash tree",
		},
	)

	// BuildInfo exposes static information about the running process.
	BuildInfo = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Static information about the running process",
		},
		[]string{"os", "arch", "version"},
	)

	// Up is a liveness gauge for embedders that want a single health signal.
	Up = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "up",
			Help:      "1 if the process is running and healthy",
		},
	)
)

func init() {
	Registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	Registry.MustRegister(prometheus.NewGoCollector())
	Up.Set(1)
}

// SetBuildInfo publishes a single info metric for the running process.
func SetBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	BuildInfo.WithLabelValues(runtime.GOOS, runtime.GOARCH, version).Set(1)
}

// ObserveChunk records one emitted chunk's size and source.
func ObserveChunk(source string, size int) {
	ChunkSizeBytes.Observe(float64(size))
	ChunkTotal.WithLabelValues(source).Inc()
}

// ObserveCut records the latency of one boundary search.
func ObserveCut(start time.Time) {
	elapsed := float64(time.Since(start)) / float64(time.Microsecond)
	CutDuration.Observe(elapsed)
}

// ObserveHashTreeReduction records a completed RootDigest reduction's depth and the
// leaf count it was computed over.
func ObserveHashTreeReduction(depth, leaves int) {
	HashTreeReductionDepth.Observe(float64(depth))
	HashTreeLeaves.Set(float64(leaves))
}

// SetUp toggles the liveness gauge.
func SetUp(healthy bool) {
	if healthy {
		Up.Set(1)
		return
	}
	Up.Set(0)
}
