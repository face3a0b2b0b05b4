package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Layout metrics
	LayoutPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "layout",
			Name:      "passes_total",
			Help:      "Total number of layout fit passes",
		},
		[]string{"container"},
	)

	AnimationFrames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "layout",
			Name:      "animation_frames_total",
			Help:      "Total number of collapse/expand animation frames",
		},
		[]string{"container", "direction"},
	)

	// Part lifecycle metrics
	PartsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "dock",
			Name:      "parts_added_total",
			Help:      "Total number of parts added to containers",
		},
		[]string{"container"},
	)

	PartsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "dock",
			Name:      "parts_removed_total",
			Help:      "Total number of parts removed from containers",
		},
		[]string{"container"},
	)

	VisibleParts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dockyard",
			Subsystem: "dock",
			Name:      "visible_parts",
			Help:      "Number of currently visible parts",
		},
		[]string{"container"},
	)

	// Persistence metrics
	StateSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "state",
			Name:      "saves_total",
			Help:      "Total number of layout state saves",
		},
		[]string{"container", "trigger"},
	)

	StateSaveErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockyard",
			Subsystem: "state",
			Name:      "save_errors_total",
			Help:      "Total number of failed layout state saves",
		},
		[]string{"container"},
	)
)
