package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackedStatuses = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gamestatus_tracked_statuses",
		Help: "The number of status messages currently tracked",
	})

	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamestatus_status_updates_total",
		Help: "Total number of status refreshes by outcome",
	}, []string{"result"})

	UpdateCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gamestatus_update_cycle_duration_seconds",
		Help:    "Duration of a full status update cycle",
		Buckets: prometheus.DefBuckets,
	})

	ServerQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamestatus_server_query_duration_seconds",
		Help:    "Duration of game server status API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	ServerQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamestatus_server_queries_total",
		Help: "Total number of game server status API requests",
	}, []string{"endpoint", "status"})

	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamestatus_commands_total",
		Help: "Total number of chat commands handled",
	}, []string{"command", "result"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_messages_sent_total",
		Help: "Total number of Discord messages sent or edited",
	}, []string{"kind", "status"})
)
