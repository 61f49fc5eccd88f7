package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Updates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cfo_updates_total",
			Help: "Count of processed Telegram updates",
		},
	)
	MessagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfo_messages_sent_total",
			Help: "Count of outgoing messages",
		},
		[]string{"status"}, // ok | fail
	)
	Calculations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cfo_calculations_total",
			Help: "Count of completed budget calculations",
		},
	)
)

func Init() {
	prometheus.MustRegister(
		Updates,
		MessagesSent,
		Calculations,
	)
}
