package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commandsEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "marshal",
			Name:      "commands_encoded_total",
			Help:      "Commands encoded to the wire, by type.",
		},
		[]string{"type"},
	)
	commandsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "marshal",
			Name:      "commands_decoded_total",
			Help:      "Commands decoded from the wire, by type.",
		},
		[]string{"type"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "marshal",
			Name:      "decode_failures_total",
			Help:      "Decode failures, by failure class.",
		},
		[]string{"class"},
	)
	bytesRead = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "transport",
			Name:      "bytes_read_total",
			Help:      "Bytes read from transport sockets.",
		},
	)
	bytesWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "transport",
			Name:      "bytes_written_total",
			Help:      "Bytes written to transport sockets.",
		},
	)
	socketsOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "transport",
			Name:      "sockets_opened_total",
			Help:      "Sockets that reached the connected state, by role.",
		},
		[]string{"role"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			commandsEncoded,
			commandsDecoded,
			decodeFailures,
			bytesRead,
			bytesWritten,
			socketsOpened,
		)
	})
}

func CommandEncoded(typeName string) {
	RegisterMetrics()
	commandsEncoded.WithLabelValues(typeName).Inc()
}

func CommandDecoded(typeName string) {
	RegisterMetrics()
	commandsDecoded.WithLabelValues(typeName).Inc()
}

func DecodeFailed(class string) {
	RegisterMetrics()
	decodeFailures.WithLabelValues(class).Inc()
}

func BytesRead(n int) {
	RegisterMetrics()
	bytesRead.Add(float64(n))
}

func BytesWritten(n int) {
	RegisterMetrics()
	bytesWritten.Add(float64(n))
}

func SocketOpened(role string) {
	RegisterMetrics()
	socketsOpened.WithLabelValues(role).Inc()
}
