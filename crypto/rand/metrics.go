package rand

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	secureBufferRefills = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secure_rand_buffer_refills_total",
		Help: "The number of times a secure generator refilled its buffer from the entropy source.",
	})
	secureDirectReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secure_rand_direct_reads_total",
		Help: "The number of byte requests served straight from the entropy source, bypassing the buffer.",
	})
)
