package validate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	// validationsTotal counts validator runs by validator name and outcome.
	//
	// Only runs made through Instrument, RunContext, Check or Validate are
	// counted; calling Run directly is invisible here. Each run is counted
	// once, however Instrument and Named are nested.
	//
	// Labels:
	//   - validator: the name given with Named (the outermost one wins), or
	//     "unnamed". For Validate(ctx, any) it is the Go type, e.g.
	//     "main.signupRequest".
	//   - result: "success" or "failure". A recovered panic in Validate
	//     counts as a failure.
	//
	// Usage example in dashboards:
	//   - rate(validation_calls_total[5m]) - runs per second
	//   - sum by (validator) (rate(validation_calls_total{result="failure"}[5m]))
	//     - which inputs are being rejected most
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validation_calls_total",
		Help: "The total number of validator runs",
	}, []string{"validator", "result"})

	// validationTime tracks how long validators take, with the same labels as
	// validationsTotal. Most rules finish in microseconds, so buckets start at
	// 1µs and grow by 4x up to about 4s; a pattern rule on a huge input, or a
	// HasValidate method doing I/O, shows up in the top buckets.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "validation_time_seconds",
		Help:    "The time it takes to run a validator, in seconds",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12), //nolint:mnd
	}, []string{"validator", "result"})
)

func resultLabel(success bool) string {
	if success {
		return resultSuccess
	}

	return resultFailure
}

func observe(name string, success bool, elapsed time.Duration) {
	label := resultLabel(success)

	validationsTotal.WithLabelValues(name, label).Inc()
	validationTime.WithLabelValues(name, label).Observe(elapsed.Seconds())
}
