package main

import (
	log "github.com/sirupsen/logrus"

	"agrietl/internal/config"
	"agrietl/internal/metrics"
	"agrietl/internal/metrics/datadog"
	"agrietl/internal/metrics/prompush"
)

// setupMetrics installs the configured backend and returns a func that
// flushes it. A backend that fails to start leaves metrics disabled.
func setupMetrics(cfg config.Config) (flush func()) {
	var (
		b   metrics.Backend
		err error
	)
	switch cfg.MetricsBackend {
	case "prompush":
		b, err = prompush.NewBackend(cfg.JobName, cfg.PushgatewayURL)
	case "datadog":
		b, err = datadog.NewBackend(datadog.Config{
			Addr:       cfg.DogStatsDAddr,
			Namespace:  "agrietl.",
			GlobalTags: []string{"job:" + cfg.JobName},
		})
	case "", "none":
		log.Debugf("metrics: disabled (backend=%q)", cfg.MetricsBackend)
		return func() {}
	default:
		log.Warnf("metrics: unknown backend %q; metrics disabled", cfg.MetricsBackend)
		return func() {}
	}
	if err != nil {
		log.WithError(err).Warnf("metrics: failed to init %s backend; using nop", cfg.MetricsBackend)
		return func() {}
	}

	log.WithFields(log.Fields{"backend": cfg.MetricsBackend, "job": cfg.JobName}).Info("metrics enabled")
	metrics.SetBackend(b)
	return func() {
		if err := metrics.Flush(); err != nil {
			log.WithError(err).Warn("metrics: flush error")
		}
	}
}
