/*
Package monitoring provides Prometheus metrics for the file server.

# Overview

Each Metrics value owns a private registry, so tests and embedded servers can
create as many as they like without duplicate-registration panics.

# Features

- HTTP request metrics by route template (latency, throughput, size)
- Filesystem operation metrics (count by outcome, duration, errors by kind)
- Search result sizes
- Go runtime, process and uptime metrics

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Filesystem operations report through the filesystem.Observer interface
	fs, err := filesystem.NewProvider(root, metrics)
*/
package monitoring
