package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for in-flight requests on shutdown.
	shutdownTimeout = 30 * time.Second

	// LogWriterName names an optional io.Writer value for log output (default stderr).
	LogWriterName = "log.writer"
)
