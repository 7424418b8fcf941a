package glexec

import "log/slog"

// DefaultViewportCount is the number of viewport slots tracked by default.
const DefaultViewportCount = 20

// Option configures an Executor during creation.
//
// Example:
//
//	ex := glexec.New(gl,
//	    glexec.WithExtensions(gl46.DetectExtensions(gl)),
//	    glexec.WithLogger(slog.Default()),
//	)
type Option func(*options)

type options struct {
	extensions        Extensions
	units             UnitManager
	logger            *slog.Logger
	viewportCount     int
	legacyStorageBase bool
}

func defaultOptions() options {
	return options{
		viewportCount: DefaultViewportCount,
	}
}

// WithExtensions sets the GL capabilities the executor may rely on.
// Without it every optional path is disabled.
func WithExtensions(ext Extensions) Option {
	return func(o *options) {
		o.extensions = ext
	}
}

// WithUnitManager replaces the built-in texture unit assignment, which
// binds textures and samplers directly with glActiveTexture, glBindTexture
// and glBindSampler.
func WithUnitManager(m UnitManager) Option {
	return func(o *options) {
		o.units = m
	}
}

// WithLogger gives the executor its own logger instead of the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithViewportCount sets the number of viewport slots. Values below one
// are ignored.
func WithViewportCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.viewportCount = n
		}
	}
}

// WithLegacyStorageBaseIndex makes shader storage binding bases accumulate
// uniform buffer counts of lower slots instead of storage buffer counts.
// This matches executors that shared one counting function for both
// binding spaces and only matters for pipelines whose lower slots hold a
// different number of uniform and storage buffers.
func WithLegacyStorageBaseIndex(enabled bool) Option {
	return func(o *options) {
		o.legacyStorageBase = enabled
	}
}
