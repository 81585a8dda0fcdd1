// Package slog provides logging decorators for helpchunk services.
package slog
