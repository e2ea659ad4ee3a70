// Package slog provides logging decorators for docser services.
package slog

import (
	"log/slog"
	"time"

	"github.com/quanghuy1242/docser"
)

// Ensure LoggingExtractor implements docser.Extractor.
var _ docser.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of tier
// provenance and timing.
type LoggingExtractor struct {
	next   docser.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docser.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, meta docser.Meta) (*docser.ExtractionResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html, meta)
	if err != nil {
		e.logger.Warn("extraction failed",
			"code", docser.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	framework := string(result.Framework)
	if result.Framework == docser.FrameworkUnknown {
		framework = "(none)"
	}
	e.logger.Info("extraction",
		"tier", string(result.Tier),
		"framework", framework,
		"confidence", result.Confidence,
		"language", result.Language,
		"removed", result.RemovedSubtrees,
		"warnings", len(result.Warnings),
		"duration", time.Since(begin),
	)
	return result, nil
}
