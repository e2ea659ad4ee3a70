package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/quanghuy1242/docser"
	"github.com/quanghuy1242/docser/mock"
	docslog "github.com/quanghuy1242/docser/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs tier provenance with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &docser.ExtractionResult{
			Fragment:   "<p>content</p>",
			Tier:       docser.TierFramework,
			Framework:  docser.FrameworkDocusaurus,
			Confidence: 0.9,
			Language:   "en",
		}
		inner := &mock.Extractor{
			ExtractFn: func(html string, meta docser.Meta) (*docser.ExtractionResult, error) {
				return want, nil
			},
		}

		extractor := docslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html>docusaurus</html>", docser.Meta{})

		require.NoError(t, err)
		assert.Equal(t, want, result)
		output := buf.String()
		assert.Contains(t, output, "extraction")
		assert.Contains(t, output, "tier=framework")
		assert.Contains(t, output, "framework=docusaurus")
		assert.Contains(t, output, "language=en")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs placeholder when no framework matched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, meta docser.Meta) (*docser.ExtractionResult, error) {
				return &docser.ExtractionResult{Tier: docser.TierHeuristic}, nil
			},
		}

		extractor := docslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", docser.Meta{})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "framework=(none)")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, meta docser.Meta) (*docser.ExtractionResult, error) {
				return nil, docser.Errorf(docser.ENOTFOUND, "no content found")
			},
		}

		extractor := docslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html></html>", docser.Meta{})

		require.Error(t, err)
		assert.Nil(t, result)
		output := buf.String()
		assert.Contains(t, output, "extraction failed")
		assert.Contains(t, output, "code=not_found")
	})
}
