package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-import-go/internal/constants"
)

// TestExtractTextPlainText TXT直接透传，仅做清洗
func TestExtractTextPlainText(t *testing.T) {
	ctx := context.Background()
	extractor, err := NewTextExtractor(ctx)
	require.NoError(t, err)

	text, err := extractor.ExtractText(ctx, []byte("  Jane Smith\x00\nEngineer  "), constants.MediaKindTXT)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nEngineer", text)
}

// TestExtractTextUnsupportedKind 未知媒体类型返回哨兵错误
func TestExtractTextUnsupportedKind(t *testing.T) {
	ctx := context.Background()
	extractor, err := NewTextExtractor(ctx)
	require.NoError(t, err)

	_, err = extractor.ExtractText(ctx, []byte("data"), "png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestExtractTextEmptyOutput 清洗后为空串时报空文档错误而不是返回空串
func TestExtractTextEmptyOutput(t *testing.T) {
	ctx := context.Background()
	extractor, err := NewTextExtractor(ctx)
	require.NoError(t, err)

	_, err = extractor.ExtractText(ctx, []byte("   \x00  "), constants.MediaKindTXT)
	assert.ErrorIs(t, err, ErrNoExtractableText)
}

// TestSanitizeExtractedText NUL剥离与两端修剪
func TestSanitizeExtractedText(t *testing.T) {
	assert.Equal(t, "abc", sanitizeExtractedText("\x00 abc \x00"))
	assert.Equal(t, "", sanitizeExtractedText("\x00\x00"))
}
