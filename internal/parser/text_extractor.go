package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-import-go/internal/constants"
	"resume-import-go/internal/logger"
)

// 文本提取阶段的哨兵错误
var (
	// ErrUnsupportedFormat 不支持的媒体类型
	ErrUnsupportedFormat = errors.New("unsupported media kind")
	// ErrNoExtractableText 提取成功但产出为空（扫描件或纯图片文档的典型症状）
	ErrNoExtractableText = errors.New("no extractable text in document")
	// ErrExtractionFailed 底层解码失败
	ErrExtractionFailed = errors.New("text extraction failed")
)

// TextExtractor 统一的文档文本提取入口，按媒体类型分发
// PDF走双通道：坐标重排为主，宽容解码为兜底
type TextExtractor struct {
	pdfFallback *EinoPDFTextExtractor
}

// NewTextExtractor 创建文本提取器
// 宽容解码通道初始化失败时降级为仅主通道，不视为致命错误
func NewTextExtractor(ctx context.Context) (*TextExtractor, error) {
	fallback, err := NewEinoPDFTextExtractor(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("PDF宽容解码通道初始化失败，仅启用主通道")
		fallback = nil
	}
	return &TextExtractor{pdfFallback: fallback}, nil
}

// ExtractText 从原始字节中提取纯文本
// 后置条件：返回的文本已去除NUL字符并trim；空产出一律报错而不是返回空串
func (t *TextExtractor) ExtractText(ctx context.Context, data []byte, mediaKind string) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaKind {
	case constants.MediaKindPDF:
		text, err = t.extractPDF(ctx, data)
	case constants.MediaKindDOCX:
		text, err = extractDocxText(data)
	case constants.MediaKindTXT:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaKind)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text = sanitizeExtractedText(text)
	if text == "" {
		return "", ErrNoExtractableText
	}

	logger.Debug().
		Str("media_kind", mediaKind).
		Int("text_length", len(text)).
		Msg("文本提取完成")
	return text, nil
}

// extractPDF PDF双通道提取
// 主通道基于文本块坐标重建行；产出为空或失败时改走宽容解码通道重试一次
func (t *TextExtractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	text, err := extractPDFTextLayout(data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		logger.Warn().Err(err).Msg("PDF主通道提取失败，尝试宽容解码")
	}

	if t.pdfFallback == nil {
		if err != nil {
			return "", err
		}
		return "", nil
	}
	return t.pdfFallback.ExtractTextFromBytes(ctx, data)
}

// sanitizeExtractedText 去掉NUL字符并修剪两端空白
func sanitizeExtractedText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\x00", ""))
}
