package parser

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"resume-import-go/internal/logger"
)

// einoParseTimeout 单次解析超时
const einoParseTimeout = 30 * time.Second

// EinoPDFTextExtractor 宽容解码通道
// 对结构损坏、字体信息不全的PDF容忍度更高，作为坐标通道的兜底
type EinoPDFTextExtractor struct {
	parser *pdf.PDFParser
}

// NewEinoPDFTextExtractor 初始化宽容解码器
// 不按页切分，整篇文档产出为单个连续字符串
func NewEinoPDFTextExtractor(ctx context.Context) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建PDF解析器失败: %w", err)
	}
	return &EinoPDFTextExtractor{parser: p}, nil
}

// ExtractTextFromBytes 从字节数组提取全文
func (e *EinoPDFTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, einoParseTimeout)
	defer cancel()

	start := time.Now()
	docs, err := e.parser.Parse(ctx, bytes.NewReader(data),
		einoParser.WithExtraMeta(map[string]interface{}{
			"extraction_time": start.Format(time.RFC3339),
		}),
	)
	if err != nil {
		return "", fmt.Errorf("宽容解码失败: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("宽容解码无产出")
	}

	var full string
	for _, doc := range docs {
		full += doc.Content
	}

	logger.Debug().
		Int("text_length", len(full)).
		Dur("duration", time.Since(start)).
		Msg("PDF宽容解码完成")
	return full, nil
}
