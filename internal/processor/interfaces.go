package processor

import (
	"context"

	"resume-import-go/internal/storage"
)

// TextExtractor 文本提取组件接口
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, mediaKind string) (string, error)
}

// Components 导入器的可替换组件集合
type Components struct {
	Extractor TextExtractor
	Storage   *storage.Storage
}

// Settings 导入器的运行参数
type Settings struct {
	Debug            bool
	MaxFileSizeBytes int64
}
