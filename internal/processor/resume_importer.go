package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"resume-import-go/internal/constants"
	"resume-import-go/internal/logger"
	"resume-import-go/internal/parser"
	"resume-import-go/internal/types"
)

// ImportFile 一次导入的输入
// MediaKind 为空时按文件名扩展名与ContentType推断
type ImportFile struct {
	Filename    string
	MediaKind   string
	ContentType string
	Data        []byte
}

// ImportOutcome 一次导入的完整产出
type ImportOutcome struct {
	Parsed  *types.ParsedResume
	Editor  *types.EditorData
	Report  *types.ValidationReport
	RawText string
}

// ResumeImporter 简历导入管线：提取文本 -> 启发式解析 -> 规范化 -> 校验
type ResumeImporter struct {
	Components Components
	Settings   Settings
}

// NewResumeImporter 创建导入器
// 未显式注入提取组件时使用默认的双通道文本提取器
func NewResumeImporter(ctx context.Context, compOpts []ComponentOpt, setOpts []SettingOpt) (*ResumeImporter, error) {
	imp := &ResumeImporter{
		Settings: Settings{
			MaxFileSizeBytes: constants.DefaultMaxFileSizeBytes,
		},
	}
	for _, opt := range compOpts {
		opt(&imp.Components)
	}
	for _, opt := range setOpts {
		opt(&imp.Settings)
	}

	if imp.Components.Extractor == nil {
		extractor, err := parser.NewTextExtractor(ctx)
		if err != nil {
			return nil, fmt.Errorf("初始化文本提取器失败: %w", err)
		}
		imp.Components.Extractor = extractor
	}
	return imp, nil
}

// Import 执行完整的导入管线
// 提取失败返回错误；解析/规范化/校验是全函数，从不失败，
// 启发式未命中的字段以空值呈现并反映在校验告警中
func (imp *ResumeImporter) Import(ctx context.Context, file ImportFile) (*ImportOutcome, error) {
	// 1. 确定媒体类型
	mediaKind := file.MediaKind
	if mediaKind == "" {
		mediaKind = InferMediaKind(file.Filename, file.ContentType)
	}
	if mediaKind == "" {
		return nil, NewUnsupportedFormatError(file.Filename, "无法从文件名和Content-Type推断格式")
	}

	// 2. 大小上限
	if imp.Settings.MaxFileSizeBytes > 0 && int64(len(file.Data)) > imp.Settings.MaxFileSizeBytes {
		return nil, NewExtractError(file.Filename,
			fmt.Sprintf("文件大小 %d 超过上限 %d", len(file.Data), imp.Settings.MaxFileSizeBytes))
	}

	// 3. 文本提取
	rawText, err := imp.Components.Extractor.ExtractText(ctx, file.Data, mediaKind)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrUnsupportedFormat):
			return nil, NewUnsupportedFormatError(file.Filename, mediaKind)
		case errors.Is(err, parser.ErrNoExtractableText):
			return nil, NewEmptyDocumentError(file.Filename)
		default:
			return nil, NewExtractError(file.Filename, err.Error())
		}
	}

	// 4. 启发式解析 -> 规范化 -> 校验
	parsed := parser.ParseResumeText(rawText)
	editor := parser.BuildResumeEditorData(parsed)
	report := parser.ValidateResumeData(parsed)

	logger.Ctx(ctx).Info().
		Str("filename", file.Filename).
		Str("media_kind", mediaKind).
		Int("text_length", len(rawText)).
		Int("warning_count", len(report.Warnings)).
		Bool("is_valid", report.IsValid).
		Msg("简历导入管线完成")

	if imp.Settings.Debug {
		logger.Debug().
			Str("name", parsed.Name).
			Str("email", parsed.Email).
			Int("experience_count", len(parsed.Experience)).
			Int("skill_count", len(parsed.Skills)).
			Msg("解析结果概览")
	}

	return &ImportOutcome{
		Parsed:  parsed,
		Editor:  editor,
		Report:  report,
		RawText: rawText,
	}, nil
}

// InferMediaKind 从文件名扩展名或Content-Type推断媒体类型，无法识别返回空串
func InferMediaKind(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return constants.MediaKindPDF
	case ".docx":
		return constants.MediaKindDOCX
	case ".txt":
		return constants.MediaKindTXT
	}

	switch {
	case strings.Contains(contentType, "application/pdf"):
		return constants.MediaKindPDF
	case strings.Contains(contentType, "wordprocessingml.document"):
		return constants.MediaKindDOCX
	case strings.HasPrefix(contentType, "text/plain"):
		return constants.MediaKindTXT
	}
	return ""
}
