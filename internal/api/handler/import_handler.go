package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resume-import-go/internal/config"
	"resume-import-go/internal/constants"
	"resume-import-go/internal/logger"
	"resume-import-go/internal/processor"
	"resume-import-go/internal/storage"
	"resume-import-go/internal/tracing"
	"resume-import-go/internal/types"
	pkgutils "resume-import-go/pkg/utils"
)

// ImportHandler 简历导入接口
type ImportHandler struct {
	cfg      *config.Config
	storage  *storage.Storage
	importer *processor.ResumeImporter
}

// NewImportHandler 创建导入处理器
func NewImportHandler(cfg *config.Config, s *storage.Storage, importer *processor.ResumeImporter) *ImportHandler {
	return &ImportHandler{
		cfg:      cfg,
		storage:  s,
		importer: importer,
	}
}

// HandleResumeImport 处理 POST /api/v1/resume/import
// 流程: 接收文件 -> MD5去重 -> 导入管线 -> 归档原文与解析文本 -> 发布导入事件
// 解析结果直接返回给调用方，是否落库由调用方决定
func (h *ImportHandler) HandleResumeImport(c context.Context, ctx *app.RequestContext) {
	span := trace.SpanFromContext(c)

	// 1. 取上传文件
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, types.ImportResult{Success: false, Error: "文件未找到"})
		return
	}

	maxSize := h.cfg.Import.MaxFileSizeBytes()
	if maxSize > 0 && fileHeader.Size > maxSize {
		ctx.JSON(consts.StatusRequestEntityTooLarge, types.ImportResult{
			Success: false,
			Error:   fmt.Sprintf("文件大小超过上限 %dMB", h.cfg.Import.MaxFileSizeMB),
		})
		return
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeHTTP)
		ctx.JSON(consts.StatusInternalServerError, types.ImportResult{Success: false, Error: "读取文件失败"})
		return
	}

	userID := string(ctx.GetHeader("X-User-ID"))
	if userID == "" {
		userID = "anonymous"
	}

	// 2. MD5去重
	fileMD5 := pkgutils.CalculateMD5(data)
	span.SetAttributes(
		attribute.String("resume.filename", fileHeader.Filename),
		attribute.String("resume.file_md5", fileMD5),
	)
	if h.storage != nil && h.storage.Redis != nil {
		exists, derr := h.storage.Redis.CheckFileMD5Exists(c, fileMD5)
		if derr != nil {
			logger.Warn().Err(derr).Msg("MD5去重查询失败，跳过去重继续导入")
		} else if exists {
			knownUUID, gerr := h.storage.Redis.GetRecordUUIDByMD5(c, fileMD5)
			if gerr != nil && !errors.Is(gerr, storage.ErrNotFound) {
				logger.Warn().Err(gerr).Msg("查询MD5映射失败")
			}
			logger.Info().Str("file_md5", fileMD5).Str("record_uuid", knownUUID).Msg("检测到重复文件，跳过导入")
			ctx.JSON(consts.StatusOK, utils.H{
				"success":     true,
				"status":      constants.StatusDuplicateSkipped,
				"record_uuid": knownUUID,
			})
			return
		}
	}

	// 3. 执行导入管线
	mediaKind := processor.InferMediaKind(fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	outcome, err := h.importer.Import(c, processor.ImportFile{
		Filename:  fileHeader.Filename,
		MediaKind: mediaKind,
		Data:      data,
	})
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		status := consts.StatusInternalServerError
		switch {
		case errors.Is(err, processor.ErrUnsupportedFormat):
			status = consts.StatusUnsupportedMediaType
		case errors.Is(err, processor.ErrEmptyDocument):
			status = consts.StatusUnprocessableEntity
		}
		ctx.JSON(status, types.ImportResult{Success: false, Error: err.Error()})
		return
	}

	recordUUID, err := uuid.NewV7()
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		ctx.JSON(consts.StatusInternalServerError, types.ImportResult{Success: false, Error: "生成记录标识失败"})
		return
	}
	recordID := recordUUID.String()

	// 4. 归档与事件发布，失败降级为警告，不影响导入结果返回
	originKey, rawTextKey := h.archiveImport(c, recordID, fileHeader.Filename, data, outcome.RawText)
	h.recordDedupAndPublish(c, recordID, userID, fileMD5, mediaKind, originKey, rawTextKey, outcome)

	ctx.JSON(consts.StatusOK, types.ImportResult{
		Success:        true,
		SubmissionUUID: recordID,
		Data:           outcome.Editor,
		RawText:        pkgutils.Truncate(outcome.RawText, 10000),
		Warnings:       outcome.Report.Warnings,
		IsValid:        outcome.Report.IsValid,
	})
}

// archiveImport 把原始文件与解析文本写入对象存储
func (h *ImportHandler) archiveImport(ctx context.Context, recordID, filename string, data []byte, rawText string) (string, string) {
	if h.storage == nil || h.storage.MinIO == nil {
		return "", ""
	}

	originKey, err := h.storage.MinIO.UploadOriginalFile(ctx, recordID, filepath.Ext(filename),
		bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Warn().Err(err).Str("record_uuid", recordID).Msg("归档原始文件失败")
	}

	rawTextKey, err := h.storage.MinIO.UploadParsedText(ctx, recordID, rawText)
	if err != nil {
		logger.Warn().Err(err).Str("record_uuid", recordID).Msg("归档解析文本失败")
	}
	return originKey, rawTextKey
}

// recordDedupAndPublish 记录MD5映射并发布导入完成事件
func (h *ImportHandler) recordDedupAndPublish(ctx context.Context, recordID, userID, fileMD5, mediaKind, originKey, rawTextKey string, outcome *processor.ImportOutcome) {
	if h.storage == nil {
		return
	}

	if h.storage.Redis != nil {
		if err := h.storage.Redis.RecordFileMD5(ctx, fileMD5, recordID); err != nil {
			logger.Warn().Err(err).Msg("记录文件MD5失败")
		}
	}

	if h.storage.RabbitMQ != nil {
		msg := storage.NewResumeImportedMessage(recordID, userID)
		msg.FileMD5 = fileMD5
		msg.MediaKind = mediaKind
		msg.OriginKey = originKey
		msg.RawTextKey = rawTextKey
		msg.IsValid = outcome.Report.IsValid
		msg.WarningCount = len(outcome.Report.Warnings)

		mqCfg := &h.cfg.RabbitMQ
		if err := h.storage.RabbitMQ.EnsureExchange(mqCfg.ResumeEventsExchange, "topic", true); err != nil {
			logger.Warn().Err(err).Msg("声明简历事件交换机失败")
			return
		}
		if err := h.storage.RabbitMQ.PublishJSON(ctx, mqCfg.ResumeEventsExchange, mqCfg.ImportedRoutingKey, msg, true); err != nil {
			logger.Warn().Err(err).Str("record_uuid", recordID).Msg("发布导入完成事件失败")
		}
	}
}

// readMultipartFile 读出multipart文件的全部内容
func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
