package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"

	"resume-import-go/internal/config"
	"resume-import-go/internal/constants"
	"resume-import-go/internal/logger"
	"resume-import-go/internal/storage"
	"resume-import-go/internal/storage/models"
	"resume-import-go/internal/types"
	pkgutils "resume-import-go/pkg/utils"
)

// ResumeCRUDHandler 简历记录的增删改查接口
// 导入接口只返回解析结果，是否保存由这里的创建接口完成
type ResumeCRUDHandler struct {
	cfg     *config.Config
	storage *storage.Storage
}

// NewResumeCRUDHandler 创建CRUD处理器
func NewResumeCRUDHandler(cfg *config.Config, s *storage.Storage) *ResumeCRUDHandler {
	return &ResumeCRUDHandler{cfg: cfg, storage: s}
}

// saveResumeRequest 创建/更新简历记录的请求体
type saveResumeRequest struct {
	Title      string            `json:"title"`
	RecordUUID string            `json:"record_uuid"`
	FileMD5    string            `json:"file_md5"`
	OriginKey  string            `json:"origin_key"`
	RawTextKey string            `json:"raw_text_key"`
	Data       *types.EditorData `json:"data"`
	Warnings   []string          `json:"warnings"`
	IsValid    *bool             `json:"is_valid"`
}

// requireUser 读取用户标识，缺失时直接响应400
func requireUser(ctx *app.RequestContext) (string, bool) {
	userID := string(ctx.GetHeader("X-User-ID"))
	if userID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少 X-User-ID 请求头"})
		return "", false
	}
	return userID, true
}

// requireDB 检查数据库可用性
func (h *ResumeCRUDHandler) requireDB(ctx *app.RequestContext) bool {
	if h.storage == nil || h.storage.MySQL == nil {
		ctx.JSON(consts.StatusServiceUnavailable, utils.H{"error": "数据库未配置"})
		return false
	}
	return true
}

// HandleCreateResume 处理 POST /api/v1/resumes
func (h *ResumeCRUDHandler) HandleCreateResume(c context.Context, ctx *app.RequestContext) {
	userID, ok := requireUser(ctx)
	if !ok || !h.requireDB(ctx) {
		return
	}

	var req saveResumeRequest
	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
		return
	}
	if req.Data == nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少简历数据"})
		return
	}

	recordUUID := req.RecordUUID
	if recordUUID == "" {
		u, err := uuid.NewV7()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "生成记录标识失败"})
			return
		}
		recordUUID = u.String()
	}

	isValid := true
	if req.IsValid != nil {
		isValid = *req.IsValid
	}

	record := &models.ResumeRecord{
		RecordUUID: recordUUID,
		UserID:     userID,
		Title:      req.Title,
		FileMD5:    req.FileMD5,
		OriginKey:  req.OriginKey,
		RawTextKey: req.RawTextKey,
		EditorData: pkgutils.ConvertToJSON(req.Data),
		Warnings:   pkgutils.ConvertArrayToJSON(req.Warnings),
		IsValid:    isValid,
		Status:     constants.StatusImported,
	}
	if err := h.storage.MySQL.CreateResumeRecord(c, record); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("创建简历记录失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "创建简历记录失败"})
		return
	}

	ctx.JSON(consts.StatusCreated, utils.H{"record_uuid": recordUUID})
}

// HandleGetResume 处理 GET /api/v1/resumes/:uuid
func (h *ResumeCRUDHandler) HandleGetResume(c context.Context, ctx *app.RequestContext) {
	userID, ok := requireUser(ctx)
	if !ok || !h.requireDB(ctx) {
		return
	}

	recordUUID := ctx.Param("uuid")
	record, err := h.storage.MySQL.GetResumeRecord(c, userID, recordUUID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "记录不存在"})
			return
		}
		logger.Error().Err(err).Str("record_uuid", recordUUID).Msg("查询简历记录失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "查询简历记录失败"})
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

// HandleListResumes 处理 GET /api/v1/resumes
func (h *ResumeCRUDHandler) HandleListResumes(c context.Context, ctx *app.RequestContext) {
	userID, ok := requireUser(ctx)
	if !ok || !h.requireDB(ctx) {
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	records, err := h.storage.MySQL.ListResumeRecords(c, userID, limit, offset)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("查询简历记录列表失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "查询简历记录列表失败"})
		return
	}
	ctx.JSON(consts.StatusOK, utils.H{"records": records, "count": len(records)})
}

// HandleUpdateResume 处理 PUT /api/v1/resumes/:uuid
func (h *ResumeCRUDHandler) HandleUpdateResume(c context.Context, ctx *app.RequestContext) {
	userID, ok := requireUser(ctx)
	if !ok || !h.requireDB(ctx) {
		return
	}

	var req saveResumeRequest
	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Data != nil {
		updates["editor_data"] = pkgutils.ConvertToJSON(req.Data)
	}
	if req.Warnings != nil {
		updates["warnings"] = pkgutils.ConvertArrayToJSON(req.Warnings)
	}
	if req.IsValid != nil {
		updates["is_valid"] = *req.IsValid
	}
	if len(updates) == 0 {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "没有可更新的字段"})
		return
	}

	recordUUID := ctx.Param("uuid")
	if err := h.storage.MySQL.UpdateResumeRecordData(c, userID, recordUUID, updates); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "记录不存在"})
			return
		}
		logger.Error().Err(err).Str("record_uuid", recordUUID).Msg("更新简历记录失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "更新简历记录失败"})
		return
	}
	ctx.JSON(consts.StatusOK, utils.H{"record_uuid": recordUUID})
}

// HandleDeleteResume 处理 DELETE /api/v1/resumes/:uuid
func (h *ResumeCRUDHandler) HandleDeleteResume(c context.Context, ctx *app.RequestContext) {
	userID, ok := requireUser(ctx)
	if !ok || !h.requireDB(ctx) {
		return
	}

	recordUUID := ctx.Param("uuid")
	record, err := h.storage.MySQL.GetResumeRecord(c, userID, recordUUID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "记录不存在"})
			return
		}
		logger.Error().Err(err).Str("record_uuid", recordUUID).Msg("查询简历记录失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "查询简历记录失败"})
		return
	}

	if err := h.storage.MySQL.DeleteResumeRecord(c, userID, recordUUID); err != nil {
		logger.Error().Err(err).Str("record_uuid", recordUUID).Msg("删除简历记录失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "删除简历记录失败"})
		return
	}

	// 清理对象存储中的归档文件，失败仅告警
	if h.storage.MinIO != nil {
		if record.OriginKey != "" {
			if err := h.storage.MinIO.DeleteObject(c, h.storage.MinIO.OriginalBucket(), record.OriginKey); err != nil {
				logger.Warn().Err(err).Msg("删除归档原始文件失败")
			}
		}
		if record.RawTextKey != "" {
			if err := h.storage.MinIO.DeleteObject(c, h.storage.MinIO.ParsedBucket(), record.RawTextKey); err != nil {
				logger.Warn().Err(err).Msg("删除归档解析文本失败")
			}
		}
	}

	ctx.JSON(consts.StatusOK, utils.H{"record_uuid": recordUUID})
}
