package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"resume-import-go/internal/api/handler"
	"resume-import-go/internal/config"
)

// RegisterRoutes 注册 API 路由
// 配置了API Key时对业务接口启用头部鉴权，健康检查始终放行
func RegisterRoutes(h *server.Hertz, cfg *config.Config, importHandler *handler.ImportHandler, crudHandler *handler.ResumeCRUDHandler) {
	// 健康检查不走鉴权
	h.GET("/api/v1/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	api := h.Group("/api/v1")
	if cfg.Server.APIKey != "" {
		apiKey := cfg.Server.APIKey
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return key == apiKey, nil
			}),
		))
	}

	// 导入接口
	api.POST("/resume/import", importHandler.HandleResumeImport)

	// 简历记录CRUD
	resumes := api.Group("/resumes")
	resumes.POST("", crudHandler.HandleCreateResume)
	resumes.GET("", crudHandler.HandleListResumes)
	resumes.GET("/:uuid", crudHandler.HandleGetResume)
	resumes.PUT("/:uuid", crudHandler.HandleUpdateResume)
	resumes.DELETE("/:uuid", crudHandler.HandleDeleteResume)
}
