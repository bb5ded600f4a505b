package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"resume-import-go/internal/api/handler"
	"resume-import-go/internal/api/router"
	"resume-import-go/internal/config"
	appCoreLogger "resume-import-go/internal/logger"
	"resume-import-go/internal/processor"
	"resume-import-go/internal/storage"
	"resume-import-go/internal/tracing"

	hertzadapter "github.com/hertz-contrib/logger/zerolog"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. 初始化链路追踪
	shutdownTracing, err := tracing.InitTracerProvider(ctx, &cfg.Tracing)
	if err != nil {
		glog.Fatalf("初始化链路追踪失败: %v", err)
	}

	// 4. 初始化存储（按配置项选择性启用）
	var storageManager *storage.Storage
	if cfg.MinIO.Endpoint != "" || cfg.MySQL.Host != "" || cfg.Redis.Address != "" || cfg.RabbitMQ.URL != "" {
		storageManager, err = storage.NewStorage(ctx, cfg)
		if err != nil {
			glog.Fatalf("初始化存储失败: %v", err)
		}
		defer storageManager.Close()
		glog.Info("存储服务初始化成功")
	} else {
		glog.Warn("未配置任何存储后端，归档与持久化功能不可用")
	}

	// 5. 初始化导入管线
	importer, err := processor.NewResumeImporter(ctx,
		[]processor.ComponentOpt{
			processor.WithcompStorage(storageManager),
		},
		[]processor.SettingOpt{
			processor.WithsetDebug(cfg.Import.Debug || cfg.Logger.Level == "debug"),
			processor.WithsetMaxfilesize(cfg.Import.MaxFileSizeBytes()),
		},
	)
	if err != nil {
		glog.Fatalf("初始化导入管线失败: %v", err)
	}
	glog.Info("导入管线初始化成功")

	importHandler := handler.NewImportHandler(cfg, storageManager, importer)
	crudHandler := handler.NewResumeCRUDHandler(cfg, storageManager)

	// 6. 启动Hertz HTTP服务器，挂载追踪中间件
	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))

	router.RegisterRoutes(h, cfg, importHandler, crudHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	// 7. 等待信号优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("服务器关闭失败: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		glog.Errorf("关闭链路追踪失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并桥接到Hertz的日志接口
// 同时写控制台与日志文件，文件打开失败时仅写控制台
func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	timeFormat := cfg.Logger.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = timeFormat

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	var writer zerolog.LevelWriter = zerolog.MultiLevelWriter(consoleWriter)
	if fileWriter, ferr := os.OpenFile("logs/app.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); ferr == nil {
		writer = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
	} else {
		log.Printf("无法打开日志文件，仅写控制台: %v", ferr)
	}

	zl := zerolog.New(writer).Level(level).With().Timestamp()
	if cfg.Logger.ReportCaller {
		zl = zl.Caller()
	}
	appCoreLogger.Logger = zl.Logger()
	zlog.Logger = appCoreLogger.Logger

	glog.SetLogger(hertzadapter.From(appCoreLogger.Logger))
}
