package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"resume-import-go/internal/logger"
	"resume-import-go/internal/processor"
)

// 离线导入工具：解析本地简历文件并把结果打印为JSON
// 不依赖任何存储后端，便于调试启发式规则
func main() {
	var (
		filePath  string
		mediaKind string
		showRaw   bool
		logLevel  string
	)
	pflag.StringVarP(&filePath, "file", "f", "", "Path to resume file (pdf/docx/txt)")
	pflag.StringVarP(&mediaKind, "kind", "k", "", "Media kind override (pdf, docx, txt)")
	pflag.BoolVar(&showRaw, "raw", false, "Include extracted raw text in output")
	pflag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pflag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "用法: resumeimport -f <resume.pdf> [--raw]")
		os.Exit(2)
	}

	logger.Init(logger.Config{Level: logLevel, Format: "pretty"})

	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取文件失败: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	importer, err := processor.NewResumeImporter(ctx, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化导入管线失败: %v\n", err)
		os.Exit(1)
	}

	outcome, err := importer.Import(ctx, processor.ImportFile{
		Filename:  filepath.Base(filePath),
		MediaKind: mediaKind,
		Data:      data,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "导入失败: %v\n", err)
		os.Exit(1)
	}

	output := map[string]interface{}{
		"data":     outcome.Editor,
		"warnings": outcome.Report.Warnings,
		"is_valid": outcome.Report.IsValid,
	}
	if showRaw {
		output["raw_text"] = outcome.RawText
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "输出结果失败: %v\n", err)
		os.Exit(1)
	}
}
