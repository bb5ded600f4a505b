package parser

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// lineYTolerance 垂直坐标差超过该阈值（布局单位）即认为换行
const lineYTolerance = 2.0

// extractPDFTextLayout 主通道：逐页收集带坐标的文本块并按坐标重建行
// 每页以换行结尾，页间直接拼接
func extractPDFTextLayout(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开PDF失败: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText := buildLinesFromRuns(page.Content().Text)
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// buildLinesFromRuns 把同一页的文本块序列重排为多行文本
// 依内容流顺序逐块扫描：与上一块的Y差超过阈值则开新行，
// 同一行内的块之间补一个空格；块内文本保持原样
func buildLinesFromRuns(runs []pdf.Text) string {
	var sb strings.Builder
	lastY := math.Inf(1)
	lineEmpty := true

	for _, run := range runs {
		s := strings.TrimSpace(run.S)
		if s == "" {
			continue
		}
		if !lineEmpty && math.Abs(run.Y-lastY) > lineYTolerance {
			sb.WriteString("\n")
			lineEmpty = true
		}
		if !lineEmpty {
			sb.WriteString(" ")
		}
		sb.WriteString(s)
		lineEmpty = false
		lastY = run.Y
	}
	return sb.String()
}
