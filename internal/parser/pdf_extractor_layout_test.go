package parser

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

// TestBuildLinesFromRuns 按垂直坐标差重建行，同行文本块以空格连接
func TestBuildLinesFromRuns(t *testing.T) {
	runs := []pdf.Text{
		{S: "Jane", Y: 700},
		{S: "Smith", Y: 700.5},
		{S: "Senior", Y: 680},
		{S: "Backend", Y: 680},
		{S: "Engineer", Y: 679.2},
	}

	got := buildLinesFromRuns(runs)
	assert.Equal(t, "Jane Smith\nSenior Backend Engineer", got)
}

// TestBuildLinesFromRunsToleranceBoundary 坐标差恰好等于阈值时仍视为同一行
func TestBuildLinesFromRunsToleranceBoundary(t *testing.T) {
	runs := []pdf.Text{
		{S: "left", Y: 700},
		{S: "right", Y: 698},
		{S: "below", Y: 695.9},
	}

	got := buildLinesFromRuns(runs)
	assert.Equal(t, "left right\nbelow", got)
}

// TestBuildLinesFromRunsSkipsBlankRuns 纯空白的文本块不参与换行判定
func TestBuildLinesFromRunsSkipsBlankRuns(t *testing.T) {
	runs := []pdf.Text{
		{S: "  ", Y: 900},
		{S: "hello", Y: 700},
		{S: "\t", Y: 100},
		{S: "world", Y: 700},
	}

	got := buildLinesFromRuns(runs)
	assert.Equal(t, "hello world", got)
}

// TestBuildLinesFromRunsEmpty 空输入产出空串
func TestBuildLinesFromRunsEmpty(t *testing.T) {
	assert.Equal(t, "", buildLinesFromRuns(nil))
	assert.Equal(t, "", buildLinesFromRuns([]pdf.Text{}))
}
