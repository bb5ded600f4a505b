package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-import-go/internal/constants"
)

const sampleResumeTxt = `Jane Smith
Senior Backend Engineer
jane.smith@example.com | +1-555-123-4567

Skills
Languages: Python, Go, SQL

Experience
Backend Engineer 2020 - 2023
• Built payment service`

// TestImportPlainText TXT文件走完整管线：提取、解析、规范化、校验
func TestImportPlainText(t *testing.T) {
	ctx := context.Background()
	importer, err := NewResumeImporter(ctx, nil, nil)
	require.NoError(t, err)

	outcome, err := importer.Import(ctx, ImportFile{
		Filename: "resume.txt",
		Data:     []byte(sampleResumeTxt),
	})
	require.NoError(t, err)
	require.NotNil(t, outcome)

	// 1. 解析结果
	assert.Equal(t, "Jane Smith", outcome.Parsed.Name)
	assert.Equal(t, "jane.smith@example.com", outcome.Parsed.Email)
	assert.Equal(t, []string{"Python", "Go", "SQL"}, outcome.Parsed.Skills)

	// 2. 规范化结果结构完整
	require.NotNil(t, outcome.Editor)
	require.Len(t, outcome.Editor.Experience, 1)
	assert.Contains(t, outcome.Editor.Experience[0].Title, "Backend Engineer")
	assert.Equal(t, "2020", outcome.Editor.Experience[0].Start)
	assert.Equal(t, "2023", outcome.Editor.Experience[0].End)

	// 3. 校验报告：仅教育经历缺失
	require.NotNil(t, outcome.Report)
	assert.True(t, outcome.Report.IsValid)
	assert.Len(t, outcome.Report.Warnings, 1)

	// 4. 原始文本透传
	assert.Contains(t, outcome.RawText, "Jane Smith")
}

// TestImportUnsupportedFormat 无法识别的格式返回可判别的哨兵错误
func TestImportUnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	importer, err := NewResumeImporter(ctx, nil, nil)
	require.NoError(t, err)

	_, err = importer.Import(ctx, ImportFile{
		Filename: "photo.png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestImportEmptyDocument 无可提取文本的文档返回空文档错误
func TestImportEmptyDocument(t *testing.T) {
	ctx := context.Background()
	importer, err := NewResumeImporter(ctx, nil, nil)
	require.NoError(t, err)

	_, err = importer.Import(ctx, ImportFile{
		Filename: "empty.txt",
		Data:     []byte("   "),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

// TestImportFileTooLarge 超过大小上限时拒绝导入
func TestImportFileTooLarge(t *testing.T) {
	ctx := context.Background()
	importer, err := NewResumeImporter(ctx, nil, []SettingOpt{
		WithsetMaxfilesize(8),
	})
	require.NoError(t, err)

	_, err = importer.Import(ctx, ImportFile{
		Filename: "resume.txt",
		Data:     []byte("0123456789"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractTextFailed)
}

// TestInferMediaKind 扩展名优先，其次Content-Type
func TestInferMediaKind(t *testing.T) {
	cases := []struct {
		filename    string
		contentType string
		want        string
	}{
		{"resume.pdf", "", constants.MediaKindPDF},
		{"Resume.PDF", "", constants.MediaKindPDF},
		{"resume.docx", "", constants.MediaKindDOCX},
		{"resume.txt", "", constants.MediaKindTXT},
		{"upload", "application/pdf", constants.MediaKindPDF},
		{"upload", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", constants.MediaKindDOCX},
		{"upload", "text/plain; charset=utf-8", constants.MediaKindTXT},
		{"photo.png", "image/png", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InferMediaKind(c.filename, c.contentType),
			"文件名: %q Content-Type: %q", c.filename, c.contentType)
	}
}

// TestResumeImportErrorFormat 自定义错误携带操作与文件名上下文
func TestResumeImportErrorFormat(t *testing.T) {
	err := NewExtractError("resume.pdf", "corrupt xref table")
	assert.ErrorIs(t, err, ErrExtractTextFailed)
	assert.Contains(t, err.Error(), "resume.pdf")
	assert.Contains(t, err.Error(), "corrupt xref table")

	var importErr *ResumeImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "extract", importErr.Op)
}
