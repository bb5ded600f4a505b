package constants

const (
	// MediaKindPDF PDF文档
	MediaKindPDF = "pdf"
	// MediaKindDOCX Word文档 (OOXML)
	MediaKindDOCX = "docx"
	// MediaKindTXT 纯文本
	MediaKindTXT = "txt"

	// DefaultMaxFileSizeBytes 上传文件大小上限 (10 MiB)，由外层接口强制
	DefaultMaxFileSizeBytes = 10 << 20

	// StatusImported 导入完成
	StatusImported = "IMPORTED"
	// StatusDuplicateSkipped 检测到重复文件，跳过处理
	StatusDuplicateSkipped = "DUPLICATE_FILE_SKIPPED"
)
