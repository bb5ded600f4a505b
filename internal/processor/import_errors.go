package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	ErrExtractTextFailed = errors.New("提取简历文本失败")
	ErrEmptyDocument     = errors.New("文档无可提取文本")
)

// ResumeImportError 包含详细错误信息的自定义错误
type ResumeImportError struct {
	Filename string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ResumeImportError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Filename, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Filename)
}

func (e *ResumeImportError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeImportError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(filename, detail string) error {
	return &ResumeImportError{
		Filename: filename,
		Op:       "dispatch",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   detail,
	}
}

func NewExtractError(filename, detail string) error {
	return &ResumeImportError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrExtractTextFailed,
		Detail:   detail,
	}
}

func NewEmptyDocumentError(filename string) error {
	return &ResumeImportError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrEmptyDocument,
	}
}
