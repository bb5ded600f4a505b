package parser

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	// docx库返回的是document.xml原文，需要自行做标签剥离
	paragraphCloseRegex = regexp.MustCompile(`</w:p>`)
	xmlTagRegex         = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxText 提取DOCX文档的纯文本
// 段落结束标签转换行，其余标签剥离，实体反转义
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("解析DOCX失败: %w", err)
	}
	defer doc.Close()

	return stripDocumentXML(doc.Editable().GetContent()), nil
}

// stripDocumentXML 把document.xml正文降级为纯文本
func stripDocumentXML(content string) string {
	content = paragraphCloseRegex.ReplaceAllString(content, "\n")
	content = xmlTagRegex.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return strings.TrimSpace(content)
}
