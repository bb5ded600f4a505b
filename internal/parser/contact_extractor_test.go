package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractEmail 邮箱取首个匹配，原样返回
func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "jane.smith@example.com",
		ExtractEmail("Contact: jane.smith@example.com / other@example.org"))
	assert.Equal(t, "", ExtractEmail("no email here"))
}

// TestExtractPhone 电话支持可选国家码与常见分隔符
func TestExtractPhone(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Phone: +1-555-123-4567", "+1-555-123-4567"},
		{"Call (555) 123 4567 now", "(555) 123 4567"},
		{"555.123.4567", "555.123.4567"},
		{"no phone", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExtractPhone(c.text), "输入: %s", c.text)
	}
}

// TestExtractLinks 社交链接大小写不敏感
func TestExtractLinks(t *testing.T) {
	text := "See LinkedIn.com/in/jane-smith and GitHub.com/janesmith"
	assert.Equal(t, "LinkedIn.com/in/jane-smith", ExtractLinkedin(text))
	assert.Equal(t, "GitHub.com/janesmith", ExtractGithub(text))
}

// TestExtractName 只接受文档开头形如姓名的行
func TestExtractName(t *testing.T) {
	// 1. 常规情形
	assert.Equal(t, "Jane Smith", ExtractName([]string{"Jane Smith", "Engineer"}))

	// 2. 含邮箱、链接或长数字串的行被排除
	assert.Equal(t, "Jane Smith", ExtractName([]string{
		"jane@example.com",
		"+1 5551234567",
		"Jane Smith",
	}))

	// 3. 过短、过长或不符合形状的行被排除
	assert.Equal(t, "", ExtractName([]string{"Jo", "ALL CAPS LINE", "lowercase name"}))

	// 4. 超出扫描范围的姓名行不再检查
	assert.Equal(t, "", ExtractName([]string{"a@b.cd", "a@b.cd", "a@b.cd", "a@b.cd", "a@b.cd", "Jane Smith"}))
}

// TestExtractRole 职位行：非姓名、无联系方式痕迹、无数字
func TestExtractRole(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"jane@example.com",
		"Senior Backend Engineer",
	}
	assert.Equal(t, "Senior Backend Engineer", ExtractRole(lines, "Jane Smith"))

	// 含数字的行不作为职位
	assert.Equal(t, "", ExtractRole([]string{"Jane Smith", "Engineer L5"}, "Jane Smith"))
}

// TestNonEmptyLines 行切分去除空白行并逐行trim
func TestNonEmptyLines(t *testing.T) {
	lines := nonEmptyLines("  a  \n\n\t\nb\n")
	assert.Equal(t, []string{"a", "b"}, lines)
}
