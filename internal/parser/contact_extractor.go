package parser

import (
	"regexp"
	"strings"
)

// 联系方式相关正则，均取首个匹配
var (
	emailRegex    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRegex    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	// nameShapeRegex 姓名形状：1~4个首字母大写的单词
	nameShapeRegex    = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+){0,3}$`)
	longDigitRunRegex = regexp.MustCompile(`\d{3,}`)
	anyDigitRegex     = regexp.MustCompile(`\d`)
)

// nameScanLines 姓名只在文档最前面的几行里找
const nameScanLines = 5

// roleScanLines 职位行的扫描范围略宽于姓名
const roleScanLines = 6

// ExtractEmail 提取首个邮箱地址，未找到返回空串
func ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// ExtractPhone 提取首个电话号码，支持可选国家码与常见分隔符
func ExtractPhone(text string) string {
	return strings.TrimSpace(phoneRegex.FindString(text))
}

// ExtractLinkedin 提取首个 LinkedIn 个人主页路径
func ExtractLinkedin(text string) string {
	return linkedinRegex.FindString(text)
}

// ExtractGithub 提取首个 GitHub 主页路径
func ExtractGithub(text string) string {
	return githubRegex.FindString(text)
}

// ExtractName 在前几个非空行中按姓名形状匹配
// 排除含邮箱/链接/话题标记或长数字串的行
func ExtractName(lines []string) string {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 60 {
			continue
		}
		if strings.ContainsAny(line, "@#") || strings.Contains(line, "http") {
			continue
		}
		if longDigitRunRegex.MatchString(line) {
			continue
		}
		if nameShapeRegex.MatchString(line) {
			return line
		}
	}
	return ""
}

// ExtractRole 在前几行中找职位行：非姓名、无联系方式痕迹、无数字的短行
func ExtractRole(lines []string, name string) string {
	limit := roleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || line == name {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "@") || strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}
		if anyDigitRegex.MatchString(line) {
			continue
		}
		if len(line) < 70 {
			return line
		}
	}
	return ""
}

// nonEmptyLines 按行切分并去掉空白行，每行两端已trim
func nonEmptyLines(text string) []string {
	out := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
