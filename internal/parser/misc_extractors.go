package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	certHeadRegex     = regexp.MustCompile(`(?i)^(achievement|certification)`)
	languagesSplitter = regexp.MustCompile(`[,•\n]`)
	langBulletRegex   = regexp.MustCompile(`^[-*]\s*`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
)

// parseCertificationSection 解析证书/成就章节，每行即一个条目，原样保留
func parseCertificationSection(section string) []string {
	certs := []string{}
	for i, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if i == 0 && certHeadRegex.MatchString(line) {
			continue
		}
		item := stripBullet(line)
		if utf8.RuneCountInString(item) > 5 {
			certs = append(certs, item)
		}
	}
	return certs
}

// parseLanguagesSection 解析语言章节：去掉标题行后整段拼接再按分隔符切分
func parseLanguagesSection(section string) []string {
	langs := []string{}
	lines := strings.Split(section, "\n")
	if len(lines) <= 1 {
		return langs
	}
	joined := strings.Join(lines[1:], " ")
	for _, tok := range languagesSplitter.Split(joined, -1) {
		tok = strings.TrimSpace(langBulletRegex.ReplaceAllString(strings.TrimSpace(tok), ""))
		if utf8.RuneCountInString(tok) > 1 {
			langs = append(langs, tok)
		}
	}
	return langs
}

// summaryFromSpan 从已定位的简介章节取正文（去掉标题行）
func summaryFromSpan(section string) string {
	lines := strings.Split(section, "\n")
	if len(lines) <= 1 {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines[1:], " "))
}

// summaryFromFirstParagraph 兜底策略：取首个合格的空行分隔段落
// 合格指长度在合理范围内且不像经历/教育章节，不合格的段落跳过继续向后找
func summaryFromFirstParagraph(text string) string {
	for _, block := range strings.Split(text, "\n\n") {
		para := strings.TrimSpace(block)
		if para == "" {
			continue
		}
		n := utf8.RuneCountInString(para)
		if n <= 40 || n >= 800 {
			continue
		}
		lower := strings.ToLower(para)
		if strings.Contains(lower, "experience") || strings.Contains(lower, "education") {
			continue
		}
		return whitespaceRegex.ReplaceAllString(para, " ")
	}
	return ""
}
