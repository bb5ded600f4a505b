package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	skillsHeaderRegex  = regexp.MustCompile(`(?i)^(skills|technical skills|competencies)$`)
	skillCategoryRegex = regexp.MustCompile(`^([\w\s/&]+):\s*(.+)$`)
	skillHeaderToken   = regexp.MustCompile(`(?i)^(skills|technical|competencies)$`)
	skillLineSplitter  = regexp.MustCompile(`[,•·|;]`)
	categorySplitter   = regexp.MustCompile(`[,;]`)

	// inlineSkillsRegex 兜底：正文中的 "Skills: a, b, c" 内联写法
	inlineSkillsRegex    = regexp.MustCompile(`(?i)skills?\s*[:\-]\s*(.+)`)
	inlineSkillsSplitter = regexp.MustCompile(`[,•|]`)
)

// parseSkillsSection 解析技能章节
// 两种行形态："分类: a, b, c" 与 纯分隔符列表行；结果按首次出现顺序去重
func parseSkillsSection(section string) []string {
	skills := []string{}
	seen := map[string]struct{}{}
	add := func(tok string) {
		tok = strings.TrimSpace(tok)
		if utf8.RuneCountInString(tok) <= 1 {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		skills = append(skills, tok)
	}

	for i, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if i == 0 && skillsHeaderRegex.MatchString(line) {
			continue
		}
		if m := skillCategoryRegex.FindStringSubmatch(line); m != nil {
			for _, tok := range categorySplitter.Split(m[2], -1) {
				add(tok)
			}
			continue
		}
		if utf8.RuneCountInString(line) > 2 {
			for _, tok := range skillLineSplitter.Split(line, -1) {
				if skillHeaderToken.MatchString(strings.TrimSpace(tok)) {
					continue
				}
				add(tok)
			}
		}
	}
	return skills
}

// extractInlineSkills 章节定位失败时的全篇兜底扫描
func extractInlineSkills(text string) []string {
	m := inlineSkillsRegex.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	skills := []string{}
	for _, tok := range inlineSkillsSplitter.Split(m[1], -1) {
		tok = strings.TrimSpace(tok)
		if utf8.RuneCountInString(tok) > 1 {
			skills = append(skills, tok)
		}
	}
	return skills
}
