package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseSkillsSectionCategoryLines "分类: a, b" 形态取冒号右侧按逗号/分号切分
func TestParseSkillsSectionCategoryLines(t *testing.T) {
	section := `Skills
Languages: Python, Go; SQL
Tools: Docker, Kubernetes`

	skills := parseSkillsSection(section)
	assert.Equal(t, []string{"Python", "Go", "SQL", "Docker", "Kubernetes"}, skills)
}

// TestParseSkillsSectionPlainLines 纯列表行按常见分隔符切分并过滤标题词
func TestParseSkillsSectionPlainLines(t *testing.T) {
	section := `Technical Skills
Python • Java | Go
Redis; MySQL
skills`

	skills := parseSkillsSection(section)
	// 末行的 "skills" 是标题词，整行切分后被过滤
	assert.Equal(t, []string{"Python", "Java", "Go", "Redis", "MySQL"}, skills)
}

// TestParseSkillsSectionDedup 跨行重复的技能按首次出现顺序去重
func TestParseSkillsSectionDedup(t *testing.T) {
	section := `Skills
Python, Python
Java, Python`

	skills := parseSkillsSection(section)
	assert.Equal(t, []string{"Python", "Java"}, skills)
}

// TestParseSkillsSectionDropsShortTokens 单字符碎片不计入技能
func TestParseSkillsSectionDropsShortTokens(t *testing.T) {
	section := `Skills
Go, C, R, Python`

	skills := parseSkillsSection(section)
	assert.Equal(t, []string{"Go", "Python"}, skills)
}

// TestExtractInlineSkills 正文内联写法的兜底扫描
func TestExtractInlineSkills(t *testing.T) {
	skills := extractInlineSkills("Intro text. Skills: Go, Rust • TypeScript | C++")
	assert.Equal(t, []string{"Go", "Rust", "TypeScript", "C++"}, skills)

	assert.Empty(t, extractInlineSkills("nothing relevant"))
}
