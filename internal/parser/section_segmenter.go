package parser

import (
	"strings"

	"resume-import-go/internal/types"
)

// sectionKeywords 每个章节标签的关键词同义词表，全部小写
// 先出现的同义词优先（取全文中最早的匹配位置）
var sectionKeywords = map[types.SectionLabel][]string{
	types.SectionExperience:     {"experience", "work history", "employment", "professional experience"},
	types.SectionEducation:      {"education", "academic", "qualifications"},
	types.SectionSkills:         {"skills", "technical skills", "competencies", "expertise"},
	types.SectionProjects:       {"projects", "portfolio"},
	types.SectionSummary:        {"summary", "profile", "objective", "about"},
	types.SectionCertifications: {"certifications", "certificates", "licenses"},
	types.SectionLanguages:      {"languages"},
}

// sectionCanFollow 章节结束判定用的"可后继"关键词集
// 从匹配位置向后 headerLookahead 个字符之后开始搜索，取最早出现者为章节终点
var sectionCanFollow = map[types.SectionLabel][]string{
	types.SectionExperience:     {"education", "skill", "achievement", "certification", "project", "language"},
	types.SectionEducation:      {"skill", "achievement", "certification", "project", "language", "reference"},
	types.SectionSkills:         {"achievement", "certification", "project", "education", "experience", "language"},
	types.SectionProjects:       {"education", "skill", "achievement", "certification", "language"},
	types.SectionSummary:        {"experience", "education", "skill", "project"},
	types.SectionCertifications: {"reference", "declaration"},
	types.SectionLanguages:      {"reference", "declaration"},
}

// sectionFallbackLen 未找到后继章节时的兜底截断长度（字符）
// 用于限制最坏情况下的解析范围
var sectionFallbackLen = map[types.SectionLabel]int{
	types.SectionExperience:     1500,
	types.SectionEducation:      1500,
	types.SectionSkills:         1000,
	types.SectionProjects:       2000,
	types.SectionSummary:        800,
	types.SectionCertifications: 1000,
	types.SectionLanguages:      800,
}

// headerLookahead 跳过章节标题词本身的固定前瞻量
const headerLookahead = 20

// SectionSegmenter 基于关键词的章节切分器
// 持有原文及其小写索引，供大小写不敏感搜索复用
type SectionSegmenter struct {
	text  string
	lower string
}

// NewSectionSegmenter 创建章节切分器
func NewSectionSegmenter(text string) *SectionSegmenter {
	return &SectionSegmenter{
		text:  text,
		lower: asciiLower(text),
	}
}

// asciiLower 仅折叠ASCII大写字母的小写化
// 保证索引串与原文逐字节等长，小写索引上的偏移可直接用于切片原文；
// 关键词表全是ASCII，Unicode大小写折叠在这里没有收益
func asciiLower(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, text)
}

// FindSection 定位指定标签的章节范围
// 首个关键词匹配即生效，不区分标题行与正文中的同形词，这是已知的启发式局限
func (s *SectionSegmenter) FindSection(label types.SectionLabel) (types.SectionSpan, bool) {
	start := -1
	for _, kw := range sectionKeywords[label] {
		if idx := strings.Index(s.lower, kw); idx != -1 && (start == -1 || idx < start) {
			start = idx
		}
	}
	if start == -1 {
		return types.SectionSpan{}, false
	}

	searchFrom := start + headerLookahead
	if searchFrom > len(s.lower) {
		searchFrom = len(s.lower)
	}

	end := -1
	for _, kw := range sectionCanFollow[label] {
		if idx := strings.Index(s.lower[searchFrom:], kw); idx != -1 {
			abs := searchFrom + idx
			if end == -1 || abs < end {
				end = abs
			}
		}
	}
	if end == -1 {
		end = start + sectionFallbackLen[label]
	}
	if end > len(s.text) {
		end = len(s.text)
	}
	if end < start {
		end = start
	}

	return types.SectionSpan{Label: label, Start: start, End: end}, true
}

// SectionText 返回指定标签的章节文本（含标题行）
func (s *SectionSegmenter) SectionText(label types.SectionLabel) (string, bool) {
	span, ok := s.FindSection(label)
	if !ok {
		return "", false
	}
	return s.text[span.Start:span.End], true
}
