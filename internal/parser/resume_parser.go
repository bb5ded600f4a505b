package parser

import (
	"resume-import-go/internal/types"
)

// ParseResumeText 对提取出的纯文本做启发式结构化解析
// 纯函数：不读外部状态，不返回错误，定位失败的章节以空值呈现
func ParseResumeText(text string) *types.ParsedResume {
	resume := types.NewParsedResume()

	// 1. 联系方式：全文正则，首个匹配生效
	resume.Email = ExtractEmail(text)
	resume.Phone = ExtractPhone(text)
	resume.Linkedin = ExtractLinkedin(text)
	resume.Github = ExtractGithub(text)

	// 2. 姓名与职位：只看文档开头几行
	lines := nonEmptyLines(text)
	resume.Name = ExtractName(lines)
	resume.Role = ExtractRole(lines, resume.Name)

	// 3. 章节切分后逐段解析
	seg := NewSectionSegmenter(text)
	if sec, ok := seg.SectionText(types.SectionSkills); ok {
		resume.Skills = parseSkillsSection(sec)
	}
	if len(resume.Skills) == 0 {
		resume.Skills = extractInlineSkills(text)
	}
	if sec, ok := seg.SectionText(types.SectionExperience); ok {
		resume.Experience = parseExperienceSection(sec)
	}
	if sec, ok := seg.SectionText(types.SectionEducation); ok {
		resume.Education = parseEducationSection(sec)
	}
	if sec, ok := seg.SectionText(types.SectionProjects); ok {
		resume.Projects = parseProjectSection(sec)
	}
	if sec, ok := seg.SectionText(types.SectionCertifications); ok {
		resume.Certifications = parseCertificationSection(sec)
	}
	if sec, ok := seg.SectionText(types.SectionLanguages); ok {
		resume.Languages = parseLanguagesSection(sec)
	}
	if sec, ok := seg.SectionText(types.SectionSummary); ok {
		resume.Summary = summaryFromSpan(sec)
	}
	if resume.Summary == "" {
		resume.Summary = summaryFromFirstParagraph(text)
	}

	return resume
}
