package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseCertificationSection 每行一个条目，剥离项目符号，过短的行被丢弃
func TestParseCertificationSection(t *testing.T) {
	section := `Certifications
• AWS Certified Solutions Architect
- CKA Kubernetes Administrator
Short`

	certs := parseCertificationSection(section)
	assert.Equal(t, []string{
		"AWS Certified Solutions Architect",
		"CKA Kubernetes Administrator",
	}, certs)
}

// TestParseCertificationSectionAchievementHeader 成就标题行同样被跳过
func TestParseCertificationSectionAchievementHeader(t *testing.T) {
	section := `Achievements
Winner of the 2021 company hackathon`

	certs := parseCertificationSection(section)
	assert.Equal(t, []string{"Winner of the 2021 company hackathon"}, certs)
}

// TestParseLanguagesSection 去掉标题行后整段拼接再按分隔符切分
func TestParseLanguagesSection(t *testing.T) {
	section := `Languages
English (Native), Mandarin, - German
• French`

	langs := parseLanguagesSection(section)
	assert.Equal(t, []string{"English (Native)", "Mandarin", "German", "French"}, langs)
}

// TestParseLanguagesSectionHeaderOnly 只有标题行时无产出
func TestParseLanguagesSectionHeaderOnly(t *testing.T) {
	assert.Empty(t, parseLanguagesSection("Languages"))
}

// TestSummaryFromSpan 去掉标题行后按空格拼接正文
func TestSummaryFromSpan(t *testing.T) {
	section := `Summary
Seasoned engineer
with ten years building distributed systems`

	assert.Equal(t, "Seasoned engineer with ten years building distributed systems", summaryFromSpan(section))
	assert.Equal(t, "", summaryFromSpan("Summary"))
}

// TestSummaryFromFirstParagraph 兜底策略取首个合格段落，不合格的跳过继续向后找
func TestSummaryFromFirstParagraph(t *testing.T) {
	// 1. 合格段落：长度适中且不含章节关键词，空白被折叠
	text := "Pragmatic engineer who enjoys\nshipping reliable backend services.\n\nSkills\nGo"
	assert.Equal(t, "Pragmatic engineer who enjoys shipping reliable backend services.", summaryFromFirstParagraph(text))

	// 2. 首段过短：跳过后取后续的合格段落
	text = "John Doe\n\nA passionate software developer with over ten years of building distributed systems."
	assert.Equal(t, "A passionate software developer with over ten years of building distributed systems.", summaryFromFirstParagraph(text))

	// 3. 含章节关键词的段落同样被跳过
	text = "Ten years of experience building large scale backend systems for payments.\n\n" +
		"Focused on reliability, clean interfaces and pragmatic operational tooling."
	assert.Equal(t, "Focused on reliability, clean interfaces and pragmatic operational tooling.", summaryFromFirstParagraph(text))

	// 4. 没有任何合格段落时产出空串
	assert.Equal(t, "", summaryFromFirstParagraph("Jane Smith\n\nshort"))
}
