package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseProjectSection 标题行、技术栈行、角色行与要点行的归类
func TestParseProjectSection(t *testing.T) {
	section := `Projects
Payment Gateway
Tech Stack: Go, Kafka
Role: Lead developer
- Handled 1M requests per day
Inventory System
• Cut stockouts by 30%`

	projects := parseProjectSection(section)
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, "Payment Gateway", first.Title)
	assert.Equal(t, "Lead developer", first.Role)
	assert.Equal(t, []string{"Tech Stack: Go, Kafka", "Handled 1M requests per day"}, first.Points)

	second := projects[1]
	assert.Equal(t, "Inventory System", second.Title)
	assert.Equal(t, []string{"Cut stockouts by 30%"}, second.Points)
}

// TestParseProjectSectionTrailingPunct 标题行末尾的冒号/破折号被剥离
func TestParseProjectSectionTrailingPunct(t *testing.T) {
	section := `Projects
Chat App -
• Supports group channels`

	projects := parseProjectSection(section)
	require.Len(t, projects, 1)
	assert.Equal(t, "Chat App", projects[0].Title)
}

// TestParseProjectSectionUnknownLabelsIgnored 未识别的 "标签: 值" 行被静默丢弃
func TestParseProjectSectionUnknownLabelsIgnored(t *testing.T) {
	section := `Projects
Search Service
Duration: 6 months`

	projects := parseProjectSection(section)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].Points)
	assert.Empty(t, projects[0].Role)
}

// TestParseProjectSectionNoTitleNoEntries 没有合格标题行时不产出条目
func TestParseProjectSectionNoTitleNoEntries(t *testing.T) {
	section := `Projects
• a bullet without any project title`

	projects := parseProjectSection(section)
	assert.Empty(t, projects)
}
