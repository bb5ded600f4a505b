package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-import-go/internal/types"
)

// TestSplitDateRange 日期范围在首个分隔符处拆分
func TestSplitDateRange(t *testing.T) {
	cases := []struct {
		date  string
		start string
		end   string
	}{
		{"2022 – Present", "2022", "Present"},
		{"2020 - 2023", "2020", "2023"},
		{"Jan 2020 — Dec 2022", "Jan 2020", "Dec 2022"},
		{"2020", "2020", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		start, end := splitDateRange(c.date)
		assert.Equal(t, c.start, start, "输入: %q", c.date)
		assert.Equal(t, c.end, end, "输入: %q", c.date)
	}
}

// TestBuildResumeEditorDataDefaults 空输入也要产出结构完整的记录
func TestBuildResumeEditorDataDefaults(t *testing.T) {
	for _, parsed := range []*types.ParsedResume{nil, types.NewParsedResume()} {
		data := BuildResumeEditorData(parsed)
		require.NotNil(t, data)

		assert.Equal(t, "", data.Name)
		assert.Equal(t, "", data.Summary)
		assert.NotNil(t, data.Experience)
		assert.NotNil(t, data.Education)
		assert.NotNil(t, data.Projects)
		assert.NotNil(t, data.Achievements)
		assert.NotNil(t, data.Languages)
		assert.NotNil(t, data.Certifications)
		assert.NotNil(t, data.Skills.SkillsList)
		assert.Equal(t, "", data.Skills.Languages)
	}
}

// TestBuildResumeEditorDataExperience 经历条目的日期拆分与职称互补
func TestBuildResumeEditorDataExperience(t *testing.T) {
	parsed := types.NewParsedResume()
	parsed.Experience = append(parsed.Experience, types.ExperienceEntry{
		Title: "Backend Engineer",
		Date:  "2022 – Present",
	})

	data := BuildResumeEditorData(parsed)
	require.Len(t, data.Experience, 1)

	exp := data.Experience[0]
	assert.Equal(t, "2022", exp.Start)
	assert.Equal(t, "Present", exp.End)
	assert.Equal(t, "2022 – Present", exp.Date)
	// Position 缺省时从 Title 补齐
	assert.Equal(t, "Backend Engineer", exp.Position)
	assert.NotNil(t, exp.Points)
	assert.Equal(t, exp.Points, exp.Description)
}

// TestBuildResumeEditorDataSynthesizedDate 只有起止时间时合成可读日期串
func TestBuildResumeEditorDataSynthesizedDate(t *testing.T) {
	parsed := types.NewParsedResume()
	parsed.Experience = append(parsed.Experience, types.ExperienceEntry{
		Title: "Data Engineer",
		Start: "2018",
		End:   "2020",
	})

	data := BuildResumeEditorData(parsed)
	require.Len(t, data.Experience, 1)
	assert.Equal(t, "2018 – 2020", data.Experience[0].Date)
}

// TestBuildResumeEditorDataEducation 学校与学位字段互补
func TestBuildResumeEditorDataEducation(t *testing.T) {
	parsed := types.NewParsedResume()
	parsed.Education = append(parsed.Education, types.EducationEntry{
		Degree:    "B.Sc. Computer Science",
		Institute: "Stanford University",
		Date:      "2019 - 2023",
	})

	data := BuildResumeEditorData(parsed)
	require.Len(t, data.Education, 1)

	edu := data.Education[0]
	assert.Equal(t, "Stanford University", edu.Institute)
	assert.Equal(t, "Stanford University", edu.School)
	assert.Equal(t, "2019", edu.Start)
	assert.Equal(t, "2023", edu.End)
}

// TestBuildResumeEditorDataSkills 技能的双重表示与默认熟练度
func TestBuildResumeEditorDataSkills(t *testing.T) {
	parsed := types.NewParsedResume()
	parsed.Skills = []string{"Go", "Python"}
	parsed.Certifications = []string{"AWS Certified Solutions Architect"}
	parsed.Languages = []string{"English"}

	data := BuildResumeEditorData(parsed)

	assert.Equal(t, "Go, Python", data.Skills.Languages)
	require.Len(t, data.Skills.SkillsList, 2)
	assert.Equal(t, types.SkillRating{Name: "Go", Level: 70}, data.Skills.SkillsList[0])
	assert.Equal(t, types.SkillRating{Name: "Python", Level: 70}, data.Skills.SkillsList[1])

	// 证书同时进入证书与成就两个列表
	assert.Equal(t, []string{"AWS Certified Solutions Architect"}, data.Certifications)
	assert.Equal(t, []string{"AWS Certified Solutions Architect"}, data.Achievements)
	assert.Equal(t, []string{"English"}, data.Languages)
}

// TestBuildResumeEditorDataPure 对同一输入重复应用结果逐点相等
func TestBuildResumeEditorDataPure(t *testing.T) {
	parsed := ParseResumeText(sampleResumeText)
	first := BuildResumeEditorData(parsed)
	second := BuildResumeEditorData(parsed)
	assert.Equal(t, first, second)
}
