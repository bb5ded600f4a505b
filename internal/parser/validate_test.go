package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-import-go/internal/types"
)

// TestValidateResumeDataThreshold 告警数2仍合格，达到3判定为低质量
func TestValidateResumeDataThreshold(t *testing.T) {
	// 1. 恰好2项缺失：education 与 skills
	parsed := types.NewParsedResume()
	parsed.Name = "Jane Smith"
	parsed.Email = "jane@example.com"
	parsed.Phone = "+1-555-123-4567"
	parsed.Experience = append(parsed.Experience, types.ExperienceEntry{Title: "Engineer"})

	report := ValidateResumeData(parsed)
	require.Len(t, report.Warnings, 2)
	assert.True(t, report.IsValid)
	assert.Contains(t, report.Warnings, WarnEducationMissing)
	assert.Contains(t, report.Warnings, WarnSkillsMissing)

	// 2. 恰好3项缺失：再去掉工作经历
	parsed.Experience = nil
	report = ValidateResumeData(parsed)
	require.Len(t, report.Warnings, 3)
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Warnings, WarnExperienceMissing)
}

// TestValidateResumeDataAllMissing 全空输入产出全部6条告警
func TestValidateResumeDataAllMissing(t *testing.T) {
	report := ValidateResumeData(types.NewParsedResume())
	assert.False(t, report.IsValid)
	assert.Equal(t, []string{
		WarnNameMissing,
		WarnEmailMissing,
		WarnPhoneMissing,
		WarnExperienceMissing,
		WarnEducationMissing,
		WarnSkillsMissing,
	}, report.Warnings)
}

// TestValidateResumeDataNilInput nil输入等价于空结果
func TestValidateResumeDataNilInput(t *testing.T) {
	report := ValidateResumeData(nil)
	require.NotNil(t, report)
	assert.Len(t, report.Warnings, 6)
	assert.False(t, report.IsValid)
}

// TestValidateResumeDataComplete 完整结果无告警
func TestValidateResumeDataComplete(t *testing.T) {
	parsed := types.NewParsedResume()
	parsed.Name = "Jane Smith"
	parsed.Email = "jane@example.com"
	parsed.Phone = "+1-555-123-4567"
	parsed.Skills = []string{"Go"}
	parsed.Experience = append(parsed.Experience, types.ExperienceEntry{Title: "Engineer"})
	parsed.Education = append(parsed.Education, types.EducationEntry{Institute: "Stanford University"})

	report := ValidateResumeData(parsed)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Warnings)
}
