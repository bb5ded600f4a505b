package parser

import (
	"resume-import-go/internal/types"
)

// 完整性告警文案，同时作为对外契约的一部分
const (
	WarnNameMissing       = "Name not detected"
	WarnEmailMissing      = "Email not detected"
	WarnPhoneMissing      = "Phone not detected"
	WarnExperienceMissing = "No experience entries found"
	WarnEducationMissing  = "No education entries found"
	WarnSkillsMissing     = "No skills found"
)

// validWarningThreshold 告警数达到该值即判定为低质量解析
const validWarningThreshold = 3

// ValidateResumeData 对解析结果做完整性检查
// 软性校验：只产生告警与整体质量位，从不阻断导入
func ValidateResumeData(parsed *types.ParsedResume) *types.ValidationReport {
	if parsed == nil {
		parsed = types.NewParsedResume()
	}

	warnings := []string{}
	if parsed.Name == "" {
		warnings = append(warnings, WarnNameMissing)
	}
	if parsed.Email == "" {
		warnings = append(warnings, WarnEmailMissing)
	}
	if parsed.Phone == "" {
		warnings = append(warnings, WarnPhoneMissing)
	}
	if len(parsed.Experience) == 0 {
		warnings = append(warnings, WarnExperienceMissing)
	}
	if len(parsed.Education) == 0 {
		warnings = append(warnings, WarnEducationMissing)
	}
	if len(parsed.Skills) == 0 {
		warnings = append(warnings, WarnSkillsMissing)
	}

	return &types.ValidationReport{
		IsValid:  len(warnings) < validWarningThreshold,
		Warnings: warnings,
	}
}
