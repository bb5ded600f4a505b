package parser

import (
	"regexp"
	"strings"

	"resume-import-go/internal/types"
)

// dateRangeSeparator 日期范围分隔符：连字符、en-dash、em-dash，取首个出现者
var dateRangeSeparator = regexp.MustCompile(`[-–—]`)

// defaultSkillLevel 结构化技能列表的默认熟练度
const defaultSkillLevel = 70

// splitDateRange 把 "2022 – Present" 之类的范围串拆成起止两段
// 无分隔符时整串作为起点，终点为空
func splitDateRange(date string) (start, end string) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", ""
	}
	loc := dateRangeSeparator.FindStringIndex(date)
	if loc == nil {
		return date, ""
	}
	return strings.TrimSpace(date[:loc[0]]), strings.TrimSpace(date[loc[1]:])
}

// BuildResumeEditorData 把松散解析结果规范化为编辑器消费的完整schema
// 纯函数且对缺失字段完全容忍：任何输入都产出结构完整的记录
func BuildResumeEditorData(parsed *types.ParsedResume) *types.EditorData {
	if parsed == nil {
		parsed = types.NewParsedResume()
	}

	data := &types.EditorData{
		Name:           parsed.Name,
		Role:           parsed.Role,
		Phone:          parsed.Phone,
		Email:          parsed.Email,
		Linkedin:       parsed.Linkedin,
		Github:         parsed.Github,
		Location:       parsed.Location,
		Website:        parsed.Website,
		Summary:        parsed.Summary,
		Address:        types.Address{},
		Experience:     []types.EditorExperience{},
		Education:      []types.EditorEducation{},
		Projects:       []types.EditorProject{},
		Achievements:   []string{},
		Languages:      []string{},
		Certifications: []string{},
	}

	for _, exp := range parsed.Experience {
		start, end := exp.Start, exp.End
		if start == "" || end == "" {
			s, e := splitDateRange(exp.Date)
			if start == "" {
				start = s
			}
			if end == "" {
				end = e
			}
		}
		date := exp.Date
		if date == "" && start != "" && end != "" {
			date = start + " – " + end
		}
		title := exp.Title
		if title == "" {
			title = exp.Position
		}
		position := exp.Position
		if position == "" {
			position = exp.Title
		}
		points := exp.Points
		if points == nil {
			points = []string{}
		}
		data.Experience = append(data.Experience, types.EditorExperience{
			Title:       title,
			Company:     exp.Company,
			Date:        date,
			Location:    exp.Location,
			Points:      points,
			Position:    position,
			Start:       start,
			End:         end,
			Description: points,
		})
	}

	for _, edu := range parsed.Education {
		start, end := edu.Start, edu.End
		if start == "" || end == "" {
			s, e := splitDateRange(edu.Date)
			if start == "" {
				start = s
			}
			if end == "" {
				end = e
			}
		}
		date := edu.Date
		if date == "" && start != "" && end != "" {
			date = start + " – " + end
		}
		institute := edu.Institute
		if institute == "" {
			institute = edu.School
		}
		school := edu.School
		if school == "" {
			school = edu.Institute
		}
		points := edu.Points
		if points == nil {
			points = []string{}
		}
		data.Education = append(data.Education, types.EditorEducation{
			Degree:    edu.Degree,
			Institute: institute,
			Date:      date,
			Location:  edu.Location,
			Points:    points,
			School:    school,
			Start:     start,
			End:       end,
		})
	}

	for _, proj := range parsed.Projects {
		points := proj.Points
		if points == nil {
			points = []string{}
		}
		data.Projects = append(data.Projects, types.EditorProject{
			Title:  proj.Title,
			Link:   proj.Link,
			Role:   proj.Role,
			Date:   proj.Date,
			Points: points,
		})
	}

	// 技能双重表示：扁平串 + 带默认熟练度的列表
	data.Skills = types.EditorSkills{
		Languages:  strings.Join(parsed.Skills, ", "),
		SkillsList: []types.SkillRating{},
	}
	for _, s := range parsed.Skills {
		data.Skills.SkillsList = append(data.Skills.SkillsList, types.SkillRating{
			Name:  s,
			Level: defaultSkillLevel,
		})
	}

	// 证书与成就共用同一来源
	data.Certifications = append(data.Certifications, parsed.Certifications...)
	data.Achievements = append(data.Achievements, parsed.Certifications...)
	data.Languages = append(data.Languages, parsed.Languages...)

	return data
}
