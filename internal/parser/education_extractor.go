package parser

import (
	"regexp"
	"strings"

	"resume-import-go/internal/types"
)

var (
	// eduDateRangeRegex 教育经历的日期范围形态：
	// "2019 - 2023"、"2021 - Present"、"Aug. 2019 - May 2023"
	eduDateRangeRegex  = regexp.MustCompile(`\d{4}\s*[-–—]\s*\d{4}|\d{4}\s*[-–—]\s*\w+|[A-Za-z]+\.?\s+\d{4}\s*[-–—]\s*[A-Za-z]+\.?\s+\d{4}`)
	educationHeadRegex = regexp.MustCompile(`(?i)^education`)
)

// parseEducationSection 解析教育经历章节
// 含日期范围的行开启新条目并把日期前的部分当作学位，
// 首字母大写的长行按"先学校后学位"的顺序补位
func parseEducationSection(section string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	lines := strings.Split(section, "\n")

	var current *types.EducationEntry
	commit := func() {
		if current != nil && (current.Degree != "" || current.Institute != "") {
			entries = append(entries, *current)
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if i == 0 && educationHeadRegex.MatchString(line) {
			continue
		}

		if isBulletLine(line) {
			if current != nil {
				if p := stripBullet(line); p != "" {
					current.Points = append(current.Points, p)
				}
			}
			continue
		}

		if loc := eduDateRangeRegex.FindStringIndex(line); loc != nil {
			commit()
			current = &types.EducationEntry{
				Degree: strings.TrimSpace(line[:loc[0]]),
				Date:   strings.TrimSpace(line[loc[0]:loc[1]]),
				Points: []string{},
			}
			continue
		}

		if len(line) > 5 && startsUpper(line) {
			if current == nil {
				current = &types.EducationEntry{Institute: line, Points: []string{}}
			} else if current.Institute == "" {
				current.Institute = line
			} else if current.Degree == "" {
				current.Degree = line
			}
			continue
		}

		if current != nil && containsAnyFold(line, "gpa", "cgpa", "coursework") {
			current.Points = append(current.Points, line)
		}
	}
	commit()
	return entries
}

// containsAnyFold 大小写不敏感的子串包含判断
func containsAnyFold(line string, needles ...string) bool {
	lower := strings.ToLower(line)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
