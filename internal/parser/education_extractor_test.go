package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEducationSectionDegreeAndDate 含日期范围的行开启条目，日期前的部分作为学位
func TestParseEducationSectionDegreeAndDate(t *testing.T) {
	section := `Education
Bachelor of Science 2019 - 2023
Stanford University
coursework: Algorithms, Operating Systems`

	entries := parseEducationSection(section)
	require.Len(t, entries, 1)

	edu := entries[0]
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "2019 - 2023", edu.Date)
	assert.Equal(t, "Stanford University", edu.Institute)
	assert.Equal(t, []string{"coursework: Algorithms, Operating Systems"}, edu.Points)
}

// TestParseEducationSectionOpenEndedDate "年份 - 单词" 的开放式日期范围
func TestParseEducationSectionOpenEndedDate(t *testing.T) {
	section := `Education
Master of Engineering 2021 - Present`

	entries := parseEducationSection(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Engineering", entries[0].Degree)
	assert.Equal(t, "2021 - Present", entries[0].Date)
}

// TestParseEducationSectionMonthYearRange "月份 年份 - 月份 年份" 形态
func TestParseEducationSectionMonthYearRange(t *testing.T) {
	section := `Education
B.Tech Computer Science Aug. 2019 - May 2023`

	entries := parseEducationSection(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Aug. 2019 - May 2023", entries[0].Date)
}

// TestParseEducationSectionBulletBeforeDate 要点行优先于日期判定，不会误开新条目
func TestParseEducationSectionBulletBeforeDate(t *testing.T) {
	section := `Education
Stanford University
• 2019 - 2023 exchange program`

	entries := parseEducationSection(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Stanford University", entries[0].Institute)
	assert.Equal(t, []string{"2019 - 2023 exchange program"}, entries[0].Points)
}

// TestParseEducationSectionRequiresDegreeOrInstitute 学位与学校都为空的条目不提交
func TestParseEducationSectionRequiresDegreeOrInstitute(t *testing.T) {
	section := `Education
2019 - 2023`

	entries := parseEducationSection(section)
	assert.Empty(t, entries)
}

// TestParseEducationSectionInstituteFirst 无日期行时先补学校再补学位
func TestParseEducationSectionInstituteFirst(t *testing.T) {
	section := `Education
Tsinghua University
Computer Science and Technology`

	entries := parseEducationSection(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "Tsinghua University", entries[0].Institute)
	assert.Equal(t, "Computer Science and Technology", entries[0].Degree)
}
