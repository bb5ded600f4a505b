package parser

import (
	"regexp"
	"strings"

	"resume-import-go/internal/types"
)

var (
	// yearTokenRegex 条目头中的日期起点：四位年份或"月份 年份"
	// 单词部分限定为月份名，避免把职位名的尾词误当成日期开头
	yearTokenRegex    = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec)\.?\s+\d{4}|\d{4}`)
	bulletPrefixRegex = regexp.MustCompile(`^[-•*]\s*`)
)

// isBulletLine 判断是否为要点行
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

// stripBullet 去掉行首的要点符号及其后空白
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixRegex.ReplaceAllString(line, ""))
}

// startsUpper 首字符是否为大写英文字母
func startsUpper(line string) bool {
	return line != "" && line[0] >= 'A' && line[0] <= 'Z'
}

// parseExperienceSection 解析工作经历章节
// 行状态机：条目头（长度适中且首字母大写）开启新条目，要点行追加到当前条目，
// 其余形态的行静默丢弃；仅Title非空的条目才会被提交
func parseExperienceSection(section string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	lines := nonEmptyLines(section)

	var current *types.ExperienceEntry
	commit := func() {
		if current != nil && current.Title != "" {
			entries = append(entries, *current)
		}
	}

	for i, line := range lines {
		// 第一行是章节标题本身
		if i == 0 {
			continue
		}
		if len(line) > 5 && len(line) < 100 && startsUpper(line) {
			commit()
			current = &types.ExperienceEntry{Points: []string{}}
			if loc := yearTokenRegex.FindStringIndex(line); loc != nil {
				current.Title = strings.TrimSpace(line[:loc[0]])
				current.Date = strings.TrimSpace(line[loc[0]:])
				if current.Title == "" {
					current.Title = line
				}
			} else {
				current.Title = line
			}
			continue
		}
		if isBulletLine(line) && current != nil {
			if p := stripBullet(line); p != "" {
				current.Points = append(current.Points, p)
			}
		}
	}
	commit()
	return entries
}
