package parser

import (
	"regexp"
	"strings"

	"resume-import-go/internal/types"
)

var (
	projectHeadRegex   = regexp.MustCompile(`(?i)^projects?$`)
	urlRegex           = regexp.MustCompile(`https?://\S+`)
	trailingPunctRegex = regexp.MustCompile(`[:\-–—]+$`)
	colonMetaRegex     = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
)

// parseProjectSection 解析项目章节
// 不含冒号且首字母大写的短行作为项目标题开启新条目，
// "标签: 值" 形态的行按标签归入技术栈要点或角色字段
func parseProjectSection(section string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	lines := strings.Split(section, "\n")

	var current *types.ProjectEntry
	commit := func() {
		if current != nil && current.Title != "" {
			projects = append(projects, *current)
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if i == 0 && projectHeadRegex.MatchString(line) {
			continue
		}

		if bulletPrefixRegex.MatchString(line) {
			if current != nil {
				if p := stripBullet(line); p != "" {
					current.Points = append(current.Points, p)
				}
			}
			continue
		}

		if len(line) > 3 && len(line) < 150 && !strings.Contains(line, ":") && startsUpper(line) {
			commit()
			current = &types.ProjectEntry{
				Title:  strings.TrimSpace(trailingPunctRegex.ReplaceAllString(line, "")),
				Points: []string{},
			}
			if strings.Contains(line, "http") {
				current.Link = urlRegex.FindString(line)
			}
			continue
		}

		if current != nil && strings.Contains(line, ":") {
			m := colonMetaRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			label := strings.ToLower(strings.TrimSpace(m[1]))
			value := strings.TrimSpace(m[2])
			switch {
			case strings.Contains(label, "tech") || strings.Contains(label, "stack") || strings.Contains(label, "technolog"):
				current.Points = append(current.Points, "Tech Stack: "+value)
			case strings.Contains(label, "role"):
				current.Role = value
			}
		}
	}
	commit()
	return projects
}
