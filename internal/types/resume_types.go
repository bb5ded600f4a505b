package types

// SectionLabel 表示简历章节标签
type SectionLabel string

const (
	// SectionExperience 工作经历章节
	SectionExperience SectionLabel = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionLabel = "education"
	// SectionSkills 技能章节
	SectionSkills SectionLabel = "skills"
	// SectionProjects 项目经历章节
	SectionProjects SectionLabel = "projects"
	// SectionSummary 个人简介章节
	SectionSummary SectionLabel = "summary"
	// SectionCertifications 证书/成就章节
	SectionCertifications SectionLabel = "certifications"
	// SectionLanguages 语言章节
	SectionLanguages SectionLabel = "languages"
)

// SectionSpan 表示某个章节在提取文本中的范围 [Start, End)
type SectionSpan struct {
	Label SectionLabel
	Start int
	End   int
}

// ExperienceEntry 工作经历条目（启发式解析的中间结果）
type ExperienceEntry struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Points   []string `json:"points"`
	// Position/Start/End 通常由解析器留空，规范化时从 Date 推导
	Position string `json:"position,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// EducationEntry 教育经历条目
type EducationEntry struct {
	Degree    string   `json:"degree"`
	Institute string   `json:"institute"`
	Date      string   `json:"date"`
	Location  string   `json:"location"`
	Points    []string `json:"points"`
	School    string   `json:"school,omitempty"`
	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
}

// ProjectEntry 项目条目
type ProjectEntry struct {
	Title  string   `json:"title"`
	Link   string   `json:"link"`
	Role   string   `json:"role"`
	Date   string   `json:"date"`
	Points []string `json:"points"`
}

// ParsedResume 启发式解析产出的松散结构简历
// 不变式：所有列表字段永远非nil，标量字段缺省为空字符串
type ParsedResume struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Role     string `json:"role"`
	Summary  string `json:"summary"`
	Website  string `json:"website,omitempty"`

	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
}

// NewParsedResume 构造一个所有列表均已初始化的空解析结果
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Projects:       []ProjectEntry{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// Address 地址子对象，导入阶段不填充，保留给手工编辑
type Address struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// EditorExperience 编辑器使用的工作经历结构
// Date 与 Start/End 同时存在：Date 为人类可读的原始串，Start/End 从中拆分
type EditorExperience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Points      []string `json:"points"`
	Position    string   `json:"position"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Description []string `json:"description"`
}

// EditorEducation 编辑器使用的教育经历结构
type EditorEducation struct {
	Degree    string   `json:"degree"`
	Institute string   `json:"institute"`
	Date      string   `json:"date"`
	Location  string   `json:"location"`
	Points    []string `json:"points"`
	School    string   `json:"school"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
}

// EditorProject 编辑器使用的项目结构
type EditorProject struct {
	Title  string   `json:"title"`
	Link   string   `json:"link"`
	Role   string   `json:"role"`
	Date   string   `json:"date"`
	Points []string `json:"points"`
}

// SkillRating 单项技能及其熟练度
type SkillRating struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// EditorSkills 技能的双重表示：
// Languages 为扁平的逗号拼接串（沿用编辑器schema中的分类命名，并非自然语言字段），
// SkillsList 为带默认熟练度的结构化列表
type EditorSkills struct {
	Languages  string        `json:"languages"`
	Frameworks string        `json:"frameworks"`
	Databases  string        `json:"databases"`
	Cloud      string        `json:"cloud"`
	Tools      string        `json:"tools"`
	SkillsList []SkillRating `json:"skillsList"`
}

// EditorData 规范化后的简历记录，即编辑器/模板层消费的完整schema
// 不变式：结构完整——每个键都存在且类型正确，列表非nil，消费方无需判空
type EditorData struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`

	Address Address `json:"address"`

	Experience     []EditorExperience `json:"experience"`
	Education      []EditorEducation  `json:"education"`
	Projects       []EditorProject    `json:"projects"`
	Achievements   []string           `json:"achievements"`
	Skills         EditorSkills       `json:"skills"`
	Languages      []string           `json:"languages"`
	Certifications []string           `json:"certifications"`
}

// ValidationReport 导入完整性报告，软性校验，从不阻断导入
type ValidationReport struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
}

// ImportResult 导入入口的统一返回结构
type ImportResult struct {
	Success        bool        `json:"success"`
	SubmissionUUID string      `json:"submission_uuid,omitempty"`
	Data           *EditorData `json:"data,omitempty"`
	RawText        string      `json:"raw_text,omitempty"`
	Warnings       []string    `json:"warnings,omitempty"`
	IsValid        bool        `json:"is_valid"`
	Error          string      `json:"error,omitempty"`
}
