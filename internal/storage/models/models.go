package models

import (
	"time"

	"gorm.io/datatypes"
)

// ResumeRecord 导入完成后落库的简历记录
// EditorData 存完整的规范化schema，列表/嵌套结构不拆表
type ResumeRecord struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	RecordUUID string         `gorm:"type:char(36);uniqueIndex;not null"` // 对外暴露的记录标识
	UserID     string         `gorm:"type:varchar(64);index;not null"`    // 所属用户
	Title      string         `gorm:"type:varchar(255)"`                  // 记录标题，默认取源文件名
	FileMD5    string         `gorm:"type:char(32);index"`                // 源文件MD5，去重用
	OriginKey  string         `gorm:"type:varchar(512)"`                  // 原始文件在对象存储中的路径
	RawTextKey string         `gorm:"type:varchar(512)"`                  // 解析文本在对象存储中的路径
	EditorData datatypes.JSON `gorm:"type:json"`                          // 规范化后的简历数据
	Warnings   datatypes.JSON `gorm:"type:json"`                          // 完整性告警列表
	IsValid    bool           `gorm:"not null;default:true"`
	Status     string         `gorm:"type:varchar(32);index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName 指定表名
func (ResumeRecord) TableName() string {
	return "resume_records"
}
