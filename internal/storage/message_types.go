package storage

import (
	"time"

	"github.com/google/uuid"
)

// ResumeImportedMessage 导入完成事件
// 发布到简历事件交换机，供下游（匹配、通知等）消费
type ResumeImportedMessage struct {
	EventID      string    `json:"event_id"`
	RecordUUID   string    `json:"record_uuid"`
	UserID       string    `json:"user_id"`
	FileMD5      string    `json:"file_md5"`
	MediaKind    string    `json:"media_kind"`
	OriginKey    string    `json:"origin_key"`
	RawTextKey   string    `json:"raw_text_key"`
	IsValid      bool      `json:"is_valid"`
	WarningCount int       `json:"warning_count"`
	ImportedAt   time.Time `json:"imported_at"`
}

// NewResumeImportedMessage 构造导入完成事件，自动生成事件ID与时间戳
func NewResumeImportedMessage(recordUUID, userID string) *ResumeImportedMessage {
	return &ResumeImportedMessage{
		EventID:    uuid.NewString(),
		RecordUUID: recordUUID,
		UserID:     userID,
		ImportedAt: time.Now(),
	}
}
