package model

import (
	"time"

	"rexsphere/internal/pkg/enums"
)

// Feed 动态流条目：发帖时落下的只读快照，之后绝不更新。
// 源帖被编辑或删除后快照照旧保留，读取方自行容忍 post_id 悬空。
type Feed struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	Category  enums.Category `gorm:"type:varchar(32);not null;index" json:"category"`
	Type      enums.PostType `gorm:"type:varchar(8);not null" json:"type"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	PostID    uint           `gorm:"not null;index" json:"postId"` // 源 Ask/Rec 的 id
	CreatedAt time.Time      `gorm:"<-:create" json:"createdAt"`
}
