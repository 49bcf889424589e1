package model

import (
	"time"

	"rexsphere/internal/pkg/enums"
)

// Rec 推荐。AskID 可空：推荐可以独立存在，也可以回答某个提问。
// 关联在创建时一次性确定，之后不可改挂。
type Rec struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	Category  enums.Category `gorm:"type:varchar(32);not null;index" json:"category"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	AskID     *uint          `gorm:"index" json:"askId"`
	CreatedAt time.Time      `gorm:"<-:create" json:"createdAt"`
}
