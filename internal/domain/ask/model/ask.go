package model

import (
	"time"

	"rexsphere/internal/pkg/enums"
)

// Ask 提问
type Ask struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	Category  enums.Category `gorm:"type:varchar(32);not null;index" json:"category"`
	Question  string         `gorm:"type:text" json:"question"`
	CreatedAt time.Time      `gorm:"<-:create" json:"createdAt"` // 创建后不可变
}
