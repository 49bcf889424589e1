package model

import "time"

// Comment 评论，挂在 Ask 或 Rec 其中之一上。
// ask_id/rec_id 是松散的标量引用（沿用源库 schema），创建时至少要有一个。
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AskID     *uint     `gorm:"index" json:"askId"`
	RecID     *uint     `gorm:"index" json:"recId"`
	CreatedAt time.Time `gorm:"<-:create" json:"createdAt"`
}
