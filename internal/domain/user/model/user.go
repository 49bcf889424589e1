package model

import (
	"time"

	"rexsphere/internal/pkg/enums"
)

// User 用户模型
type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	FirstName           string     `gorm:"not null" json:"firstName"`
	LastName            string     `gorm:"not null" json:"lastName"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Username            string     `gorm:"uniqueIndex;not null" json:"username"`
	Password            string     `gorm:"not null" json:"-"` // 密码不返回给前端
	MobileNumber        string     `gorm:"size:15;not null" json:"mobileNumber"`
	ProfilePictureURL   string     `json:"profilePictureUrl"`
	DateOfBirth         *time.Time `json:"dateOfBirth"`
	Address             string     `json:"address"`
	PreferredCategories string     `gorm:"not null;default:''" json:"-"` // 逗号分隔的分类名，读取时解析为枚举集合
	CreatedAt           time.Time  `json:"createdAt"`
}

// GetPreferredCategories 解析偏好分类集合
func (u *User) GetPreferredCategories() ([]enums.Category, error) {
	return enums.ParseCategoryList(u.PreferredCategories)
}

// SetPreferredCategories 编码偏好分类集合
func (u *User) SetPreferredCategories(categories []enums.Category) {
	u.PreferredCategories = enums.JoinCategories(categories)
}
