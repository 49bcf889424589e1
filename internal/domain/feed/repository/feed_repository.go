package repository

import (
	"rexsphere/internal/domain/feed/model"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// FeedRepository 接口定义。只有插入和读取：Feed 是只追加的历史流水。
type FeedRepository interface {
	Create(entry *model.Feed) error
	GetAll() ([]model.Feed, error)
	GetPage(offset, limit int) ([]model.Feed, int64, error)
	GetByCategory(category enums.Category) ([]model.Feed, error)
}

// feedRepository 实现
type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository 创建新的仓库实例
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// Create 追加一条快照
func (r *feedRepository) Create(entry *model.Feed) error {
	return r.db.Create(entry).Error
}

// GetAll 按时间倒序获取全部动态，时间相同按 id 倒序保证确定性
func (r *feedRepository) GetAll() ([]model.Feed, error) {
	var entries []model.Feed
	if err := r.db.Order("created_at desc, id desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetPage 分页读取动态流，排序同 GetAll
func (r *feedRepository) GetPage(offset, limit int) ([]model.Feed, int64, error) {
	var total int64
	if err := r.db.Model(&model.Feed{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.Feed
	if err := r.db.Order("created_at desc, id desc").
		Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// GetByCategory 按分类过滤，排序同 GetAll
func (r *feedRepository) GetByCategory(category enums.Category) ([]model.Feed, error) {
	var entries []model.Feed
	if err := r.db.Where("category = ?", category).
		Order("created_at desc, id desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
