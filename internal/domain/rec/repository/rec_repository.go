package repository

import (
	feedmodel "rexsphere/internal/domain/feed/model"
	"rexsphere/internal/domain/rec/model"
	votemodel "rexsphere/internal/domain/vote/model"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// RecRepository 接口定义
type RecRepository interface {
	// Create 在同一事务内写入推荐和对应的 Feed 快照
	Create(rec *model.Rec, entry *feedmodel.Feed) error
	GetByID(id uint) (*model.Rec, error)
	GetAll() ([]model.Rec, error)
	GetByAskID(askID uint) ([]model.Rec, error)
	GetStandalone() ([]model.Rec, error)
	GetByCategory(category enums.Category) ([]model.Rec, error)
	// Delete 删除推荐并级联删除它的投票，Feed 快照不回收
	Delete(id uint) error
}

// recRepository 实现
type recRepository struct {
	db *gorm.DB
}

// NewRecRepository 创建新的仓库实例
func NewRecRepository(db *gorm.DB) RecRepository {
	return &recRepository{db: db}
}

// Create 创建推荐并落 Feed 快照
func (r *recRepository) Create(rec *model.Rec, entry *feedmodel.Feed) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		entry.PostID = rec.ID
		return tx.Create(entry).Error
	})
}

// GetByID 根据ID获取推荐
func (r *recRepository) GetByID(id uint) (*model.Rec, error) {
	var rec model.Rec
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetAll 获取全部推荐
func (r *recRepository) GetAll() ([]model.Rec, error) {
	var recs []model.Rec
	if err := r.db.Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetByAskID 获取回答某个提问的推荐
func (r *recRepository) GetByAskID(askID uint) ([]model.Rec, error) {
	var recs []model.Rec
	if err := r.db.Where("ask_id = ?", askID).
		Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetStandalone 获取独立存在（未挂任何提问）的推荐
func (r *recRepository) GetStandalone() ([]model.Rec, error) {
	var recs []model.Rec
	if err := r.db.Where("ask_id IS NULL").
		Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetByCategory 按分类获取推荐
func (r *recRepository) GetByCategory(category enums.Category) ([]model.Rec, error) {
	var recs []model.Rec
	if err := r.db.Where("category = ?", category).
		Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete 删除推荐并级联删票
func (r *recRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rec_id = ?", id).Delete(&votemodel.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Rec{}, id).Error
	})
}
