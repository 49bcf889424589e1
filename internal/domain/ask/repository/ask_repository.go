package repository

import (
	"rexsphere/internal/domain/ask/model"
	feedmodel "rexsphere/internal/domain/feed/model"
	recmodel "rexsphere/internal/domain/rec/model"
	votemodel "rexsphere/internal/domain/vote/model"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// AskRepository 接口定义
type AskRepository interface {
	// Create 在同一事务内写入提问和对应的 Feed 快照：
	// 帖子存在而 Feed 缺失是不允许出现的中间状态
	Create(ask *model.Ask, entry *feedmodel.Feed) error
	GetByID(id uint) (*model.Ask, error)
	GetAll() ([]model.Ask, error)
	GetByCategory(category enums.Category) ([]model.Ask, error)
	// Delete 级联删除提问本身、它的投票、挂在它下面的 Rec 及其投票。
	// Feed 快照不回收。
	Delete(id uint) error
}

// askRepository 实现
type askRepository struct {
	db *gorm.DB
}

// NewAskRepository 创建新的仓库实例
func NewAskRepository(db *gorm.DB) AskRepository {
	return &askRepository{db: db}
}

// Create 创建提问并落 Feed 快照
func (r *askRepository) Create(ask *model.Ask, entry *feedmodel.Feed) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ask).Error; err != nil {
			return err
		}
		entry.PostID = ask.ID
		return tx.Create(entry).Error
	})
}

// GetByID 根据ID获取提问
func (r *askRepository) GetByID(id uint) (*model.Ask, error) {
	var ask model.Ask
	if err := r.db.Where("id = ?", id).First(&ask).Error; err != nil {
		return nil, err
	}
	return &ask, nil
}

// GetAll 获取全部提问
func (r *askRepository) GetAll() ([]model.Ask, error) {
	var asks []model.Ask
	if err := r.db.Order("created_at desc, id desc").Find(&asks).Error; err != nil {
		return nil, err
	}
	return asks, nil
}

// GetByCategory 按分类获取提问
func (r *askRepository) GetByCategory(category enums.Category) ([]model.Ask, error) {
	var asks []model.Ask
	if err := r.db.Where("category = ?", category).
		Order("created_at desc, id desc").Find(&asks).Error; err != nil {
		return nil, err
	}
	return asks, nil
}

// Delete 级联删除
func (r *askRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 提问自身的投票
		if err := tx.Where("ask_id = ?", id).Delete(&votemodel.Vote{}).Error; err != nil {
			return err
		}

		// 挂在提问下的 Rec 及其投票（演进后的 schema：删 Ask 连带删 Rec）
		var recIDs []uint
		if err := tx.Model(&recmodel.Rec{}).Where("ask_id = ?", id).
			Pluck("id", &recIDs).Error; err != nil {
			return err
		}
		if len(recIDs) > 0 {
			if err := tx.Where("rec_id IN ?", recIDs).Delete(&votemodel.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recIDs).Delete(&recmodel.Rec{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Ask{}, id).Error
	})
}
