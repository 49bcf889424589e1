package repository

import (
	"rexsphere/internal/domain/comment/model"

	"gorm.io/gorm"
)

// CommentRepository 接口定义
type CommentRepository interface {
	Create(comment *model.Comment) error
	GetByID(id uint) (*model.Comment, error)
	GetAll() ([]model.Comment, error)
	GetByAskID(askID uint) ([]model.Comment, error)
	GetByRecID(recID uint) ([]model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id uint) error
	CountByAskID(askID uint) (int64, error)
	CountByRecID(recID uint) (int64, error)
}

// commentRepository 实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建新的仓库实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据ID获取评论
func (r *commentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetAll 获取全部评论
func (r *commentRepository) GetAll() ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByAskID 获取某个提问下的评论
func (r *commentRepository) GetByAskID(askID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("ask_id = ?", askID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByRecID 获取某个推荐下的评论（按 rec_id 过滤）
func (r *commentRepository) GetByRecID(recID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("rec_id = ?", recID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update 更新评论
func (r *commentRepository) Update(comment *model.Comment) error {
	return r.db.Save(comment).Error
}

// Delete 删除评论
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// CountByAskID 某个提问下的评论数
func (r *commentRepository) CountByAskID(askID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("ask_id = ?", askID).Count(&count).Error
	return count, err
}

// CountByRecID 某个推荐下的评论数
func (r *commentRepository) CountByRecID(recID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("rec_id = ?", recID).Count(&count).Error
	return count, err
}
