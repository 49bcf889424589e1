package service

import (
	"errors"
	"fmt"

	"rexsphere/internal/domain/comment/model"
	"rexsphere/internal/domain/comment/repository"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// CommentService 评论服务接口
type CommentService interface {
	Add(userID uint, content string, askID, recID *uint) (*model.Comment, error)
	GetAll() ([]model.Comment, error)
	GetForAsk(askID uint) ([]model.Comment, error)
	GetForRec(recID uint) ([]model.Comment, error)
	Update(id uint, content string) (*model.Comment, error)
	Delete(id uint) error
	CountForAsk(askID uint) (int64, error)
	CountForRec(recID uint) (int64, error)
}

// commentService 实现
type commentService struct {
	repo     repository.CommentRepository
	userRepo userrepo.UserRepository
}

// NewCommentService 创建评论服务
func NewCommentService(repo repository.CommentRepository, userRepo userrepo.UserRepository) CommentService {
	return &commentService{repo: repo, userRepo: userRepo}
}

// Add 创建评论，askID/recID 至少要有一个
func (s *commentService) Add(userID uint, content string, askID, recID *uint) (*model.Comment, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrUnauthorized, userID)
		}
		return nil, err
	}

	if askID == nil && recID == nil {
		return nil, fmt.Errorf("%w: either askId or recId must be provided", apperrors.ErrValidation)
	}

	comment := &model.Comment{
		UserID:  userID,
		Content: content,
		AskID:   askID,
		RecID:   recID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetAll 获取全部评论
func (s *commentService) GetAll() ([]model.Comment, error) {
	return s.repo.GetAll()
}

// GetForAsk 某提问下的评论
func (s *commentService) GetForAsk(askID uint) ([]model.Comment, error) {
	return s.repo.GetByAskID(askID)
}

// GetForRec 某推荐下的评论，按 rec_id 过滤
func (s *commentService) GetForRec(recID uint) ([]model.Comment, error) {
	return s.repo.GetByRecID(recID)
}

// Update 更新评论内容。目标不存在时返回明确的 NotFound，不做静默空操作。
func (s *commentService) Update(id uint, content string) (*model.Comment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}

	if content != "" {
		comment.Content = content
	}
	if err := s.repo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论
func (s *commentService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment %d", apperrors.ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(id)
}

// CountForAsk 某提问下的评论数
func (s *commentService) CountForAsk(askID uint) (int64, error) {
	return s.repo.CountByAskID(askID)
}

// CountForRec 某推荐下的评论数
func (s *commentService) CountForRec(recID uint) (int64, error) {
	return s.repo.CountByRecID(recID)
}
