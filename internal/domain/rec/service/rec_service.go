package service

import (
	"errors"
	"fmt"

	askrepo "rexsphere/internal/domain/ask/repository"
	feedmodel "rexsphere/internal/domain/feed/model"
	"rexsphere/internal/domain/rec/model"
	"rexsphere/internal/domain/rec/repository"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// RecService 推荐服务接口
type RecService interface {
	Create(userID uint, content, category string, askID *uint) (*model.Rec, error)
	GetAll() ([]model.Rec, error)
	GetByID(id uint) (*model.Rec, error)
	GetByAskID(askID uint) ([]model.Rec, error)
	GetStandalone() ([]model.Rec, error)
	GetByCategory(category string) ([]model.Rec, error)
	Delete(id uint) error
}

// recService 实现
type recService struct {
	repo     repository.RecRepository
	userRepo userrepo.UserRepository
	askRepo  askrepo.AskRepository
}

// NewRecService 创建推荐服务
func NewRecService(repo repository.RecRepository, userRepo userrepo.UserRepository,
	askRepo askrepo.AskRepository) RecService {
	return &recService{repo: repo, userRepo: userRepo, askRepo: askRepo}
}

// Create 创建推荐。askID 可选：给了就必须指向存在的提问，关联创建后不可改。
// 帖子与 Feed 快照同事务落库。
func (s *recService) Create(userID uint, content, category string, askID *uint) (*model.Rec, error) {
	cat, err := enums.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrUnauthorized, userID)
		}
		return nil, err
	}

	if askID != nil {
		if _, err := s.askRepo.GetByID(*askID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: ask %d", apperrors.ErrNotFound, *askID)
			}
			return nil, err
		}
	}

	rec := &model.Rec{
		UserID:   userID,
		Category: cat,
		Content:  content,
		AskID:    askID,
	}
	entry := &feedmodel.Feed{
		Content:  content,
		Category: cat,
		Type:     enums.PostTypeRec,
		UserID:   userID,
	}

	if err := s.repo.Create(rec, entry); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetAll 获取全部推荐
func (s *recService) GetAll() ([]model.Rec, error) {
	return s.repo.GetAll()
}

// GetByID 获取单个推荐
func (s *recService) GetByID(id uint) (*model.Rec, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rec %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return rec, nil
}

// GetByAskID 获取回答某个提问的推荐
func (s *recService) GetByAskID(askID uint) ([]model.Rec, error) {
	return s.repo.GetByAskID(askID)
}

// GetStandalone 获取独立推荐
func (s *recService) GetStandalone() ([]model.Rec, error) {
	return s.repo.GetStandalone()
}

// GetByCategory 按分类获取推荐
func (s *recService) GetByCategory(category string) ([]model.Rec, error) {
	cat, err := enums.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.GetByCategory(cat)
}

// Delete 删除推荐及其投票；Feed 快照保留
func (s *recService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: rec %d", apperrors.ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(id)
}
