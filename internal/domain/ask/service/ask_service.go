package service

import (
	"errors"
	"fmt"

	"rexsphere/internal/domain/ask/model"
	"rexsphere/internal/domain/ask/repository"
	feedmodel "rexsphere/internal/domain/feed/model"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// AskService 提问服务接口
type AskService interface {
	Create(userID uint, question, category string) (*model.Ask, error)
	GetAll() ([]model.Ask, error)
	GetByID(id uint) (*model.Ask, error)
	GetByCategory(category string) ([]model.Ask, error)
	Delete(id uint) error
}

// askService 实现
type askService struct {
	repo     repository.AskRepository
	userRepo userrepo.UserRepository
}

// NewAskService 创建提问服务
func NewAskService(repo repository.AskRepository, userRepo userrepo.UserRepository) AskService {
	return &askService{repo: repo, userRepo: userRepo}
}

// Create 创建提问。作者取自认证身份，分类按封闭枚举校验，
// 帖子与 Feed 快照由仓库在同一事务内落库。
func (s *askService) Create(userID uint, question, category string) (*model.Ask, error) {
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

	ask := &model.Ask{
		UserID:   userID,
		Category: cat,
		Question: question,
	}
	entry := &feedmodel.Feed{
		Content:  question,
		Category: cat,
		Type:     enums.PostTypeAsk,
		UserID:   userID,
	}

	if err := s.repo.Create(ask, entry); err != nil {
		return nil, err
	}
	return ask, nil
}

// GetAll 获取全部提问
func (s *askService) GetAll() ([]model.Ask, error) {
	return s.repo.GetAll()
}

// GetByID 获取单个提问
func (s *askService) GetByID(id uint) (*model.Ask, error) {
	ask, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ask %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return ask, nil
}

// GetByCategory 按分类获取提问
func (s *askService) GetByCategory(category string) ([]model.Ask, error) {
	cat, err := enums.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.GetByCategory(cat)
}

// Delete 删除提问，连带它的投票和挂在它下面的推荐；Feed 快照保留
func (s *askService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ask %d", apperrors.ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(id)
}
