package service

import (
	"fmt"

	"rexsphere/internal/domain/feed/model"
	"rexsphere/internal/domain/feed/repository"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"
	"rexsphere/pkg/utils"
)

// FeedService 动态流服务接口
type FeedService interface {
	Append(entry *model.Feed) (*model.Feed, error)
	GetAll() ([]model.Feed, error)
	GetPage(p *utils.Pagination) (*utils.PageResult, error)
	GetByCategory(category string) ([]model.Feed, error)
}

// feedService 实现
type feedService struct {
	repo repository.FeedRepository
}

// NewFeedService 创建动态流服务
func NewFeedService(repo repository.FeedRepository) FeedService {
	return &feedService{repo: repo}
}

// Append 追加一条快照（纯插入，无去重无更新）。
// 解析结果要写回条目：入参大小写不限，落库必须是规范值，
// 否则 GetByCategory 的精确匹配查不到这条快照。
func (s *feedService) Append(entry *model.Feed) (*model.Feed, error) {
	cat, err := enums.ParseCategory(string(entry.Category))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	postType, err := enums.ParsePostType(string(entry.Type))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	entry.Category = cat
	entry.Type = postType
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetAll 时间倒序的完整动态流
func (s *feedService) GetAll() ([]model.Feed, error) {
	return s.repo.GetAll()
}

// GetPage 分页读取动态流
func (s *feedService) GetPage(p *utils.Pagination) (*utils.PageResult, error) {
	offset, limit := p.GetPageOffset()
	entries, total, err := s.repo.GetPage(offset, limit)
	if err != nil {
		return nil, err
	}
	return &utils.PageResult{
		List:  entries,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetByCategory 按分类过滤。非法分类必须报错，不能装作空结果。
func (s *feedService) GetByCategory(category string) ([]model.Feed, error) {
	cat, err := enums.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.GetByCategory(cat)
}
