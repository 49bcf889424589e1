package service

import (
	"errors"
	"fmt"

	askrepo "rexsphere/internal/domain/ask/repository"
	recrepo "rexsphere/internal/domain/rec/repository"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/domain/vote/model"
	"rexsphere/internal/domain/vote/repository"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// VoteService 投票服务接口。
// Cast 的语义：无票新增(CREATED)，同向撤回(REMOVED)，反向翻转(CHANGED)；
// 任意调用序列之后每个 (用户, 目标) 至多存活一行。
type VoteService interface {
	CastForAsk(userID, askID uint, isUpvote bool) (model.Outcome, error)
	CastForRec(userID, recID uint, isUpvote bool) (model.Outcome, error)
	CountForAsk(askID uint, voteType enums.VoteType) (int64, error)
	CountForRec(recID uint, voteType enums.VoteType) (int64, error)
}

// voteService 实现
type voteService struct {
	repo     repository.VoteRepository
	userRepo userrepo.UserRepository
	askRepo  askrepo.AskRepository
	recRepo  recrepo.RecRepository
}

// NewVoteService 创建投票服务
func NewVoteService(repo repository.VoteRepository, userRepo userrepo.UserRepository,
	askRepo askrepo.AskRepository, recRepo recrepo.RecRepository) VoteService {
	return &voteService{repo: repo, userRepo: userRepo, askRepo: askRepo, recRepo: recRepo}
}

// CastForAsk 对提问投票
func (s *voteService) CastForAsk(userID, askID uint, isUpvote bool) (model.Outcome, error) {
	if err := s.checkActor(userID); err != nil {
		return "", err
	}
	if _, err := s.askRepo.GetByID(askID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: ask %d", apperrors.ErrNotFound, askID)
		}
		return "", err
	}
	return s.toggle(userID, &askID, nil, enums.VoteTypeOf(isUpvote))
}

// CastForRec 对推荐投票
func (s *voteService) CastForRec(userID, recID uint, isUpvote bool) (model.Outcome, error) {
	if err := s.checkActor(userID); err != nil {
		return "", err
	}
	if _, err := s.recRepo.GetByID(recID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: rec %d", apperrors.ErrNotFound, recID)
		}
		return "", err
	}
	return s.toggle(userID, nil, &recID, enums.VoteTypeOf(isUpvote))
}

// toggle 委托仓库执行状态机；同一用户并发投同一目标时，输掉竞争的一方
// 会撞上唯一索引，重试一次让它看到赢家已提交的行再做切换决策
func (s *voteService) toggle(userID uint, askID, recID *uint, voteType enums.VoteType) (model.Outcome, error) {
	outcome, err := s.repo.Toggle(userID, askID, recID, voteType)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		outcome, err = s.repo.Toggle(userID, askID, recID, voteType)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", fmt.Errorf("%w: concurrent vote", apperrors.ErrConflict)
	}
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// checkActor 投票人必须是已存在的用户
func (s *voteService) checkActor(userID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrUnauthorized, userID)
		}
		return err
	}
	return nil
}

// CountForAsk 某提问的票数，无票返回 0
func (s *voteService) CountForAsk(askID uint, voteType enums.VoteType) (int64, error) {
	return s.repo.CountByAsk(askID, voteType)
}

// CountForRec 某推荐的票数，无票返回 0
func (s *voteService) CountForRec(recID uint, voteType enums.VoteType) (int64, error) {
	return s.repo.CountByRec(recID, voteType)
}
