package repository

import (
	"errors"

	"rexsphere/internal/domain/vote/model"
	"rexsphere/internal/pkg/enums"

	"gorm.io/gorm"
)

// VoteRepository 接口定义
type VoteRepository interface {
	// Toggle 在单个事务内执行查票→建/翻/撤的状态机。
	// askID/recID 恰好一个非 nil。并发丢失竞争时报 gorm.ErrDuplicatedKey，
	// 由服务层决定重试：建票撞唯一索引，或删/改时发现行已被撤走。
	Toggle(userID uint, askID, recID *uint, voteType enums.VoteType) (model.Outcome, error)

	CountByAsk(askID uint, voteType enums.VoteType) (int64, error)
	CountByRec(recID uint, voteType enums.VoteType) (int64, error)
}

// voteRepository 实现
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository 创建新的仓库实例
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Toggle 投票状态机：无票则建，同向则删，反向则改
func (r *voteRepository) Toggle(userID uint, askID, recID *uint, voteType enums.VoteType) (model.Outcome, error) {
	var outcome model.Outcome

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ?", userID)
		if askID != nil {
			query = query.Where("ask_id = ?", *askID)
		} else {
			query = query.Where("rec_id = ?", *recID)
		}

		var existing model.Vote
		if err := query.First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			vote := model.Vote{
				UserID:   userID,
				AskID:    askID,
				RecID:    recID,
				VoteType: voteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			outcome = model.OutcomeCreated
			return nil
		}

		if existing.VoteType == voteType {
			// 重复点击同一个按钮即撤票
			res := tx.Delete(&model.Vote{}, existing.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// 读到的行在写之前被并发事务撤掉了，上抛让服务层重跑状态机
				return gorm.ErrDuplicatedKey
			}
			outcome = model.OutcomeRemoved
			return nil
		}

		res := tx.Model(&model.Vote{}).Where("id = ?", existing.ID).
			Update("vote_type", voteType)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrDuplicatedKey
		}
		outcome = model.OutcomeChanged
		return nil
	})

	return outcome, err
}

// CountByAsk 统计某个 Ask 上指定方向的票数（实时数台账行，不走缓存计数列）
func (r *voteRepository) CountByAsk(askID uint, voteType enums.VoteType) (int64, error) {
	var count int64
	err := r.db.Model(&model.Vote{}).
		Where("ask_id = ? AND vote_type = ?", askID, voteType).
		Count(&count).Error
	return count, err
}

// CountByRec 统计某个 Rec 上指定方向的票数
func (r *voteRepository) CountByRec(recID uint, voteType enums.VoteType) (int64, error) {
	var count int64
	err := r.db.Model(&model.Vote{}).
		Where("rec_id = ? AND vote_type = ?", recID, voteType).
		Count(&count).Error
	return count, err
}
