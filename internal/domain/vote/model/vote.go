package model

import (
	"time"

	"rexsphere/internal/pkg/enums"
)

// Vote 投票台账：一行代表一个用户对单个目标（Ask 或 Rec，二选一）的表态。
// 唯一性约束在存储层强制：PG 将 NULL 视为互不相等，所以 (user_id, ask_id)
// 与 (user_id, rec_id) 两个复合唯一索引恰好各自只约束对应目标类型的行。
// CHECK 约束保证 ask_id 与 rec_id 恰好一个非空，类型错挂直接违反完整性。
type Vote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index;uniqueIndex:uk_vote_user_ask;uniqueIndex:uk_vote_user_rec" json:"userId"`
	AskID     *uint          `gorm:"uniqueIndex:uk_vote_user_ask" json:"askId"`
	RecID     *uint          `gorm:"uniqueIndex:uk_vote_user_rec" json:"recId"`
	VoteType  enums.VoteType `gorm:"type:varchar(16);not null;check:chk_vote_target,(ask_id IS NULL) <> (rec_id IS NULL)" json:"voteType"`
	CreatedAt time.Time      `gorm:"<-:create" json:"createdAt"`
}

// Outcome 一次投票调用的结果
type Outcome string

const (
	OutcomeCreated Outcome = "CREATED" // 新增一票
	OutcomeChanged Outcome = "CHANGED" // 反向点击，翻转方向
	OutcomeRemoved Outcome = "REMOVED" // 同向点击，撤回
)
