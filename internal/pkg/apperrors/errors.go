package apperrors

import "errors"

// 服务层统一错误哨兵。handler 通过 errors.Is 翻译为 HTTP 状态码，
// 具体上下文由各服务用 fmt.Errorf("%w: ...") 包装。
var (
	// ErrNotFound 实体不存在（用户、帖子、投票目标、评论）
	ErrNotFound = errors.New("resource not found")

	// ErrValidation 入参校验失败（非法分类、缺失评论关联等）
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized 凭证缺失或无法解析出有效用户
	ErrUnauthorized = errors.New("authentication failed")

	// ErrConflict 唯一约束冲突且重试后仍未解决
	ErrConflict = errors.New("conflict")
)
