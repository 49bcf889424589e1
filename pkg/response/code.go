package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserExists   = 10001
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// 帖子模块错误 200xx
	ErrPostNotFound    = 20001
	ErrInvalidCategory = 20002

	// 投票模块错误 300xx
	ErrVoteTargetNotFound = 30001
	ErrVoteConflict       = 30002

	// 评论模块错误 400xx
	ErrCommentNotFound    = 40001
	ErrCommentLinkMissing = 40002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
