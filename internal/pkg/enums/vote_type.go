package enums

import "fmt"

// VoteType 投票方向
type VoteType string

const (
	VoteTypeUp   VoteType = "UPVOTE"
	VoteTypeDown VoteType = "DOWNVOTE"
)

// VoteTypeOf 由 isUpvote 布尔参数得到投票方向
func VoteTypeOf(isUpvote bool) VoteType {
	if isUpvote {
		return VoteTypeUp
	}
	return VoteTypeDown
}

// PostType 帖子类型，同时用作投票目标类型和 Feed 条目类型
type PostType string

const (
	PostTypeAsk PostType = "ASK"
	PostTypeRec PostType = "REC"
)

// ParsePostType 解析帖子类型，未知值返回错误
func ParsePostType(value string) (PostType, error) {
	switch PostType(value) {
	case PostTypeAsk:
		return PostTypeAsk, nil
	case PostTypeRec:
		return PostTypeRec, nil
	}
	return "", fmt.Errorf("invalid post type: %s", value)
}
