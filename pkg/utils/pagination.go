package utils

// 动态流分页的默认页大小与硬上限
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination 分页请求参数，page 从 1 开始计
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// PageResult 分页响应结果
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// GetPageOffset 归一化非法入参后返回偏移量和每页条数
func (p *Pagination) GetPageOffset() (int, int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return (p.Page - 1) * p.Limit, p.Limit
}
