package handler

import (
	"net/http"

	"rexsphere/internal/domain/feed/model"
	"rexsphere/internal/domain/feed/service"
	"rexsphere/internal/pkg/enums"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/pkg/response"
	"rexsphere/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler 动态流处理器
type FeedHandler struct {
	service service.FeedService
}

// NewFeedHandler 创建处理器
func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// AppendFeedInput 手动追加动态输入
type AppendFeedInput struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Type     string `json:"type" binding:"required"`
	PostID   uint   `json:"postId" binding:"required"`
}

// Append 手动追加一条动态快照
// @Summary 追加动态
// @Tags Feed
// @Accept json
// @Produce json
// @Param input body AppendFeedInput true "Feed"
// @Success 201 {object} response.Response
// @Router /feed [post]
func (h *FeedHandler) Append(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input AppendFeedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	entry := &model.Feed{
		Content:  input.Content,
		Category: enums.Category(input.Category),
		Type:     enums.PostType(input.Type),
		UserID:   userID,
		PostID:   input.PostID,
	}
	created, err := h.service.Append(entry)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, created)
}

// GetAll 获取完整动态流
// @Summary 获取完整动态流，时间倒序
// @Tags Feed
// @Produce json
// @Success 200 {object} response.Response
// @Router /feed [get]
func (h *FeedHandler) GetAll(c *gin.Context) {
	entries, err := h.service.GetAll()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, entries)
}

// GetPage 分页获取动态流
// @Summary 分页获取动态流
// @Tags Feed
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页条数"
// @Success 200 {object} response.Response
// @Router /feed/page [get]
func (h *FeedHandler) GetPage(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	result, err := h.service.GetPage(&p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

// GetByCategory 按分类获取动态流
// @Summary 按分类获取动态流
// @Tags Feed
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} response.Response
// @Router /feed/category/{category} [get]
func (h *FeedHandler) GetByCategory(c *gin.Context) {
	entries, err := h.service.GetByCategory(c.Param("category"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, entries)
}
