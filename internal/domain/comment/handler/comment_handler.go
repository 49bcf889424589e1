package handler

import (
	"net/http"
	"strconv"

	"rexsphere/internal/domain/comment/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler 创建处理器
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddCommentInput 创建评论输入，askId/recId 至少填一个
type AddCommentInput struct {
	Content string `json:"content" binding:"required"`
	AskID   *uint  `json:"askId"`
	RecID   *uint  `json:"recId"`
}

// UpdateCommentInput 更新评论输入
type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// Add 创建评论
// @Summary 创建评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param input body AddCommentInput true "Comment"
// @Success 201 {object} response.Response
// @Router /comment [post]
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.Add(userID, input.Content, input.AskID, input.RecID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, comment)
}

// GetAll 获取全部评论
// @Summary 获取全部评论
// @Tags Comment
// @Produce json
// @Success 200 {object} response.Response
// @Router /comment/all [get]
func (h *CommentHandler) GetAll(c *gin.Context) {
	comments, err := h.service.GetAll()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// GetForAsk 某提问下的评论
// @Summary 某提问下的评论
// @Tags Comment
// @Produce json
// @Param askId path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /comment/ask/{askId} [get]
func (h *CommentHandler) GetForAsk(c *gin.Context) {
	askID, err := strconv.ParseUint(c.Param("askId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
		return
	}

	comments, err := h.service.GetForAsk(uint(askID))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// GetForRec 某推荐下的评论
// @Summary 某推荐下的评论
// @Tags Comment
// @Produce json
// @Param recId path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /comment/rec/{recId} [get]
func (h *CommentHandler) GetForRec(c *gin.Context) {
	recID, err := strconv.ParseUint(c.Param("recId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid recId")
		return
	}

	comments, err := h.service.GetForRec(uint(recID))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// Update 更新评论内容
// @Summary 更新评论内容
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param input body UpdateCommentInput true "Comment"
// @Success 200 {object} response.Response
// @Router /comment/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	var input UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.Update(uint(id), input.Content)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comment)
}

// Delete 删除评论
// @Summary 删除评论
// @Tags Comment
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} response.Response
// @Router /comment/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "Comment deleted successfully")
}

// CountForAsk 某提问下的评论数
// @Summary 某提问下的评论数
// @Tags Comment
// @Produce json
// @Param askId path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /comment/ask/{askId}/count [get]
func (h *CommentHandler) CountForAsk(c *gin.Context) {
	askID, err := strconv.ParseUint(c.Param("askId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
		return
	}

	count, err := h.service.CountForAsk(uint(askID))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, count)
}

// CountForRec 某推荐下的评论数
// @Summary 某推荐下的评论数
// @Tags Comment
// @Produce json
// @Param recId path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /comment/rec/{recId}/count [get]
func (h *CommentHandler) CountForRec(c *gin.Context) {
	recID, err := strconv.ParseUint(c.Param("recId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid recId")
		return
	}

	count, err := h.service.CountForRec(uint(recID))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, count)
}
