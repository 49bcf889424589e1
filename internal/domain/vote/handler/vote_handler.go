package handler

import (
	"net/http"
	"strconv"

	"rexsphere/internal/domain/vote/service"
	"rexsphere/internal/pkg/enums"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// VoteHandler 投票处理器
type VoteHandler struct {
	service service.VoteService
}

// NewVoteHandler 创建处理器
func NewVoteHandler(service service.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// CastForAsk 对提问投票
// @Summary 对提问投票，重复同向撤回，反向翻转
// @Tags Vote
// @Produce json
// @Param askId path int true "Ask ID"
// @Param isUpvote query bool true "true 赞成 false 反对"
// @Success 200 {object} response.Response
// @Router /votes/ask/{askId} [post]
func (h *VoteHandler) CastForAsk(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	askID, err := strconv.ParseUint(c.Param("askId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
		return
	}

	isUpvote, err := strconv.ParseBool(c.Query("isUpvote"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid isUpvote")
		return
	}

	outcome, err := h.service.CastForAsk(userID, uint(askID), isUpvote)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"outcome": outcome})
}

// CastForRec 对推荐投票
// @Summary 对推荐投票，重复同向撤回，反向翻转
// @Tags Vote
// @Produce json
// @Param recId path int true "Rec ID"
// @Param isUpvote query bool true "true 赞成 false 反对"
// @Success 200 {object} response.Response
// @Router /votes/rec/{recId} [post]
func (h *VoteHandler) CastForRec(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	recID, err := strconv.ParseUint(c.Param("recId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid recId")
		return
	}

	isUpvote, err := strconv.ParseBool(c.Query("isUpvote"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid isUpvote")
		return
	}

	outcome, err := h.service.CastForRec(userID, uint(recID), isUpvote)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"outcome": outcome})
}

// CountAskUpvotes 提问赞成票数
// @Summary 提问赞成票数
// @Tags Vote
// @Produce json
// @Param askId path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /votes/ask/{askId}/upvotes [get]
func (h *VoteHandler) CountAskUpvotes(c *gin.Context) {
	h.countForAsk(c, enums.VoteTypeUp)
}

// CountAskDownvotes 提问反对票数
// @Summary 提问反对票数
// @Tags Vote
// @Produce json
// @Param askId path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /votes/ask/{askId}/downvotes [get]
func (h *VoteHandler) CountAskDownvotes(c *gin.Context) {
	h.countForAsk(c, enums.VoteTypeDown)
}

// CountRecUpvotes 推荐赞成票数
// @Summary 推荐赞成票数
// @Tags Vote
// @Produce json
// @Param recId path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /votes/rec/{recId}/upvotes [get]
func (h *VoteHandler) CountRecUpvotes(c *gin.Context) {
	h.countForRec(c, enums.VoteTypeUp)
}

// CountRecDownvotes 推荐反对票数
// @Summary 推荐反对票数
// @Tags Vote
// @Produce json
// @Param recId path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /votes/rec/{recId}/downvotes [get]
func (h *VoteHandler) CountRecDownvotes(c *gin.Context) {
	h.countForRec(c, enums.VoteTypeDown)
}

// countForAsk 票数查询公共逻辑
func (h *VoteHandler) countForAsk(c *gin.Context, voteType enums.VoteType) {
	askID, err := strconv.ParseUint(c.Param("askId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
		return
	}

	count, err := h.service.CountForAsk(uint(askID), voteType)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, count)
}

// countForRec 票数查询公共逻辑
func (h *VoteHandler) countForRec(c *gin.Context, voteType enums.VoteType) {
	recID, err := strconv.ParseUint(c.Param("recId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid recId")
		return
	}

	count, err := h.service.CountForRec(uint(recID), voteType)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, count)
}
