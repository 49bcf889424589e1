package handler

import (
	"net/http"
	"strconv"

	"rexsphere/internal/domain/ask/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// AskHandler 提问处理器
type AskHandler struct {
	service service.AskService
}

// NewAskHandler 创建处理器
func NewAskHandler(service service.AskService) *AskHandler {
	return &AskHandler{service: service}
}

// CreateAskInput 创建提问输入
type CreateAskInput struct {
	Question string `json:"question" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Create 创建提问
// @Summary 创建提问
// @Tags Ask
// @Accept json
// @Produce json
// @Param input body CreateAskInput true "Ask"
// @Success 201 {object} response.Response
// @Router /ask [post]
func (h *AskHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input CreateAskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	ask, err := h.service.Create(userID, input.Question, input.Category)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, ask)
}

// GetAll 获取全部提问
// @Summary 获取全部提问
// @Tags Ask
// @Produce json
// @Success 200 {object} response.Response
// @Router /ask/all [get]
func (h *AskHandler) GetAll(c *gin.Context) {
	asks, err := h.service.GetAll()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, asks)
}

// GetByID 获取单个提问
// @Summary 获取单个提问
// @Tags Ask
// @Produce json
// @Param id path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /ask/id/{id} [get]
func (h *AskHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	ask, err := h.service.GetByID(uint(id))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, ask)
}

// GetByCategory 按分类获取提问
// @Summary 按分类获取提问
// @Tags Ask
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} response.Response
// @Router /ask/category/{category} [get]
func (h *AskHandler) GetByCategory(c *gin.Context) {
	asks, err := h.service.GetByCategory(c.Param("category"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, asks)
}

// Delete 删除提问
// @Summary 删除提问（连带投票和关联推荐）
// @Tags Ask
// @Produce json
// @Param id path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /ask/id/{id} [delete]
func (h *AskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "Ask deleted successfully")
}
