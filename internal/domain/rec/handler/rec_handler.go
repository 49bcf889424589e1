package handler

import (
	"net/http"
	"strconv"

	"rexsphere/internal/domain/rec/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecHandler 推荐处理器
type RecHandler struct {
	service service.RecService
}

// NewRecHandler 创建处理器
func NewRecHandler(service service.RecService) *RecHandler {
	return &RecHandler{service: service}
}

// CreateRecInput 创建推荐输入
type CreateRecInput struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Create 创建推荐，可通过 ?askId= 关联提问
// @Summary 创建推荐
// @Tags Rec
// @Accept json
// @Produce json
// @Param input body CreateRecInput true "Rec"
// @Param askId query int false "关联的提问ID"
// @Success 201 {object} response.Response
// @Router /rec [post]
func (h *RecHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input CreateRecInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	var askID *uint
	if raw := c.Query("askId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
			return
		}
		id := uint(parsed)
		askID = &id
	}

	rec, err := h.service.Create(userID, input.Content, input.Category, askID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, rec)
}

// GetAll 获取全部推荐
// @Summary 获取全部推荐
// @Tags Rec
// @Produce json
// @Success 200 {object} response.Response
// @Router /rec/all [get]
func (h *RecHandler) GetAll(c *gin.Context) {
	recs, err := h.service.GetAll()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, recs)
}

// GetByID 获取单个推荐
// @Summary 获取单个推荐
// @Tags Rec
// @Produce json
// @Param id path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /rec/id/{id} [get]
func (h *RecHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	rec, err := h.service.GetByID(uint(id))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, rec)
}

// GetByAskID 获取回答某提问的推荐
// @Summary 获取回答某提问的推荐
// @Tags Rec
// @Produce json
// @Param askId path int true "Ask ID"
// @Success 200 {object} response.Response
// @Router /rec/askid/{askId} [get]
func (h *RecHandler) GetByAskID(c *gin.Context) {
	askID, err := strconv.ParseUint(c.Param("askId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid askId")
		return
	}

	recs, err := h.service.GetByAskID(uint(askID))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, recs)
}

// GetStandalone 获取独立推荐
// @Summary 获取未关联提问的独立推荐
// @Tags Rec
// @Produce json
// @Success 200 {object} response.Response
// @Router /rec [get]
func (h *RecHandler) GetStandalone(c *gin.Context) {
	recs, err := h.service.GetStandalone()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, recs)
}

// GetByCategory 按分类获取推荐
// @Summary 按分类获取推荐
// @Tags Rec
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} response.Response
// @Router /rec/category/{category} [get]
func (h *RecHandler) GetByCategory(c *gin.Context) {
	recs, err := h.service.GetByCategory(c.Param("category"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, recs)
}

// Delete 删除推荐
// @Summary 删除推荐（连带投票）
// @Tags Rec
// @Produce json
// @Param id path int true "Rec ID"
// @Success 200 {object} response.Response
// @Router /rec/id/{id} [delete]
func (h *RecHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "Rec deleted successfully")
}
