package handler

import (
	"net/http"
	"strconv"
	"time"

	"rexsphere/internal/domain/user/model"
	"rexsphere/internal/domain/user/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/uploader"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput 注册输入
type RegisterInput struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Username            string `json:"username" binding:"required,min=3,max=32"`
	Password            string `json:"password" binding:"required,min=6"`
	MobileNumber        string `json:"mobileNumber" binding:"required"`
	DateOfBirth         string `json:"dateOfBirth"`
	Address             string `json:"address"`
	PreferredCategories string `json:"preferredCategories"`
}

// LoginInput 登录输入
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInput 更新资料输入，全部可选
type UpdateUserInput struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Username            string `json:"username"`
	MobileNumber        string `json:"mobileNumber"`
	DateOfBirth         string `json:"dateOfBirth"`
	Address             string `json:"address"`
	PreferredCategories string `json:"preferredCategories"`
}

// UpdatePasswordInput 修改密码输入
type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// Register 注册用户
// @Summary 注册用户
// @Tags User
// @Accept json
// @Produce json
// @Param input body RegisterInput true "User"
// @Success 201 {object} response.Response
// @Router /public/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	dob, err := parseDate(input.DateOfBirth)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid dateOfBirth, expect YYYY-MM-DD")
		return
	}

	user := &model.User{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Username:            input.Username,
		Password:            input.Password,
		MobileNumber:        input.MobileNumber,
		DateOfBirth:         dob,
		Address:             input.Address,
		PreferredCategories: input.PreferredCategories,
	}
	created, err := h.service.Register(user)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, created)
}

// Login 登录签发 Token
// @Summary 登录签发 Token
// @Tags User
// @Accept json
// @Produce json
// @Param input body LoginInput true "Credentials"
// @Success 200 {object} response.Response
// @Router /public/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	token, err := h.service.Login(input.Username, input.Password)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Me 当前登录用户资料
// @Summary 当前登录用户资料
// @Tags User
// @Produce json
// @Success 200 {object} response.Response
// @Router /user [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// GetByID 按 ID 获取用户
// @Summary 按 ID 获取用户
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Router /user/id/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	user, err := h.service.GetByID(uint(id))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// GetByUsername 按用户名获取用户
// @Summary 按用户名获取用户
// @Tags User
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Response
// @Router /user/username/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.service.GetByUsername(c.Param("username"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// GetAll 获取全部用户
// @Summary 获取全部用户
// @Tags User
// @Produce json
// @Success 200 {object} response.Response
// @Router /user/all [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}

// Update 更新当前用户资料
// @Summary 更新当前用户资料
// @Tags User
// @Accept json
// @Produce json
// @Param input body UpdateUserInput true "User"
// @Success 200 {object} response.Response
// @Router /user [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	dob, err := parseDate(input.DateOfBirth)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid dateOfBirth, expect YYYY-MM-DD")
		return
	}

	updated := &model.User{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Username:            input.Username,
		MobileNumber:        input.MobileNumber,
		DateOfBirth:         dob,
		Address:             input.Address,
		PreferredCategories: input.PreferredCategories,
	}
	user, err := h.service.Update(userID, updated)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdatePassword 修改当前用户密码
// @Summary 修改当前用户密码
// @Tags User
// @Accept json
// @Produce json
// @Param input body UpdatePasswordInput true "Password"
// @Success 200 {object} response.Response
// @Router /user/update-password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.UpdatePassword(userID, input.CurrentPassword, input.NewPassword); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "Password updated successfully")
}

// Delete 删除用户
// @Summary 删除用户
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Router /user/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "User deleted successfully")
}

// GetPreferredCategories 当前用户偏好分类
// @Summary 当前用户偏好分类
// @Tags User
// @Produce json
// @Success 200 {object} response.Response
// @Router /user/preferences [get]
func (h *UserHandler) GetPreferredCategories(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	categories, err := h.service.GetPreferredCategories(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, categories)
}

// UploadProfilePicture 上传头像到 OSS 并更新用户资料
// @Summary 上传头像
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "头像文件"
// @Success 200 {object} response.Response
// @Router /user/upload-profile-picture [post]
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Unauthorized")
		return
	}

	if uploader.GlobalUploader == nil {
		response.Error(c, http.StatusServiceUnavailable, response.ErrServerInternal, "Object storage not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Missing file")
		return
	}

	url, err := uploader.GlobalUploader.UploadFile(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Upload failed")
		return
	}

	if err := h.service.UpdateProfilePictureURL(userID, url); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}

// parseDate 解析 YYYY-MM-DD，空串返回 nil
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
