package response

import (
	"errors"
	"net/http"

	"rexsphere/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// HandleError 将服务层错误翻译为客户端响应。
// 预期内的错误（校验、未找到、未认证、冲突）带原始信息返回 4xx，
// 其余一律 500 且不泄露内部细节。
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, ErrPostNotFound, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, ErrAuthFailed, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		Error(c, http.StatusConflict, ErrVoteConflict, err.Error())
	default:
		Error(c, http.StatusInternalServerError, ErrServerInternal, "internal server error")
	}
}
