package common

import (
	"mime/multipart"
	"net/http"
	"sync"

	"rexsphere/internal/pkg/uploader"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// UploadFiles 批量上传文件到 OSS
// @Summary 批量上传文件到 OSS
// @Tags Common
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files"
// @Success 200 {object} response.Response{data=[]string} "URLs"
// @Router /upload [post]
func UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid form data")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "No files uploaded")
		return
	}

	if uploader.GlobalUploader == nil {
		response.Error(c, http.StatusServiceUnavailable, response.ErrServerInternal, "Object storage not configured")
		return
	}

	// 并发上传，按索引写结果保持顺序
	urls := make([]string, len(files))
	errs := make([]error, len(files))
	var wg sync.WaitGroup

	// 并发上限 5，避免打爆 OSS 连接
	sem := make(chan struct{}, 5)

	for i, file := range files {
		wg.Add(1)
		go func(index int, f *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			urls[index], errs[index] = uploader.GlobalUploader.UploadFile(f)
		}(i, file)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Upload failed: "+err.Error())
			return
		}
	}

	response.Success(c, urls)
}
