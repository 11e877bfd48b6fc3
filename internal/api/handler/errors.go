package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pesquisa-fei/backend/pkg/errors"
	"pesquisa-fei/backend/pkg/response"
)

// handleServiceError 服务层错误映射为 HTTP 响应
//
//	NotFound        → 404 / 20401
//	InvalidInput    → 400 / 20001
//	RuleViolation   → 400 / 20002
//	Integrity       → 400 / 20003
//	其他            → 500 / 50000
func handleServiceError(c *gin.Context, err error) {
	var (
		notFound  *apperrors.NotFoundError
		invalid   *apperrors.InvalidInputError
		violation *apperrors.RuleViolationError
		integrity *apperrors.IntegrityError
	)

	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, 20401, notFound.Error())
	case errors.As(err, &invalid):
		response.BadRequest(c, 20001, invalid.Error())
	case errors.As(err, &violation):
		response.BadRequest(c, 20002, violation.Error())
	case errors.As(err, &integrity):
		response.BadRequest(c, 20003, "Violação de integridade dos dados.")
	default:
		// 交由日志中间件记录原始错误
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// parseIDParam 解析路径中的数字 ID，失败时直接写入 400
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, 10002, "ID inválido.")
		return 0, false
	}
	return id, true
}

// bindFailed 请求体或查询参数校验失败；请求体超限时返回 413
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Corpo da requisição muito grande.")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "Parâmetros inválidos.", err.Error())
}
