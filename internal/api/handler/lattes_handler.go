package handler

import (
	"github.com/gin-gonic/gin"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/service"
	"pesquisa-fei/backend/pkg/response"
)

// LattesHandler Lattes 模块 HTTP 处理器
type LattesHandler struct {
	lattesSvc service.LattesService
}

// NewLattesHandler 创建 LattesHandler
func NewLattesHandler(lattesSvc service.LattesService) *LattesHandler {
	return &LattesHandler{lattesSvc: lattesSvc}
}

// ListLattes Lattes 记录列表
// GET /api/v1/lattes
func (h *LattesHandler) ListLattes(c *gin.Context) {
	list, err := h.lattesSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateLattes 创建 Lattes 记录
// POST /api/v1/lattes
func (h *LattesHandler) CreateLattes(c *gin.Context) {
	var req dto.LattesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	lattes, err := h.lattesSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, lattes)
}

// GetLattes 按教师查询 Lattes 记录
// GET /api/v1/lattes/:professor
func (h *LattesHandler) GetLattes(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor")
	if !ok {
		return
	}

	lattes, err := h.lattesSvc.GetByProfessor(c.Request.Context(), professorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, lattes)
}

// UpdateLattes 更新 Lattes 记录
// PUT /api/v1/lattes/:professor
func (h *LattesHandler) UpdateLattes(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor")
	if !ok {
		return
	}

	var req dto.LattesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	lattes, err := h.lattesSvc.Update(c.Request.Context(), professorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, lattes)
}

// DeleteLattes 删除 Lattes 记录
// DELETE /api/v1/lattes/:professor
func (h *LattesHandler) DeleteLattes(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor")
	if !ok {
		return
	}

	if err := h.lattesSvc.Delete(c.Request.Context(), professorID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListKeywords 全部教师的 Lattes 关键词
// GET /api/v1/lattes-keywords
func (h *LattesHandler) ListKeywords(c *gin.Context) {
	list, err := h.lattesSvc.ListAllKeywords(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}
