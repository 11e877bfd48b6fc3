package handler

import (
	"github.com/gin-gonic/gin"

	"pesquisa-fei/backend/internal/service"
	"pesquisa-fei/backend/pkg/response"
)

// DepartmentHandler 院系模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments 院系列表
// GET /api/v1/departamentos
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// GetDepartment 院系详情
// GET /api/v1/departamentos/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, dept)
}

// GetProfessorKeywords 院系内教师的 Lattes 关键词
// GET /api/v1/departamentos/:id/professores-keywords
func (h *DepartmentHandler) GetProfessorKeywords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	keywords, err := h.deptSvc.GetProfessorKeywords(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": keywords})
}
