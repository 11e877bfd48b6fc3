package handler

import (
	"github.com/gin-gonic/gin"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/service"
	"pesquisa-fei/backend/pkg/response"
)

// ProfessorHandler 教师模块 HTTP 处理器
type ProfessorHandler struct {
	professorSvc service.ProfessorService
}

// NewProfessorHandler 创建 ProfessorHandler
func NewProfessorHandler(professorSvc service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorSvc: professorSvc}
}

// ListProfessors 教师列表
// GET /api/v1/professores?search=
func (h *ProfessorHandler) ListProfessors(c *gin.Context) {
	var req dto.ProfessorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	list, err := h.professorSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateProfessor 创建教师
// POST /api/v1/professores
func (h *ProfessorHandler) CreateProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	professor, err := h.professorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, professor)
}

// GetProfessor 教师详情
// GET /api/v1/professores/:id
func (h *ProfessorHandler) GetProfessor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	professor, err := h.professorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, professor)
}

// UpdateProfessor 更新教师（仅修改传入字段）
// PUT /api/v1/professores/:id
func (h *ProfessorHandler) UpdateProfessor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	professor, err := h.professorSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, professor)
}

// DeleteProfessor 删除教师
// DELETE /api/v1/professores/:id
func (h *ProfessorHandler) DeleteProfessor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.professorSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetLattes 教师的 Lattes 信息
// GET /api/v1/professores/:id/lattes
func (h *ProfessorHandler) GetLattes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lattes, err := h.professorSvc.GetLattes(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, lattes)
}

// GetProjectCounts 教师活跃指导与评审数量
// GET /api/v1/professores/:id/contagem-projetos
func (h *ProfessorHandler) GetProjectCounts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	counts, err := h.professorSvc.GetProjectCounts(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, counts)
}
