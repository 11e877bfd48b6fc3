package handler

import (
	"github.com/gin-gonic/gin"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/service"
	"pesquisa-fei/backend/pkg/response"
)

// ProjectHandler 项目模块 HTTP 处理器
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler 创建 ProjectHandler
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ListProjects 项目列表
// GET /api/v1/projetos?tipo=&pendencia=&bolsa=&search=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var req dto.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	list, total, err := h.projectSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OKList(c, list, total)
}

// CreateProject 创建项目，可同时关联导师与学生
// POST /api/v1/projetos
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, project)
}

// GetProject 项目详情
// GET /api/v1/projetos/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, project)
}

// UpdateProject 更新项目（仅修改传入字段）
// PUT /api/v1/projetos/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, project)
}

// DeleteProject 删除项目
// DELETE /api/v1/projetos/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateStatus 更新项目状态
// PUT /api/v1/projetos/:id/status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, project)
}

// ── 参与者关联 ──

// AssociateStudent 关联学生
// POST /api/v1/projetos/:id/associar-aluno
func (h *ProjectHandler) AssociateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssociateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.projectSvc.AssociateStudent(c.Request.Context(), id, req.StudentID.Int64()); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, dto.StatusMessageResponse{Status: "Aluno associado."})
}

// AssociateAdvisor 关联导师
// POST /api/v1/projetos/:id/associar-orientador
func (h *ProjectHandler) AssociateAdvisor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssociateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.projectSvc.AssociateAdvisor(c.Request.Context(), id, req.ProfessorID.Int64()); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, dto.StatusMessageResponse{Status: "Orientador associado."})
}

// AssociateAssessor 关联评审人
// POST /api/v1/projetos/:id/associar-assessor
func (h *ProjectHandler) AssociateAssessor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssociateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.projectSvc.AssociateAssessor(c.Request.Context(), id, req.ProfessorID.Int64()); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, dto.StatusMessageResponse{Status: "Assessor associado."})
}

// DeactivateParticipant 停用指定角色的唯一活跃参与者
// POST /api/v1/projetos/:id/desativar-participante
func (h *ProjectHandler) DeactivateParticipant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DeactivateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	msg, err := h.projectSvc.DeactivateParticipant(c.Request.Context(), id, req.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, dto.StatusMessageResponse{Status: msg})
}

// ── 外部文档与评审 ──

// LinkMongo 绑定外部文档 ID
// POST /api/v1/projetos/:id/link-mongo
func (h *ProjectHandler) LinkMongo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.LinkMongoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.LinkMongo(c.Request.Context(), id, req.MongoID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, project)
}

// SaveReviewerText 保存评审反馈文本
// POST /api/v1/projetos/:id/salvar-corretor
func (h *ProjectHandler) SaveReviewerText(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SaveReviewerTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	project, err := h.projectSvc.SaveReviewerText(c.Request.Context(), id, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, project)
}

// GetAdvisorDepartment 首位导师所属院系
// GET /api/v1/projetos/:id/orientador-departamento
func (h *ProjectHandler) GetAdvisorDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.projectSvc.GetAdvisorDepartment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, resp)
}
