package dto

// ── 项目模块请求 ──

// NewAdvisorRequest 创建项目时内联新建导师
type NewAdvisorRequest struct {
	Name         string `json:"nome"         validate:"required,max=200"`
	Email        string `json:"email"        validate:"required,email,max=254"`
	DepartmentID *ID    `json:"departamento,omitempty"`
}

// CreateProjectRequest 创建项目请求
// id_professor / orientador_novo / id_aluno 不是项目字段，用于同时建立参与者关联
type CreateProjectRequest struct {
	Theme          string             `json:"tema"          binding:"required,max=255"`
	Type           int                `json:"tipo"          binding:"required,min=1,max=5"`
	Summary        string             `json:"resumo"        binding:"required"`
	DurationMonths int                `json:"duracao"       binding:"required,min=1"`
	Keyword        *string            `json:"palavra_chave" binding:"omitempty,max=255"`
	Funding        *string            `json:"bolsa"         binding:"omitempty,oneof=FEI CNPQ FAPESP"`
	ProfessorID    *ID                `json:"id_professor,omitempty"`
	NewAdvisor     *NewAdvisorRequest `json:"orientador_novo,omitempty"`
	StudentID      *ID                `json:"id_aluno,omitempty"`
}

// UpdateProjectRequest 更新项目请求，仅修改传入的字段
type UpdateProjectRequest struct {
	Theme          *string `json:"tema"          binding:"omitempty,max=255"`
	Type           *int    `json:"tipo"          binding:"omitempty,min=1,max=5"`
	Summary        *string `json:"resumo"`
	Keyword        *string `json:"palavra_chave" binding:"omitempty,max=255"`
	DurationMonths *int    `json:"duracao"       binding:"omitempty,min=1"`
	Funding        *string `json:"bolsa"         binding:"omitempty,oneof=FEI CNPQ FAPESP"`
	Status         *int    `json:"pendencia"     binding:"omitempty,min=1,max=11"`
}

// ProjectListRequest 项目列表查询参数
type ProjectListRequest struct {
	Type    *int    `form:"tipo"      binding:"omitempty,min=1,max=5"`
	Status  *int    `form:"pendencia" binding:"omitempty,min=1,max=11"`
	Funding *string `form:"bolsa"     binding:"omitempty,oneof=FEI CNPQ FAPESP"`
	Search  string  `form:"search"`
}

// AssociateStudentRequest 关联学生请求
type AssociateStudentRequest struct {
	StudentID ID `json:"id_aluno" binding:"required"`
}

// AssociateProfessorRequest 关联导师 / 评审人请求
type AssociateProfessorRequest struct {
	ProfessorID ID `json:"id_professor" binding:"required"`
}

// LinkMongoRequest 绑定外部文档 ID 请求
type LinkMongoRequest struct {
	MongoID string `json:"mongo_id"`
}

// SaveReviewerTextRequest 保存评审反馈文本请求
// 指针区分"未传"（nil，拒绝）与"空字符串"（接受）
type SaveReviewerTextRequest struct {
	Text *string `json:"texto_corretor"`
}

// DeactivateParticipantRequest 停用参与者请求
type DeactivateParticipantRequest struct {
	Role string `json:"role"`
}

// UpdateProjectStatusRequest 更新项目状态请求
type UpdateProjectStatusRequest struct {
	Status int `json:"pendencia" binding:"required,min=1,max=11"`
}

// ── 项目模块响应 ──

// ParticipantStatusResponse 参与者状态
type ParticipantStatusResponse struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Active bool   `json:"ativo"`
	Since  string `json:"datainicio"`
}

// ProjectResponse 项目详情响应
type ProjectResponse struct {
	ID              string                      `json:"id_proj"`
	Theme           string                      `json:"tema"`
	Type            int                         `json:"tipo"`
	TypeDisplay     string                      `json:"tipo_display"`
	Summary         string                      `json:"resumo"`
	Keyword         *string                     `json:"palavra_chave"`
	DurationMonths  int                         `json:"duracao"`
	Funding         *string                     `json:"bolsa"`
	Status          int                         `json:"pendencia"`
	StatusDisplay   string                      `json:"pendencia_display"`
	MongoID         *string                     `json:"mongo_id"`
	ReviewerText    *string                     `json:"melhor_corretor"`
	StudentsStatus  []ParticipantStatusResponse `json:"alunos_status"`
	AdvisorsStatus  []ParticipantStatusResponse `json:"orientadores_status"`
	AssessorsStatus []ParticipantStatusResponse `json:"assessores_status"`
}

// StatusMessageResponse 操作结果消息
type StatusMessageResponse struct {
	Status string `json:"status"`
}

// AdvisorDepartmentResponse 首位导师所属院系
type AdvisorDepartmentResponse struct {
	DepartmentID string `json:"id_departamento_orientador"`
}
