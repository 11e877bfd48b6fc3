package dto

// ── 学生模块 ──

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	StudentID *ID    `json:"id_aluno,omitempty"`
	Name      string `json:"nome"     binding:"required,max=200"`
	Email     string `json:"email"    binding:"required,email,max=254"`
	Phone     string `json:"telefone" binding:"required,max=20"`
	CourseID  ID     `json:"curso_id" binding:"required"`
}

// UpdateStudentRequest 更新学生请求，仅修改传入的字段
type UpdateStudentRequest struct {
	Name     *string `json:"nome"     binding:"omitempty,max=200"`
	Email    *string `json:"email"    binding:"omitempty,email,max=254"`
	Phone    *string `json:"telefone" binding:"omitempty,max=20"`
	CourseID *ID     `json:"curso_id,omitempty"`
}

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	Search string `form:"search"`
}

// StudentResponse 学生响应
type StudentResponse struct {
	ID     string `json:"id_aluno"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Course string `json:"curso"`
	Phone  string `json:"telefone"`
}

// StudentHistoryResponse 学生课程记录
type StudentHistoryResponse struct {
	CourseCode string `json:"cod_disciplina"`
	Approved   bool   `json:"aprovado"`
}

// ── 院系模块 ──

// DepartmentResponse 院系响应
type DepartmentResponse struct {
	ID   string `json:"id_departamento"`
	Name string `json:"nome_departamento"`
}
