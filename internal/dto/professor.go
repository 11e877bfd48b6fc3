package dto

// ── 教师模块 ──

// CreateProfessorRequest 创建教师请求
type CreateProfessorRequest struct {
	ProfessorID   *ID     `json:"id_professor,omitempty"`
	Name          string  `json:"nome"           binding:"required,max=200"`
	Email         string  `json:"email"          binding:"required,email,max=254"`
	LinkCitations *string `json:"link_citations" binding:"omitempty,max=500"`
	DepartmentID  *ID     `json:"id_departamento,omitempty"`
}

// UpdateProfessorRequest 更新教师请求，仅修改传入的字段
type UpdateProfessorRequest struct {
	Name          *string `json:"nome"           binding:"omitempty,max=200"`
	Email         *string `json:"email"          binding:"omitempty,email,max=254"`
	LinkCitations *string `json:"link_citations" binding:"omitempty,max=500"`
	DepartmentID  *ID     `json:"id_departamento,omitempty"`
}

// ProfessorListRequest 教师列表查询参数
type ProfessorListRequest struct {
	Search string `form:"search"`
}

// ProfessorResponse 教师响应
type ProfessorResponse struct {
	ID            string  `json:"id_professor"`
	Name          string  `json:"nome"`
	Department    *string `json:"departamento"`
	Email         string  `json:"email"`
	LinkCitations *string `json:"link_citations"`
	LattesLink    *string `json:"lattes_link"`
}

// ProfessorProjectCountsResponse 教师激活项目统计
type ProfessorProjectCountsResponse struct {
	ProfessorID     string `json:"id_professor"`
	ProfessorName   string `json:"nome_professor"`
	ActiveAdvising  int64  `json:"orientacoes_ativas"`
	ActiveAssessing int64  `json:"assessorias_ativas"`
}

// ── Lattes 档案 ──

// LattesRequest 创建/更新 Lattes 档案请求
type LattesRequest struct {
	ProfessorID ID      `json:"professor"        binding:"required"`
	Code        string  `json:"cod_lattes"       binding:"required,max=50"`
	Subarea     *string `json:"subarea"          binding:"omitempty,max=150"`
	Link        string  `json:"link"             binding:"required,url,max=500"`
	Keywords    string  `json:"palavras_chave"`
}

// LattesResponse Lattes 档案响应
type LattesResponse struct {
	ProfessorID string  `json:"professor"`
	Code        string  `json:"cod_lattes"`
	Subarea     *string `json:"subarea"`
	Link        string  `json:"link"`
	Keywords    string  `json:"palavras_chave"`
}

// LattesKeywordsResponse 教师研究关键词
type LattesKeywordsResponse struct {
	ProfessorID string `json:"id_professor"`
	Keywords    string `json:"palavras_chave"`
}
