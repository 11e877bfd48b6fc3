package model

// ── 项目类型 ──

// ProjectType 研究项目类型 — 对应 projetos.tipo
type ProjectType int

const (
	ProjectTypeScientificInitiation ProjectType = 1 // Iniciação Científica
	ProjectTypeThesis               ProjectType = 2 // TCC
	ProjectTypeMasters              ProjectType = 3
	ProjectTypeDoctorate            ProjectType = 4
	ProjectTypeExtension            ProjectType = 5
)

var projectTypeLabels = map[ProjectType]string{
	ProjectTypeScientificInitiation: "Iniciação Científica",
	ProjectTypeThesis:               "Trabalho de Conclusão de Curso",
	ProjectTypeMasters:              "Mestrado",
	ProjectTypeDoctorate:            "Doutorado",
	ProjectTypeExtension:            "Extensão",
}

// Valid 是否为合法类型
func (t ProjectType) Valid() bool {
	_, ok := projectTypeLabels[t]
	return ok
}

// Label 展示名称
func (t ProjectType) Label() string { return projectTypeLabels[t] }

// ── 项目状态 ──

// ProjectStatus 项目审批流程状态 — 对应 projetos.pendencia
type ProjectStatus int

const (
	StatusAwaitingCoordination  ProjectStatus = 1
	StatusAwaitingAssessor      ProjectStatus = 2
	StatusAwaitingHR            ProjectStatus = 3
	StatusApproved              ProjectStatus = 4
	StatusCancelled             ProjectStatus = 5
	StatusFinished              ProjectStatus = 6
	StatusAwaitingPartialReport ProjectStatus = 7
	StatusAwaitingPartialAnswer ProjectStatus = 8
	StatusAwaitingFinalReport   ProjectStatus = 9
	StatusAwaitingFinalAnswer   ProjectStatus = 10
	StatusAwaitingSignatures    ProjectStatus = 11
)

var projectStatusLabels = map[ProjectStatus]string{
	StatusAwaitingCoordination:  "Esperando aprovação da Coordenação",
	StatusAwaitingAssessor:      "Esperando aprovação do assessor",
	StatusAwaitingHR:            "Esperando aprovação do RH",
	StatusApproved:              "Aprovado",
	StatusCancelled:             "Cancelado",
	StatusFinished:              "Finalizado",
	StatusAwaitingPartialReport: "Esperando relatório parcial",
	StatusAwaitingPartialAnswer: "Esperando resposta do assessor ao relatório parcial",
	StatusAwaitingFinalReport:   "Esperando relatório final",
	StatusAwaitingFinalAnswer:   "Esperando resposta do assessor ao relatório final",
	StatusAwaitingSignatures:    "Esperando assinaturas",
}

// Valid 是否为合法状态
func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

// Label 展示名称（pendencia_display）
func (s ProjectStatus) Label() string { return projectStatusLabels[s] }

// ── 资助来源 ──

// Funding 奖学金来源 — 对应 projetos.bolsa
type Funding string

const (
	FundingFEI    Funding = "FEI"
	FundingCNPQ   Funding = "CNPQ"
	FundingFAPESP Funding = "FAPESP"
)

// Valid 是否为合法资助来源
func (f Funding) Valid() bool {
	switch f {
	case FundingFEI, FundingCNPQ, FundingFAPESP:
		return true
	}
	return false
}

// MongoIDLength 外部文档 ID（Mongo ObjectId）固定长度
const MongoIDLength = 24

// Project 研究项目表 — 对应 projetos
type Project struct {
	ID             int64         `gorm:"column:id_proj;primaryKey;autoIncrement"   json:"id_proj,string"`
	Theme          string        `gorm:"column:tema;type:varchar(255);not null"     json:"tema"`
	Type           ProjectType   `gorm:"column:tipo;not null"                       json:"tipo"`
	Summary        string        `gorm:"column:resumo;type:text;not null"           json:"resumo"`
	Keyword        *string       `gorm:"column:palavra_chave;type:varchar(255)"     json:"palavra_chave,omitempty"`
	DurationMonths int           `gorm:"column:duracao;not null"                    json:"duracao"`
	Funding        *Funding      `gorm:"column:bolsa;type:varchar(10)"              json:"bolsa,omitempty"`
	Status         ProjectStatus `gorm:"column:pendencia;not null;default:1"        json:"pendencia"`
	MongoID        *string       `gorm:"column:_id;type:varchar(24);uniqueIndex"    json:"mongo_id,omitempty"`
	ReviewerText   *string       `gorm:"column:melhor_corretor;type:text"           json:"melhor_corretor,omitempty"`

	// 关联（通过三张分配表实现多对多）
	StudentAssignments  []StudentAssignment  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"alunos_status,omitempty"`
	AdvisorAssignments  []AdvisorAssignment  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"orientadores_status,omitempty"`
	AssessorAssignments []AssessorAssignment `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"assessores_status,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string { return "projetos" }
