package model

// Professor 教师表 — 对应 professores
type Professor struct {
	ID            int64   `gorm:"column:id_professor;primaryKey;autoIncrement"  json:"id_professor,string"`
	Name          string  `gorm:"column:nome;type:varchar(200);not null"         json:"nome"`
	Email         string  `gorm:"column:email;type:varchar(254);not null;uniqueIndex" json:"email"`
	LinkCitations *string `gorm:"column:link_citations;type:varchar(500)"        json:"link_citations,omitempty"`
	DepartmentID  *int64  `gorm:"column:id_departamento;index"                   json:"id_departamento,string,omitempty"`
	UserID        *int64  `gorm:"column:id_usuario;uniqueIndex"                  json:"id_usuario,string,omitempty"`

	// 关联
	Department *Department      `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"departamento,omitempty"`
	Lattes     *ProfessorLattes `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE" json:"lattes,omitempty"`
}

// TableName 指定表名
func (Professor) TableName() string { return "professores" }

// ProfessorLattes 教师 Lattes 学术档案 — 对应 professores_lattes（与教师一对一）
type ProfessorLattes struct {
	ProfessorID int64   `gorm:"column:id_professor;primaryKey;autoIncrement:false"  json:"professor,string"`
	Code        string  `gorm:"column:cod_lattes;type:varchar(50);not null;uniqueIndex" json:"cod_lattes"`
	Subarea     *string `gorm:"column:subarea;type:varchar(150)"                    json:"subarea,omitempty"`
	Link        string  `gorm:"column:link;type:varchar(500);not null"              json:"link"`
	Keywords    string  `gorm:"column:palavras_chave;type:text;not null;default:''" json:"palavras_chave"` // 逗号分隔

	Professor *Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (ProfessorLattes) TableName() string { return "professores_lattes" }
