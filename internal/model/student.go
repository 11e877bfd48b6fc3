package model

// Student 学生表 — 对应 alunos
type Student struct {
	ID       int64  `gorm:"column:id_aluno;primaryKey;autoIncrement"     json:"id_aluno,string"`
	Name     string `gorm:"column:nome;type:varchar(200);not null"        json:"nome"`
	Email    string `gorm:"column:email;type:varchar(254);not null;uniqueIndex" json:"email"`
	Phone    string `gorm:"column:telefone;type:varchar(20);not null"     json:"telefone"`
	CourseID int64  `gorm:"column:id_curso;not null;index"                json:"id_curso,string"`

	// 关联：课程下仍有学生时禁止删除课程
	Course *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT" json:"curso,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "alunos" }

// StudentHistory 学生课程成绩记录 — 对应 hist_alunos
type StudentHistory struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"           json:"id,string"`
	StudentID    int64  `gorm:"column:id_aluno;not null;index"               json:"id_aluno,string"`
	DepartmentID int64  `gorm:"column:id_departamento;not null"              json:"id_departamento,string"`
	CourseCode   string `gorm:"column:cod_disciplina;type:varchar(20);not null" json:"cod_disciplina"`
	Approved     bool   `gorm:"column:aprovado;not null"                     json:"aprovado"`

	Student    *Student    `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"          json:"-"`
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (StudentHistory) TableName() string { return "hist_alunos" }
