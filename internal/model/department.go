package model

// Department 院系表 — 对应 departamentos
type Department struct {
	ID   int64  `gorm:"column:id_departamento;primaryKey;autoIncrement"              json:"id_departamento,string"`
	Name string `gorm:"column:nome_departamento;type:varchar(150);not null;uniqueIndex" json:"nome_departamento"`
}

// TableName 指定表名
func (Department) TableName() string { return "departamentos" }

// Course 课程（专业）表 — 对应 cursos
type Course struct {
	ID           int64  `gorm:"column:id_curso;primaryKey;autoIncrement" json:"id_curso,string"`
	Name         string `gorm:"column:nome;type:varchar(150);not null"   json:"nome"`
	DepartmentID int64  `gorm:"column:id_departamento;not null;index"    json:"id_departamento,string"`

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"departamento,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "cursos" }
