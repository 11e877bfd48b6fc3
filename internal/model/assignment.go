package model

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "pesquisa-fei/backend/pkg/errors"
)

// Assignment 三类分配记录的统一访问接口
type Assignment interface {
	TableName() string
	Role() ParticipantRole
	Base() *AssignmentBase
	ParticipantID() int64
}

// StudentAssignment 学生-项目分配 — 对应 aluno_proj
type StudentAssignment struct {
	AssignmentBase
	StudentID int64 `gorm:"column:id_aluno;not null;uniqueIndex:uq_aluno_proj,priority:1" json:"id_aluno,string"`
	ProjectID int64 `gorm:"column:id_proj;not null;uniqueIndex:uq_aluno_proj,priority:2"  json:"id_proj,string"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"aluno,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (StudentAssignment) TableName() string { return "aluno_proj" }

func (StudentAssignment) Role() ParticipantRole    { return RoleStudent }
func (a *StudentAssignment) Base() *AssignmentBase { return &a.AssignmentBase }
func (a *StudentAssignment) ParticipantID() int64  { return a.StudentID }

// BeforeSave 初期科研项目同一时间只允许一名激活学生
func (a *StudentAssignment) BeforeSave(tx *gorm.DB) error {
	return ensureSingleActive(tx, a.TableName(), a.ProjectID, a.ID, a.Active,
		apperrors.RuleSingleActiveStudent,
		"Projetos de Iniciação Científica só podem ter um aluno ativo por vez.")
}

// AdvisorAssignment 导师-项目分配 — 对应 orientador
type AdvisorAssignment struct {
	AssignmentBase
	ProfessorID int64 `gorm:"column:id_prof;not null;uniqueIndex:uq_orientador_proj,priority:1" json:"id_professor,string"`
	ProjectID   int64 `gorm:"column:id_proj;not null;uniqueIndex:uq_orientador_proj,priority:2" json:"id_proj,string"`

	Professor *Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE" json:"professor,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"     json:"-"`
}

// TableName 指定表名
func (AdvisorAssignment) TableName() string { return "orientador" }

func (AdvisorAssignment) Role() ParticipantRole    { return RoleAdvisor }
func (a *AdvisorAssignment) Base() *AssignmentBase { return &a.AssignmentBase }
func (a *AdvisorAssignment) ParticipantID() int64  { return a.ProfessorID }

// BeforeSave 初期科研项目同一时间只允许一名激活导师
func (a *AdvisorAssignment) BeforeSave(tx *gorm.DB) error {
	return ensureSingleActive(tx, a.TableName(), a.ProjectID, a.ID, a.Active,
		apperrors.RuleSingleActiveAdvisor,
		"Projetos de Iniciação Científica só podem ter um orientador ativo por vez.")
}

// AssessorAssignment 评审人-项目分配 — 对应 assessores
type AssessorAssignment struct {
	AssignmentBase
	ProfessorID int64 `gorm:"column:id_prof;not null;uniqueIndex:uq_assessor_proj,priority:1" json:"id_professor,string"`
	ProjectID   int64 `gorm:"column:id_proj;not null;uniqueIndex:uq_assessor_proj,priority:2" json:"id_proj,string"`

	Professor *Professor `gorm:"foreignKey:ProfessorID;constraint:OnDelete:CASCADE" json:"professor,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"     json:"-"`
}

// TableName 指定表名
func (AssessorAssignment) TableName() string { return "assessores" }

func (AssessorAssignment) Role() ParticipantRole    { return RoleAssessor }
func (a *AssessorAssignment) Base() *AssignmentBase { return &a.AssignmentBase }
func (a *AssessorAssignment) ParticipantID() int64  { return a.ProfessorID }

// BeforeSave 初期科研项目同一时间只允许一名激活评审人
func (a *AssessorAssignment) BeforeSave(tx *gorm.DB) error {
	return ensureSingleActive(tx, a.TableName(), a.ProjectID, a.ID, a.Active,
		apperrors.RuleSingleActiveAssessor,
		"Projetos de Iniciação Científica só podem ter um assessor ativo por vez.")
}

// ensureSingleActive 写入前校验"每角色至多一名激活参与者"
//
// 先对项目行加 FOR UPDATE 锁，再统计同表其他激活记录，
// 并发写入同一项目的同一角色时会在锁上串行化（SQLite 忽略行锁，由库级写锁保证）。
func ensureSingleActive(tx *gorm.DB, table string, projectID, selfID int64, active bool, rule apperrors.Rule, msg string) error {
	if !active || projectID == 0 {
		return nil
	}

	var project Project
	err := tx.Session(&gorm.Session{NewDB: true}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id_proj", "tipo").
		Where("id_proj = ?", projectID).
		Take(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 项目不存在时交给外键约束报错
		return nil
	}
	if err != nil {
		return err
	}
	if project.Type != ProjectTypeScientificInitiation {
		return nil
	}

	var count int64
	q := tx.Session(&gorm.Session{NewDB: true}).
		Table(table).
		Where("id_proj = ? AND ativo = ?", projectID, true)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Violation(rule, msg)
	}
	return nil
}
