package model

import (
	"time"

	"gorm.io/datatypes"
)

// ── 参与角色 ──

// ParticipantRole 项目参与者角色
type ParticipantRole string

const (
	RoleStudent  ParticipantRole = "aluno"
	RoleAdvisor  ParticipantRole = "orientador"
	RoleAssessor ParticipantRole = "assessor"
)

// roleAliases 接受的输入写法（含英文别名）
var roleAliases = map[string]ParticipantRole{
	"aluno":      RoleStudent,
	"student":    RoleStudent,
	"orientador": RoleAdvisor,
	"advisor":    RoleAdvisor,
	"assessor":   RoleAssessor,
}

// ParseParticipantRole 解析角色字符串
func ParseParticipantRole(s string) (ParticipantRole, bool) {
	r, ok := roleAliases[s]
	return r, ok
}

// Table 角色对应的分配表名
func (r ParticipantRole) Table() string {
	switch r {
	case RoleStudent:
		return StudentAssignment{}.TableName()
	case RoleAdvisor:
		return AdvisorAssignment{}.TableName()
	case RoleAssessor:
		return AssessorAssignment{}.TableName()
	}
	return ""
}

// AssignmentBase 三类分配表的公共字段
// 分配只做软停用（ativo=false），不物理删除
type AssignmentBase struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id,string"`
	Active    bool           `gorm:"column:ativo;not null"              json:"ativo"`
	StartDate datatypes.Date `gorm:"column:datainicio;not null"         json:"datainicio"`
}

// NewAssignmentBase 新建处于激活状态、开始日期为今天的分配
func NewAssignmentBase() AssignmentBase {
	return AssignmentBase{Active: true, StartDate: datatypes.Date(time.Now())}
}
