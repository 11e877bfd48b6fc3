package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesquisa-fei/backend/internal/model"
)

// AssignmentRepository 项目参与者分配数据访问接口
//
// 三张分配表结构一致，按角色分派；"初期科研项目每角色至多一名激活参与者"
// 由模型 BeforeSave 钩子在写入时校验。
type AssignmentRepository interface {
	CreateStudent(ctx context.Context, a *model.StudentAssignment) error
	CreateAdvisor(ctx context.Context, a *model.AdvisorAssignment) error
	CreateAssessor(ctx context.Context, a *model.AssessorAssignment) error
	// IsActiveAdvisor 教师当前是否为该项目的激活导师
	IsActiveAdvisor(ctx context.Context, projectID, professorID int64) (bool, error)
	ListActive(ctx context.Context, projectID int64, role model.ParticipantRole) ([]model.Assignment, error)
	CountActive(ctx context.Context, projectID int64, role model.ParticipantRole) (int64, error)
	Save(ctx context.Context, a model.Assignment) error
	// FirstAdvisor 项目的首位导师（激活优先，其次按创建顺序），预加载教师及其院系
	FirstAdvisor(ctx context.Context, projectID int64) (*model.AdvisorAssignment, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) CreateStudent(ctx context.Context, a *model.StudentAssignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *assignmentRepo) CreateAdvisor(ctx context.Context, a *model.AdvisorAssignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *assignmentRepo) CreateAssessor(ctx context.Context, a *model.AssessorAssignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *assignmentRepo) IsActiveAdvisor(ctx context.Context, projectID, professorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AdvisorAssignment{}).
		Where("id_proj = ? AND id_prof = ? AND ativo = ?", projectID, professorID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepo) ListActive(ctx context.Context, projectID int64, role model.ParticipantRole) ([]model.Assignment, error) {
	db := r.db.WithContext(ctx).
		Where("id_proj = ? AND ativo = ?", projectID, true).
		Order("id ASC")

	switch role {
	case model.RoleStudent:
		var rows []model.StudentAssignment
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]model.Assignment, 0, len(rows))
		for i := range rows {
			out = append(out, &rows[i])
		}
		return out, nil
	case model.RoleAdvisor:
		var rows []model.AdvisorAssignment
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]model.Assignment, 0, len(rows))
		for i := range rows {
			out = append(out, &rows[i])
		}
		return out, nil
	case model.RoleAssessor:
		var rows []model.AssessorAssignment
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]model.Assignment, 0, len(rows))
		for i := range rows {
			out = append(out, &rows[i])
		}
		return out, nil
	}
	return nil, fmt.Errorf("角色 %q 无效", role)
}

func (r *assignmentRepo) CountActive(ctx context.Context, projectID int64, role model.ParticipantRole) (int64, error) {
	table := role.Table()
	if table == "" {
		return 0, fmt.Errorf("角色 %q 无效", role)
	}
	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("id_proj = ? AND ativo = ?", projectID, true).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepo) Save(ctx context.Context, a model.Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *assignmentRepo) FirstAdvisor(ctx context.Context, projectID int64) (*model.AdvisorAssignment, error) {
	var a model.AdvisorAssignment
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Preload("Professor.Department").
		Where("id_proj = ?", projectID).
		Order("ativo DESC").
		Order("id ASC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
