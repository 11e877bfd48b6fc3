package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesquisa-fei/backend/internal/model"
)

// ProjectFilters 项目列表过滤条件
type ProjectFilters struct {
	Type    *model.ProjectType
	Status  *model.ProjectStatus
	Funding *model.Funding
	Search  string // 主题 / 关键词模糊匹配
}

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	// GetByID 预加载三类参与者及其实体
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context, filters *ProjectFilters) ([]model.Project, int64, error)
	Save(ctx context.Context, project *model.Project) error
	// Delete 三张分配表中的记录随项目级联删除
	Delete(ctx context.Context, id int64) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo 创建 ProjectRepository 实例
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	// 参与者分配由 AssignmentRepository 单独写入
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	err := withParticipants(r.db.WithContext(ctx)).
		Where("id_proj = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, filters *ProjectFilters) ([]model.Project, int64, error) {
	var projects []model.Project
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Project{})
	if filters != nil {
		if filters.Type != nil {
			db = db.Where("tipo = ?", *filters.Type)
		}
		if filters.Status != nil {
			db = db.Where("pendencia = ?", *filters.Status)
		}
		if filters.Funding != nil {
			db = db.Where("bolsa = ?", *filters.Funding)
		}
		if s := strings.TrimSpace(filters.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			db = db.Where("LOWER(tema) LIKE ? OR LOWER(palavra_chave) LIKE ?", like, like)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := withParticipants(db).Order("id_proj ASC").Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *projectRepo) Save(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Project{}, "id_proj", id)
}

// withParticipants 预加载学生/导师/评审人分配，避免 N+1 查询
func withParticipants(db *gorm.DB) *gorm.DB {
	return db.
		Preload("StudentAssignments", orderByID).
		Preload("StudentAssignments.Student").
		Preload("AdvisorAssignments", orderByID).
		Preload("AdvisorAssignments.Professor").
		Preload("AssessorAssignments", orderByID).
		Preload("AssessorAssignments.Professor")
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
