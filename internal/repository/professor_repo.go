package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesquisa-fei/backend/internal/model"
)

// ProfessorRepository 教师数据访问接口
type ProfessorRepository interface {
	Create(ctx context.Context, prof *model.Professor) error
	GetByID(ctx context.Context, id int64) (*model.Professor, error)
	// List 按姓名/邮箱模糊搜索，预加载院系与 Lattes 档案
	List(ctx context.Context, search string) ([]model.Professor, error)
	// Update 只更新教师自身字段，不写入关联
	Update(ctx context.Context, prof *model.Professor) error
	// Delete 级联删除分配与 Lattes 档案（外键 ON DELETE CASCADE）
	Delete(ctx context.Context, id int64) error
	CountActiveAdvisorships(ctx context.Context, professorID int64) (int64, error)
	CountActiveAssessorships(ctx context.Context, professorID int64) (int64, error)
}

// professorRepo ProfessorRepository 的 GORM 实现
type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo 创建 ProfessorRepository 实例
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func (r *professorRepo) Create(ctx context.Context, prof *model.Professor) error {
	return r.db.WithContext(ctx).Create(prof).Error
}

func (r *professorRepo) GetByID(ctx context.Context, id int64) (*model.Professor, error) {
	var prof model.Professor
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Lattes").
		Where("id_professor = ?", id).
		First(&prof).Error
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *professorRepo) List(ctx context.Context, search string) ([]model.Professor, error) {
	var profs []model.Professor
	db := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Lattes")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	err := db.Order("nome ASC").Find(&profs).Error
	return profs, err
}

func (r *professorRepo) Update(ctx context.Context, prof *model.Professor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(prof).Error
}

func (r *professorRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Professor{}, "id_professor", id)
}

func (r *professorRepo) CountActiveAdvisorships(ctx context.Context, professorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AdvisorAssignment{}).
		Where("id_prof = ? AND ativo = ?", professorID, true).
		Count(&count).Error
	return count, err
}

func (r *professorRepo) CountActiveAssessorships(ctx context.Context, professorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AssessorAssignment{}).
		Where("id_prof = ? AND ativo = ?", professorID, true).
		Count(&count).Error
	return count, err
}
