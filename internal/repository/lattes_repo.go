package repository

import (
	"context"

	"gorm.io/gorm"

	"pesquisa-fei/backend/internal/model"
)

// LattesRepository 教师 Lattes 档案数据访问接口
type LattesRepository interface {
	Create(ctx context.Context, lattes *model.ProfessorLattes) error
	GetByProfessor(ctx context.Context, professorID int64) (*model.ProfessorLattes, error)
	List(ctx context.Context) ([]model.ProfessorLattes, error)
	Update(ctx context.Context, lattes *model.ProfessorLattes) error
	Delete(ctx context.Context, professorID int64) error
	// ListKeywords departmentID 为 nil 时返回全部教师
	ListKeywords(ctx context.Context, departmentID *int64) ([]model.ProfessorLattes, error)
}

type lattesRepo struct {
	db *gorm.DB
}

// NewLattesRepo 创建 LattesRepository 实例
func NewLattesRepo(db *gorm.DB) LattesRepository {
	return &lattesRepo{db: db}
}

func (r *lattesRepo) Create(ctx context.Context, lattes *model.ProfessorLattes) error {
	return r.db.WithContext(ctx).Create(lattes).Error
}

func (r *lattesRepo) GetByProfessor(ctx context.Context, professorID int64) (*model.ProfessorLattes, error) {
	var lattes model.ProfessorLattes
	err := r.db.WithContext(ctx).
		Where("id_professor = ?", professorID).
		First(&lattes).Error
	if err != nil {
		return nil, err
	}
	return &lattes, nil
}

func (r *lattesRepo) List(ctx context.Context) ([]model.ProfessorLattes, error) {
	var list []model.ProfessorLattes
	err := r.db.WithContext(ctx).
		Order("id_professor ASC").
		Find(&list).Error
	return list, err
}

func (r *lattesRepo) Update(ctx context.Context, lattes *model.ProfessorLattes) error {
	return r.db.WithContext(ctx).Save(lattes).Error
}

func (r *lattesRepo) Delete(ctx context.Context, professorID int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.ProfessorLattes{}, "id_professor", professorID)
}

func (r *lattesRepo) ListKeywords(ctx context.Context, departmentID *int64) ([]model.ProfessorLattes, error) {
	var list []model.ProfessorLattes
	db := r.db.WithContext(ctx).
		Model(&model.ProfessorLattes{}).
		Select("professores_lattes.id_professor", "professores_lattes.palavras_chave")
	if departmentID != nil {
		db = db.Joins("JOIN professores ON professores.id_professor = professores_lattes.id_professor").
			Where("professores.id_departamento = ?", *departmentID)
	}
	err := db.Order("professores_lattes.id_professor ASC").Find(&list).Error
	return list, err
}
