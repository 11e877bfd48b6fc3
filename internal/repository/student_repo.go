package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesquisa-fei/backend/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context, search string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	// Delete 级联删除项目分配与成绩记录
	Delete(ctx context.Context, id int64) error
	CreateHistory(ctx context.Context, record *model.StudentHistory) error
	ListHistory(ctx context.Context, studentID int64) ([]model.StudentHistory, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("id_aluno = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, search string) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx).Preload("Course")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	err := db.Order("nome ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Student{}, "id_aluno", id)
}

func (r *studentRepo) CreateHistory(ctx context.Context, record *model.StudentHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *studentRepo) ListHistory(ctx context.Context, studentID int64) ([]model.StudentHistory, error) {
	var records []model.StudentHistory
	err := r.db.WithContext(ctx).
		Where("id_aluno = ?", studentID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}
