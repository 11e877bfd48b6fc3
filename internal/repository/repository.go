package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Department DepartmentRepository
	Course     CourseRepository
	Professor  ProfessorRepository
	Lattes     LattesRepository
	Student    StudentRepository
	Project    ProjectRepository
	Assignment AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Department: NewDepartmentRepo(db),
		Course:     NewCourseRepo(db),
		Professor:  NewProfessorRepo(db),
		Lattes:     NewLattesRepo(db),
		Student:    NewStudentRepo(db),
		Project:    NewProjectRepo(db),
		Assignment: NewAssignmentRepo(db),
	}
}

// deleteByID 按主键删除；未命中任何行时返回 gorm.ErrRecordNotFound
func deleteByID(db *gorm.DB, value interface{}, column string, id int64) error {
	res := db.Where(column+" = ?", id).Delete(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Transaction 在单个事务内执行 fn：fn 返回错误或 panic 时全部回滚
//
// 未绑定数据库（单元测试中手工组装的 mock 聚合）时直接执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
