// Package testutil 提供基于内存 SQLite 的数据库测试辅助
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/pkg/database"
)

var dbSeq atomic.Int64

// NewSQLiteDB 创建一个独立的内存数据库并完成表结构迁移
// 每个测试独占一个数据库；单连接保证内存库在测试期间不被回收
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&_foreign_keys=on", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开 SQLite 失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}
	return db
}

// Fixture 常用基础数据
type Fixture struct {
	Department *model.Department
	Course     *model.Course
	Professor  *model.Professor
	Student    *model.Student
}

// SeedBasic 依次创建 院系 → 课程 → 教师 → 学生
func SeedBasic(t testing.TB, db *gorm.DB) *Fixture {
	t.Helper()

	dept := &model.Department{Name: "Eng"}
	mustCreate(t, db, dept)

	course := &model.Course{Name: "CS", DepartmentID: dept.ID}
	mustCreate(t, db, course)

	prof := &model.Professor{Name: "Prof. P", Email: "p@fei.edu.br", DepartmentID: &dept.ID}
	mustCreate(t, db, prof)

	student := &model.Student{Name: "Aluno S", Email: "s@fei.edu.br", Phone: "11999990000", CourseID: course.ID}
	mustCreate(t, db, student)

	return &Fixture{Department: dept, Course: course, Professor: prof, Student: student}
}

// NewProfessor 创建一名额外教师
func NewProfessor(t testing.TB, db *gorm.DB, name, email string) *model.Professor {
	t.Helper()
	p := &model.Professor{Name: name, Email: email}
	mustCreate(t, db, p)
	return p
}

// NewStudent 创建一名额外学生
func NewStudent(t testing.TB, db *gorm.DB, courseID int64, name, email string) *model.Student {
	t.Helper()
	s := &model.Student{Name: name, Email: email, Phone: "11988887777", CourseID: courseID}
	mustCreate(t, db, s)
	return s
}

// NewProject 创建指定类型的项目
func NewProject(t testing.TB, db *gorm.DB, typ model.ProjectType) *model.Project {
	t.Helper()
	p := &model.Project{
		Theme:          "Projeto de teste",
		Type:           typ,
		Summary:        "Resumo",
		DurationMonths: 12,
		Status:         model.StatusAwaitingCoordination,
	}
	mustCreate(t, db, p)
	return p
}

func mustCreate(t testing.TB, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("创建 %T 失败: %v", v, err)
	}
}
