package service

import (
	"go.uber.org/zap"

	"pesquisa-fei/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Project    ProjectService
	Professor  ProfessorService
	Student    StudentService
	Department DepartmentService
	Lattes     LattesService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Project:    NewProjectService(repo, logger),
		Professor:  NewProfessorService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Department: NewDepartmentService(repo, logger),
		Lattes:     NewLattesService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
