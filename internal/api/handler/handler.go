package handler

import "pesquisa-fei/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Project    *ProjectHandler
	Professor  *ProfessorHandler
	Student    *StudentHandler
	Department *DepartmentHandler
	Lattes     *LattesHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Project:    NewProjectHandler(svc.Project),
		Professor:  NewProfessorHandler(svc.Professor),
		Student:    NewStudentHandler(svc.Student),
		Department: NewDepartmentHandler(svc.Department),
		Lattes:     NewLattesHandler(svc.Lattes),
		Export:     NewExportHandler(svc.Export),
	}
}
