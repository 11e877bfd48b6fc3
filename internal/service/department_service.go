package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
	apperrors "pesquisa-fei/backend/pkg/errors"
)

// DepartmentService 院系业务接口
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	// GetProfessorKeywords 院系内教师的 Lattes 关键词
	GetProfessorKeywords(ctx context.Context, id int64) ([]dto.LattesKeywordsResponse, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询院系列表失败", zap.Error(err))
		return nil, classify("listar departamentos", err)
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, toDepartmentResponse(&depts[i]))
	}
	return result, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		err = lookup(apperrors.EntityDepartment, id, "buscar departamento", err)
		if isStoreFailure(err) {
			s.logger.Error("查询院系失败", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	resp := toDepartmentResponse(dept)
	return &resp, nil
}

func (s *departmentService) GetProfessorKeywords(ctx context.Context, id int64) ([]dto.LattesKeywordsResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	list, err := s.repo.Lattes.ListKeywords(ctx, &id)
	if err != nil {
		s.logger.Error("查询院系关键词失败", zap.Int64("id", id), zap.Error(err))
		return nil, classify("listar palavras-chave", err)
	}
	return toKeywordsResponse(list), nil
}

func toDepartmentResponse(d *model.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:   strconv.FormatInt(d.ID, 10),
		Name: d.Name,
	}
}
