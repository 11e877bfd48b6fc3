package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
	apperrors "pesquisa-fei/backend/pkg/errors"
)

// LattesService 教师 Lattes 档案业务接口
type LattesService interface {
	List(ctx context.Context) ([]dto.LattesResponse, error)
	GetByProfessor(ctx context.Context, professorID int64) (*dto.LattesResponse, error)
	Create(ctx context.Context, req *dto.LattesRequest) (*dto.LattesResponse, error)
	Update(ctx context.Context, professorID int64, req *dto.LattesRequest) (*dto.LattesResponse, error)
	Delete(ctx context.Context, professorID int64) error
	// ListAllKeywords 全部教师的研究关键词
	ListAllKeywords(ctx context.Context) ([]dto.LattesKeywordsResponse, error)
}

type lattesService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLattesService 创建 LattesService 实例
func NewLattesService(repo *repository.Repository, logger *zap.Logger) LattesService {
	return &lattesService{repo: repo, logger: logger}
}

func (s *lattesService) List(ctx context.Context) ([]dto.LattesResponse, error) {
	list, err := s.repo.Lattes.List(ctx)
	if err != nil {
		s.logger.Error("查询 Lattes 列表失败", zap.Error(err))
		return nil, classify("listar lattes", err)
	}

	result := make([]dto.LattesResponse, 0, len(list))
	for i := range list {
		result = append(result, *toLattesResponse(&list[i]))
	}
	return result, nil
}

func (s *lattesService) GetByProfessor(ctx context.Context, professorID int64) (*dto.LattesResponse, error) {
	lattes, err := s.repo.Lattes.GetByProfessor(ctx, professorID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityLattes, professorID, "buscar lattes", err))
	}
	return toLattesResponse(lattes), nil
}

func (s *lattesService) Create(ctx context.Context, req *dto.LattesRequest) (*dto.LattesResponse, error) {
	professorID := req.ProfessorID.Int64()
	if _, err := s.repo.Professor.GetByID(ctx, professorID); err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, professorID, "buscar professor", err))
	}

	lattes := &model.ProfessorLattes{ProfessorID: professorID}
	applyLattes(lattes, req)
	if err := s.repo.Lattes.Create(ctx, lattes); err != nil {
		return nil, s.logged(classify("criar lattes", err))
	}
	return toLattesResponse(lattes), nil
}

// Update 档案按教师 ID 定位，请求体中的 professor 字段不允许改写归属
func (s *lattesService) Update(ctx context.Context, professorID int64, req *dto.LattesRequest) (*dto.LattesResponse, error) {
	lattes, err := s.repo.Lattes.GetByProfessor(ctx, professorID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityLattes, professorID, "buscar lattes", err))
	}

	applyLattes(lattes, req)
	if err := s.repo.Lattes.Update(ctx, lattes); err != nil {
		return nil, s.logged(classify("atualizar lattes", err))
	}
	return toLattesResponse(lattes), nil
}

func (s *lattesService) Delete(ctx context.Context, professorID int64) error {
	if err := s.repo.Lattes.Delete(ctx, professorID); err != nil {
		return s.logged(lookup(apperrors.EntityLattes, professorID, "excluir lattes", err))
	}
	return nil
}

func (s *lattesService) ListAllKeywords(ctx context.Context) ([]dto.LattesKeywordsResponse, error) {
	list, err := s.repo.Lattes.ListKeywords(ctx, nil)
	if err != nil {
		s.logger.Error("查询关键词失败", zap.Error(err))
		return nil, classify("listar palavras-chave", err)
	}
	return toKeywordsResponse(list), nil
}

func (s *lattesService) logged(err error) error {
	if isStoreFailure(err) {
		s.logger.Error("Lattes 操作失败", zap.Error(err))
	}
	return err
}

func applyLattes(l *model.ProfessorLattes, req *dto.LattesRequest) {
	l.Code = strings.TrimSpace(req.Code)
	l.Subarea = req.Subarea
	l.Link = strings.TrimSpace(req.Link)
	l.Keywords = req.Keywords
}

func toLattesResponse(l *model.ProfessorLattes) *dto.LattesResponse {
	return &dto.LattesResponse{
		ProfessorID: strconv.FormatInt(l.ProfessorID, 10),
		Code:        l.Code,
		Subarea:     l.Subarea,
		Link:        l.Link,
		Keywords:    l.Keywords,
	}
}

func toKeywordsResponse(list []model.ProfessorLattes) []dto.LattesKeywordsResponse {
	result := make([]dto.LattesKeywordsResponse, 0, len(list))
	for _, l := range list {
		result = append(result, dto.LattesKeywordsResponse{
			ProfessorID: strconv.FormatInt(l.ProfessorID, 10),
			Keywords:    l.Keywords,
		})
	}
	return result
}
