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

// ProfessorService 教师业务接口
type ProfessorService interface {
	List(ctx context.Context, req *dto.ProfessorListRequest) ([]dto.ProfessorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error)
	Create(ctx context.Context, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error)
	// Delete 同时删除其导师/评审分配与 Lattes 档案
	Delete(ctx context.Context, id int64) error
	GetLattes(ctx context.Context, id int64) (*dto.LattesResponse, error)
	// GetProjectCounts 统计教师作为导师 / 评审人的激活项目数
	GetProjectCounts(ctx context.Context, id int64) (*dto.ProfessorProjectCountsResponse, error)
}

type professorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfessorService 创建 ProfessorService 实例
func NewProfessorService(repo *repository.Repository, logger *zap.Logger) ProfessorService {
	return &professorService{repo: repo, logger: logger}
}

func (s *professorService) List(ctx context.Context, req *dto.ProfessorListRequest) ([]dto.ProfessorResponse, error) {
	profs, err := s.repo.Professor.List(ctx, req.Search)
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, classify("listar professores", err)
	}

	result := make([]dto.ProfessorResponse, 0, len(profs))
	for i := range profs {
		result = append(result, *toProfessorResponse(&profs[i]))
	}
	return result, nil
}

func (s *professorService) GetByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error) {
	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, id, "buscar professor", err))
	}
	return toProfessorResponse(prof), nil
}

func (s *professorService) Create(ctx context.Context, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, apperrors.Invalid("nome", `O campo "nome" é obrigatório.`)
	}
	if email == "" {
		return nil, apperrors.Invalid("email", `O campo "email" é obrigatório.`)
	}

	deptID := req.DepartmentID.Int64Ptr()
	if err := s.ensureDepartment(ctx, deptID); err != nil {
		return nil, err
	}

	prof := &model.Professor{
		Name:          name,
		Email:         email,
		LinkCitations: req.LinkCitations,
		DepartmentID:  deptID,
	}
	if req.ProfessorID != nil {
		prof.ID = req.ProfessorID.Int64()
	}
	if err := s.repo.Professor.Create(ctx, prof); err != nil {
		return nil, s.logged(classify("criar professor", err))
	}

	created, err := s.repo.Professor.GetByID(ctx, prof.ID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, prof.ID, "recarregar professor", err))
	}
	return toProfessorResponse(created), nil
}

func (s *professorService) Update(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, id, "buscar professor", err))
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Invalid("nome", `O campo "nome" não pode ser vazio.`)
		}
		prof.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			return nil, apperrors.Invalid("email", `O campo "email" não pode ser vazio.`)
		}
		prof.Email = email
	}
	if req.LinkCitations != nil {
		prof.LinkCitations = req.LinkCitations
	}
	if req.DepartmentID != nil {
		deptID := req.DepartmentID.Int64Ptr()
		if err := s.ensureDepartment(ctx, deptID); err != nil {
			return nil, err
		}
		prof.DepartmentID = deptID
		prof.Department = nil
	}

	if err := s.repo.Professor.Update(ctx, prof); err != nil {
		return nil, s.logged(classify("atualizar professor", err))
	}

	updated, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, id, "recarregar professor", err))
	}
	return toProfessorResponse(updated), nil
}

func (s *professorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Professor.Delete(ctx, id); err != nil {
		return s.logged(lookup(apperrors.EntityProfessor, id, "excluir professor", err))
	}
	s.logger.Info("教师已删除", zap.Int64("id_professor", id))
	return nil
}

func (s *professorService) GetLattes(ctx context.Context, id int64) (*dto.LattesResponse, error) {
	lattes, err := s.repo.Lattes.GetByProfessor(ctx, id)
	if err != nil {
		if nf := lookup(apperrors.EntityLattes, id, "buscar lattes", err); apperrors.IsNotFound(nf) {
			return nil, &apperrors.NotFoundError{
				Entity:  apperrors.EntityLattes,
				ID:      strconv.FormatInt(id, 10),
				Message: "Informações Lattes não encontradas.",
			}
		}
		return nil, s.logged(classify("buscar lattes", err))
	}
	return toLattesResponse(lattes), nil
}

func (s *professorService) GetProjectCounts(ctx context.Context, id int64) (*dto.ProfessorProjectCountsResponse, error) {
	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProfessor, id, "buscar professor", err))
	}

	advising, err := s.repo.Professor.CountActiveAdvisorships(ctx, id)
	if err != nil {
		return nil, s.logged(classify("contar orientações", err))
	}
	assessing, err := s.repo.Professor.CountActiveAssessorships(ctx, id)
	if err != nil {
		return nil, s.logged(classify("contar assessorias", err))
	}

	return &dto.ProfessorProjectCountsResponse{
		ProfessorID:     strconv.FormatInt(prof.ID, 10),
		ProfessorName:   prof.Name,
		ActiveAdvising:  advising,
		ActiveAssessing: assessing,
	}, nil
}

// ensureDepartment 院系 ID 非空时必须存在
func (s *professorService) ensureDepartment(ctx context.Context, deptID *int64) error {
	if deptID == nil {
		return nil
	}
	if _, err := s.repo.Department.GetByID(ctx, *deptID); err != nil {
		return s.logged(lookup(apperrors.EntityDepartment, *deptID, "buscar departamento", err))
	}
	return nil
}

func (s *professorService) logged(err error) error {
	if isStoreFailure(err) {
		s.logger.Error("教师操作失败", zap.Error(err))
	}
	return err
}

func toProfessorResponse(p *model.Professor) *dto.ProfessorResponse {
	resp := &dto.ProfessorResponse{
		ID:            strconv.FormatInt(p.ID, 10),
		Name:          p.Name,
		Email:         p.Email,
		LinkCitations: p.LinkCitations,
	}
	if p.Department != nil {
		name := p.Department.Name
		resp.Department = &name
	}
	if p.Lattes != nil {
		link := p.Lattes.Link
		resp.LattesLink = &link
	}
	return resp
}
