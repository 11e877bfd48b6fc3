package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
	apperrors "pesquisa-fei/backend/pkg/errors"
	"pesquisa-fei/backend/pkg/metrics"
)

// ProjectService 研究项目业务接口
type ProjectService interface {
	// Create 创建项目，可同时新建/关联导师并关联学生（单事务）
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error)
	List(ctx context.Context, req *dto.ProjectListRequest) ([]dto.ProjectResponse, int64, error)
	// Update 仅修改传入字段；改为初期科研类型时要求每角色至多一名激活参与者
	Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	// Delete 参与者分配随项目级联删除
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status int) (*dto.ProjectResponse, error)

	AssociateStudent(ctx context.Context, projectID, studentID int64) error
	AssociateAdvisor(ctx context.Context, projectID, professorID int64) error
	AssociateAssessor(ctx context.Context, projectID, professorID int64) error

	// LinkMongo 绑定 24 位外部文档 ID
	LinkMongo(ctx context.Context, projectID int64, mongoID string) (*dto.ProjectResponse, error)
	// SaveReviewerText 保存评审反馈文本；nil 拒绝，空串接受
	SaveReviewerText(ctx context.Context, projectID int64, text *string) (*dto.ProjectResponse, error)
	// DeactivateParticipant 仅在该角色恰有一名激活参与者时将其停用
	DeactivateParticipant(ctx context.Context, projectID int64, role string) (string, error)
	// GetAdvisorDepartment 首位导师（激活优先）所属院系
	GetAdvisorDepartment(ctx context.Context, projectID int64) (*dto.AdvisorDepartmentResponse, error)
}

type projectService struct {
	repo     *repository.Repository
	logger   *zap.Logger
	validate *validator.Validate
}

// NewProjectService 创建 ProjectService 实例
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger, validate: validator.New()}
}

// ═══════════════════════════════════════════════════════════
// Create 创建项目并建立参与者关联
// ═══════════════════════════════════════════════════════════
//
// 1. orientador_novo 存在时校验并新建教师（优先于 id_professor）
// 2. 否则 id_professor 存在时加载该教师
// 3. id_aluno 存在时加载该学生
// 4. 仅用项目字段创建项目
// 5. 为解析出的参与者创建导师/学生分配
// 6. 重新读取项目并返回
//
// 1-5 在同一事务内执行，任一步失败全部回滚。

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := newProjectFromRequest(req)
	if err != nil {
		return nil, err
	}
	if req.NewAdvisor != nil {
		if err := s.validate.Struct(req.NewAdvisor); err != nil {
			return nil, apperrors.Invalid("orientador_novo", "Dados do novo orientador inválidos: "+err.Error())
		}
	}

	var created *model.Project
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		advisor, err := s.resolveAdvisor(ctx, tx, req)
		if err != nil {
			return err
		}

		var student *model.Student
		if req.StudentID != nil {
			studentID := req.StudentID.Int64()
			student, err = tx.Student.GetByID(ctx, studentID)
			if err != nil {
				return lookup(apperrors.EntityStudent, studentID, "buscar aluno", err)
			}
		}

		if err := tx.Project.Create(ctx, project); err != nil {
			return classify("criar projeto", err)
		}

		if advisor != nil {
			a := &model.AdvisorAssignment{
				AssignmentBase: model.NewAssignmentBase(),
				ProfessorID:    advisor.ID,
				ProjectID:      project.ID,
			}
			if err := tx.Assignment.CreateAdvisor(ctx, a); err != nil {
				return classify("associar orientador", err)
			}
		}
		if student != nil {
			a := &model.StudentAssignment{
				AssignmentBase: model.NewAssignmentBase(),
				StudentID:      student.ID,
				ProjectID:      project.ID,
			}
			if err := tx.Assignment.CreateStudent(ctx, a); err != nil {
				return classify("associar aluno", err)
			}
		}

		created, err = tx.Project.GetByID(ctx, project.ID)
		if err != nil {
			return lookup(apperrors.EntityProject, project.ID, "recarregar projeto", err)
		}
		return nil
	})
	if err != nil {
		if isStoreFailure(err) {
			s.logger.Error("创建项目失败", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("项目已创建", zap.Int64("id_proj", created.ID))
	return toProjectResponse(created), nil
}

// resolveAdvisor 新建或加载导师；两者都未提供时返回 nil
func (s *projectService) resolveAdvisor(ctx context.Context, tx *repository.Repository, req *dto.CreateProjectRequest) (*model.Professor, error) {
	switch {
	case req.NewAdvisor != nil:
		deptID := req.NewAdvisor.DepartmentID.Int64Ptr()
		if deptID != nil {
			// 院系是内联导师数据的一部分，不存在时按输入错误处理
			_, err := tx.Department.GetByID(ctx, *deptID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Invalid("orientador_novo",
					fmt.Sprintf("Departamento %d do novo orientador não encontrado.", *deptID))
			}
			if err != nil {
				return nil, classify("buscar departamento", err)
			}
		}
		prof := &model.Professor{
			Name:         strings.TrimSpace(req.NewAdvisor.Name),
			Email:        strings.TrimSpace(req.NewAdvisor.Email),
			DepartmentID: deptID,
		}
		if err := tx.Professor.Create(ctx, prof); err != nil {
			return nil, classify("criar orientador", err)
		}
		return prof, nil
	case req.ProfessorID != nil:
		professorID := req.ProfessorID.Int64()
		prof, err := tx.Professor.GetByID(ctx, professorID)
		if err != nil {
			return nil, lookup(apperrors.EntityProfessor, professorID, "buscar professor", err)
		}
		return prof, nil
	}
	return nil, nil
}

// newProjectFromRequest 仅使用项目字段构建实体，跨实体字段不会写入项目
func newProjectFromRequest(req *dto.CreateProjectRequest) (*model.Project, error) {
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		return nil, apperrors.Invalid("tema", `O campo "tema" é obrigatório.`)
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, apperrors.Invalid("resumo", `O campo "resumo" é obrigatório.`)
	}
	typ := model.ProjectType(req.Type)
	if !typ.Valid() {
		return nil, apperrors.Invalid("tipo", fmt.Sprintf(`"tipo" inválido: %d.`, req.Type))
	}
	if req.DurationMonths <= 0 {
		return nil, apperrors.Invalid("duracao", `"duracao" deve ser maior que zero.`)
	}

	project := &model.Project{
		Theme:          theme,
		Type:           typ,
		Summary:        req.Summary,
		Keyword:        req.Keyword,
		DurationMonths: req.DurationMonths,
		Status:         model.StatusAwaitingCoordination,
	}
	if req.Funding != nil && *req.Funding != "" {
		f := model.Funding(*req.Funding)
		if !f.Valid() {
			return nil, apperrors.Invalid("bolsa", fmt.Sprintf(`"bolsa" inválida: %s.`, *req.Funding))
		}
		project.Funding = &f
	}
	return project, nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *projectService) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProject, id, "buscar projeto", err), id)
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, req *dto.ProjectListRequest) ([]dto.ProjectResponse, int64, error) {
	filters := toProjectFilters(req)
	projects, total, err := s.repo.Project.List(ctx, filters)
	if err != nil {
		s.logger.Error("查询项目列表失败", zap.Error(err))
		return nil, 0, classify("listar projetos", err)
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *toProjectResponse(&projects[i]))
	}
	return result, total, nil
}

// toProjectFilters 列表查询参数转换为仓储过滤条件
func toProjectFilters(req *dto.ProjectListRequest) *repository.ProjectFilters {
	filters := &repository.ProjectFilters{Search: req.Search}
	if req.Type != nil {
		t := model.ProjectType(*req.Type)
		filters.Type = &t
	}
	if req.Status != nil {
		st := model.ProjectStatus(*req.Status)
		filters.Status = &st
	}
	if req.Funding != nil && *req.Funding != "" {
		f := model.Funding(*req.Funding)
		filters.Funding = &f
	}
	return filters
}

// ────────────────────── Update / Delete ──────────────────────

func (s *projectService) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	var updated *model.Project
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		project, err := tx.Project.GetByID(ctx, id)
		if err != nil {
			return lookup(apperrors.EntityProject, id, "buscar projeto", err)
		}

		wasIC := project.Type == model.ProjectTypeScientificInitiation
		if err := applyProjectUpdate(project, req); err != nil {
			return err
		}
		if !wasIC && project.Type == model.ProjectTypeScientificInitiation {
			if err := ensureSingleActivePerRole(ctx, tx, id); err != nil {
				return err
			}
		}

		if err := tx.Project.Save(ctx, project); err != nil {
			return classify("atualizar projeto", err)
		}
		updated, err = tx.Project.GetByID(ctx, id)
		if err != nil {
			return lookup(apperrors.EntityProject, id, "recarregar projeto", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.logged(err, id)
	}
	return toProjectResponse(updated), nil
}

// applyProjectUpdate 校验并写入传入字段，校验规则与创建一致
func applyProjectUpdate(p *model.Project, req *dto.UpdateProjectRequest) error {
	if req.Theme != nil {
		theme := strings.TrimSpace(*req.Theme)
		if theme == "" {
			return apperrors.Invalid("tema", `O campo "tema" não pode ser vazio.`)
		}
		p.Theme = theme
	}
	if req.Summary != nil {
		if strings.TrimSpace(*req.Summary) == "" {
			return apperrors.Invalid("resumo", `O campo "resumo" não pode ser vazio.`)
		}
		p.Summary = *req.Summary
	}
	if req.Type != nil {
		typ := model.ProjectType(*req.Type)
		if !typ.Valid() {
			return apperrors.Invalid("tipo", fmt.Sprintf(`"tipo" inválido: %d.`, *req.Type))
		}
		p.Type = typ
	}
	if req.DurationMonths != nil {
		if *req.DurationMonths <= 0 {
			return apperrors.Invalid("duracao", `"duracao" deve ser maior que zero.`)
		}
		p.DurationMonths = *req.DurationMonths
	}
	if req.Keyword != nil {
		p.Keyword = req.Keyword
	}
	if req.Funding != nil {
		if *req.Funding == "" {
			p.Funding = nil
		} else {
			f := model.Funding(*req.Funding)
			if !f.Valid() {
				return apperrors.Invalid("bolsa", fmt.Sprintf(`"bolsa" inválida: %s.`, *req.Funding))
			}
			p.Funding = &f
		}
	}
	if req.Status != nil {
		st := model.ProjectStatus(*req.Status)
		if !st.Valid() {
			return apperrors.Invalid("pendencia", fmt.Sprintf(`"pendencia" inválida: %d.`, *req.Status))
		}
		p.Status = st
	}
	return nil
}

// ensureSingleActivePerRole 项目转为初期科研前，三类角色的激活人数都不能超过一名
func ensureSingleActivePerRole(ctx context.Context, tx *repository.Repository, projectID int64) error {
	for _, role := range []model.ParticipantRole{model.RoleStudent, model.RoleAdvisor, model.RoleAssessor} {
		n, err := tx.Assignment.CountActive(ctx, projectID, role)
		if err != nil {
			return classify("contar participantes ativos", err)
		}
		if n > 1 {
			return apperrors.Violation(apperrors.RuleMultipleActiveMembers,
				fmt.Sprintf("Projetos de Iniciação Científica só podem ter um %s ativo por vez.", role))
		}
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		return s.logged(lookup(apperrors.EntityProject, id, "excluir projeto", err), id)
	}
	s.logger.Info("项目已删除", zap.Int64("id_proj", id))
	return nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *projectService) UpdateStatus(ctx context.Context, id int64, status int) (*dto.ProjectResponse, error) {
	st := model.ProjectStatus(status)
	if !st.Valid() {
		return nil, apperrors.Invalid("pendencia", fmt.Sprintf(`"pendencia" inválida: %d.`, status))
	}

	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProject, id, "buscar projeto", err), id)
	}
	project.Status = st
	if err := s.repo.Project.Save(ctx, project); err != nil {
		return nil, s.logged(classify("salvar projeto", err), id)
	}
	return toProjectResponse(project), nil
}

// ═══════════════════════════════════════════════════════════
// 参与者关联
// ═══════════════════════════════════════════════════════════

func (s *projectService) AssociateStudent(ctx context.Context, projectID, studentID int64) (err error) {
	defer observe(model.RoleStudent, "associate", &err)

	if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
		return s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		return s.logged(lookup(apperrors.EntityStudent, studentID, "buscar aluno", err), projectID)
	}

	a := &model.StudentAssignment{
		AssignmentBase: model.NewAssignmentBase(),
		StudentID:      studentID,
		ProjectID:      projectID,
	}
	if err := s.repo.Assignment.CreateStudent(ctx, a); err != nil {
		return s.logged(classify("associar aluno", err), projectID)
	}
	return nil
}

func (s *projectService) AssociateAdvisor(ctx context.Context, projectID, professorID int64) (err error) {
	defer observe(model.RoleAdvisor, "associate", &err)

	if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
		return s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}
	if _, err := s.repo.Professor.GetByID(ctx, professorID); err != nil {
		return s.logged(lookup(apperrors.EntityProfessor, professorID, "buscar professor", err), projectID)
	}

	a := &model.AdvisorAssignment{
		AssignmentBase: model.NewAssignmentBase(),
		ProfessorID:    professorID,
		ProjectID:      projectID,
	}
	if err := s.repo.Assignment.CreateAdvisor(ctx, a); err != nil {
		return s.logged(classify("associar orientador", err), projectID)
	}
	return nil
}

// AssociateAssessor 先确认教师存在，再加载项目；该教师是项目激活导师时拒绝
func (s *projectService) AssociateAssessor(ctx context.Context, projectID, professorID int64) (err error) {
	defer observe(model.RoleAssessor, "associate", &err)

	if _, err := s.repo.Professor.GetByID(ctx, professorID); err != nil {
		return s.logged(lookup(apperrors.EntityProfessor, professorID, "buscar professor", err), projectID)
	}
	if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
		return s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}

	isAdvisor, err := s.repo.Assignment.IsActiveAdvisor(ctx, projectID, professorID)
	if err != nil {
		return s.logged(classify("verificar orientador", err), projectID)
	}
	if isAdvisor {
		return apperrors.Violation(apperrors.RuleAdvisorNotAssessor, "Orientador não pode ser assessor.")
	}

	a := &model.AssessorAssignment{
		AssignmentBase: model.NewAssignmentBase(),
		ProfessorID:    professorID,
		ProjectID:      projectID,
	}
	if err := s.repo.Assignment.CreateAssessor(ctx, a); err != nil {
		return s.logged(classify("associar assessor", err), projectID)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// 外部 ID / 评审文本
// ═══════════════════════════════════════════════════════════

func (s *projectService) LinkMongo(ctx context.Context, projectID int64, mongoID string) (*dto.ProjectResponse, error) {
	// 仅校验长度，不校验十六进制字符集
	if utf8.RuneCountInString(mongoID) != model.MongoIDLength {
		return nil, apperrors.Invalid("mongo_id", `"mongo_id" inválido. Deve ter 24 caracteres.`)
	}

	project, err := s.repo.Project.GetByID(ctx, projectID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}
	project.MongoID = &mongoID
	if err := s.repo.Project.Save(ctx, project); err != nil {
		return nil, s.logged(classify("salvar projeto", err), projectID)
	}
	return toProjectResponse(project), nil
}

func (s *projectService) SaveReviewerText(ctx context.Context, projectID int64, text *string) (*dto.ProjectResponse, error) {
	if text == nil {
		return nil, apperrors.Invalid("texto_corretor", `O campo "texto_corretor" é obrigatório.`)
	}

	project, err := s.repo.Project.GetByID(ctx, projectID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}
	value := *text
	project.ReviewerText = &value
	if err := s.repo.Project.Save(ctx, project); err != nil {
		return nil, s.logged(classify("salvar projeto", err), projectID)
	}
	return toProjectResponse(project), nil
}

// ═══════════════════════════════════════════════════════════
// DeactivateParticipant 停用唯一激活参与者
// ═══════════════════════════════════════════════════════════
//
// 激活数 0 → NotFound；>1 → RuleViolation（数据异常，不自动处理）；
// 恰为 1 → ativo=false。查询、计数与更新在同一事务内完成。

func (s *projectService) DeactivateParticipant(ctx context.Context, projectID int64, roleInput string) (msg string, err error) {
	role, ok := model.ParseParticipantRole(strings.TrimSpace(roleInput))
	if !ok {
		return "", apperrors.Invalid("role", `Role inválido. Deve ser "aluno", "orientador" ou "assessor".`)
	}
	defer observe(role, "deactivate", &err)

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Project.GetByID(ctx, projectID); err != nil {
			return lookup(apperrors.EntityProject, projectID, "buscar projeto", err)
		}

		active, err := tx.Assignment.ListActive(ctx, projectID, role)
		if err != nil {
			return classify("listar participantes ativos", err)
		}

		switch len(active) {
		case 0:
			return &apperrors.NotFoundError{
				Entity:  apperrors.EntityParticipant,
				ID:      strconv.FormatInt(projectID, 10),
				Message: fmt.Sprintf("Nenhum %s ativo encontrado para este projeto.", role),
			}
		case 1:
			active[0].Base().Active = false
			if err := tx.Assignment.Save(ctx, active[0]); err != nil {
				return classify("desativar participante", err)
			}
			return nil
		default:
			return apperrors.Violation(apperrors.RuleMultipleActiveMembers,
				fmt.Sprintf("Múltiplos %ss ativos. Desativação automática não permitida.", role))
		}
	})
	if err != nil {
		return "", s.logged(err, projectID)
	}

	s.logger.Info("参与者已停用", zap.Int64("id_proj", projectID), zap.String("role", string(role)))
	return fmt.Sprintf("Status do %s atualizado para inativo.", role), nil
}

// ────────────────────── GetAdvisorDepartment ──────────────────────

func (s *projectService) GetAdvisorDepartment(ctx context.Context, projectID int64) (*dto.AdvisorDepartmentResponse, error) {
	if _, err := s.repo.Project.GetByID(ctx, projectID); err != nil {
		return nil, s.logged(lookup(apperrors.EntityProject, projectID, "buscar projeto", err), projectID)
	}

	advisor, err := s.repo.Assignment.FirstAdvisor(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{
			Entity:  apperrors.EntityAdvisor,
			ID:      strconv.FormatInt(projectID, 10),
			Message: "Nenhum orientador encontrado para este projeto.",
		}
	}
	if err != nil {
		return nil, s.logged(classify("buscar orientador", err), projectID)
	}
	if advisor.Professor == nil || advisor.Professor.DepartmentID == nil {
		return nil, &apperrors.NotFoundError{
			Entity:  apperrors.EntityDepartment,
			ID:      strconv.FormatInt(advisor.ProfessorID, 10),
			Message: "Orientador não possui departamento.",
		}
	}
	return &dto.AdvisorDepartmentResponse{
		DepartmentID: strconv.FormatInt(*advisor.Professor.DepartmentID, 10),
	}, nil
}

// ── 辅助 ──

// logged 存储层失败按 Error 级别记录，领域错误直接返回
func (s *projectService) logged(err error, projectID int64) error {
	if isStoreFailure(err) {
		s.logger.Error("项目操作失败", zap.Int64("id_proj", projectID), zap.Error(err))
	}
	return err
}

// observe 记录参与者操作指标
func observe(role model.ParticipantRole, op string, errp *error) {
	outcome := metrics.OutcomeSuccess
	if err := *errp; err != nil {
		outcome = metrics.OutcomeRejected
		if isStoreFailure(err) {
			outcome = metrics.OutcomeError
		}
	}
	metrics.ObserveParticipantOp(string(role), op, outcome)
}

func toProjectResponse(p *model.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:              strconv.FormatInt(p.ID, 10),
		Theme:           p.Theme,
		Type:            int(p.Type),
		TypeDisplay:     p.Type.Label(),
		Summary:         p.Summary,
		Keyword:         p.Keyword,
		DurationMonths:  p.DurationMonths,
		Status:          int(p.Status),
		StatusDisplay:   p.Status.Label(),
		MongoID:         p.MongoID,
		ReviewerText:    p.ReviewerText,
		StudentsStatus:  make([]dto.ParticipantStatusResponse, 0, len(p.StudentAssignments)),
		AdvisorsStatus:  make([]dto.ParticipantStatusResponse, 0, len(p.AdvisorAssignments)),
		AssessorsStatus: make([]dto.ParticipantStatusResponse, 0, len(p.AssessorAssignments)),
	}
	if p.Funding != nil {
		f := string(*p.Funding)
		resp.Funding = &f
	}

	for _, a := range p.StudentAssignments {
		name := ""
		if a.Student != nil {
			name = a.Student.Name
		}
		resp.StudentsStatus = append(resp.StudentsStatus, participantStatus(a.StudentID, name, a.AssignmentBase))
	}
	for _, a := range p.AdvisorAssignments {
		name := ""
		if a.Professor != nil {
			name = a.Professor.Name
		}
		resp.AdvisorsStatus = append(resp.AdvisorsStatus, participantStatus(a.ProfessorID, name, a.AssignmentBase))
	}
	for _, a := range p.AssessorAssignments {
		name := ""
		if a.Professor != nil {
			name = a.Professor.Name
		}
		resp.AssessorsStatus = append(resp.AssessorsStatus, participantStatus(a.ProfessorID, name, a.AssignmentBase))
	}
	return resp
}

func participantStatus(id int64, name string, base model.AssignmentBase) dto.ParticipantStatusResponse {
	return dto.ParticipantStatusResponse{
		ID:     strconv.FormatInt(id, 10),
		Name:   name,
		Active: base.Active,
		Since:  time.Time(base.StartDate).Format("2006-01-02"),
	}
}
