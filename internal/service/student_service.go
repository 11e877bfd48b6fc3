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

// StudentService 学生业务接口
type StudentService interface {
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	// Delete 同时删除其项目分配与成绩记录
	Delete(ctx context.Context, id int64) error
	GetHistory(ctx context.Context, id int64) ([]dto.StudentHistoryResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, req.Search)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, classify("listar alunos", err)
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityStudent, id, "buscar aluno", err))
	}
	return toStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Invalid("nome", `O campo "nome" é obrigatório.`)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, apperrors.Invalid("telefone", `O campo "telefone" é obrigatório.`)
	}

	courseID := req.CourseID.Int64()
	if err := s.ensureCourse(ctx, courseID); err != nil {
		return nil, err
	}

	student := &model.Student{
		Name:     name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		CourseID: courseID,
	}
	if req.StudentID != nil {
		student.ID = req.StudentID.Int64()
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, s.logged(classify("criar aluno", err))
	}

	created, err := s.repo.Student.GetByID(ctx, student.ID)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityStudent, student.ID, "recarregar aluno", err))
	}
	return toStudentResponse(created), nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityStudent, id, "buscar aluno", err))
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Invalid("nome", `O campo "nome" não pode ser vazio.`)
		}
		student.Name = name
	}
	if req.Email != nil {
		student.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			return nil, apperrors.Invalid("telefone", `O campo "telefone" não pode ser vazio.`)
		}
		student.Phone = phone
	}
	if req.CourseID != nil {
		courseID := req.CourseID.Int64()
		if err := s.ensureCourse(ctx, courseID); err != nil {
			return nil, err
		}
		student.CourseID = courseID
		student.Course = nil
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, s.logged(classify("atualizar aluno", err))
	}

	updated, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, s.logged(lookup(apperrors.EntityStudent, id, "recarregar aluno", err))
	}
	return toStudentResponse(updated), nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		return s.logged(lookup(apperrors.EntityStudent, id, "excluir aluno", err))
	}
	s.logger.Info("学生已删除", zap.Int64("id_aluno", id))
	return nil
}

func (s *studentService) GetHistory(ctx context.Context, id int64) ([]dto.StudentHistoryResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		return nil, s.logged(lookup(apperrors.EntityStudent, id, "buscar aluno", err))
	}

	records, err := s.repo.Student.ListHistory(ctx, id)
	if err != nil {
		return nil, s.logged(classify("listar histórico", err))
	}

	result := make([]dto.StudentHistoryResponse, 0, len(records))
	for _, r := range records {
		result = append(result, dto.StudentHistoryResponse{
			CourseCode: r.CourseCode,
			Approved:   r.Approved,
		})
	}
	return result, nil
}

// ensureCourse 课程必须存在
func (s *studentService) ensureCourse(ctx context.Context, courseID int64) error {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		return s.logged(lookup(apperrors.EntityCourse, courseID, "buscar curso", err))
	}
	return nil
}

func (s *studentService) logged(err error) error {
	if isStoreFailure(err) {
		s.logger.Error("学生操作失败", zap.Error(err))
	}
	return err
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:    strconv.FormatInt(st.ID, 10),
		Name:  st.Name,
		Email: st.Email,
		Phone: st.Phone,
	}
	if st.Course != nil {
		resp.Course = st.Course.Name
	}
	return resp
}
