package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
)

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	depts  map[int64]*model.Department
	nextID int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		depts:  map[int64]*model.Department{1: {ID: 1, Name: "Eng"}},
		nextID: 2,
	}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.ID == 0 {
		dept.ID = m.nextID
		m.nextID++
	}
	m.depts[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[int64]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses: map[int64]*model.Course{1: {ID: 1, Name: "CS", DepartmentID: 1}},
	}
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	profs     map[int64]*model.Professor
	nextID    int64
	createErr error
	listErr   error
	advising  map[int64]int64
	assessing map[int64]int64
}

func newMockProfessorRepo() *mockProfessorRepo {
	dept := int64(1)
	return &mockProfessorRepo{
		profs: map[int64]*model.Professor{
			10: {ID: 10, Name: "Prof. P", Email: "p@fei.edu.br", DepartmentID: &dept,
				Department: &model.Department{ID: 1, Name: "Eng"}},
			11: {ID: 11, Name: "Prof. Q", Email: "q@fei.edu.br"},
		},
		nextID:    100,
		advising:  make(map[int64]int64),
		assessing: make(map[int64]int64),
	}
}

func (m *mockProfessorRepo) Create(_ context.Context, prof *model.Professor) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, p := range m.profs {
		if p.Email == prof.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if prof.ID == 0 {
		prof.ID = m.nextID
		m.nextID++
	}
	m.profs[prof.ID] = prof
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id int64) (*model.Professor, error) {
	if p, ok := m.profs[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) List(_ context.Context, search string) ([]model.Professor, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Professor
	for _, p := range m.profs {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockProfessorRepo) Update(_ context.Context, prof *model.Professor) error {
	for _, p := range m.profs {
		if p.ID != prof.ID && p.Email == prof.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.profs[prof.ID] = prof
	return nil
}

func (m *mockProfessorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.profs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.profs, id)
	return nil
}

func (m *mockProfessorRepo) CountActiveAdvisorships(_ context.Context, professorID int64) (int64, error) {
	return m.advising[professorID], nil
}

func (m *mockProfessorRepo) CountActiveAssessorships(_ context.Context, professorID int64) (int64, error) {
	return m.assessing[professorID], nil
}

// ── Mock LattesRepository ──

type mockLattesRepo struct {
	items map[int64]*model.ProfessorLattes
}

func newMockLattesRepo() *mockLattesRepo {
	return &mockLattesRepo{items: make(map[int64]*model.ProfessorLattes)}
}

func (m *mockLattesRepo) Create(_ context.Context, lattes *model.ProfessorLattes) error {
	if _, ok := m.items[lattes.ProfessorID]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.items[lattes.ProfessorID] = lattes
	return nil
}

func (m *mockLattesRepo) GetByProfessor(_ context.Context, professorID int64) (*model.ProfessorLattes, error) {
	if l, ok := m.items[professorID]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLattesRepo) List(_ context.Context) ([]model.ProfessorLattes, error) {
	var result []model.ProfessorLattes
	for _, l := range m.items {
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockLattesRepo) Update(_ context.Context, lattes *model.ProfessorLattes) error {
	m.items[lattes.ProfessorID] = lattes
	return nil
}

func (m *mockLattesRepo) Delete(_ context.Context, professorID int64) error {
	if _, ok := m.items[professorID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, professorID)
	return nil
}

func (m *mockLattesRepo) ListKeywords(_ context.Context, _ *int64) ([]model.ProfessorLattes, error) {
	var result []model.ProfessorLattes
	for _, l := range m.items {
		result = append(result, model.ProfessorLattes{ProfessorID: l.ProfessorID, Keywords: l.Keywords})
	}
	return result, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	history  map[int64][]model.StudentHistory
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: map[int64]*model.Student{
			20: {ID: 20, Name: "Aluno S", Email: "s@fei.edu.br", Phone: "11999990000", CourseID: 1},
		},
		history: make(map[int64][]model.StudentHistory),
		nextID:  200,
	}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, _ string) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.students, id)
	delete(m.history, id)
	return nil
}

func (m *mockStudentRepo) CreateHistory(_ context.Context, record *model.StudentHistory) error {
	m.history[record.StudentID] = append(m.history[record.StudentID], *record)
	return nil
}

func (m *mockStudentRepo) ListHistory(_ context.Context, studentID int64) ([]model.StudentHistory, error) {
	return m.history[studentID], nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[int64]*model.Project
	nextID   int64
	saveErr  error
	saves    int
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{
		projects: map[int64]*model.Project{
			1: {ID: 1, Theme: "IC", Type: model.ProjectTypeScientificInitiation, Summary: "r", DurationMonths: 12, Status: model.StatusAwaitingCoordination},
			2: {ID: 2, Theme: "TCC", Type: model.ProjectTypeThesis, Summary: "r", DurationMonths: 6, Status: model.StatusAwaitingCoordination},
		},
		nextID: 3,
	}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	project.ID = m.nextID
	m.nextID++
	m.projects[project.ID] = project
	return nil
}

// GetByID 返回副本，未 Save 的修改不会落到存储中
func (m *mockProjectRepo) GetByID(_ context.Context, id int64) (*model.Project, error) {
	if p, ok := m.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) List(_ context.Context, filters *repository.ProjectFilters) ([]model.Project, int64, error) {
	var result []model.Project
	for id := int64(1); id < m.nextID; id++ {
		p, ok := m.projects[id]
		if !ok {
			continue
		}
		if filters != nil && filters.Type != nil && p.Type != *filters.Type {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (m *mockProjectRepo) Save(_ context.Context, project *model.Project) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.projects, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	students  []*model.StudentAssignment
	advisors  []*model.AdvisorAssignment
	assessors []*model.AssessorAssignment
	nextID    int64
	createErr error
	saves     int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{nextID: 1}
}

func (m *mockAssignmentRepo) CreateStudent(_ context.Context, a *model.StudentAssignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = m.nextID
	m.nextID++
	m.students = append(m.students, a)
	return nil
}

func (m *mockAssignmentRepo) CreateAdvisor(_ context.Context, a *model.AdvisorAssignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = m.nextID
	m.nextID++
	m.advisors = append(m.advisors, a)
	return nil
}

func (m *mockAssignmentRepo) CreateAssessor(_ context.Context, a *model.AssessorAssignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = m.nextID
	m.nextID++
	m.assessors = append(m.assessors, a)
	return nil
}

func (m *mockAssignmentRepo) IsActiveAdvisor(_ context.Context, projectID, professorID int64) (bool, error) {
	for _, a := range m.advisors {
		if a.ProjectID == projectID && a.ProfessorID == professorID && a.Active {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssignmentRepo) ListActive(_ context.Context, projectID int64, role model.ParticipantRole) ([]model.Assignment, error) {
	var result []model.Assignment
	switch role {
	case model.RoleStudent:
		for _, a := range m.students {
			if a.ProjectID == projectID && a.Active {
				result = append(result, a)
			}
		}
	case model.RoleAdvisor:
		for _, a := range m.advisors {
			if a.ProjectID == projectID && a.Active {
				result = append(result, a)
			}
		}
	case model.RoleAssessor:
		for _, a := range m.assessors {
			if a.ProjectID == projectID && a.Active {
				result = append(result, a)
			}
		}
	default:
		return nil, fmt.Errorf("角色 %q 无效", role)
	}
	return result, nil
}

func (m *mockAssignmentRepo) CountActive(ctx context.Context, projectID int64, role model.ParticipantRole) (int64, error) {
	list, err := m.ListActive(ctx, projectID, role)
	return int64(len(list)), err
}

func (m *mockAssignmentRepo) Save(_ context.Context, _ model.Assignment) error {
	m.saves++
	return nil
}

func (m *mockAssignmentRepo) FirstAdvisor(_ context.Context, projectID int64) (*model.AdvisorAssignment, error) {
	var first *model.AdvisorAssignment
	for _, a := range m.advisors {
		if a.ProjectID != projectID {
			continue
		}
		if first == nil || (a.Active && !first.Active) {
			first = a
		}
	}
	if first == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return first, nil
}

// ── 组装 ──

type mockRepos struct {
	department *mockDepartmentRepo
	course     *mockCourseRepo
	professor  *mockProfessorRepo
	lattes     *mockLattesRepo
	student    *mockStudentRepo
	project    *mockProjectRepo
	assignment *mockAssignmentRepo
}

// newMockRepository 未绑定数据库的聚合，Transaction 直接执行回调
func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		department: newMockDepartmentRepo(),
		course:     newMockCourseRepo(),
		professor:  newMockProfessorRepo(),
		lattes:     newMockLattesRepo(),
		student:    newMockStudentRepo(),
		project:    newMockProjectRepo(),
		assignment: newMockAssignmentRepo(),
	}
	repo := &repository.Repository{
		Department: m.department,
		Course:     m.course,
		Professor:  m.professor,
		Lattes:     m.lattes,
		Student:    m.student,
		Project:    m.project,
		Assignment: m.assignment,
	}
	return repo, m
}
