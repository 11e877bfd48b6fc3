package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
	"pesquisa-fei/backend/internal/testutil"
	apperrors "pesquisa-fei/backend/pkg/errors"
)

func setup(t *testing.T) (*repository.Repository, *gorm.DB, *testutil.Fixture) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	return repository.NewRepository(db), db, testutil.SeedBasic(t, db)
}

func advisor(projectID, professorID int64) *model.AdvisorAssignment {
	return &model.AdvisorAssignment{AssignmentBase: model.NewAssignmentBase(), ProjectID: projectID, ProfessorID: professorID}
}

func student(projectID, studentID int64) *model.StudentAssignment {
	return &model.StudentAssignment{AssignmentBase: model.NewAssignmentBase(), ProjectID: projectID, StudentID: studentID}
}

// ═══════════════════════════════════════════════════════════
// ProjectRepository
// ═══════════════════════════════════════════════════════════

func TestProjectRepo_GetByIDIdempotent(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, advisor(p.ID, fx.Professor.ID)))
	require.NoError(t, repo.Assignment.CreateStudent(ctx, student(p.ID, fx.Student.ID)))

	first, err := repo.Project.GetByID(ctx, p.ID)
	require.NoError(t, err)
	second, err := repo.Project.GetByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.AdvisorAssignments, 1)
	require.NotNil(t, first.AdvisorAssignments[0].Professor)
	assert.Equal(t, "Prof. P", first.AdvisorAssignments[0].Professor.Name)
	require.Len(t, first.StudentAssignments, 1)
	require.NotNil(t, first.StudentAssignments[0].Student)
	assert.Empty(t, first.AssessorAssignments)
}

func TestProjectRepo_GetByIDNotFound(t *testing.T) {
	repo, _, _ := setup(t)
	_, err := repo.Project.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepo_ListFilters(t *testing.T) {
	repo, db, _ := setup(t)
	ctx := context.Background()

	testutil.NewProject(t, db, model.ProjectTypeScientificInitiation)
	tcc := testutil.NewProject(t, db, model.ProjectTypeThesis)
	fei := model.FundingFEI
	tcc.Funding = &fei
	require.NoError(t, repo.Project.Save(ctx, tcc))

	typ := model.ProjectTypeThesis
	list, total, err := repo.Project.List(ctx, &repository.ProjectFilters{Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, tcc.ID, list[0].ID)

	list, total, err = repo.Project.List(ctx, &repository.ProjectFilters{Funding: &fei})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	list, total, err = repo.Project.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}

// ═══════════════════════════════════════════════════════════
// AssignmentRepository
// ═══════════════════════════════════════════════════════════

func TestAssignmentRepo_SingleActiveHook(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	ic := testutil.NewProject(t, db, model.ProjectTypeScientificInitiation)
	other := testutil.NewProfessor(t, db, "Prof. Q", "q@fei.edu.br")

	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, advisor(ic.ID, fx.Professor.ID)))

	err := repo.Assignment.CreateAdvisor(ctx, advisor(ic.ID, other.ID))
	var violation *apperrors.RuleViolationError
	require.True(t, errors.As(err, &violation), "期望 RuleViolationError，实际: %v", err)
	assert.Equal(t, apperrors.RuleSingleActiveAdvisor, violation.Rule)

	// 非激活记录不受限制
	inactive := advisor(ic.ID, other.ID)
	inactive.Active = false
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, inactive))

	// 通过 Save 重新激活同样被拒绝
	inactive.Active = true
	err = repo.Assignment.Save(ctx, inactive)
	assert.True(t, apperrors.IsRuleViolation(err), "期望 RuleViolationError，实际: %v", err)

	n, err := repo.Assignment.CountActive(ctx, ic.ID, model.RoleAdvisor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAssignmentRepo_SaveSelfIsAllowed(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	ic := testutil.NewProject(t, db, model.ProjectTypeScientificInitiation)
	a := student(ic.ID, fx.Student.ID)
	require.NoError(t, repo.Assignment.CreateStudent(ctx, a))

	// 更新自身不与自己冲突
	a.StartDate = datatypes.Date(time.Now().AddDate(0, -1, 0))
	require.NoError(t, repo.Assignment.Save(ctx, a))
}

func TestAssignmentRepo_DuplicatePair(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeMasters)
	require.NoError(t, repo.Assignment.CreateStudent(ctx, student(p.ID, fx.Student.ID)))

	err := repo.Assignment.CreateStudent(ctx, student(p.ID, fx.Student.ID))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAssignmentRepo_ForeignKey(t *testing.T) {
	repo, db, _ := setup(t)

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	err := repo.Assignment.CreateStudent(context.Background(), student(p.ID, 9999))
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestAssignmentRepo_ListActiveAndDeactivate(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	require.NoError(t, repo.Assignment.CreateStudent(ctx, student(p.ID, fx.Student.ID)))

	active, err := repo.Assignment.ListActive(ctx, p.ID, model.RoleStudent)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, fx.Student.ID, active[0].ParticipantID())

	active[0].Base().Active = false
	require.NoError(t, repo.Assignment.Save(ctx, active[0]))

	active, err = repo.Assignment.ListActive(ctx, p.ID, model.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = repo.Assignment.ListActive(ctx, p.ID, model.ParticipantRole("coordenador"))
	assert.Error(t, err)
}

func TestAssignmentRepo_FirstAdvisorPrefersActive(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	other := testutil.NewProfessor(t, db, "Prof. Q", "q@fei.edu.br")

	old := advisor(p.ID, other.ID)
	old.Active = false
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, old))
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, advisor(p.ID, fx.Professor.ID)))

	first, err := repo.Assignment.FirstAdvisor(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.Professor.ID, first.ProfessorID)
	require.NotNil(t, first.Professor)
	require.NotNil(t, first.Professor.Department)
	assert.Equal(t, "Eng", first.Professor.Department.Name)

	ok, err := repo.Assignment.IsActiveAdvisor(ctx, p.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ═══════════════════════════════════════════════════════════
// Transaction / Lattes / Student
// ═══════════════════════════════════════════════════════════

func TestRepository_TransactionRollback(t *testing.T) {
	repo, db, _ := setup(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Professor.Create(ctx, &model.Professor{Name: "Prof. T", Email: "t@fei.edu.br"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int64
	require.NoError(t, db.Model(&model.Professor{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestLattesRepo_ListKeywordsByDepartment(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	outsider := testutil.NewProfessor(t, db, "Prof. Q", "q@fei.edu.br")
	require.NoError(t, repo.Lattes.Create(ctx, &model.ProfessorLattes{
		ProfessorID: fx.Professor.ID, Code: "L1", Link: "http://lattes.cnpq.br/1", Keywords: "redes",
	}))
	require.NoError(t, repo.Lattes.Create(ctx, &model.ProfessorLattes{
		ProfessorID: outsider.ID, Code: "L2", Link: "http://lattes.cnpq.br/2", Keywords: "grafos",
	}))

	all, err := repo.Lattes.ListKeywords(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inDept, err := repo.Lattes.ListKeywords(ctx, &fx.Department.ID)
	require.NoError(t, err)
	require.Len(t, inDept, 1)
	assert.Equal(t, "redes", inDept[0].Keywords)

	err = repo.Lattes.Create(ctx, &model.ProfessorLattes{
		ProfessorID: fx.Professor.ID, Code: "L3", Link: "http://lattes.cnpq.br/3",
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestStudentRepo_HistoryAndSearch(t *testing.T) {
	repo, _, fx := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Student.CreateHistory(ctx, &model.StudentHistory{
		StudentID: fx.Student.ID, DepartmentID: fx.Department.ID, CourseCode: "CC1010", Approved: true,
	}))

	history, err := repo.Student.ListHistory(ctx, fx.Student.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "CC1010", history[0].CourseCode)

	found, err := repo.Student.List(ctx, "  ALUNO s ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Course)
	assert.Equal(t, "CS", found[0].Course.Name)
}

// ═══════════════════════════════════════════════════════════
// 外键方向 / 更新 / 删除
// ═══════════════════════════════════════════════════════════

func TestSchema_ForeignKeyDirection(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	// 父表先写入不应依赖子表
	dept := &model.Department{Name: "Eng"}
	require.NoError(t, db.Create(dept).Error)
	prof := &model.Professor{Name: "Prof. P", Email: "p@fei.edu.br"}
	require.NoError(t, db.Create(prof).Error)

	// 子表引用不存在的父记录
	assert.ErrorIs(t, db.Create(&model.Course{Name: "CS", DepartmentID: 9999}).Error, gorm.ErrForeignKeyViolated)
	assert.ErrorIs(t, db.Create(&model.Student{
		Name: "Aluno S", Email: "s@fei.edu.br", Phone: "11999990000", CourseID: 9999,
	}).Error, gorm.ErrForeignKeyViolated)
	assert.ErrorIs(t, db.Create(&model.ProfessorLattes{
		ProfessorID: 9999, Code: "L1", Link: "http://lattes.cnpq.br/1",
	}).Error, gorm.ErrForeignKeyViolated)

	// 删除院系级联删除课程
	course := &model.Course{Name: "CS", DepartmentID: dept.ID}
	require.NoError(t, db.Create(course).Error)
	require.NoError(t, db.Delete(dept).Error)

	var n int64
	require.NoError(t, db.Model(&model.Course{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestSchema_CourseWithStudentsIsRestricted(t *testing.T) {
	_, db, fx := setup(t)

	assert.ErrorIs(t, db.Delete(fx.Course).Error, gorm.ErrForeignKeyViolated)
	assert.ErrorIs(t, db.Delete(fx.Department).Error, gorm.ErrForeignKeyViolated)
}

func TestProjectRepo_SaveSkipsAssociations(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, advisor(p.ID, fx.Professor.ID)))

	loaded, err := repo.Project.GetByID(ctx, p.ID)
	require.NoError(t, err)
	other := testutil.NewProfessor(t, db, "Prof. Q", "q@fei.edu.br")
	loaded.Theme = "Tema novo"
	loaded.AdvisorAssignments[0].Professor.Name = "Renomeado"
	loaded.AdvisorAssignments = append(loaded.AdvisorAssignments, *advisor(p.ID, other.ID))
	require.NoError(t, repo.Project.Save(ctx, loaded))

	reloaded, err := repo.Project.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tema novo", reloaded.Theme)
	require.Len(t, reloaded.AdvisorAssignments, 1)
	assert.Equal(t, "Prof. P", reloaded.AdvisorAssignments[0].Professor.Name)
}

func TestProfessorRepo_UpdateAndDelete(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	prof, err := repo.Professor.GetByID(ctx, fx.Professor.ID)
	require.NoError(t, err)
	prof.Name = "Prof. Atualizado"
	prof.DepartmentID = nil
	require.NoError(t, repo.Professor.Update(ctx, prof))

	got, err := repo.Professor.GetByID(ctx, fx.Professor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prof. Atualizado", got.Name)
	assert.Nil(t, got.DepartmentID)

	other := testutil.NewProfessor(t, db, "Prof. Q", "q@fei.edu.br")
	other.Email = "p@fei.edu.br"
	assert.ErrorIs(t, repo.Professor.Update(ctx, other), gorm.ErrDuplicatedKey)

	require.NoError(t, repo.Professor.Delete(ctx, fx.Professor.ID))
	_, err = repo.Professor.GetByID(ctx, fx.Professor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Professor.Delete(ctx, fx.Professor.ID), gorm.ErrRecordNotFound)
}

func TestStudentRepo_UpdateAndDelete(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	require.NoError(t, repo.Assignment.CreateStudent(ctx, student(p.ID, fx.Student.ID)))
	require.NoError(t, repo.Student.CreateHistory(ctx, &model.StudentHistory{
		StudentID: fx.Student.ID, DepartmentID: fx.Department.ID, CourseCode: "CC1010", Approved: true,
	}))

	s, err := repo.Student.GetByID(ctx, fx.Student.ID)
	require.NoError(t, err)
	s.Phone = "11911112222"
	require.NoError(t, repo.Student.Update(ctx, s))
	got, err := repo.Student.GetByID(ctx, fx.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, "11911112222", got.Phone)

	s.CourseID = 9999
	assert.ErrorIs(t, repo.Student.Update(ctx, s), gorm.ErrForeignKeyViolated)

	require.NoError(t, repo.Student.Delete(ctx, fx.Student.ID))
	history, err := repo.Student.ListHistory(ctx, fx.Student.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
	active, err := repo.Assignment.ListActive(ctx, p.ID, model.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, repo.Student.Delete(ctx, fx.Student.ID), gorm.ErrRecordNotFound)
}

func TestProjectAndLattesRepo_Delete(t *testing.T) {
	repo, db, fx := setup(t)
	ctx := context.Background()

	p := testutil.NewProject(t, db, model.ProjectTypeThesis)
	require.NoError(t, repo.Assignment.CreateAdvisor(ctx, advisor(p.ID, fx.Professor.ID)))
	require.NoError(t, repo.Lattes.Create(ctx, &model.ProfessorLattes{
		ProfessorID: fx.Professor.ID, Code: "L1", Link: "http://lattes.cnpq.br/1",
	}))

	require.NoError(t, repo.Project.Delete(ctx, p.ID))
	_, err := repo.Project.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var n int64
	require.NoError(t, db.Model(&model.AdvisorAssignment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
	assert.ErrorIs(t, repo.Project.Delete(ctx, p.ID), gorm.ErrRecordNotFound)

	require.NoError(t, repo.Lattes.Delete(ctx, fx.Professor.ID))
	_, err = repo.Lattes.GetByProfessor(ctx, fx.Professor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Lattes.Delete(ctx, fx.Professor.ID), gorm.ErrRecordNotFound)
}
