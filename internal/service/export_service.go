package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pesquisa-fei/backend/internal/dto"
	"pesquisa-fei/backend/internal/model"
	"pesquisa-fei/backend/internal/repository"
)

// ErrExportGenerateFail 生成 Excel 文件失败
var ErrExportGenerateFail = errors.New("falha ao gerar arquivo Excel")

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response。
type ExportService interface {
	// ExportProjects 按列表过滤条件导出项目为 .xlsx，每个项目一行
	ExportProjects(ctx context.Context, req *dto.ProjectListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const exportSheet = "Projetos"

var exportHeaders = []string{
	"ID", "Tema", "Tipo", "Pendência", "Bolsa", "Duração (meses)",
	"Orientador", "Assessor", "Aluno",
}

// ═══════════════════════════════════════════════════════════
// ExportProjects 导出项目列表
// ═══════════════════════════════════════════════════════════
//
// 列：ID | Tema | Tipo | Pendência | Bolsa | Duração | 激活导师 | 激活评审人 | 激活学生
// 同一角色有多名激活参与者时以 "; " 连接。

func (s *exportService) ExportProjects(ctx context.Context, req *dto.ProjectListRequest) (*bytes.Buffer, string, error) {
	projects, _, err := s.repo.Project.List(ctx, toProjectFilters(req))
	if err != nil {
		s.logger.Error("查询导出项目失败", zap.Error(err))
		return nil, "", classify("exportar projetos", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		f.SetCellValue(exportSheet, cell(i+1, 1), h)
	}
	last, _ := excelize.ColumnNumberToName(len(exportHeaders))
	f.SetCellStyle(exportSheet, "A1", last+"1", headerStyle)
	f.SetColWidth(exportSheet, "A", "A", 8)
	f.SetColWidth(exportSheet, "B", "B", 40)
	f.SetColWidth(exportSheet, "C", "F", 22)
	f.SetColWidth(exportSheet, "G", last, 30)

	for r, p := range projects {
		row := r + 2
		funding := ""
		if p.Funding != nil {
			funding = string(*p.Funding)
		}
		values := []interface{}{
			p.ID,
			p.Theme,
			p.Type.Label(),
			p.Status.Label(),
			funding,
			p.DurationMonths,
			activeAdvisors(p.AdvisorAssignments),
			activeAssessors(p.AssessorAssignments),
			activeStudents(p.StudentAssignments),
		}
		for c, v := range values {
			f.SetCellValue(exportSheet, cell(c+1, row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("projetos_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func activeAdvisors(list []model.AdvisorAssignment) string {
	var names []string
	for _, a := range list {
		if a.Active && a.Professor != nil {
			names = append(names, a.Professor.Name)
		}
	}
	return strings.Join(names, "; ")
}

func activeAssessors(list []model.AssessorAssignment) string {
	var names []string
	for _, a := range list {
		if a.Active && a.Professor != nil {
			names = append(names, a.Professor.Name)
		}
	}
	return strings.Join(names, "; ")
}

func activeStudents(list []model.StudentAssignment) string {
	var names []string
	for _, a := range list {
		if a.Active && a.Student != nil {
			names = append(names, a.Student.Name)
		}
	}
	return strings.Join(names, "; ")
}
