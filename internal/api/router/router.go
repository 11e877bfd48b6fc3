package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pesquisa-fei/backend/config"
	"pesquisa-fei/backend/internal/api/handler"
	"pesquisa-fei/backend/internal/api/middleware"
	"pesquisa-fei/backend/pkg/metrics"
	"pesquisa-fei/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时写接口不限流；db 为 nil 时健康检查不探测数据库
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	if cfg.Server.BodyLimitMB > 0 {
		r.Use(middleware.BodyLimit(cfg.Server.BodyLimitMB << 20))
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// ── 健康检查 ──
	r.GET("/health", healthCheck(db))

	// 写接口限流；避免把 nil 指针装进接口
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	writeLimit := middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 院系模块
		departments := v1.Group("/departamentos")
		{
			departments.GET("", h.Department.ListDepartments)
			departments.GET("/:id", h.Department.GetDepartment)
			departments.GET("/:id/professores-keywords", h.Department.GetProfessorKeywords)
		}

		// 教师模块
		professors := v1.Group("/professores")
		{
			professors.GET("", h.Professor.ListProfessors)
			professors.POST("", writeLimit, h.Professor.CreateProfessor)
			professors.GET("/:id", h.Professor.GetProfessor)
			professors.PUT("/:id", writeLimit, h.Professor.UpdateProfessor)
			professors.DELETE("/:id", writeLimit, h.Professor.DeleteProfessor)
			professors.GET("/:id/lattes", h.Professor.GetLattes)
			professors.GET("/:id/contagem-projetos", h.Professor.GetProjectCounts)
		}

		// 学生模块
		students := v1.Group("/alunos")
		{
			students.GET("", h.Student.ListStudents)
			students.POST("", writeLimit, h.Student.CreateStudent)
			students.GET("/:id", h.Student.GetStudent)
			students.PUT("/:id", writeLimit, h.Student.UpdateStudent)
			students.DELETE("/:id", writeLimit, h.Student.DeleteStudent)
			students.GET("/:id/historico", h.Student.GetHistory)
		}

		// 项目模块
		projects := v1.Group("/projetos")
		{
			projects.GET("", h.Project.ListProjects)
			projects.POST("", writeLimit, h.Project.CreateProject)
			projects.GET("/export", h.Export.ExportProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.PUT("/:id", writeLimit, h.Project.UpdateProject)
			projects.DELETE("/:id", writeLimit, h.Project.DeleteProject)
			projects.PUT("/:id/status", writeLimit, h.Project.UpdateStatus)
			projects.POST("/:id/associar-aluno", writeLimit, h.Project.AssociateStudent)
			projects.POST("/:id/associar-orientador", writeLimit, h.Project.AssociateAdvisor)
			projects.POST("/:id/associar-assessor", writeLimit, h.Project.AssociateAssessor)
			projects.POST("/:id/link-mongo", writeLimit, h.Project.LinkMongo)
			projects.POST("/:id/salvar-corretor", writeLimit, h.Project.SaveReviewerText)
			projects.POST("/:id/desativar-participante", writeLimit, h.Project.DeactivateParticipant)
			projects.GET("/:id/orientador-departamento", h.Project.GetAdvisorDepartment)
		}

		// Lattes 模块
		lattes := v1.Group("/lattes")
		{
			lattes.GET("", h.Lattes.ListLattes)
			lattes.POST("", writeLimit, h.Lattes.CreateLattes)
			lattes.GET("/:professor", h.Lattes.GetLattes)
			lattes.PUT("/:professor", writeLimit, h.Lattes.UpdateLattes)
			lattes.DELETE("/:professor", writeLimit, h.Lattes.DeleteLattes)
		}
		v1.GET("/lattes-keywords", h.Lattes.ListKeywords)
	}

	return r
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
