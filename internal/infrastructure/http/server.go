// Package http 는 Echo 기반 HTTP 서버와 라우팅을 담당합니다.
package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handlers "github.com/kikiru328/LLearn-sub001/internal/adapter/handler/http"
	"github.com/kikiru328/LLearn-sub001/internal/config"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
	"github.com/kikiru328/LLearn-sub001/internal/middleware/auth"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
	"github.com/kikiru328/LLearn-sub001/pkg/logger"
)

// Server HTTP 서버 구조체
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	db       *gorm.DB
	cache    repository.CacheRepository
	useCases *usecase.UseCases
	address  string
}

// NewServer HTTP 서버를 생성하고 공통 미들웨어를 설정합니다.
func NewServer(
	cfg *config.Config,
	zapLogger *zap.Logger,
	db *gorm.DB,
	cache repository.CacheRepository,
	useCases *usecase.UseCases,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// 요청 검증기
	e.Validator = newRequestValidator()

	// 중앙 에러 핸들러
	e.HTTPErrorHandler = handlers.NewErrorHandler(zapLogger)

	// 기본 미들웨어 설정
	e.Use(middleware.Recover())
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	allowOrigins := cfg.Server.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
	}))

	// Prometheus 메트릭 수집
	e.Use(echoprometheus.NewMiddleware(cfg.Service.Name))

	timeout := time.Duration(cfg.Server.Timeout) * time.Second
	e.Server.ReadTimeout = timeout
	e.Server.WriteTimeout = timeout
	e.Server.IdleTimeout = timeout

	return &Server{
		config:   cfg,
		logger:   zapLogger,
		echo:     e,
		db:       db,
		cache:    cache,
		useCases: useCases,
		address:  fmt.Sprintf(":%s", cfg.Server.Port),
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.echo
}

// Start 라우트를 등록하고 서버를 시작합니다.
func (s *Server) Start() error {
	s.setupRoutes()

	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
		zap.String("service", s.config.Service.Name),
	)

	if err := s.echo.Start(s.address); err != nil && err != nethttp.ErrServerClosed {
		return fmt.Errorf("HTTP 서버 시작 실패: %w", err)
	}
	return nil
}

// Shutdown 서버를 정상 종료합니다.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP 서버 종료 중...")
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}
	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}

// setupRoutes HTTP 라우트 등록
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(
		s.logger, s.db, s.cache, s.config.Service.Name, s.config.Service.Version,
	)
	authHandler := handlers.NewAuthHandler(s.logger, s.useCases.Auth)
	userHandler := handlers.NewUserHandler(s.logger, s.useCases.User)
	curriculumHandler := handlers.NewCurriculumHandler(s.logger, s.useCases.Curriculum)
	summaryHandler := handlers.NewSummaryHandler(s.logger, s.useCases.Summary)
	feedbackHandler := handlers.NewFeedbackHandler(s.logger, s.useCases.Feedback)
	commentHandler := handlers.NewCommentHandler(s.logger, s.useCases.Comment)
	likeHandler := handlers.NewLikeHandler(s.logger, s.useCases.Like)
	tagHandler := handlers.NewTagHandler(s.logger, s.useCases.Tag)
	categoryHandler := handlers.NewCategoryHandler(s.logger, s.useCases.Category)

	// 서비스 배너 및 헬스 체크
	s.echo.GET("/", healthHandler.Banner)
	s.echo.GET("/health", healthHandler.Liveness)
	s.echo.GET("/health/detailed", healthHandler.Detailed)
	s.echo.GET("/metrics", echoprometheus.NewHandler())

	v1 := s.echo.Group("/api/v1")

	// 공개 라우트 (인증 불필요)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/curriculums/public", curriculumHandler.ListPublic)
	v1.GET("/tags", tagHandler.List)
	v1.GET("/tags/popular", tagHandler.Popular)
	v1.GET("/tags/:id", tagHandler.Get)
	v1.GET("/categories", categoryHandler.ListActive)
	v1.GET("/categories/:id", categoryHandler.Get)

	// 보호 라우트 (JWT 인증 필요)
	protected := v1.Group("", auth.JWTMiddleware(auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	}))

	// 사용자
	protected.GET("/users/me", userHandler.Me)
	protected.PATCH("/users/me", userHandler.UpdateMe)
	protected.DELETE("/users/me", userHandler.Withdraw)
	protected.GET("/users", userHandler.List)
	protected.GET("/users/:id", userHandler.Get)
	protected.GET("/users/:id/summaries", summaryHandler.ListByUser)
	protected.GET("/users/:id/feedback", feedbackHandler.ListByUser)

	// 커리큘럼
	protected.POST("/curriculums", curriculumHandler.Create)
	protected.GET("/curriculums", curriculumHandler.ListMine)
	protected.GET("/curriculums/:id", curriculumHandler.Get)
	protected.PATCH("/curriculums/:id", curriculumHandler.Update)
	protected.DELETE("/curriculums/:id", curriculumHandler.Delete)
	protected.POST("/curriculums/:id/visibility", curriculumHandler.ToggleVisibility)
	protected.POST("/curriculums/:id/weeks", curriculumHandler.AddWeek)
	protected.PUT("/curriculums/:id/weeks/:week_number", curriculumHandler.UpdateWeek)
	protected.DELETE("/curriculums/:id/weeks/:week_number", curriculumHandler.RemoveWeek)

	// 레슨 별칭 라우트 (주차 관리와 동일 동작)
	protected.POST("/curriculums/:id/lessons", curriculumHandler.AddWeek)
	protected.PUT("/curriculums/:id/lessons/:week_number", curriculumHandler.UpdateWeek)
	protected.DELETE("/curriculums/:id/lessons/:week_number", curriculumHandler.RemoveWeek)
	protected.GET("/curriculums/:id/summaries", summaryHandler.ListByCurriculum)
	protected.POST("/curriculums/:id/summaries", summaryHandler.Create)
	protected.GET("/curriculums/:id/feedback", feedbackHandler.ListByCurriculum)

	// 요약
	protected.GET("/summaries/:id", summaryHandler.Get)
	protected.PATCH("/summaries/:id", summaryHandler.Update)
	protected.DELETE("/summaries/:id", summaryHandler.Delete)

	// 피드백 및 프롬프트 로그
	protected.POST("/summaries/:id/feedback", feedbackHandler.Create)
	protected.GET("/summaries/:id/feedback", feedbackHandler.GetBySummary)
	protected.DELETE("/feedback/:id", feedbackHandler.Delete)
	protected.POST("/summaries/:id/prompt-logs", feedbackHandler.RecordPromptLog)
	protected.GET("/summaries/:id/prompt-logs", feedbackHandler.ListPromptLogs)

	// 댓글
	protected.POST("/summaries/:id/comments", commentHandler.Create)
	protected.GET("/summaries/:id/comments", commentHandler.ListBySummary)
	protected.PUT("/comments/:id", commentHandler.Update)
	protected.DELETE("/comments/:id", commentHandler.Delete)

	// 좋아요
	protected.POST("/likes/:target_type/:id", likeHandler.Like)
	protected.DELETE("/likes/:target_type/:id", likeHandler.Unlike)
	protected.GET("/likes/:target_type/:id", likeHandler.Status)

	// 태그 (쓰기 작업)
	protected.POST("/tags", tagHandler.Create)
	protected.POST("/tags/resolve", tagHandler.Resolve)
	protected.POST("/tags/:id/release", tagHandler.Release)
	protected.DELETE("/tags/:id", tagHandler.Delete)

	// 카테고리 (관리자 쓰기 작업)
	protected.POST("/categories", categoryHandler.Create)
	protected.GET("/categories/all", categoryHandler.ListAll)
	protected.PATCH("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)
}
