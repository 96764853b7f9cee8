package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/adapter/repository"
	"github.com/kikiru328/LLearn-sub001/internal/config"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/crypto"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/db"
	"github.com/kikiru328/LLearn-sub001/internal/infrastructure/http"
	"github.com/kikiru328/LLearn-sub001/internal/usecase"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("커리큘럼 학습 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 3. 데이터베이스 연결 및 마이그레이션
	database, err := db.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("데이터베이스 초기화 실패", zap.Error(err))
	}
	defer func() {
		if err := db.Close(database, logger); err != nil {
			logger.Error("데이터베이스 종료 오류", zap.Error(err))
		}
	}()

	if err := db.Migrate(database, logger); err != nil {
		logger.Fatal("마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis 연결
	redisClient, err := db.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("Redis 초기화 실패", zap.Error(err))
	}
	defer redisClient.Close()

	cache := db.NewRedisCacheRepository(redisClient, logger)

	// 5. 레포지토리 초기화
	repositories := repository.InitRepositories(database, logger)

	// 6. 유스케이스 초기화
	hasher := crypto.NewBcryptHasher(cfg.Auth.HashCost)
	useCases := usecase.InitUseCases(cfg, logger, repositories, cache, hasher)

	// 7. HTTP 서버 생성 및 시작
	server := http.NewServer(cfg, logger, database, cache, useCases)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	// 8. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
