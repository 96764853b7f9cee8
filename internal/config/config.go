package config

import (
	"github.com/kikiru328/LLearn-sub001/pkg/config"
	"github.com/kikiru328/LLearn-sub001/pkg/logger"
	"go.uber.org/zap"
)

// 설정 파일 이름 (configs/{env}/llearn.yaml)
const serviceName = "llearn"

// Config 커리큘럼 서비스 설정 구조체
type Config struct {
	// 서비스 기본 정보
	Service struct {
		Name    string
		Version string
	}

	// HTTP 서버 설정
	Server struct {
		Port         string
		Timeout      int
		Debug        bool
		AllowOrigins []string
	}

	// 데이터베이스 설정
	Database struct {
		Host            string
		Port            int
		Name            string
		User            string
		Password        string
		SSLMode         string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime int
	}

	// Redis 설정
	Redis struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	// JWT 설정
	JWT struct {
		Secret            string
		AccessTokenExpiry int
	}

	// 인증 설정
	Auth struct {
		HashCost int
	}

	// 로그 설정
	Log struct {
		Level  string
		Format string
		Output string
	}

	// 로거 인스턴스
	Logger *zap.Logger
}

// Load 설정 파일을 로드하고 로거를 초기화합니다.
func Load() (*Config, error) {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	appConfig.Server.Port = cfg.GetString("server.port")
	appConfig.Server.Timeout = cfg.GetInt("server.timeout")
	appConfig.Server.Debug = cfg.GetBool("server.debug")
	appConfig.Server.AllowOrigins = cfg.GetStringSlice("server.allow_origins")

	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")

	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	appConfig.JWT.Secret = cfg.GetString("jwt.secret")
	appConfig.JWT.AccessTokenExpiry = cfg.GetInt("jwt.access_token_expiry")

	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Server.Debug,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
