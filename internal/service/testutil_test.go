package service

import (
	"testing"
	"time"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/pkg/logger"
	"quiz_hub_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
	monitoring.Init()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库只允许单连接，避免每个连接各拿一份空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizResult{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "service-test-secret",
			ExpireTime: 365 * 24 * time.Hour,
		},
	}
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), testConfig())
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(repository.NewQuizRepository(db))
}

func newResultService(db *gorm.DB) *ResultService {
	return NewResultService(
		repository.NewQuizResultRepository(db),
		repository.NewQuizRepository(db),
	)
}

func sampleQuiz(category string, questionCount int) *model.Quiz {
	quiz := &model.Quiz{
		Name:       "quiz-" + category,
		Category:   category,
		Difficulty: "easy",
	}
	for i := 0; i < questionCount; i++ {
		quiz.Questions = append(quiz.Questions, model.Question{
			QuestionText:  "question",
			Choices:       model.StringList{"a", "b", "c"},
			CorrectAnswer: i,
		})
	}
	return quiz
}
