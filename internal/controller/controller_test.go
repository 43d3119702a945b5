package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/middleware"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/pkg/logger"
	"quiz_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
	monitoring.Init()
}

// newTestServer 和生产路由保持同一张表：公共接口 + 带鉴权的接口
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Quiz{}, &model.Question{}, &model.QuizResult{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "controller-test-secret",
			ExpireTime: 365 * 24 * time.Hour,
		},
	}

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	resultRepo := repository.NewQuizResultRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	quizService := service.NewQuizService(quizRepo)
	resultService := service.NewResultService(resultRepo, quizRepo)

	auth := NewAuthController(authService)
	quiz := NewQuizController(quizService)
	result := NewResultController(resultService, authService)
	health := NewHealthController(db)

	router := gin.New()
	public := router.Group("/api")
	{
		public.GET("/health", health.HealthCheck)
		public.POST("/users", auth.Register)
		public.POST("/token", auth.Login)
		public.POST("/quizzes", quiz.Create)
		public.GET("/quizzes", quiz.List)
		public.GET("/quizzes/random-by-category", quiz.RandomByCategory)
		public.GET("/quizzes/:id", quiz.Get)
		public.DELETE("/quizzes/:id", quiz.Delete)
		public.GET("/quiz-categories", quiz.Categories)
	}
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/users/me", auth.Me)
		authGroup.DELETE("/users/me", auth.DeleteMe)
		authGroup.POST("/quiz-results", result.Record)
		authGroup.GET("/quiz-results", result.List)
	}

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return envelope.Data
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAccountFlow(t *testing.T) {
	router := newTestServer(t)

	// 注册
	w := doJSON(t, router, http.MethodPost, "/api/users", "", gin.H{
		"email":    "alice@example.com",
		"username": "alice",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	token, _ := decodeData(t, w)["token"].(string)
	if token == "" {
		t.Fatal("no token in register response")
	}

	// 重复注册 → 400 冲突
	w = doJSON(t, router, http.MethodPost, "/api/users", "", gin.H{
		"email":    "alice@example.com",
		"username": "someone-else",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}

	// 未注册邮箱登录 → 401
	w = doJSON(t, router, http.MethodPost, "/api/token", "", gin.H{"email": "nobody@example.com"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown login status = %d, want 401", w.Code)
	}

	// 正常登录
	w = doJSON(t, router, http.MethodPost, "/api/token", "", gin.H{"email": "alice@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	// 身份解析
	w = doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	if email, _ := decodeData(t, w)["email"].(string); email != "alice@example.com" {
		t.Errorf("me email = %q", email)
	}

	// 无令牌 → 401 + 质询头
	w = doJSON(t, router, http.MethodGet, "/api/users/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me without token status = %d, want 401", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Error("401 without WWW-Authenticate challenge")
	}

	// 注销账户后令牌主体不再可解析 → 401
	w = doJSON(t, router, http.MethodDelete, "/api/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete me status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after deletion status = %d, want 401", w.Code)
	}
}

func TestQuizAndResultFlow(t *testing.T) {
	router := newTestServer(t)

	// 创建测验
	w := doJSON(t, router, http.MethodPost, "/api/quizzes", "", gin.H{
		"name":       "capitals",
		"category":   "geo",
		"difficulty": "easy",
		"questions": []gin.H{
			{"questionText": "Capital of France?", "choices": []string{"Paris", "Lyon"}, "correctAnswer": 0},
			{"questionText": "Capital of Spain?", "choices": []string{"Madrid"}, "correctAnswer": 7},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create quiz status = %d, body %s", w.Code, w.Body.String())
	}
	quizID := uint(decodeData(t, w)["id"].(float64))

	// 读取并核对题目顺序和越界下标
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", quizID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get quiz status = %d", w.Code)
	}
	questions := decodeData(t, w)["questions"].([]interface{})
	if len(questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(questions))
	}
	second := questions[1].(map[string]interface{})
	if second["correctAnswer"].(float64) != 7 {
		t.Errorf("out-of-range correctAnswer not preserved: %v", second["correctAnswer"])
	}

	// 不存在的测验 → 404
	w = doJSON(t, router, http.MethodGet, "/api/quizzes/99999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing quiz status = %d, want 404", w.Code)
	}

	// 注册用户并记录结果
	w = doJSON(t, router, http.MethodPost, "/api/users", "", gin.H{
		"email":    "bob@example.com",
		"username": "bob",
	})
	token, _ := decodeData(t, w)["token"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/quiz-results", token, gin.H{
		"quizId":         quizID,
		"score":          50,
		"correctAnswers": 1,
		"totalQuestions": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record result status = %d, body %s", w.Code, w.Body.String())
	}

	// 重复提交 → 400 冲突
	w = doJSON(t, router, http.MethodPost, "/api/quiz-results", token, gin.H{
		"quizId":         quizID,
		"score":          100,
		"correctAnswers": 2,
		"totalQuestions": 2,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate result status = %d, want 400", w.Code)
	}

	// 不存在的测验记录结果 → 404
	w = doJSON(t, router, http.MethodPost, "/api/quiz-results", token, gin.H{
		"quizId": 88888,
		"score":  1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("result for missing quiz status = %d, want 404", w.Code)
	}

	// 删除测验：级联删题目，结果保留
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/quizzes/%d", quizID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete quiz status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", quizID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted quiz status = %d, want 404", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/quiz-results", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list results status = %d", w.Code)
	}
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listEnvelope); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if len(listEnvelope.Data) != 1 {
		t.Errorf("result count after quiz deletion = %d, want 1 (results retained)", len(listEnvelope.Data))
	}

	// 再删一次 → 404
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/quizzes/%d", quizID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("double delete status = %d, want 404", w.Code)
	}
}
