package service

import (
	"errors"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/internal/util"
	"quiz_hub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ResultService struct {
	ResultRepo *repository.QuizResultRepository
	QuizRepo   *repository.QuizRepository
}

func NewResultService(resultRepo *repository.QuizResultRepository, quizRepo *repository.QuizRepository) *ResultService {
	return &ResultService{
		ResultRepo: resultRepo,
		QuizRepo:   quizRepo,
	}
}

// Record 每个 (用户, 测验) 只保留第一次结果；测验必须存在
func (s *ResultService) Record(userID, quizID uint, score, correctAnswers, totalQuestions int) (*model.QuizResult, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	exists, err := s.ResultRepo.ExistsForUserQuiz(userID, quizID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrResultExists
	}

	result := &model.QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		CorrectAnswers: correctAnswers,
		TotalQuestions: totalQuestions,
	}
	if err := s.ResultRepo.Create(result); err != nil {
		return nil, err
	}

	monitoring.ResultRecordedCounter.Inc()
	return result, nil
}

func (s *ResultService) ListForUser(userID uint) ([]model.QuizResult, error) {
	return s.ResultRepo.FindByUser(userID)
}
