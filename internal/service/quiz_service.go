package service

import (
	"math/rand"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/pkg/monitoring"
)

// 每个分类随机返回的测验数量上限
const randomQuizzesPerCategory = 3

type QuizService struct {
	QuizRepo *repository.QuizRepository
}

func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

// Create 测验及其题目在一个事务里写入，部分失败则全部回滚
func (s *QuizService) Create(quiz *model.Quiz) error {
	if err := s.QuizRepo.CreateWithQuestions(quiz); err != nil {
		return err
	}
	monitoring.QuizCreatedCounter.Inc()
	return nil
}

func (s *QuizService) GetByID(id uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByID(id)
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) Delete(id uint) error {
	return s.QuizRepo.Delete(id)
}

func (s *QuizService) Categories() ([]string, error) {
	return s.QuizRepo.DistinctCategories()
}

// RandomByCategory 每次调用都重新读库、重新抽样，不做任何缓存和固定种子。
// 没有测验的分类不会出现在结果里
func (s *QuizService) RandomByCategory() (map[string][]model.Quiz, error) {
	categories, err := s.QuizRepo.DistinctCategories()
	if err != nil {
		return nil, err
	}

	sampled := make(map[string][]model.Quiz, len(categories))
	for _, category := range categories {
		quizzes, err := s.QuizRepo.FindByCategory(category)
		if err != nil {
			return nil, err
		}
		if len(quizzes) == 0 {
			continue
		}

		rand.Shuffle(len(quizzes), func(i, j int) {
			quizzes[i], quizzes[j] = quizzes[j], quizzes[i]
		})
		if len(quizzes) > randomQuizzesPerCategory {
			quizzes = quizzes[:randomQuizzesPerCategory]
		}
		sampled[category] = quizzes
	}

	return sampled, nil
}
