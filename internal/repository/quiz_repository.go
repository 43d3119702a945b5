package repository

import (
	"quiz_hub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// CreateWithQuestions 先插测验行，再按提交顺序逐条插题目，整体一个事务：
// 任何一条插入失败则全部回滚
func (r *QuizRepository) CreateWithQuestions(quiz *model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions := quiz.Questions
		quiz.Questions = nil

		if err := tx.Create(quiz).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}

		quiz.Questions = questions
		return nil
	})
}

func withOrderedQuestions(db *gorm.DB) *gorm.DB {
	// 题目按插入顺序返回
	return db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	})
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := withOrderedQuestions(r.DB).First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := withOrderedQuestions(r.DB).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByCategory(category string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := withOrderedQuestions(r.DB).
		Where("category = ?", category).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.Quiz{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// Delete 删除测验并级联删除其全部题目；不存在时返回 gorm.ErrRecordNotFound。
// 结果表刻意不动，保留历史记录
func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Delete(&model.Quiz{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
