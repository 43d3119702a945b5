package model

// QuizResult 每个 (用户, 测验) 至多保留一条结果，写入后不可变
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	UserID         uint `gorm:"not null;index;uniqueIndex:idx_user_quiz" json:"userId"`
	QuizID         uint `gorm:"not null;index;uniqueIndex:idx_user_quiz" json:"quizId"`
	Score          int  `gorm:"not null" json:"score"`
	CorrectAnswers int  `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int  `gorm:"not null" json:"totalQuestions"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
