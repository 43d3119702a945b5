package model

// Quiz 测验及其题目（组合关系，删除测验时级联删除题目）
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"size:255" json:"image"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Difficulty  string     `gorm:"size:50" json:"difficulty"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
