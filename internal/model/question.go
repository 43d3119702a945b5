package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList 以 JSON 字符串数组形式落库的选项列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Question 题目只随所属测验一起创建，不支持单独更新或删除
// swagger:model Question
type Question struct {
	BaseModel
	QuizID       uint       `gorm:"index;not null" json:"quizId"`
	QuestionText string     `gorm:"type:text;not null" json:"questionText"`
	Choices      StringList `gorm:"type:json" json:"choices"`
	// 0 基下标，存储层不做范围校验，越界值原样保存
	CorrectAnswer int    `gorm:"not null" json:"correctAnswer"`
	Explanation   string `gorm:"type:text" json:"explanation"`
	Category      string `gorm:"size:100" json:"category"`
	Difficulty    string `gorm:"size:50" json:"difficulty"`
	Image         string `gorm:"size:255" json:"image"`
}

func (Question) TableName() string {
	return "questions"
}
