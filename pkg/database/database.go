package database

import (
	"fmt"
	"log"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizResult{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 空库时写入一份示例测验，方便前端联调
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count == 0 {
		sample := &model.Quiz{
			Name:        "Go 基础小测",
			Description: "十分钟了解你的 Go 语言基础",
			Category:    "programming",
			Difficulty:  "easy",
			Questions: []model.Question{
				{
					QuestionText:  "Go 中声明变量的关键字是？",
					Choices:       model.StringList{"var", "let", "dim", "def"},
					CorrectAnswer: 0,
					Explanation:   "var 用于声明变量，:= 是短变量声明",
					Category:      "programming",
					Difficulty:    "easy",
				},
				{
					QuestionText:  "哪个类型不是 Go 的内建类型？",
					Choices:       model.StringList{"rune", "byte", "decimal", "complex128"},
					CorrectAnswer: 2,
					Explanation:   "Go 没有内建的 decimal 类型",
					Category:      "programming",
					Difficulty:    "easy",
				},
			},
		}
		db.Create(sample)
	}

	return db, nil
}
