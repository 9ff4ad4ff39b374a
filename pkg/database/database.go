package database

import (
	"fmt"
	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.Exam{},
		&model.ExamQuestion{},
		&model.ExamAttempt{},
		&model.ExamAttemptAnswer{},
		&model.LearningLog{},
		&model.FAQ{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认 FAQ（首次启动时插入）
	var faqCount int64
	db.Model(&model.FAQ{}).Count(&faqCount)
	if faqCount == 0 {
		defaultFAQs := []model.FAQ{
			{Question: "What is the aptitude test?", Answer: "A timed multiple-choice assessment that measures where you are on your learning journey. Each attempt has a single session-wide countdown.", Category: "assessment", Order: 1, IsPublished: true},
			{Question: "Can I change an answer before submitting?", Answer: "Yes. Your selection is only locked in when you move to another question or submit the test. Clicking a selected option again deselects it.", Category: "assessment", Order: 2, IsPublished: true},
			{Question: "What happens when the timer runs out?", Answer: "The test is submitted automatically with whatever you have answered so far.", Category: "assessment", Order: 3, IsPublished: true},
			{Question: "How is the role recommendation computed?", Answer: "From the accuracy of your completed tests, aggregated per course category and matched against role profiles.", Category: "recommendation", Order: 4, IsPublished: true},
		}
		for _, f := range defaultFAQs {
			db.Create(&f)
		}
	}

	return db, nil
}
