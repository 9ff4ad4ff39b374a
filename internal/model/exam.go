package model

import (
	"encoding/json"
	"time"
)

// swagger:model Exam
type Exam struct {
	BaseModel
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	CourseID        *uint      `gorm:"index;type:bigint unsigned" json:"courseId,omitempty"`
	DurationSeconds int        `gorm:"default:0" json:"durationSeconds"` // 0 表示使用配置默认值
	PassThreshold   int        `gorm:"default:0" json:"passThreshold"`   // 百分比；0 表示使用配置默认值
	IsPublished     bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamOption 选项的外部数据形态，number 为稳定选项标识（"1".."4"）。
type ExamOption struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// swagger:model ExamQuestion
type ExamQuestion struct {
	BaseModel
	ExamID        uint            `gorm:"index;type:bigint unsigned" json:"examId"`
	Prompt        string          `gorm:"type:text;not null" json:"text"`
	Options       json.RawMessage `gorm:"type:json" json:"options"` // JSON: []ExamOption
	CorrectAnswer string          `gorm:"size:10;not null" json:"correctAnswer"`
	Explanation   string          `gorm:"type:text" json:"explanation"`
	Order         int             `gorm:"default:0" json:"order"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}
