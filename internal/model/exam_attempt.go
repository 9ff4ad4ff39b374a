package model

import "time"

const (
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
	AttemptAbandoned  = "abandoned"
)

// ExamAttempt 一次完整的答题会话（从开卷到提交）。
// swagger:model ExamAttempt
type ExamAttempt struct {
	UUIDBase
	ExamID       uint       `gorm:"index;type:bigint unsigned" json:"examId"`
	UserID       uint       `gorm:"index;type:bigint unsigned" json:"userId"`
	Status       string     `gorm:"size:20;default:'in_progress'" json:"status"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CorrectCount int        `gorm:"default:0" json:"correctCount"`
	Accuracy     int        `gorm:"default:0" json:"accuracy"` // 四舍五入的百分比
	TimeTaken    string     `gorm:"size:20" json:"timeTaken"`  // "MMm SSs"
	Pass         bool       `gorm:"default:false" json:"pass"`
	IsTimeout    bool       `gorm:"default:false" json:"isTimeout"` // 倒计时归零自动提交
}

func (ExamAttempt) TableName() string {
	return "exam_attempts"
}

// ExamAttemptAnswer 提交时落库的单题最终状态。
// swagger:model ExamAttemptAnswer
type ExamAttemptAnswer struct {
	BaseModel
	AttemptID       string `gorm:"index;type:varchar(36)" json:"attemptId"`
	QuestionID      uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	SelectedOption  string `gorm:"size:10" json:"selectedOption"` // 空串表示未作答
	Correct         bool   `gorm:"default:false" json:"correct"`
	Skipped         bool   `gorm:"default:false" json:"skipped"`
	MarkedForReview bool   `gorm:"default:false" json:"markedForReview"`
}

func (ExamAttemptAnswer) TableName() string {
	return "exam_attempt_answers"
}
