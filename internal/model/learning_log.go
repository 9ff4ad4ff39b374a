package model

// swagger:model LearningLog
type LearningLog struct {
	BaseModel
	UserID   uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Activity string `gorm:"size:50" json:"activity"`
	Content  string `gorm:"type:text" json:"content"`
	Duration int    `gorm:"default:0" json:"duration"` // 秒
	Score    int    `gorm:"default:0" json:"score"`
}

func (LearningLog) TableName() string {
	return "learning_logs"
}
