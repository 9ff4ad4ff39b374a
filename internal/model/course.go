package model

// Course 学习旅程中的一门课程。Category 参与岗位推荐的按类聚合。
// swagger:model Course
type Course struct {
	BaseModel
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:50;index" json:"category"` // logic, data, web, fundamentals
	Icon        string         `gorm:"size:255" json:"icon"`
	Order       int            `gorm:"default:0" json:"order"`
	IsPublished bool           `gorm:"default:false" json:"isPublished"`
	Modules     []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseModule
type CourseModule struct {
	BaseModel
	CourseID   uint   `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Summary    string `gorm:"type:text" json:"summary"`
	ContentURL string `gorm:"size:512" json:"contentUrl"`
	Duration   int    `gorm:"default:0" json:"duration"` // 分钟
	Order      int    `gorm:"default:0" json:"order"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
