package model

// swagger:model FAQ
type FAQ struct {
	BaseModel
	Question    string `gorm:"size:500;not null" json:"question"`
	Answer      string `gorm:"type:text;not null" json:"answer"`
	Category    string `gorm:"size:50" json:"category"`
	Order       int    `gorm:"default:0" json:"order"`
	IsPublished bool   `gorm:"default:true" json:"isPublished"`
}

func (FAQ) TableName() string {
	return "faqs"
}
