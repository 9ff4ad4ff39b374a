package model

import "time"

// CategoryAccuracy 某一课程类别下已完成测验的聚合正确率。
type CategoryAccuracy struct {
	Category string `json:"category"`
	Attempts int    `json:"attempts"`
	Accuracy int    `json:"accuracy"` // 平均百分比
}

// RoleMatch 单个岗位的匹配结果。
// swagger:model RoleMatch
type RoleMatch struct {
	Role      string   `json:"role"`
	Match     int      `json:"match"` // 百分比
	Strengths []string `json:"strengths,omitempty"`
}

// RoleRecommendationReport 岗位推荐图表的数据来源。
// swagger:model RoleRecommendationReport
type RoleRecommendationReport struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	TopRole     string             `json:"topRole"`
	Matches     []RoleMatch        `json:"matches"`
	Categories  []CategoryAccuracy `json:"categories"`
}
