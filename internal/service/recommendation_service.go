package service

import (
	"math"
	"sort"
	"time"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
)

// roleProfile 岗位画像：各课程类别在该岗位中的权重，权重和为 1。
type roleProfile struct {
	Role    string
	Weights map[string]float64
}

var roleProfiles = []roleProfile{
	{Role: "Backend Developer", Weights: map[string]float64{"logic": 0.4, "data": 0.3, "fundamentals": 0.3}},
	{Role: "Frontend Developer", Weights: map[string]float64{"web": 0.5, "fundamentals": 0.3, "logic": 0.2}},
	{Role: "Data Analyst", Weights: map[string]float64{"data": 0.5, "logic": 0.3, "fundamentals": 0.2}},
	{Role: "QA Engineer", Weights: map[string]float64{"fundamentals": 0.4, "logic": 0.4, "web": 0.2}},
}

// strengthThreshold 类别正确率达到该值即视为优势项。
const strengthThreshold = 70

type RecommendationService struct {
	AttemptRepo *repository.AttemptRepository
}

func NewRecommendationService(attemptRepo *repository.AttemptRepository) *RecommendationService {
	return &RecommendationService{AttemptRepo: attemptRepo}
}

// GetRoleRecommendation 基于用户已完成测验的分类正确率生成岗位匹配报告。
// 没有任何已完成测验时返回空报告，由前端提示先去做测验。
func (s *RecommendationService) GetRoleRecommendation(userID uint) (*model.RoleRecommendationReport, error) {
	categories, err := s.AttemptRepo.AggregateByCategory(userID)
	if err != nil {
		return nil, err
	}

	report := &model.RoleRecommendationReport{
		GeneratedAt: time.Now(),
		Categories:  categories,
	}
	if len(categories) == 0 {
		return report, nil
	}

	report.Matches = computeMatches(categories)
	report.TopRole = report.Matches[0].Role
	return report, nil
}

// computeMatches 纯函数：类别正确率 → 按匹配度降序的岗位列表。
// 某岗位权重里缺失的类别按 0 计，匹配度即已覆盖类别的加权正确率。
func computeMatches(categories []model.CategoryAccuracy) []model.RoleMatch {
	accuracy := make(map[string]int, len(categories))
	for _, c := range categories {
		accuracy[c.Category] = c.Accuracy
	}

	matches := make([]model.RoleMatch, 0, len(roleProfiles))
	for _, profile := range roleProfiles {
		score := 0.0
		var strengths []string
		for category, weight := range profile.Weights {
			acc, ok := accuracy[category]
			if !ok {
				continue
			}
			score += weight * float64(acc)
			if acc >= strengthThreshold {
				strengths = append(strengths, category)
			}
		}
		sort.Strings(strengths)
		matches = append(matches, model.RoleMatch{
			Role:      profile.Role,
			Match:     int(math.Round(score)),
			Strengths: strengths,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Match != matches[j].Match {
			return matches[i].Match > matches[j].Match
		}
		return matches[i].Role < matches[j].Role
	})
	return matches
}
