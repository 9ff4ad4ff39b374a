package controller

import (
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRoleRecommendation godoc
// @Summary 岗位推荐
// @Description 基于已完成测验的分类正确率给出岗位匹配度
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.RoleRecommendationReport} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendation/roles [get]
func (c *RecommendationController) GetRoleRecommendation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.RecommendationService.GetRoleRecommendation(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
