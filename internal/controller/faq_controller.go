package controller

import (
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FAQController struct {
	FAQService *service.FAQService
}

func NewFAQController(faqService *service.FAQService) *FAQController {
	return &FAQController{FAQService: faqService}
}

// ListFAQs godoc
// @Summary 常见问题列表
// @Description 已发布的常见问题，可按分类过滤
// @Tags 帮助
// @Produce  json
// @Param   category query string false "分类"
// @Success 200 {object} util.Response{data=[]model.FAQ} "成功"
// @Router /api/faqs [get]
func (c *FAQController) ListFAQs(ctx *gin.Context) {
	faqs, err := c.FAQService.List(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, faqs)
}
