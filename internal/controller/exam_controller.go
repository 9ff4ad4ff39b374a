package controller

import (
	"errors"
	"learnify_backend/internal/exam"
	"learnify_backend/internal/service"
	"learnify_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// attemptError 会话操作的统一错误映射。
func attemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExamNotFound), errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrExamNotPublished):
		util.Error(ctx, 403, "该测验尚未发布")
	case errors.Is(err, util.ErrAttemptFinished):
		util.Error(ctx, 409, "该测验已交卷")
	case errors.Is(err, util.ErrAttemptNotLive):
		util.Error(ctx, 404, "会话不存在或已结束")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, exam.ErrIndexOutOfRange):
		util.BadRequest(ctx, "题号越界")
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListExams godoc
// @Summary 测验列表
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Exam} "成功"
// @Router /api/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.ExamService.ListExams()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exams)
}

// StartExam godoc
// @Summary 开始测验
// @Description 创建答题会话并启动倒计时。已有进行中的会话时返回该会话。
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "测验ID"
// @Success 201 {object} util.Response{data=service.AttemptView} "会话已创建"
// @Failure 403 {object} util.Response "测验未发布"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/exams/{id}/start [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的测验ID")
		return
	}

	view, err := c.ExamService.Start(ctx.Request.Context(), claims.UserID, uint(id))
	if err != nil {
		attemptError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// GetAttempt godoc
// @Summary 会话视图
// @Description 进行中的会话返回实时状态；已完成的返回批改页。
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.AttemptView} "成功"
// @Failure 403 {object} util.Response "无权访问"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id} [get]
func (c *ExamController) GetAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.ExamService.View(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// swagger:model SelectOptionRequest
type SelectOptionRequest struct {
	Option string `json:"option" binding:"required"`
}

// SelectOption godoc
// @Summary 选择选项
// @Description 更新当前题的选中项；点击已选中的选项即取消选中
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Param   body body SelectOptionRequest true "选项编号"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id}/select [post]
func (c *ExamController) SelectOption(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SelectOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ExamService.SelectOption(claims.UserID, ctx.Param("id"), req.Option); err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model NavigateRequest
type NavigateRequest struct {
	Index *int `json:"index" binding:"required"`
}

// Navigate godoc
// @Summary 跳转题目
// @Description 离开当前题时提交其暂存答案，再跳到目标题（0 起始下标）
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Param   body body NavigateRequest true "目标题下标"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "题号越界"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id}/navigate [post]
func (c *ExamController) Navigate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ExamService.Navigate(claims.UserID, ctx.Param("id"), *req.Index); err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ToggleReview godoc
// @Summary 标记复习
// @Description 翻转当前题的"稍后复习"标记
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id}/review [post]
func (c *ExamController) ToggleReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ExamService.ToggleReview(claims.UserID, ctx.Param("id")); err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SubmitAttempt godoc
// @Summary 交卷
// @Description 结算成绩并停止倒计时。重复交卷返回既有成绩。
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=exam.Result} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id}/submit [post]
func (c *ExamController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ExamService.Submit(claims.UserID, ctx.Param("id"))
	if err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// AbandonAttempt godoc
// @Summary 放弃测验
// @Description 停止倒计时并作废本次会话，不计成绩
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/attempts/{id}/abandon [post]
func (c *ExamController) AbandonAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ExamService.Abandon(claims.UserID, ctx.Param("id")); err != nil {
		attemptError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListResults godoc
// @Summary 历史成绩
// @Description 当前用户已完成的全部测验成绩，按完成时间倒序
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ExamAttempt} "成功"
// @Router /api/results [get]
func (c *ExamController) ListResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ExamService.ListResults(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
