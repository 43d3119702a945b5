package controller

import (
	"errors"

	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
	AuthService   *service.AuthService
}

func NewResultController(resultService *service.ResultService, authService *service.AuthService) *ResultController {
	return &ResultController{
		ResultService: resultService,
		AuthService:   authService,
	}
}

// swagger:model RecordResultRequest
type RecordResultRequest struct {
	QuizID         uint `json:"quizId" binding:"required"`
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions"`
}

// Record godoc
// @Summary 记录测验结果
// @Description 每个测验只保留第一次结果，重复提交返回冲突
// @Tags 结果
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body RecordResultRequest true "测验结果"
// @Success 201 {object} util.Response{data=model.QuizResult} "创建成功"
// @Failure 400 {object} util.Response "参数错误或结果已存在"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quiz-results [post]
func (c *ResultController) Record(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ResultService.Record(user.ID, req.QuizID, req.Score, req.CorrectAnswers, req.TotalQuestions)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrResultExists):
			util.BadRequest(ctx, util.ErrResultExists.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// List godoc
// @Summary 我的测验结果
// @Description 当前用户的全部结果，按创建时间倒序
// @Tags 结果
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizResult} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/quiz-results [get]
func (c *ResultController) List(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ResultService.ListForUser(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}
