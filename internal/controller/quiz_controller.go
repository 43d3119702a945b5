package controller

import (
	"errors"
	"strconv"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	QuestionText string   `json:"questionText" binding:"required"`
	Choices      []string `json:"choices" binding:"required"`
	// 0 基下标，服务端不做范围校验
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Image         string `json:"image"`
}

// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Category    string            `json:"category"`
	Difficulty  string            `json:"difficulty"`
	Questions   []QuestionRequest `json:"questions"`
}

// Create godoc
// @Summary 创建测验
// @Description 一个事务内写入测验及其全部题目，任一失败则整体回滚
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   body body CreateQuizRequest true "测验及题目"
// @Success 201 {object} util.Response{data=model.Quiz} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "写入失败"
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
	}
	for _, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, model.Question{
			QuestionText:  q.QuestionText,
			Choices:       model.StringList(q.Choices),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Category:      q.Category,
			Difficulty:    q.Difficulty,
			Image:         q.Image,
		})
	}

	if err := c.QuizService.Create(quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// Get godoc
// @Summary 获取单个测验
// @Description 返回测验及其题目（按插入顺序）
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, quiz)
}

// List godoc
// @Summary 测验列表
// @Description 全部测验，按创建时间倒序，附带题目
// @Tags 测验
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Quiz} "成功"
// @Router /api/quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.QuizService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}

// RandomByCategory godoc
// @Summary 按分类随机抽取测验
// @Description 每个分类至多 3 个，每次调用重新抽样
// @Tags 测验
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/quizzes/random-by-category [get]
func (c *QuizController) RandomByCategory(ctx *gin.Context) {
	sampled, err := c.QuizService.RandomByCategory()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sampled)
}

// Delete godoc
// @Summary 删除测验
// @Description 级联删除其全部题目；历史结果保留
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	if err := c.QuizService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// Categories godoc
// @Summary 分类列表
// @Description 当前存在测验的全部分类名
// @Tags 测验
// @Produce  json
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Router /api/quiz-categories [get]
func (c *QuizController) Categories(ctx *gin.Context) {
	categories, err := c.QuizService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}
