package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/question"
	"feedback360-backend/middleware"
	"feedback360-backend/models"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type questionApiController struct {
	controllers.BaseAPIController
}

func InitQuestionApiRouters(app fiber.Router) {
	controller := questionApiController{}
	app.Route("questions", func(router fiber.Router) {
		router.Get("by-relationship/:relationship", controller.listByRelationship)
		router.Use(middleware.HRAdminRole())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put("/:id", controller.update)
		router.Delete("/:id", controller.deactivate)
	})
}

// @Summary Вопросы категории отношений
// @Tags Вопросы
// @Description Активные вопросы для категории отношений
// @Param	relationship	path	string	true	"категория отношений"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/by-relationship/{relationship} [get]
func (c *questionApiController) listByRelationship(ctx *fiber.Ctx) error {
	relationship := models.RelationshipType(ctx.Params("relationship"))
	if !relationship.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестная категория отношений"))
	}
	list, err := question.Instance.ListByRelationship(relationship)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения вопросов"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список вопросов
// @Tags Вопросы
// @Description Все вопросы, включая неактивные
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions [get]
func (c *questionApiController) list(ctx *fiber.Ctx) error {
	list, err := question.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения списка вопросов"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание вопроса
// @Tags Вопросы
// @Description Создание вопроса
// @Param	body				body		feedbackapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions [post]
func (c *questionApiController) create(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := question.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка создания вопроса"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление вопроса
// @Tags Вопросы
// @Description Обновление вопроса
// @Param	id	path	string	true	"идентификатор вопроса"
// @Param	body				body		feedbackapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [put]
func (c *questionApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вопроса"))
	}
	var payload feedbackapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := question.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка обновления вопроса"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Деактивация вопроса
// @Tags Вопросы
// @Description Деактивация вопроса, ранее данные ответы сохраняются
// @Param	id	path	string	true	"идентификатор вопроса"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [delete]
func (c *questionApiController) deactivate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор вопроса"))
	}
	hMsg, err := question.Instance.Deactivate(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка деактивации вопроса"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
