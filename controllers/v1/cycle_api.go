package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/cycle"
	"feedback360-backend/lib/deadline"
	"feedback360-backend/middleware"
	authutils "feedback360-backend/lib/utils/auth-utils"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type cycleApiController struct {
	controllers.BaseAPIController
}

func InitCycleApiRouters(app fiber.Router) {
	controller := cycleApiController{}
	app.Route("cycles", func(router fiber.Router) {
		router.Get("active", controller.getActive)
		router.Use(middleware.HRAdminRole())
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Post("/:id/activate", controller.activate)
		router.Post("/:id/overrides", controller.grantOverride)
		router.Get("/:id/overrides", controller.listOverrides)
		router.Post("reminders", controller.sendReminders)
	})
}

// @Summary Активный цикл
// @Tags Циклы
// @Description Активный цикл и его общецикловая фаза
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.CycleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/active [get]
func (c *cycleApiController) getActive(ctx *fiber.Ctx) error {
	view, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения активного цикла"))
	}
	if view == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание цикла
// @Tags Циклы
// @Description Создание цикла, активация выполняется отдельным вызовом
// @Param	body				body		feedbackapimodels.CycleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles [post]
func (c *cycleApiController) create(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.CycleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := cycle.Instance.Create(authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка создания цикла"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список циклов
// @Tags Циклы
// @Description Список циклов
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.CycleView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles [get]
func (c *cycleApiController) list(ctx *fiber.Ctx) error {
	list, err := cycle.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения списка циклов"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Активация цикла
// @Tags Циклы
// @Description Активация цикла, остальные циклы деактивируются
// @Param	id	path	string	true	"идентификатор цикла"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id}/activate [post]
func (c *cycleApiController) activate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор цикла"))
	}
	hMsg, err := cycle.Instance.Activate(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка активации цикла"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Персональное продление дедлайна
// @Tags Циклы
// @Description Персональное продление дедлайна, только в сторону увеличения
// @Param	id	path	string	true	"идентификатор цикла"
// @Param	body				body		feedbackapimodels.OverrideData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id}/overrides [post]
func (c *cycleApiController) grantOverride(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор цикла"))
	}
	var payload feedbackapimodels.OverrideData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := deadline.Instance.GrantOverride(authutils.GetUserID(ctx), id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка продления дедлайна"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список продлений
// @Tags Циклы
// @Description Список персональных продлений дедлайнов цикла
// @Param	id	path	string	true	"идентификатор цикла"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/{id}/overrides [get]
func (c *cycleApiController) listOverrides(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор цикла"))
	}
	list, err := deadline.Instance.ListOverrides(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения списка продлений"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Напоминания ревьюерам
// @Tags Циклы
// @Description Постановка напоминаний ревьюерам с незакрытыми ревью
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cycles/reminders [post]
func (c *cycleApiController) sendReminders(ctx *fiber.Ctx) error {
	sent, err := deadline.Instance.SendReminders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка постановки напоминаний"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sent))
}
