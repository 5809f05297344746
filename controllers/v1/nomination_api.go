package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/nomination"
	authutils "feedback360-backend/lib/utils/auth-utils"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type nominationApiController struct {
	controllers.BaseAPIController
}

func InitNominationApiRouters(app fiber.Router) {
	controller := nominationApiController{}
	app.Route("nominations", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Get("my", controller.listMy)
		router.Get("candidates", controller.listCandidates)
	})
}

// @Summary Выдвижение ревьюера
// @Tags Номинации
// @Description Выдвижение ревьюера через контроллер допуска
// @Param	body				body		feedbackapimodels.NominationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/nominations [post]
func (c *nominationApiController) submit(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.NominationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, admission, err := nomination.Instance.Submit(authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка выдвижения ревьюера"))
	}
	if admission != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(admission.ToHuman()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Мои номинации
// @Tags Номинации
// @Description Номинации текущего сотрудника в активном цикле
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.NominationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/nominations/my [get]
func (c *nominationApiController) listMy(ctx *fiber.Ctx) error {
	list, err := nomination.Instance.ListMy(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения номинаций"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Кандидаты в ревьюеры
// @Tags Номинации
// @Description Кандидаты с признаками доступности по правилам контроллера допуска
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.ReviewerView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/nominations/candidates [get]
func (c *nominationApiController) listCandidates(ctx *fiber.Ctx) error {
	list, err := nomination.Instance.ListCandidates(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения кандидатов"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
