package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/external"
	"feedback360-backend/lib/review"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type externalApiController struct {
	controllers.BaseAPIController
}

// InitExternalApiRouters - маршруты внешних ревьюеров, авторизация по токену
// из письма-приглашения вместо учетной записи.
func InitExternalApiRouters(app fiber.Router) {
	controller := externalApiController{}
	app.Route("external", func(router fiber.Router) {
		router.Get("form", controller.getForm)
		router.Put("draft", controller.saveDraft)
		router.Post("submit", controller.submitFinal)
	})
}

// @Summary Форма внешнего ревьюера
// @Tags Внешние ревьюеры
// @Description Открытие формы по токену, первое обращение фиксирует принятие назначения
// @Param	token	query	string	true	"access token"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.ReviewFormView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external/form [get]
func (c *externalApiController) getForm(ctx *fiber.Ctx) error {
	nominationID, hMsg, err := external.Instance.Use(ctx.Query("token"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка проверки токена"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	questions, drafts, hMsg, err := review.Instance.GetForm(nominationID, review.TokenActor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения формы"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(feedbackapimodels.ReviewFormView{
		Questions: questions,
		Drafts:    drafts,
	}))
}

// @Summary Черновик внешнего ревьюера
// @Tags Внешние ревьюеры
// @Param	token				query	string						true	"access token"
// @Param	body				body	feedbackapimodels.DraftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external/draft [put]
func (c *externalApiController) saveDraft(ctx *fiber.Ctx) error {
	nominationID, hMsg, err := external.Instance.Validate(ctx.Query("token"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка проверки токена"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	var payload feedbackapimodels.DraftData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err = review.Instance.SaveDraft(nominationID, review.TokenActor, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка сохранения черновика"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Финальная отправка внешнего ревьюера
// @Tags Внешние ревьюеры
// @Param	token				query	string								true	"access token"
// @Param	body				body	feedbackapimodels.FinalSubmitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/external/submit [post]
func (c *externalApiController) submitFinal(ctx *fiber.Ctx) error {
	nominationID, hMsg, err := external.Instance.Validate(ctx.Query("token"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка проверки токена"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	var payload feedbackapimodels.FinalSubmitData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err = review.Instance.SubmitFinal(nominationID, review.TokenActor, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка отправки обратной связи"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
