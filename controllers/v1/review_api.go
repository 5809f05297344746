package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/cycle"
	"feedback360-backend/lib/review"
	authutils "feedback360-backend/lib/utils/auth-utils"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app fiber.Router) {
	controller := reviewApiController{}
	app.Route("reviews", func(router fiber.Router) {
		router.Get("assignments", controller.listAssignments)
		router.Post(":id/accept", controller.accept)
		router.Post(":id/decline", controller.decline)
		router.Get(":id/form", controller.getForm)
		router.Put(":id/draft", controller.saveDraft)
		router.Post(":id/submit", controller.submitFinal)
	})
}

// @Summary Мои назначения
// @Tags Ревью
// @Description Открытые назначения текущего ревьюера в активном цикле
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.PendingReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/assignments [get]
func (c *reviewApiController) listAssignments(ctx *fiber.Ctx) error {
	active, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения цикла"))
	}
	if active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	list, err := review.Instance.ListAssignments(authutils.GetUserID(ctx), active.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения назначений"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Принятие назначения
// @Tags Ревью
// @Param	id	path	string	true	"nomination id"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/accept [post]
func (c *reviewApiController) accept(ctx *fiber.Ctx) error {
	hMsg, err := review.Instance.Accept(ctx.Params("id"), authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка принятия назначения"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Отказ от назначения
// @Tags Ревью
// @Param	id					path	string							true	"nomination id"
// @Param	body				body	feedbackapimodels.DeclineData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/decline [post]
func (c *reviewApiController) decline(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.DeclineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := review.Instance.Decline(ctx.Params("id"), authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка отказа от назначения"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Форма обратной связи
// @Tags Ревью
// @Description Вопросы категории отношений и сохраненные черновики
// @Param	id	path	string	true	"nomination id"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.ReviewFormView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/form [get]
func (c *reviewApiController) getForm(ctx *fiber.Ctx) error {
	questions, drafts, hMsg, err := review.Instance.GetForm(ctx.Params("id"), authutils.GetUserID(ctx))
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

// @Summary Сохранение черновика
// @Tags Ревью
// @Description Черновик ответа на один вопрос, перезаписывается при повторном сохранении
// @Param	id					path	string						true	"nomination id"
// @Param	body				body	feedbackapimodels.DraftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/draft [put]
func (c *reviewApiController) saveDraft(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.DraftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := review.Instance.SaveDraft(ctx.Params("id"), authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка сохранения черновика"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Финальная отправка
// @Tags Ревью
// @Description Отправка всех ответов формы, после отправки изменения невозможны
// @Param	id					path	string								true	"nomination id"
// @Param	body				body	feedbackapimodels.FinalSubmitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reviews/{id}/submit [post]
func (c *reviewApiController) submitFinal(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FinalSubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := review.Instance.SubmitFinal(ctx.Params("id"), authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка отправки обратной связи"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
