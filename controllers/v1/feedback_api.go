package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/feedback"
	authutils "feedback360-backend/lib/utils/auth-utils"
	"feedback360-backend/middleware"
	apimodels "feedback360-backend/models/api"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app fiber.Router) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Get("progress", controller.progress)
		router.Get("received", controller.received)
		router.Get("summary", controller.summary)
		router.Get("reportee/:id", controller.reportee)
		router.Use(middleware.HRAdminRole())
		router.Get("audit/:id", controller.audit)
		router.Get("dashboard", controller.dashboard)
	})
}

// @Summary Прогресс сотрудника
// @Tags Обратная связь
// @Description Состояние номинаций сотрудника в активном цикле
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.ProgressView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/progress [get]
func (c *feedbackApiController) progress(ctx *fiber.Ctx) error {
	view, err := feedback.Instance.Progress(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения прогресса"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Полученная обратная связь
// @Tags Обратная связь
// @Description Анонимизированная обратная связь текущего сотрудника
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.ReceivedFeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/received [get]
func (c *feedbackApiController) received(ctx *fiber.Ctx) error {
	list, err := feedback.Instance.FeedbackReceived(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения обратной связи"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сводка по оценкам
// @Tags Обратная связь
// @Description Средние оценки по вопросам, только агрегаты без авторов
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackSummaryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/summary [get]
func (c *feedbackApiController) summary(ctx *fiber.Ctx) error {
	view, err := feedback.Instance.FeedbackSummary(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения сводки"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обратная связь подчиненного
// @Tags Обратная связь
// @Description Анонимизированная обратная связь подчиненного, доступна его руководителю
// @Param	id	path	string	true	"employee id"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.ReceivedFeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/reportee/{id} [get]
func (c *feedbackApiController) reportee(ctx *fiber.Ctx) error {
	list, hMsg, err := feedback.Instance.ReporteeFeedback(authutils.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения обратной связи"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary HR аудит обратной связи
// @Tags Обратная связь
// @Description Обратная связь сотрудника с указанием авторов, только для HR
// @Param	id	path	string	true	"employee id"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.AuditFeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/audit/{id} [get]
func (c *feedbackApiController) audit(ctx *fiber.Ctx) error {
	list, err := feedback.Instance.Audit(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения данных аудита"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сводка по циклу
// @Tags Обратная связь
// @Description Счетчики номинаций активного цикла, только для HR
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.DashboardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/dashboard [get]
func (c *feedbackApiController) dashboard(ctx *fiber.Ctx) error {
	view, err := feedback.Instance.Dashboard()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения сводки"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
