package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/approval"
	"feedback360-backend/lib/cycle"
	authutils "feedback360-backend/lib/utils/auth-utils"
	apimodels "feedback360-backend/models/api"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app fiber.Router) {
	controller := approvalApiController{}
	app.Route("approvals", func(router fiber.Router) {
		router.Get("pending", controller.listPending)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/reject", controller.reject)
		router.Post("batch", controller.batchApprove)
	})
}

// @Summary Номинации на согласовании
// @Tags Согласование
// @Description Номинации подчиненных текущего руководителя, ожидающие решения
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.NominationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/pending [get]
func (c *approvalApiController) listPending(ctx *fiber.Ctx) error {
	active, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения цикла"))
	}
	if active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	list, err := approval.Instance.ListPending(authutils.GetUserID(ctx), active.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения номинаций"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласование номинации
// @Tags Согласование
// @Param	id	path	string	true	"nomination id"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/{id}/approve [post]
func (c *approvalApiController) approve(ctx *fiber.Ctx) error {
	hMsg, err := approval.Instance.Approve(ctx.Params("id"), authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка согласования номинации"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Отклонение номинации
// @Tags Согласование
// @Param	id					path	string							true	"nomination id"
// @Param	body				body	feedbackapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/{id}/reject [post]
func (c *approvalApiController) reject(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.RejectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := approval.Instance.Reject(ctx.Params("id"), authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка отклонения номинации"))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Пакетное согласование
// @Tags Согласование
// @Description Согласование нескольких номинаций, результат по каждой отдельно
// @Param	body				body	feedbackapimodels.BatchApproveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.BatchApproveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approvals/batch [post]
func (c *approvalApiController) batchApprove(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.BatchApproveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := approval.Instance.BatchApprove(authutils.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка пакетного согласования"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
