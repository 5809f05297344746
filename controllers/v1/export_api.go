package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"feedback360-backend/controllers"
	"feedback360-backend/lib/cycle"
	"feedback360-backend/lib/employee"
	pdfexport "feedback360-backend/lib/export/pdf"
	xlsexport "feedback360-backend/lib/export/xls"
	"feedback360-backend/lib/feedback"
	filestorage "feedback360-backend/lib/file-storage"
	authutils "feedback360-backend/lib/utils/auth-utils"
	"feedback360-backend/middleware"
	apimodels "feedback360-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app fiber.Router) {
	controller := exportApiController{}
	app.Route("exports", func(router fiber.Router) {
		router.Post("received/xlsx", controller.exportReceivedXlsx)
		router.Post("received/pdf", controller.exportReceivedPdf)
		router.Get("", controller.listExports)
		router.Get(":id/download", controller.download)
		router.Use(middleware.HRAdminRole())
		router.Post("audit/:id/xlsx", controller.exportAuditXlsx)
	})
}

// @Summary Выгрузка обратной связи в xlsx
// @Tags Выгрузки
// @Description Формирование анонимизированной выгрузки текущего сотрудника
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/received/xlsx [post]
func (c *exportApiController) exportReceivedXlsx(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	active, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения цикла"))
	}
	if active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	list, err := feedback.Instance.FeedbackReceived(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения обратной связи"))
	}
	buf, err := xlsexport.Instance.ExportReceivedFeedback(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка формирования выгрузки"))
	}
	fileName := fmt.Sprintf("обратная_связь_%s.xlsx", active.Name)
	id, err := filestorage.Instance.SaveExport(ctx.Context(), userID, active.ID, fileName, "xlsx", buf.Bytes())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка сохранения выгрузки"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Выгрузка обратной связи в pdf
// @Tags Выгрузки
// @Description Формирование pdf отчета по анонимизированной обратной связи
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/received/pdf [post]
func (c *exportApiController) exportReceivedPdf(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	active, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения цикла"))
	}
	if active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	emp, err := employee.Instance.Get(userID)
	if err != nil || emp == nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения сотрудника"))
	}
	list, err := feedback.Instance.FeedbackReceived(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения обратной связи"))
	}
	pdfFile, err := pdfexport.GenerateFeedbackReport(emp.FullName, active.Name, list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка формирования отчета"))
	}
	fileName := fmt.Sprintf("обратная_связь_%s.pdf", active.Name)
	id, err := filestorage.Instance.SaveExport(ctx.Context(), userID, active.ID, fileName, "pdf", pdfFile)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка сохранения выгрузки"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Выгрузка аудита в xlsx
// @Tags Выгрузки
// @Description Выгрузка обратной связи сотрудника с авторами, только для HR
// @Param	id	path	string	true	"employee id"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/audit/{id}/xlsx [post]
func (c *exportApiController) exportAuditXlsx(ctx *fiber.Ctx) error {
	subjectID := ctx.Params("id")
	active, err := cycle.Instance.GetActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения цикла"))
	}
	if active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("нет активного цикла"))
	}
	list, err := feedback.Instance.Audit(subjectID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения данных аудита"))
	}
	buf, err := xlsexport.Instance.ExportAuditFeedback(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка формирования выгрузки"))
	}
	fileName := fmt.Sprintf("аудит_%s.xlsx", active.Name)
	id, err := filestorage.Instance.SaveExport(ctx.Context(), authutils.GetUserID(ctx), active.ID, fileName, "xlsx", buf.Bytes())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка сохранения выгрузки"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список выгрузок
// @Tags Выгрузки
// @Description Сформированные выгрузки текущего сотрудника
// @Success 200 {object} apimodels.Response{data=[]dbmodels.ExportFile}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports [get]
func (c *exportApiController) listExports(ctx *fiber.Ctx) error {
	list, err := filestorage.Instance.ListExports(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения списка выгрузок"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание выгрузки
// @Tags Выгрузки
// @Param	id	path	string	true	"export id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/{id}/download [get]
func (c *exportApiController) download(ctx *fiber.Ctx) error {
	rec, data, err := filestorage.Instance.GetExport(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка получения выгрузки"))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("выгрузка не найдена"))
	}
	if rec.EmployeeID != authutils.GetUserID(ctx) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("выгрузка недоступна"))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.FileName))
	return ctx.Status(fiber.StatusOK).Send(data)
}
