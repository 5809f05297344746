package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"feedback360-backend/lib/utils/helpers"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

type Provider interface {
	ExportReceivedFeedback(list []feedbackapimodels.ReceivedFeedbackView) (*bytes.Buffer, error)
	ExportAuditFeedback(list []feedbackapimodels.AuditFeedbackView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var receivedHeaders = []string{"Категория", "Дата завершения", "Вопрос", "Оценка", "Ответ"}

var auditHeaders = []string{"Сотрудник", "Ревьюер", "Категория", "Дата завершения", "Вопрос", "Оценка", "Ответ"}

// ExportReceivedFeedback - анонимизированная выгрузка для сотрудника.
// В таблице нет ни одной колонки с личностью ревьюера.
func (i impl) ExportReceivedFeedback(list []feedbackapimodels.ReceivedFeedbackView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, receivedHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	rowCount := 0
	for _, item := range list {
		rowCount += len(item.Responses)
	}
	if rowCount != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(receivedHeaders), row+rowCount); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	for _, item := range list {
		completedAt := ""
		if item.CompletedAt != nil {
			completedAt = helpers.FormatDate(*item.CompletedAt)
		}
		for _, resp := range item.Responses {
			row++
			if err = writeResponseRow(f, sheet, row, 1, item.Relationship, completedAt, resp); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(sheet, "Обратная связь")
	return f.WriteToBuffer()
}

// ExportAuditFeedback - выгрузка HR-аудита с личностями ревьюеров
func (i impl) ExportAuditFeedback(list []feedbackapimodels.AuditFeedbackView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, auditHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	rowCount := 0
	for _, item := range list {
		rowCount += len(item.Responses)
	}
	if rowCount != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(auditHeaders), row+rowCount); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	for _, item := range list {
		completedAt := ""
		if item.CompletedAt != nil {
			completedAt = helpers.FormatDate(*item.CompletedAt)
		}
		for _, resp := range item.Responses {
			row++
			col := 1
			if err = writeColumn(f, sheet, col, row, item.RequesterName); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
			col++
			if err = writeColumn(f, sheet, col, row, item.ReviewerName); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
			col++
			if err = writeResponseRow(f, sheet, row, col, item.Relationship, completedAt, resp); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(sheet, "HR аудит")
	return f.WriteToBuffer()
}

func writeResponseRow(f *excelize.File, sheet string, row, col int, relationship, completedAt string, resp feedbackapimodels.ResponseView) error {
	// "Категория"
	if err := writeColumn(f, sheet, col, row, relationship); err != nil {
		return err
	}

	// "Дата завершения"
	col++
	if err := writeColumn(f, sheet, col, row, completedAt); err != nil {
		return err
	}

	// "Вопрос"
	col++
	if err := writeColumn(f, sheet, col, row, resp.QuestionText); err != nil {
		return err
	}

	// "Оценка"
	col++
	if resp.RatingValue != nil {
		if err := writeColumn(f, sheet, col, row, *resp.RatingValue); err != nil {
			return err
		}
	}

	// "Ответ"
	col++
	if err := writeColumn(f, sheet, col, row, resp.TextValue); err != nil {
		return err
	}
	return nil
}
