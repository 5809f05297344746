package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"feedback360-backend/lib/utils/helpers"
	feedbackapimodels "feedback360-backend/models/api/feedback"
)

// GenerateFeedbackReport - персональный отчет по полученной обратной связи.
// Данные приходят уже анонимизированными, отчет лишь раскладывает их по странице.
func GenerateFeedbackReport(employeeName, cycleName string, list []feedbackapimodels.ReceivedFeedbackView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateFeedbackReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, fmt.Sprintf("<b>Обратная связь 360: %v</b><br>", employeeName))
	pdf.SetFont("Arial", "", 12)
	_, lineHt = pdf.GetFontSize()
	html = pdf.HTMLBasicNew()
	html.Write(lineHt, fmt.Sprintf("Цикл: %v<br><br>", cycleName))

	for _, item := range list {
		completedAt := ""
		if item.CompletedAt != nil {
			completedAt = helpers.FormatDate(*item.CompletedAt)
		}
		pdf.SetFont("Arial", "B", 12)
		_, lineHt = pdf.GetFontSize()
		html = pdf.HTMLBasicNew()
		html.Write(lineHt, fmt.Sprintf("<b>%v</b> (%v)<br>", item.Relationship, completedAt))

		pdf.SetFont("Arial", "", 11)
		_, lineHt = pdf.GetFontSize()
		for _, resp := range item.Responses {
			answer := resp.TextValue
			if resp.RatingValue != nil {
				answer = fmt.Sprintf("%d из 5", *resp.RatingValue)
			}
			html = pdf.HTMLBasicNew()
			html.Write(lineHt, fmt.Sprintf("%v<br><i>%v</i><br>", resp.QuestionText, answer))
		}
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
