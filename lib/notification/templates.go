package notification

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

const approvalNeededTpl = `<p>Здравствуйте, {{.ManagerName}}!</p>
<p>Сотрудник {{.RequesterName}} выдвинул ревьюером {{.ReviewerName}} ({{.Relationship}}).</p>
<p>Пожалуйста, согласуйте или отклоните номинацию до {{.Deadline}}.</p>`

const rejectionNoticeTpl = `<p>Здравствуйте, {{.RequesterName}}!</p>
<p>Ваша номинация ревьюера {{.ReviewerName}} отклонена руководителем.</p>
<p>Причина: {{.Reason}}</p>
<p>Вы можете выдвинуть другого ревьюера.</p>`

const acceptanceNeededTpl = `<p>Здравствуйте, {{.ReviewerName}}!</p>
<p>{{.RequesterName}} просит вас дать обратную связь ({{.Relationship}}).</p>
<p>Пожалуйста, примите или отклоните запрос. Срок сбора обратной связи: {{.Deadline}}.</p>`

const externalInviteTpl = `<p>Здравствуйте, {{.ReviewerName}}!</p>
<p>{{.RequesterName}} просит вас дать обратную связь как внешнего заказчика.</p>
<p>Форма доступна по ссылке: <a href="{{.FormURL}}?token={{.Token}}">{{.FormURL}}</a></p>
<p>Ссылка действительна до {{.Deadline}}.</p>`

const slotReleasedTpl = `<p>Здравствуйте, {{.RequesterName}}!</p>
<p>Один из выдвинутых вами ревьюеров отказался от участия.</p>
<p>Вы можете выдвинуть другого ревьюера, пока открыт период выдвижения.</p>`

const feedbackSubmittedTpl = `<p>Здравствуйте, {{.RequesterName}}!</p>
<p>По вашему запросу получена обратная связь ({{.Relationship}}).</p>
<p>Результаты доступны в личном кабинете.</p>`

const reminderTpl = `<p>Здравствуйте, {{.ReviewerName}}!</p>
<p>У вас {{.PendingCount}} незавершенных ревью в текущем цикле.</p>
<p>Срок сбора обратной связи: {{.Deadline}}.</p>`

const deadlineWarningTpl = `<p>Здравствуйте, {{.RecipientName}}!</p>
<p>Напоминаем: {{.Phase}} завершается {{.Deadline}}.</p>`

func renderTemplate(name, tpl string, data interface{}) (string, error) {
	t, err := template.New(name).Parse(tpl)
	if err != nil {
		return "", errors.Wrapf(err, "ошибка разбора шаблона письма (%v)", name)
	}
	buf := new(bytes.Buffer)
	err = t.Execute(buf, data)
	if err != nil {
		return "", errors.Wrapf(err, "ошибка заполнения шаблона письма (%v)", name)
	}
	return buf.String(), nil
}
