package eligibility

import (
	"time"

	log "github.com/sirupsen/logrus"

	"feedback360-backend/config"
	"feedback360-backend/lib/utils/helpers"
	dbmodels "feedback360-backend/models/db"
)

// Policy - политика допуска по дате приема и стажу.
// Сотрудник без даты приема считается допущенным: отсутствие данных
// в кадровой выгрузке не должно блокировать участие.
type Policy struct {
	CutoffDate      time.Time
	MinTenureMonths int
}

func NewPolicy() Policy {
	cutoff, err := helpers.ParseDate(config.Conf.Policy.EligibilityCutoffDate)
	if err != nil {
		log.
			WithError(err).
			WithField("value", config.Conf.Policy.EligibilityCutoffDate).
			Error("некорректная дата отсечки допуска, политика отключена")
		cutoff = time.Time{}
	}
	return Policy{
		CutoffDate:      cutoff,
		MinTenureMonths: config.Conf.Policy.MinTenureMonths,
	}
}

// CanRequest - право запрашивать обратную связь в цикле
func (p Policy) CanRequest(emp dbmodels.Employee, now time.Time) bool {
	if !emp.IsActive || emp.IsExternal {
		return false
	}
	if emp.JoinDate == nil {
		return true
	}
	if p.CutoffDate.IsZero() {
		return true
	}
	return !emp.JoinDate.After(p.CutoffDate)
}

// CanBeReviewer - право быть выдвинутым ревьюером. Принятые до даты
// отсечки допускаются без проверки стажа, принятые после - по стажу.
func (p Policy) CanBeReviewer(emp dbmodels.Employee, now time.Time) bool {
	if !emp.IsActive {
		return false
	}
	if emp.IsExternal {
		return true
	}
	if emp.JoinDate == nil {
		return true
	}
	if p.CutoffDate.IsZero() || !emp.JoinDate.After(p.CutoffDate) {
		return true
	}
	return p.hasMinTenure(*emp.JoinDate, now)
}

func (p Policy) hasMinTenure(joinDate, now time.Time) bool {
	if p.MinTenureMonths <= 0 {
		return true
	}
	return !joinDate.AddDate(0, p.MinTenureMonths, 0).After(now)
}
