package relationship

import (
	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

// Classify - категория отношений пары (запросивший, ревьюер).
// Порядок проверок строгий: руководитель, подчиненный, внешний,
// коллега по команде, внутренний заказчик. Категория вычисляется один раз
// при выдвижении и сохраняется в номинации, последующие кадровые изменения
// ее не меняют.
func Classify(requester, reviewer dbmodels.Employee) models.RelationshipType {
	if requester.ManagerID != nil && *requester.ManagerID == reviewer.ID {
		return models.RelationshipManager
	}
	if reviewer.ManagerID != nil && *reviewer.ManagerID == requester.ID {
		return models.RelationshipReportee
	}
	if reviewer.IsExternal {
		return models.RelationshipExternal
	}
	if requester.Team != "" && requester.Team == reviewer.Team {
		return models.RelationshipPeer
	}
	return models.RelationshipInternal
}
