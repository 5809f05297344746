package models

type RelationshipType string

const (
	RelationshipPeer     RelationshipType = "peer"
	RelationshipInternal RelationshipType = "internal_collaborator"
	RelationshipReportee RelationshipType = "reportee"
	RelationshipManager  RelationshipType = "manager"
	RelationshipExternal RelationshipType = "external"
)

var relationshipHumanName = map[RelationshipType]string{
	RelationshipPeer:     "Коллега",
	RelationshipInternal: "Внутренний заказчик",
	RelationshipReportee: "Подчиненный",
	RelationshipManager:  "Руководитель",
	RelationshipExternal: "Внешний заказчик",
}

func (r RelationshipType) ToHuman() string {
	if human, exist := relationshipHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsValid - категория manager служит стоп-признаком и в номинации не сохраняется
func (r RelationshipType) IsValid() bool {
	switch r {
	case RelationshipPeer, RelationshipInternal, RelationshipReportee, RelationshipExternal:
		return true
	case RelationshipManager:
		return false
	}
	return false
}
