package models

type UserRole string

const (
	EmployeeRole UserRole = "EMPLOYEE_ROLE"
	HRAdminRole  UserRole = "HR_ADMIN_ROLE"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole: "Сотрудник",
	HRAdminRole:  "HR администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsHRAdmin() bool {
	return r == HRAdminRole
}

// Уровни должностей. Выдвижение внешних ревьюеров доступно от уровня руководителя.
const (
	RankEmployee          = 0
	RankLead              = 1
	RankManager           = 2
	RankDirector          = 3
	RankAssociateDirector = 4
	RankFounder           = 5
)
