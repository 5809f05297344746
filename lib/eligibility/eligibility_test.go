package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "feedback360-backend/models/db"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestEligibility(t *testing.T) {
	policy := Policy{
		CutoffDate:      date("2025-03-01"),
		MinTenureMonths: 3,
	}
	now := date("2025-06-15")

	t.Run(`can request check`, func(t *testing.T) {
		joinDate := date("2025-01-10")
		emp := dbmodels.Employee{IsActive: true, JoinDate: &joinDate}
		require.True(t, policy.CanRequest(emp, now))
	})

	t.Run(`joined after cutoff can not request`, func(t *testing.T) {
		joinDate := date("2025-04-01")
		emp := dbmodels.Employee{IsActive: true, JoinDate: &joinDate}
		require.False(t, policy.CanRequest(emp, now))
	})

	t.Run(`short tenure before cutoff can still request`, func(t *testing.T) {
		joinDate := date("2025-02-20")
		emp := dbmodels.Employee{IsActive: true, JoinDate: &joinDate}
		strict := Policy{CutoffDate: date("2025-03-01"), MinTenureMonths: 6}
		require.True(t, strict.CanRequest(emp, date("2025-04-01")))
		require.True(t, strict.CanBeReviewer(emp, date("2025-04-01")))
	})

	t.Run(`inactive can not request`, func(t *testing.T) {
		joinDate := date("2025-01-10")
		emp := dbmodels.Employee{IsActive: false, JoinDate: &joinDate}
		require.False(t, policy.CanRequest(emp, now))
	})

	t.Run(`external can not request`, func(t *testing.T) {
		emp := dbmodels.Employee{IsActive: true, IsExternal: true}
		require.False(t, policy.CanRequest(emp, now))
	})

	t.Run(`missing join date is allowed`, func(t *testing.T) {
		emp := dbmodels.Employee{IsActive: true}
		require.True(t, policy.CanRequest(emp, now))
		require.True(t, policy.CanBeReviewer(emp, now))
	})

	t.Run(`zero cutoff disables cutoff check`, func(t *testing.T) {
		joinDate := date("2025-01-10")
		emp := dbmodels.Employee{IsActive: true, JoinDate: &joinDate}
		require.True(t, Policy{MinTenureMonths: 3}.CanRequest(emp, now))
	})

	t.Run(`reviewer after cutoff needs tenure`, func(t *testing.T) {
		joinDate := date("2025-06-01")
		emp := dbmodels.Employee{IsActive: true, JoinDate: &joinDate}
		require.False(t, policy.CanBeReviewer(emp, now))
		require.False(t, policy.CanRequest(emp, now))

		earlier := date("2025-03-10")
		emp.JoinDate = &earlier
		require.True(t, policy.CanBeReviewer(emp, now))
		require.False(t, policy.CanRequest(emp, now))
	})

	t.Run(`external reviewer is always allowed while active`, func(t *testing.T) {
		joinDate := date("2025-06-10")
		emp := dbmodels.Employee{IsActive: true, IsExternal: true, JoinDate: &joinDate}
		require.True(t, policy.CanBeReviewer(emp, now))

		emp.IsActive = false
		require.False(t, policy.CanBeReviewer(emp, now))
	})
}
