package relationship

import (
	"testing"

	"github.com/stretchr/testify/require"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

func emp(id, team string, managerID *string, isExternal bool) dbmodels.Employee {
	rec := dbmodels.Employee{
		Team:       team,
		ManagerID:  managerID,
		IsExternal: isExternal,
	}
	rec.ID = id
	return rec
}

func TestClassify(t *testing.T) {
	managerID := "mgr-1"

	t.Run(`manager check`, func(t *testing.T) {
		requester := emp("emp-1", "core", &managerID, false)
		reviewer := emp("mgr-1", "core", nil, false)
		require.Equal(t, models.RelationshipManager, Classify(requester, reviewer))
	})

	t.Run(`reportee check`, func(t *testing.T) {
		requester := emp("mgr-1", "core", nil, false)
		reviewer := emp("emp-1", "core", &managerID, false)
		require.Equal(t, models.RelationshipReportee, Classify(requester, reviewer))
	})

	t.Run(`external check`, func(t *testing.T) {
		requester := emp("emp-1", "core", nil, false)
		reviewer := emp("ext-1", "", nil, true)
		require.Equal(t, models.RelationshipExternal, Classify(requester, reviewer))
	})

	t.Run(`peer check`, func(t *testing.T) {
		requester := emp("emp-1", "core", nil, false)
		reviewer := emp("emp-2", "core", nil, false)
		require.Equal(t, models.RelationshipPeer, Classify(requester, reviewer))
	})

	t.Run(`internal check`, func(t *testing.T) {
		requester := emp("emp-1", "core", nil, false)
		reviewer := emp("emp-2", "sales", nil, false)
		require.Equal(t, models.RelationshipInternal, Classify(requester, reviewer))
	})

	t.Run(`empty team is not a peer`, func(t *testing.T) {
		requester := emp("emp-1", "", nil, false)
		reviewer := emp("emp-2", "", nil, false)
		require.Equal(t, models.RelationshipInternal, Classify(requester, reviewer))
	})

	t.Run(`manager wins over external`, func(t *testing.T) {
		requester := emp("emp-1", "core", &managerID, false)
		reviewer := emp("mgr-1", "", nil, true)
		require.Equal(t, models.RelationshipManager, Classify(requester, reviewer))
	})

	t.Run(`reportee wins over same team`, func(t *testing.T) {
		requester := emp("mgr-1", "core", nil, false)
		reviewer := emp("emp-1", "core", &managerID, false)
		require.Equal(t, models.RelationshipReportee, Classify(requester, reviewer))
	})
}
