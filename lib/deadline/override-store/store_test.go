package overridestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`CREATE TABLE deadline_overrides (
		id           varchar(36) PRIMARY KEY,
		created_at   datetime,
		updated_at   datetime,
		cycle_id     varchar(36),
		employee_id  varchar(36),
		phase        varchar(50),
		new_deadline datetime,
		reason       text,
		created_by   varchar(36),
		CONSTRAINT idx_deadline_override UNIQUE (cycle_id, employee_id, phase)
	)`).Error
	require.NoError(t, err)
	return db
}

func TestOverrideUpsert(t *testing.T) {
	store := NewInstance(newTestDB(t))

	first := dbmodels.DeadlineOverride{
		CycleID:     "cycle-1",
		EmployeeID:  "emp-1",
		Phase:       models.OverridePhaseNomination,
		NewDeadline: time.Date(2025, 1, 20, 23, 59, 59, 0, time.UTC),
		Reason:      "отпуск",
		CreatedBy:   "hr-1",
	}
	first.ID = "ovr-1"

	t.Run(`first insert without conflict`, func(t *testing.T) {
		require.NoError(t, store.Upsert(first))

		rec, err := store.Get("cycle-1", "emp-1", models.OverridePhaseNomination)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "hr-1", rec.CreatedBy)
		require.True(t, rec.NewDeadline.Equal(first.NewDeadline))
	})

	t.Run(`repeated grant updates the stored deadline`, func(t *testing.T) {
		second := first
		second.ID = "ovr-2"
		second.NewDeadline = time.Date(2025, 1, 25, 23, 59, 59, 0, time.UTC)
		second.Reason = "продление по решению HR"
		second.CreatedBy = "hr-2"
		require.NoError(t, store.Upsert(second))

		list, err := store.ListByCycle("cycle-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "ovr-1", list[0].ID)
		require.Equal(t, "hr-2", list[0].CreatedBy)
		require.Equal(t, "продление по решению HR", list[0].Reason)
		require.True(t, list[0].NewDeadline.Equal(second.NewDeadline))
	})

	t.Run(`other phase is a separate record`, func(t *testing.T) {
		fb := first
		fb.ID = "ovr-3"
		fb.Phase = models.OverridePhaseFeedback
		require.NoError(t, store.Upsert(fb))

		list, err := store.ListByCycle("cycle-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}
