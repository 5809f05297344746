package external

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"feedback360-backend/config"
	externalstore "feedback360-backend/lib/external/store"
	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

func newTestDB(t *testing.T, withNominations bool) *gorm.DB {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.Exec(`CREATE TABLE external_tokens (
		id            varchar(36) PRIMARY KEY,
		created_at    datetime,
		updated_at    datetime,
		nomination_id varchar(36),
		token_id      varchar(36),
		expires_at    datetime,
		first_used_at datetime,
		revoked_at    datetime
	)`).Error
	require.NoError(t, err)

	if withNominations {
		err = testDB.Exec(`CREATE TABLE nominations (
			id               varchar(36) PRIMARY KEY,
			created_at       datetime,
			updated_at       datetime,
			cycle_id         varchar(36),
			requester_id     varchar(36),
			reviewer_id      varchar(36),
			relationship     varchar(100),
			approval_state   varchar(50),
			approved_by      varchar(36),
			rejection_reason text,
			approved_at      datetime,
			acceptance_state varchar(50),
			decline_reason   text,
			accepted_at      datetime,
			completed_at     datetime
		)`).Error
		require.NoError(t, err)
	}
	return testDB
}

func setTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.ExternalTokenTTLHours = 24
}

func issueTestToken(t *testing.T, handler impl, nominationID string) string {
	t.Helper()
	nom := dbmodels.Nomination{}
	nom.ID = nominationID
	token, err := handler.IssueToken(nom)
	require.NoError(t, err)
	// идентификатор записи в тестовой базе выставляется вручную,
	// uuid генерирует боевая схема
	require.NoError(t, handler.db.Exec(`UPDATE external_tokens SET id = 'tok-1' WHERE id IS NULL OR id = ''`).Error)
	return token
}

func TestUse(t *testing.T) {
	setTestConfig()

	t.Run(`first use begins the review`, func(t *testing.T) {
		testDB := newTestDB(t, true)
		handler := impl{db: testDB, store: externalstore.NewInstance(testDB)}

		nom := dbmodels.Nomination{
			ApprovalState:   models.ApprovalStateApproved,
			AcceptanceState: models.AcceptanceStatePending,
		}
		nom.ID = "nom-1"
		require.NoError(t, testDB.Create(&nom).Error)
		token := issueTestToken(t, handler, "nom-1")

		nominationID, hMsg, err := handler.Use(token)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "nom-1", nominationID)

		stored := dbmodels.Nomination{}
		require.NoError(t, testDB.First(&stored, "id = ?", "nom-1").Error)
		require.Equal(t, models.AcceptanceStateInProgress, stored.AcceptanceState)

		tokenRec := dbmodels.ExternalToken{}
		require.NoError(t, testDB.First(&tokenRec, "nomination_id = ?", "nom-1").Error)
		require.NotNil(t, tokenRec.FirstUsedAt)
	})

	t.Run(`failed transition keeps the token unused`, func(t *testing.T) {
		testDB := newTestDB(t, false)
		handler := impl{db: testDB, store: externalstore.NewInstance(testDB)}
		token := issueTestToken(t, handler, "nom-1")

		_, _, err := handler.Use(token)
		require.Error(t, err)

		tokenRec := dbmodels.ExternalToken{}
		require.NoError(t, testDB.First(&tokenRec).Error)
		require.Nil(t, tokenRec.FirstUsedAt)
	})

	t.Run(`second use does not reenter the transition`, func(t *testing.T) {
		testDB := newTestDB(t, true)
		handler := impl{db: testDB, store: externalstore.NewInstance(testDB)}

		nom := dbmodels.Nomination{
			ApprovalState:   models.ApprovalStateApproved,
			AcceptanceState: models.AcceptanceStatePending,
		}
		nom.ID = "nom-1"
		require.NoError(t, testDB.Create(&nom).Error)
		token := issueTestToken(t, handler, "nom-1")

		_, hMsg, err := handler.Use(token)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		firstUsed := dbmodels.ExternalToken{}
		require.NoError(t, testDB.First(&firstUsed, "nomination_id = ?", "nom-1").Error)

		nominationID, hMsg, err := handler.Use(token)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "nom-1", nominationID)

		again := dbmodels.ExternalToken{}
		require.NoError(t, testDB.First(&again, "nomination_id = ?", "nom-1").Error)
		require.True(t, again.FirstUsedAt.Equal(*firstUsed.FirstUsedAt))
	})
}
