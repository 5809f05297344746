package employee

import (
	"testing"

	"github.com/stretchr/testify/require"

	"feedback360-backend/models"
)

func TestDesignationRankOf(t *testing.T) {
	t.Run(`exact titles`, func(t *testing.T) {
		require.Equal(t, models.RankFounder, DesignationRankOf("Founder"))
		require.Equal(t, models.RankDirector, DesignationRankOf("Director"))
		require.Equal(t, models.RankManager, DesignationRankOf("Manager"))
		require.Equal(t, models.RankLead, DesignationRankOf("Lead"))
	})

	t.Run(`title variants match by substring`, func(t *testing.T) {
		require.Equal(t, models.RankManager, DesignationRankOf("Sr. Manager"))
		require.Equal(t, models.RankManager, DesignationRankOf("Engineering Manager"))
		require.Equal(t, models.RankLead, DesignationRankOf("Tech Lead"))
		require.Equal(t, models.RankFounder, DesignationRankOf("Co-Founder & CEO"))
	})

	t.Run(`associate director is not director`, func(t *testing.T) {
		require.Equal(t, models.RankAssociateDirector, DesignationRankOf("Associate Director"))
		require.Equal(t, models.RankDirector, DesignationRankOf("Managing Director"))
	})

	t.Run(`unknown titles get base rank`, func(t *testing.T) {
		require.Equal(t, models.RankEmployee, DesignationRankOf("Software Engineer"))
		require.Equal(t, models.RankEmployee, DesignationRankOf(""))
	})
}
