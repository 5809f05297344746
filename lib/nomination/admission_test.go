package nomination

import (
	"testing"

	"github.com/stretchr/testify/require"

	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

func admissionInput() AdmissionInput {
	requester := dbmodels.Employee{}
	requester.ID = "emp-1"
	reviewer := dbmodels.Employee{}
	reviewer.ID = "emp-2"
	return AdmissionInput{
		PhaseOpen:         true,
		RequesterEligible: true,
		Requester:         requester,
		Reviewer:          reviewer,
		ReviewerFound:     true,
		ReviewerEligible:  true,
		Relationship:      models.RelationshipPeer,
		RequesterCapacity: 4,
		ReviewerCapacity:  4,
	}
}

func TestEvaluate(t *testing.T) {
	t.Run(`valid nomination passes`, func(t *testing.T) {
		require.Nil(t, Evaluate(admissionInput()))
	})

	t.Run(`closed phase rejected`, func(t *testing.T) {
		in := admissionInput()
		in.PhaseOpen = false
		require.Equal(t, models.AdmissionNominationClosed, *Evaluate(in))
	})

	t.Run(`ineligible requester looks like closed phase`, func(t *testing.T) {
		in := admissionInput()
		in.RequesterEligible = false
		require.Equal(t, models.AdmissionNominationClosed, *Evaluate(in))
	})

	t.Run(`self nomination rejected`, func(t *testing.T) {
		in := admissionInput()
		in.Reviewer.ID = in.Requester.ID
		require.Equal(t, models.AdmissionSelfNomination, *Evaluate(in))
	})

	t.Run(`direct manager rejected`, func(t *testing.T) {
		in := admissionInput()
		in.Relationship = models.RelationshipManager
		require.Equal(t, models.AdmissionManagerBlocked, *Evaluate(in))
	})

	t.Run(`unknown reviewer rejected`, func(t *testing.T) {
		in := admissionInput()
		in.ReviewerFound = false
		require.Equal(t, models.AdmissionReviewerIneligible, *Evaluate(in))
	})

	t.Run(`previously rejected pair rejected`, func(t *testing.T) {
		in := admissionInput()
		in.PreviouslyRejected = true
		require.Equal(t, models.AdmissionPreviouslyRejected, *Evaluate(in))
	})

	t.Run(`duplicate pair rejected`, func(t *testing.T) {
		in := admissionInput()
		in.DuplicateExists = true
		require.Equal(t, models.AdmissionDuplicateNomination, *Evaluate(in))
	})

	t.Run(`requester capacity enforced`, func(t *testing.T) {
		in := admissionInput()
		in.RequesterActiveCount = 4
		require.Equal(t, models.AdmissionRequesterAtCapacity, *Evaluate(in))
	})

	t.Run(`reviewer capacity enforced`, func(t *testing.T) {
		in := admissionInput()
		in.ReviewerLoad = 4
		require.Equal(t, models.AdmissionReviewerAtCapacity, *Evaluate(in))

		in.ReviewerLoad = 3
		require.Nil(t, Evaluate(in))
	})

	t.Run(`external reviewer needs manager rank`, func(t *testing.T) {
		in := admissionInput()
		in.Relationship = models.RelationshipExternal
		in.Requester.DesignationRank = models.RankLead
		require.Equal(t, models.AdmissionExternalNotPermitted, *Evaluate(in))

		in.Requester.DesignationRank = models.RankManager
		require.Nil(t, Evaluate(in))
	})

	t.Run(`first failure wins`, func(t *testing.T) {
		in := admissionInput()
		in.PhaseOpen = false
		in.DuplicateExists = true
		in.ReviewerLoad = 10
		require.Equal(t, models.AdmissionNominationClosed, *Evaluate(in))
	})
}
