package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalState(t *testing.T) {
	t.Run(`only pending allows decision`, func(t *testing.T) {
		require.True(t, ApprovalStatePending.AllowApprove())
		require.True(t, ApprovalStatePending.AllowReject())

		require.False(t, ApprovalStateApproved.AllowApprove())
		require.False(t, ApprovalStateApproved.AllowReject())
		require.False(t, ApprovalStateRejected.AllowApprove())
		require.False(t, ApprovalStateRejected.AllowReject())
	})
}

func TestAcceptanceState(t *testing.T) {
	t.Run(`only pending allows decision`, func(t *testing.T) {
		require.True(t, AcceptanceStatePending.AllowDecision())

		require.False(t, AcceptanceStateAccepted.AllowDecision())
		require.False(t, AcceptanceStateDeclined.AllowDecision())
		require.False(t, AcceptanceStateInProgress.AllowDecision())
		require.False(t, AcceptanceStateCompleted.AllowDecision())
	})

	t.Run(`respond allowed while accepted or in progress`, func(t *testing.T) {
		require.True(t, AcceptanceStateAccepted.AllowRespond())
		require.True(t, AcceptanceStateInProgress.AllowRespond())

		require.False(t, AcceptanceStatePending.AllowRespond())
		require.False(t, AcceptanceStateDeclined.AllowRespond())
		require.False(t, AcceptanceStateCompleted.AllowRespond())
	})

	t.Run(`declined releases reviewer slot`, func(t *testing.T) {
		require.False(t, AcceptanceStateDeclined.IsActive())

		require.True(t, AcceptanceStatePending.IsActive())
		require.True(t, AcceptanceStateCompleted.IsActive())
	})
}
