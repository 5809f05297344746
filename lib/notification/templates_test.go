package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	t.Run(`approval needed check`, func(t *testing.T) {
		body, err := renderTemplate("approval_needed", approvalNeededTpl, map[string]interface{}{
			"ManagerName":   "Анна Петрова",
			"RequesterName": "Иван Иванов",
			"ReviewerName":  "Мария Сидорова",
			"Relationship":  "Коллега по команде",
			"Deadline":      "15.01.2025",
		})
		require.Nil(t, err)
		require.Contains(t, body, "Анна Петрова")
		require.Contains(t, body, "Мария Сидорова")
		require.Contains(t, body, "15.01.2025")
	})

	t.Run(`external invite carries token link`, func(t *testing.T) {
		body, err := renderTemplate("external_invite", externalInviteTpl, map[string]interface{}{
			"ReviewerName":  "John Smith",
			"RequesterName": "Иван Иванов",
			"FormURL":       "https://feedback.example.com/external",
			"Token":         "tok-123",
			"Deadline":      "15.02.2025",
		})
		require.Nil(t, err)
		require.Contains(t, body, "https://feedback.example.com/external?token=tok-123")
	})

	t.Run(`slot released has no decliner name`, func(t *testing.T) {
		body, err := renderTemplate("slot_released", slotReleasedTpl, map[string]interface{}{
			"RequesterName": "Иван Иванов",
		})
		require.Nil(t, err)
		require.Contains(t, body, "отказался от участия")
		require.NotContains(t, body, "{{")
	})

	t.Run(`rejection reason is html escaped`, func(t *testing.T) {
		body, err := renderTemplate("rejection_notice", rejectionNoticeTpl, map[string]interface{}{
			"RequesterName": "Иван Иванов",
			"ReviewerName":  "Мария Сидорова",
			"Reason":        `конфликт интересов <script>alert("x")</script>`,
		})
		require.Nil(t, err)
		require.Contains(t, body, "конфликт интересов")
		require.NotContains(t, body, "<script>")
	})

	t.Run(`reminder check`, func(t *testing.T) {
		body, err := renderTemplate("reminder", reminderTpl, map[string]interface{}{
			"ReviewerName": "Мария Сидорова",
			"PendingCount": 3,
			"Deadline":     "15.02.2025",
		})
		require.Nil(t, err)
		require.Contains(t, body, "3 незавершенных")
	})
}
