package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	// Produce two notifications via mutating workflows.
	activateEmployee(t, app, id, "NewSecret1")
	resp, _ := doRequest(t, app, http.MethodPut, "/profile/"+id, map[string]any{
		"department": "Engineering",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("list exposes message and read flag only", func(t *testing.T) {
		resp, notifications := doRequestList(t, app, "/notifications/"+id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, notifications, 2)
		for _, n := range notifications {
			assert.Contains(t, n, "message")
			assert.Equal(t, float64(0), n["is_read"])
			assert.NotContains(t, n, "notification_id")
			assert.NotContains(t, n, "employee_id")
		}
	})

	t.Run("mark-read flips everything once", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/notifications/mark-read/"+id, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "2 notifications marked as read.", body["message"])

		resp, notifications := doRequestList(t, app, "/notifications/"+id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		for _, n := range notifications {
			assert.Equal(t, float64(1), n["is_read"])
		}

		resp, body = doRequest(t, app, http.MethodPut, "/notifications/mark-read/"+id, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "0 notifications marked as read.", body["message"])
	})

	t.Run("empty feed", func(t *testing.T) {
		resp, notifications := doRequestList(t, app, "/notifications/SSQ-9999")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, notifications)
	})
}
