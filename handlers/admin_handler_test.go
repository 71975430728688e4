package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminResetEmployeePassword(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")
	activateEmployee(t, app, id, "NewSecret1")

	t.Run("unknown email", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/admin/reset-employee-password", map[string]any{
			"email":        "ghost@example.com",
			"new_password": "Temp1234",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Employee not found with that email", body["message"])
	})

	t.Run("reset forces a change on next login", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/admin/reset-employee-password", map[string]any{
			"email":        "asha@example.com",
			"new_password": "Temp1234",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Password for asha@example.com has been reset successfully.", body["message"])

		loginResp, loginBody := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "Temp1234",
			"user_type": "employee",
		})
		require.Equal(t, http.StatusOK, loginResp.StatusCode)
		assert.Equal(t, true, loginBody["force_change"])

		resp, notifications := doRequestList(t, app, "/notifications/"+id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		found := false
		for _, n := range notifications {
			if n["message"] == "Your password was reset by an administrator." {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestDashboardStats(t *testing.T) {
	app, _, _ := setupTestApp(t)

	t.Run("empty database", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/admin/dashboard-stats", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(0), body["employee_count"])
		assert.Equal(t, float64(0), body["pending_leaves"])
		assert.Equal(t, float64(0), body["pending_compoffs"])
	})

	id := registerEmployee(t, app, "asha@example.com")
	registerEmployee(t, app, "ravi@example.com")

	resp, _ := doRequest(t, app, http.MethodPost, "/leave-application", map[string]any{
		"employee_id": id,
		"leave_type":  "Sick Leave",
		"from_date":   "2025-06-10",
		"leave_days":  2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/compoff-request", map[string]any{
		"employee_id": id,
		"work_date":   "2025-06-07",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("counts employees and pending requests", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/admin/dashboard-stats", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(2), body["employee_count"])
		assert.Equal(t, float64(1), body["pending_leaves"])
		assert.Equal(t, float64(1), body["pending_compoffs"])
	})
}
