package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	resp, body := doRequest(t, app, http.MethodGet, "/profile/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "Asha", body["first_name"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.Nil(t, body["department"])

	t.Run("unknown employee", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodGet, "/profile/SSQ-9999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Employee not found", body["message"])
	})
}

func TestUpdateProfile(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	t.Run("allow-listed fields are applied, others ignored", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/profile/"+id, map[string]any{
			"department":    "Engineering",
			"branch":        "Pune",
			"email":         "hijack@example.com",
			"user_type":     "admin",
			"made_up_field": "x",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Profile updated successfully!", body["message"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "Engineering", user["department"])
		assert.Equal(t, "Pune", user["branch"])
		assert.Equal(t, "asha@example.com", user["email"])
		assert.Equal(t, "employee", user["user_type"])
		assert.NotContains(t, user, "password")
	})

	t.Run("no recognized fields", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/profile/"+id, map[string]any{
			"email":     "hijack@example.com",
			"user_type": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "No valid fields to update", body["message"])
	})

	t.Run("unknown employee", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPut, "/profile/SSQ-9999", map[string]any{
			"department": "Engineering",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("update appends a notification", func(t *testing.T) {
		resp, notifications := doRequestList(t, app, "/notifications/"+id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, notifications)

		found := false
		for _, n := range notifications {
			if n["message"] == "Your profile details have been updated." {
				found = true
				assert.Equal(t, float64(0), n["is_read"])
			}
		}
		assert.True(t, found)
	})
}
