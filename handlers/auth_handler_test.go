package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/register", map[string]any{
		"first_name": "Asha",
		"last_name":  "Verma",
		"email":      "asha@example.com",
		"password":   "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Registration successful!", body["message"])
	assert.Equal(t, "SSQ-1001", body["id"])

	t.Run("sequence increments", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/register", map[string]any{
			"first_name": "Ravi",
			"last_name":  "Kumar",
			"email":      "ravi@example.com",
			"password":   "secret123",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "SSQ-1002", body["id"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/register", map[string]any{
			"first_name": "Asha",
			"last_name":  "Verma",
			"email":      "asha@example.com",
			"password":   "other",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Email already exists", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/register", map[string]any{
			"first_name": "NoEmail",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	t.Run("force change required on first login", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "secret123",
			"user_type": "employee",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Password change required", body["message"])
		assert.Equal(t, true, body["force_change"])
		assert.Equal(t, id, body["user_id"])
		assert.NotContains(t, body, "user")
	})

	activateEmployee(t, app, id, "NewSecret1")

	t.Run("successful login returns profile without password", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "NewSecret1",
			"user_type": "employee",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Login successful!", body["message"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, id, user["id"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "wrong",
			"user_type": "employee",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid employee credentials", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "ghost@example.com",
			"password":  "whatever",
			"user_type": "employee",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin login", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "admin@gmail.com",
			"password":  "123",
			"user_type": "admin",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Admin login successful!", body["message"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "ADMIN-001", user["id"])
		assert.Equal(t, "admin", user["user_type"])
	})

	t.Run("bad admin credentials", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "admin@gmail.com",
			"password":  "nope",
			"user_type": "admin",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid Admin credentials", body["message"])
	})

	t.Run("admin email rejected on employee path", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "admin@gmail.com",
			"password":  "123",
			"user_type": "employee",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid employee credentials", body["message"])
	})

	t.Run("invalid user type", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "NewSecret1",
			"user_type": "superuser",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid user type specified", body["message"])
	})
}

func TestForceChangePassword(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	resp, body := doRequest(t, app, http.MethodPut, "/force-change-password", map[string]any{
		"user_id":      id,
		"new_password": "Changed99",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password updated successfully! Logging in...", body["message"])
	user := body["user"].(map[string]interface{})
	assert.NotContains(t, user, "password")
	assert.Equal(t, float64(0), user["force_password_change"])

	t.Run("unknown user", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/force-change-password", map[string]any{
			"user_id":      "SSQ-9999",
			"new_password": "whatever",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Employee not found", body["message"])
	})
}

func TestForgotPassword(t *testing.T) {
	app, _, mail := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")
	activateEmployee(t, app, id, "NewSecret1")

	t.Run("unknown email gets the generic message", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/forgot-password", map[string]any{
			"email": "ghost@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "If an account with that email exists, a new password has been sent.", body["message"])
		assert.Empty(t, mail.sentTo)
	})

	t.Run("reset mails a temporary password and forces a change", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/forgot-password", map[string]any{
			"email": "asha@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "A new password has been sent to your email address.", body["message"])
		require.Equal(t, []string{"asha@example.com"}, mail.sentTo)
		require.Len(t, mail.lastPassword, 10)

		loginResp, loginBody := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  mail.lastPassword,
			"user_type": "employee",
		})
		require.Equal(t, http.StatusOK, loginResp.StatusCode)
		assert.Equal(t, true, loginBody["force_change"])
	})

	t.Run("mail failure returns 500 after the password was stored", func(t *testing.T) {
		mail.failNext = true
		resp, _ := doRequest(t, app, http.MethodPost, "/forgot-password", map[string]any{
			"email": "asha@example.com",
		})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestChangePassword(t *testing.T) {
	app, _, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")
	activateEmployee(t, app, id, "NewSecret1")

	t.Run("wrong old password", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/profile/change-password/"+id, map[string]any{
			"old_password": "nope",
			"new_password": "Another1",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Incorrect old password", body["message"])
	})

	t.Run("unknown employee", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPut, "/profile/change-password/SSQ-9999", map[string]any{
			"old_password": "NewSecret1",
			"new_password": "Another1",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/profile/change-password/"+id, map[string]any{
			"old_password": "NewSecret1",
			"new_password": "Another1",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Password updated successfully!", body["message"])

		loginResp, _ := doRequest(t, app, http.MethodPost, "/login", map[string]any{
			"username":  "asha@example.com",
			"password":  "Another1",
			"user_type": "employee",
		})
		assert.Equal(t, http.StatusOK, loginResp.StatusCode)
	})
}
