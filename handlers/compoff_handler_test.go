package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoffWorkflow(t *testing.T) {
	app, db, _ := setupTestApp(t)
	id := registerEmployee(t, app, "asha@example.com")

	balance := func() float64 {
		resp, body := doRequest(t, app, http.MethodGet, "/leave-balance/"+id, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		detail := body["compoff"].(map[string]interface{})
		return detail["allotted"].(float64)
	}

	t.Run("missing fields", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPost, "/compoff-request", map[string]any{
			"employee_id": id,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing required fields for comp-off request", body["message"])
	})

	submit := func(workDate string) string {
		resp, body := doRequest(t, app, http.MethodPost, "/compoff-request", map[string]any{
			"employee_id": id,
			"work_date":   workDate,
			"description": "release weekend",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Comp-off request submitted successfully!", body["message"])

		var recordID string
		err := db.QueryRow(
			"SELECT record_id FROM compoff_requests WHERE employee_id = ? AND work_date = ?",
			id, workDate).Scan(&recordID)
		require.NoError(t, err)
		return recordID
	}

	approvedID := submit("2025-06-07")
	rejectedID := submit("2025-06-08")

	t.Run("pending queue joins requester details", func(t *testing.T) {
		resp, queue := doRequestList(t, app, "/admin/compoff-requests")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, queue, 2)
		for _, r := range queue {
			assert.Equal(t, "Pending", r["status"])
			assert.Equal(t, "Asha", r["first_name"])
			assert.Equal(t, "asha@example.com", r["email"])
		}
	})

	t.Run("approval credits exactly one day", func(t *testing.T) {
		before := balance()
		resp, body := doRequest(t, app, http.MethodPut, "/admin/compoff-action/"+approvedID, map[string]any{
			"action": "Approved",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Comp-off request processed successfully!", body["message"])
		assert.Equal(t, before+1, balance())
	})

	t.Run("rejection leaves the balance untouched", func(t *testing.T) {
		before := balance()
		resp, _ := doRequest(t, app, http.MethodPut, "/admin/compoff-action/"+rejectedID, map[string]any{
			"action":  "Rejected",
			"comment": "was a weekday",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, before, balance())

		resp, notifications := doRequestList(t, app, "/notifications/"+id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		found := false
		for _, n := range notifications {
			if n["message"] == "Your request to earn a comp-off for working on 2025-06-08 has been rejected. Admin comment: was a weekday" {
				found = true
			}
		}
		assert.True(t, found)
	})

	// Status is not checked before applying an action, so re-approving an
	// already approved request credits the balance again.
	t.Run("re-approval credits again", func(t *testing.T) {
		before := balance()
		resp, _ := doRequest(t, app, http.MethodPut, "/admin/compoff-action/"+approvedID, map[string]any{
			"action": "Approved",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, before+1, balance())
	})

	t.Run("invalid action", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPut, "/admin/compoff-action/"+approvedID, map[string]any{
			"action": "Hold",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown record", func(t *testing.T) {
		resp, body := doRequest(t, app, http.MethodPut, "/admin/compoff-action/no-such-record", map[string]any{
			"action": "Approved",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Comp-off request not found", body["message"])
	})
}
