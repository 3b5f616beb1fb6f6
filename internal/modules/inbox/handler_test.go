package inbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the handler behind a stub auth middleware that acts
// as an already-authenticated admin.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, db, _ := newTestService(t)
	handler := NewHandler(svc, NewHub())

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Set("role", "admin")
	})
	handler.RegisterRoutes(admin)

	return router, db
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestReviewEndpoint_StatusMapping(t *testing.T) {
	router, db := newTestRouter(t)

	sender := seedSender(t, db)
	p := seedPendingProperty(t, db, sender.ID)
	item := seedPropertyItem(t, db, sender, p)

	// Invalid action -> 400.
	w := postJSON(t, router, fmt.Sprintf("/admin/inbox/%d/review", item.ID), ReviewRequest{Action: "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown item -> 404.
	w = postJSON(t, router, "/admin/inbox/99999/review", ReviewRequest{Action: "approve"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// First review -> 200.
	w = postJSON(t, router, fmt.Sprintf("/admin/inbox/%d/review", item.ID), ReviewRequest{Action: "approve", Note: "ok"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	// Second review -> 409.
	w = postJSON(t, router, fmt.Sprintf("/admin/inbox/%d/review", item.ID), ReviewRequest{Action: "deny"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ALREADY_REVIEWED")
}

func TestListEndpoint(t *testing.T) {
	router, db := newTestRouter(t)

	sender := seedSender(t, db)
	for i := 0; i < 3; i++ {
		p := seedPendingProperty(t, db, sender.ID)
		seedPropertyItem(t, db, sender, p)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/inbox?status=unread&page=1&page_size=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool         `json:"success"`
		Data    ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(3), envelope.Data.Total)
	assert.Len(t, envelope.Data.Items, 2)
	assert.True(t, envelope.Data.HasMore)
}

func TestStatsEndpoint(t *testing.T) {
	router, db := newTestRouter(t)

	sender := seedSender(t, db)
	p := seedPendingProperty(t, db, sender.ID)
	seedPropertyItem(t, db, sender, p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/inbox/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data.Unread)
}

func TestGetItemEndpoint_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/inbox/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateItemEndpoint_DanglingReference(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/admin/inbox", CreateItemRequest{
		Type:           "property_verification",
		EventType:      "upload",
		ReferenceID:    "424242",
		ReferenceTable: TableProperties,
		SenderID:       1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
