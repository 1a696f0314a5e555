package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"greeting", "Hello there", "Namaskara"},
		{"greeting kannada", "namaskara", "Namaskara"},
		{"room rates", "what do rooms cost?", "Presidential Suite"},
		{"food", "I'm hungry", "multi-cuisine"},
		{"pool", "do you have a pool?", "infinity pool"},
		{"wifi", "is there wifi?", "Wi-Fi"},
		{"check in time", "when is check-in?", "12:00 PM"},
		{"check out time", "when do I check out?", "11:00 AM"},
		{"promo hint", "any discount available?", "BOMBAAT"},
		{"location", "where are you located?", "Indiranagar"},
		{"unknown", "quantum entanglement", "I don't understand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := controllers.ChatReply(tt.message)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestChatReplyCaseInsensitive(t *testing.T) {
	assert.Equal(t, controllers.ChatReply("POOL"), controllers.ChatReply("pool"))
}

func TestChatbotHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chatbot", controllers.Chatbot)

	body, _ := json.Marshal(gin.H{"message": "is there parking?"})
	req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Response, "parking")
}

func TestChatbotHandlerRejectsBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chatbot", controllers.Chatbot)

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
