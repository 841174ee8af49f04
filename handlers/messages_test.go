package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

func TestMessagingBetweenCustomers(t *testing.T) {
	r, _ := newTestServer(t)

	aliceID := signup(t, r, models.RoleCustomer, "alice", "alice@x.com", "password1")
	bobID := signup(t, r, models.RoleCustomer, "bob", "bob@x.com", "password1")
	aliceToken := login(t, r, "alice", "password1")
	bobToken := login(t, r, "bob", "password1")

	// Alice resolves Bob's username before starting the chat.
	w := doJSON(t, r, "GET", "/api/customers/lookup/bob", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(bobID), decode(t, w)["customer_id"])

	w = doJSON(t, r, "POST", "/api/messages", aliceToken, gin.H{
		"recipient_id": bobID,
		"contents":     "is the kitchen still open?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Both sides see the message in their box.
	for _, token := range []string{aliceToken, bobToken} {
		w = doJSON(t, r, "GET", "/api/customers/messages", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode(t, w)
		require.Equal(t, float64(1), body["count"])
		msg := body["messages"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, float64(aliceID), msg["sender_id"])
		assert.Equal(t, float64(bobID), msg["recipient_id"])
		assert.Equal(t, "is the kitchen still open?", msg["contents"])
	}
}

func TestMessageRejectsSelfAndUnknownRecipient(t *testing.T) {
	r, _ := newTestServer(t)

	aliceID := signup(t, r, models.RoleCustomer, "alice", "alice@x.com", "password1")
	aliceToken := login(t, r, "alice", "password1")

	w := doJSON(t, r, "POST", "/api/messages", aliceToken, gin.H{
		"recipient_id": aliceID,
		"contents":     "note to self",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/api/messages", aliceToken, gin.H{
		"recipient_id": aliceID + 99,
		"contents":     "hello?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestMessageDeleteSenderOnly(t *testing.T) {
	r, direct := newTestServer(t)

	signup(t, r, models.RoleCustomer, "alice", "alice@x.com", "password1")
	bobID := signup(t, r, models.RoleCustomer, "bob", "bob@x.com", "password1")
	aliceToken := login(t, r, "alice", "password1")
	bobToken := login(t, r, "bob", "password1")

	w := doJSON(t, r, "POST", "/api/messages", aliceToken, gin.H{
		"recipient_id": bobID,
		"contents":     "wrong chat, ignore",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode(t, w)["message"].(map[string]interface{})
	path := fmt.Sprintf("/api/messages/%v", msg["id"])

	// The recipient can read but never mutate.
	w = doJSON(t, r, "DELETE", path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = doJSON(t, r, "DELETE", path, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, direct.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMyRestaurantsListsOnlyCallersOwn(t *testing.T) {
	r, direct := newTestServer(t)

	ownerID := signup(t, r, models.RoleRestaurant, "owner1", "o1@x.com", "password1")
	otherID := signup(t, r, models.RoleRestaurant, "owner2", "o2@x.com", "password1")
	ownerToken := login(t, r, "owner1", "password1")

	seedRestaurantWithFood(t, direct, ownerID)
	seedRestaurantWithFood(t, direct, otherID)

	w := doJSON(t, r, "GET", "/api/my/restaurants", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	require.Equal(t, float64(1), body["count"])
	listed := body["restaurants"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(ownerID), listed["owner_id"])

	// Customers have no restaurants to list.
	signup(t, r, models.RoleCustomer, "carol", "carol@x.com", "password1")
	carolToken := login(t, r, "carol", "password1")
	w = doJSON(t, r, "GET", "/api/my/restaurants", carolToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}
