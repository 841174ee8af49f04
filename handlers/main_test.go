package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodhub-api/config"
	"foodhub-api/db"
	"foodhub-api/models"
	"foodhub-api/routes"
)

// newTestServer builds the full router with every role bound to the same
// in-memory database, plus a direct handle for seeding and row counting.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	creds := config.Credentials{}
	for _, role := range models.SessionRoles {
		creds[role] = dsn
	}

	sessions, err := db.Open(creds)
	require.NoError(t, err)
	require.NoError(t, sessions.Migrate())

	r := gin.New()
	routes.SetupRoutes(r, sessions)

	direct, err := sessions.ForRole(models.RoleAdmin)
	require.NoError(t, err)
	return r, direct
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, r *gin.Engine, role models.Role, username, email, password string) uint {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/signup", "", gin.H{
		"role":     role,
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedRestaurantWithFood(t *testing.T, direct *gorm.DB, ownerID uint) (*models.Restaurant, *models.Food) {
	t.Helper()
	restaurant := models.Restaurant{OwnerID: ownerID, Name: "Trattoria", Address: "1 Main St"}
	require.NoError(t, direct.Create(&restaurant).Error)
	food := models.Food{RestaurantID: restaurant.ID, Name: "Margherita", Price: 9.99}
	require.NoError(t, direct.Create(&food).Error)
	return &restaurant, &food
}
