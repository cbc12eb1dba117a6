package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tomyumkitchen/configs"
	"tomyumkitchen/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Dish{}, &entity.Category{}, &entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Reservation{}, &entity.Admin{},
	))

	dishes := entity.SampleDishes()
	require.NoError(t, db.Create(&dishes).Error)
	coupons := entity.SampleCoupons(time.Now())
	require.NoError(t, db.Create(&coupons).Error)
	hash, err := bcrypt.GenerateFromPassword([]byte("kitchen-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{Email: "admin@tomyum.example", Password: string(hash)}).Error)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
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

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func guestToken(t *testing.T, r *gin.Engine) string {
	w, body := do(t, r, http.MethodPost, "/auth/session", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestPublicCatalog(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/menu", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]any)["items"], 8)

	w, body = do(t, r, http.MethodGet, "/menu?category=ご飯", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]any)["items"], 2)

	w, _ = do(t, r, http.MethodGet, "/menu/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/menu/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, r, http.MethodGet, "/coupons", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]any)["items"], 4, "default filter hides the used coupon")
}

func TestCartNeedsSession(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderFlow(t *testing.T) {
	r := newTestRouter(t)
	token := guestToken(t, r)

	w, _ := do(t, r, http.MethodPost, "/cart/items", token,
		map[string]any{"dishId": 1, "qty": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = do(t, r, http.MethodPost, "/cart/items", token,
		map[string]any{"dishId": 2, "qty": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := do(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := body["data"].(map[string]any)
	assert.Equal(t, float64(3800), cart["subtotal"])
	assert.Equal(t, float64(4100), cart["total"])

	w, body = do(t, r, http.MethodPost, "/orders", token, map[string]any{
		"customerName": "山田太郎",
		"phone":        "090-1234-5678",
		"email":        "taro@example.com",
		"address":      "東京都渋谷区1-2-3",
		"deliveryTime": "asap",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := body["data"].(map[string]any)
	assert.Equal(t, float64(4100), order["total"])
	assert.Equal(t, "#TK0001", order["orderNumber"])

	// checkout empties the cart
	w, body = do(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = body["data"].(map[string]any)
	assert.Equal(t, float64(0), cart["itemCount"])

	w, _ = do(t, r, http.MethodGet, "/orders/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := newTestRouter(t)
	token := guestToken(t, r)

	w, _ := do(t, r, http.MethodPost, "/orders", token, map[string]any{
		"customerName": "山田太郎",
		"phone":        "090-1234-5678",
		"email":        "taro@example.com",
		"address":      "東京都渋谷区1-2-3",
		"deliveryTime": "asap",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationFlow(t *testing.T) {
	r := newTestRouter(t)
	token := guestToken(t, r)

	w, body := do(t, r, http.MethodGet, "/reservations/slots", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, body["data"])

	date := time.Now().AddDate(0, 0, 3).Format(time.RFC3339)
	w, body = do(t, r, http.MethodPost, "/reservations", token, map[string]any{
		"customerName": "佐藤花子",
		"phone":        "080-9876-5432",
		"email":        "hanako@example.com",
		"partySize":    4,
		"date":         date,
		"timeSlot":     "18:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	res := body["data"].(map[string]any)
	assert.Equal(t, "#RS0001", res["reservationNumber"])
}

func TestAdminSurface(t *testing.T) {
	r := newTestRouter(t)

	guest := guestToken(t, r)
	w, _ := do(t, r, http.MethodGet, "/admin/dashboard", guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body := do(t, r, http.MethodPost, "/auth/admin/login", "", map[string]any{
		"email":    "admin@tomyum.example",
		"password": "kitchen-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	admin := body["data"].(map[string]any)["token"].(string)

	w, body = do(t, r, http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := body["data"].(map[string]any)
	assert.Equal(t, float64(30), stats["refreshSeconds"])

	w, _ = do(t, r, http.MethodGet, "/admin/orders", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/admin/reservations", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
