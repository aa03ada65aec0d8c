package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/config"
	"github.com/infogrowkro/growkroweb/internal/models"
	"github.com/infogrowkro/growkroweb/internal/server"
)

const (
	testJWTSecret     = "test-secret-key-for-jwt-testing-32chars"
	testGatewaySecret = "test-gateway-secret"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway mimics the provider: sequential order ids and the real
// HMAC-SHA256("order|payment") signature scheme.
type fakeGateway struct {
	secret     string
	orders     int
	failCreate bool
}

func (f *fakeGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	if f.failCreate {
		return "", fmt.Errorf("provider unavailable")
	}
	f.orders++
	return fmt.Sprintf("order_test%03d", f.orders), nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return hmac.Equal([]byte(signature), []byte(signFor(f.secret, orderID, paymentID)))
}

func (f *fakeGateway) KeyID() string {
	return "rzp_test_growkro"
}

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeGateway) {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)

	db := newTestDB(t)
	gateway := &fakeGateway{secret: testGatewaySecret}

	r := gin.New()
	server.SetupRoutes(r, db, gateway)
	return r, db, gateway
}

func adminToken(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@growkro.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func performRequest(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return performRequest(r, method, path, body, map[string]string{
		"Authorization": "Bearer " + adminToken(t),
	})
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func seedCreator(t *testing.T, db *gorm.DB, creator *models.Creator) *models.Creator {
	t.Helper()
	if creator.Name == "" {
		creator.Name = "Test Creator"
	}
	if creator.Email == "" {
		creator.Email = uuid.NewString() + "@example.com"
	}
	if creator.ProfileStatus == "" {
		creator.ProfileStatus = models.StatusPending
	}
	require.NoError(t, db.Create(creator).Error)
	return creator
}
