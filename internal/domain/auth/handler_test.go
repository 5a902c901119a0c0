package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginRouter(t *testing.T, users Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(users, stubJWT{}), 86400)
	RegisterPublicRoutes(r.Group("/api/v1"), h)
	return r
}

func postLogin(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login_NormalizesEmailBeforeValidation(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "admin@center.local").
		Return(adminUser(t, "secret123"), nil)

	r := loginRouter(t, users)

	// padding and casing must survive validation and match the account
	w := postLogin(r, map[string]interface{}{
		"email":    "  Admin@Center.Local ",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code, "Body: %s", w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			Callback    string `json:"callback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed-token", resp.Data.AccessToken)
	users.AssertExpectations(t)
}

func TestHandler_Login_InvalidEmailStillRejected(t *testing.T) {
	r := loginRouter(t, new(MockUserRepository))

	w := postLogin(r, map[string]interface{}{
		"email":    "not-an-email",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
