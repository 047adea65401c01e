package users

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/QASIM-LOKHANDWALA/Train.ai/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestProfile_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "premium_user", "limit", "liked_models"}).
			AddRow(1, "test@train.ai", "Test User", false, 5, "{m1,m2}"))

	r := testutils.SetupTestRouter()
	r.GET("/user/profile", func(c *gin.Context) {
		// Simuler l'authentification
		c.Set("user_id", uint(1))
		Profile(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/user/profile", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Profile fetched successfully.", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "test@train.ai", user["email"])
	assert.Len(t, user["liked_models"], 2)
}

func TestProfile_UserNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/user/profile", func(c *gin.Context) {
		c.Set("user_id", uint(42))
		Profile(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/user/profile", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "User not found", body["error"])
}

func TestProfile_Unauthorized(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/user/profile", Profile)

	req, _ := http.NewRequest(http.MethodGet, "/user/profile", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSetPremium_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "premium_user"}).
			AddRow(1, "test@train.ai", false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.GET("/user/set-premium", func(c *gin.Context) {
		c.Set("user_id", uint(1))
		SetPremium(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/user/set-premium", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Premium status updated.", body["message"])
}

func TestSetPremium_UserNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/user/set-premium", func(c *gin.Context) {
		c.Set("user_id", uint(42))
		SetPremium(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/user/set-premium", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
