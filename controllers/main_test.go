package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/routes"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	if err := utils.InitJWT(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testFixtures struct {
	user      models.User
	mustahiq  models.Mustahiq
	program   models.ProgramBantuan
	fields    []models.ParameterField
	coaDebet  models.CoA
	coaKredit models.CoA
}

func setupApp(t *testing.T) (*gin.Engine, testFixtures) {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Mustahiq{},
		&models.ProgramBantuan{},
		&models.SumberDana{},
		&models.ParameterField{},
		&models.ParameterFieldValue{},
		&models.CoA{},
		&models.Penyaluran{},
	))
	config.DB = db

	fx := testFixtures{
		user:     models.User{Nama: "Petugas", Email: "petugas@ziswaf.local", Role: "amil", IsActive: true},
		mustahiq: models.Mustahiq{NIK: "3578010101900001", Nama: "Budi", Status: "active"},
		program:  models.ProgramBantuan{NamaProgram: "Bantuan Sembako", Kategori: "konsumtif", Status: models.ProgramActive},
	}
	require.NoError(t, db.Create(&fx.user).Error)
	require.NoError(t, db.Create(&fx.mustahiq).Error)
	require.NoError(t, db.Create(&fx.program).Error)

	fx.fields = []models.ParameterField{
		{ProgramID: fx.program.ID, FieldName: "Jenis Bantuan", FieldType: models.FieldSelect, Options: "sembako, uang", Urutan: 0},
		{ProgramID: fx.program.ID, FieldName: "Jumlah Anak", FieldType: models.FieldNumber, Urutan: 1},
	}
	require.NoError(t, db.Create(&fx.fields).Error)

	fx.coaDebet = models.CoA{Kode: "101.01.001.001", Nama: "Kas Zakat", JenisTransaksi: "debet"}
	fx.coaKredit = models.CoA{Kode: "501.01.001.001", Nama: "Penyaluran Zakat", JenisTransaksi: "kredit"}
	require.NoError(t, db.Create(&fx.coaDebet).Error)
	require.NoError(t, db.Create(&fx.coaKredit).Error)

	r := gin.New()
	routes.SetupRoutes(r)
	return r, fx
}

func authCookie(t *testing.T, fx testFixtures) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(fx.user.ID, fx.user.Nama, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
