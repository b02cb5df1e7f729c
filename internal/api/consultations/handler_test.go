package consultations_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"riz-interiors-server/database"
	routes "riz-interiors-server/internal/app/http"
	"riz-interiors-server/internal/domain/consultations"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validRequest() gin.H {
	return gin.H{
		"name":    "Asha Shrestha",
		"email":   "asha@example.com",
		"phone":   "+977 9812345678",
		"service": consultations.ServiceResidential,
		"message": "Looking to redo the living room.",
	}
}

func TestSubmitConsultation(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/api/consultations", validRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	got := parse(t, w)["consultation"].(map[string]interface{})
	assert.NotEmpty(t, got["id"])
	assert.Equal(t, consultations.StatusNew, got["status"])
}

func TestSubmitConsultationValidation(t *testing.T) {
	r, _ := setup(t)

	for _, field := range []string{"name", "email", "phone", "service", "message"} {
		body := validRequest()
		delete(body, field)
		w := do(r, http.MethodPost, "/api/consultations", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "expected 400 without %s", field)
	}
}

func TestSubmitConsultationEmailShape(t *testing.T) {
	r, _ := setup(t)

	ok := validRequest()
	ok["email"] = "a@b.com"
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/consultations", ok).Code)

	for _, email := range []string{"not-an-email", "missing@domain", "a b@c.com"} {
		body := validRequest()
		body["email"] = email
		w := do(r, http.MethodPost, "/api/consultations", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "email %q must be rejected", email)
		assert.Contains(t, parse(t, w)["error"], "valid email")
	}
}

func TestSubmitConsultationPhoneShape(t *testing.T) {
	r, _ := setup(t)

	body := validRequest()
	body["phone"] = "call me"
	w := do(r, http.MethodPost, "/api/consultations", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parse(t, w)["error"], "valid phone")
}

func TestSubmitConsultationServiceEnum(t *testing.T) {
	r, _ := setup(t)

	// Enum enforcement lives in the store schema.
	body := validRequest()
	body["service"] = "industrial"
	w := do(r, http.MethodPost, "/api/consultations", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parse(t, w)["error"], "service")

	for _, svc := range []string{
		consultations.ServiceResidential,
		consultations.ServiceCommercial,
		consultations.ServiceVirtual,
	} {
		ok := validRequest()
		ok["service"] = svc
		assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/consultations", ok).Code)
	}
}

func seedConsultation(t *testing.T, db *gorm.DB, name, email, status string, createdAt time.Time) consultations.Consultation {
	t.Helper()
	con := consultations.Consultation{
		Name:      name,
		Email:     email,
		Phone:     "+977 9812345678",
		Service:   consultations.ServiceResidential,
		Message:   "msg",
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&con).Error)
	return con
}

func TestListConsultations(t *testing.T) {
	r, db := setup(t)

	base := time.Now().Add(-time.Hour)
	seedConsultation(t, db, "Alice", "alice@a.com", consultations.StatusNew, base)
	seedConsultation(t, db, "Bob", "bob@b.com", consultations.StatusContacted, base.Add(time.Minute))
	seedConsultation(t, db, "Carol", "carol@c.com", consultations.StatusNew, base.Add(2*time.Minute))

	w := do(r, http.MethodGet, "/api/consultations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := parse(t, w)
	list := body["consultations"].([]interface{})
	require.Len(t, list, 3)
	assert.Equal(t, "Carol", list[0].(map[string]interface{})["name"])
	assert.EqualValues(t, 3, body["totalConsultations"])
	assert.EqualValues(t, 1, body["totalPages"])

	// Status filter.
	w = do(r, http.MethodGet, "/api/consultations?status=contacted", nil)
	body = parse(t, w)
	assert.EqualValues(t, 1, body["totalConsultations"])

	// Search across name, email and phone.
	w = do(r, http.MethodGet, "/api/consultations?search=BOB", nil)
	assert.EqualValues(t, 1, parse(t, w)["totalConsultations"])
	w = do(r, http.MethodGet, "/api/consultations?search=9812", nil)
	assert.EqualValues(t, 3, parse(t, w)["totalConsultations"])
}

func TestGetConsultation(t *testing.T) {
	r, db := setup(t)

	con := seedConsultation(t, db, "Alice", "alice@a.com", consultations.StatusNew, time.Now())

	w := do(r, http.MethodGet, "/api/consultations/"+con.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", parse(t, w)["consultation"].(map[string]interface{})["name"])

	w = do(r, http.MethodGet, "/api/consultations/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateConsultationStatus(t *testing.T) {
	r, db := setup(t)

	con := seedConsultation(t, db, "Alice", "alice@a.com", consultations.StatusNew, time.Now())

	// Statuses are unordered; completed straight from new is fine.
	w := do(r, http.MethodPut, "/api/consultations/"+con.ID, gin.H{"status": consultations.StatusCompleted})
	require.Equal(t, http.StatusOK, w.Code)
	var stored consultations.Consultation
	require.NoError(t, db.First(&stored, "id = ?", con.ID).Error)
	assert.Equal(t, consultations.StatusCompleted, stored.Status)

	w = do(r, http.MethodPut, "/api/consultations/"+con.ID, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/api/consultations/nonexistent", gin.H{"status": consultations.StatusNew})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteConsultation(t *testing.T) {
	r, db := setup(t)

	con := seedConsultation(t, db, "Alice", "alice@a.com", consultations.StatusNew, time.Now())

	w := do(r, http.MethodDelete, "/api/consultations/"+con.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/consultations/"+con.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
