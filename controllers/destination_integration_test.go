//go:build integration || !unit

package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vbdhotel/models"
	"vbdhotel/services"

	"github.com/gin-gonic/gin"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type silentAudit struct{}

func (silentAudit) Info(string, *uint, string, map[string]interface{})    {}
func (silentAudit) Warning(string, *uint, string, map[string]interface{}) {}
func (silentAudit) Error(string, *uint, string, map[string]interface{})   {}

func setupControllerDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vbdhotel_test",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run postgres: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("host=127.0.0.1 port=%s user=postgres password=secret dbname=vbdhotel_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if e != nil {
			return e
		}
		sqlDB, e := db.DB()
		if e != nil {
			return e
		}
		return sqlDB.Ping()
	}); err != nil {
		t.Fatalf("connect postgres: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Destination{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func putJSON(t *testing.T, path, id, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, recorder
}

func TestDestinationUpdatePreservesColumns(t *testing.T) {
	db := setupControllerDB(t)
	ctrl := NewDestinationController(db, services.NewRatingService(db), silentAudit{})

	destination := models.Destination{Name: "Bacalar", Description: "Laguna de siete colores", Price: 450}
	if err := db.Create(&destination).Error; err != nil {
		t.Fatalf("create destination: %v", err)
	}
	if err := db.Model(&models.Destination{}).Where("id = ?", destination.ID).Update("rating", 4.2).Error; err != nil {
		t.Fatalf("set rating: %v", err)
	}

	var before models.Destination
	if err := db.First(&before, destination.ID).Error; err != nil {
		t.Fatalf("reload destination: %v", err)
	}
	if before.Country != "México" {
		t.Fatalf("Country = %q, quería el default México", before.Country)
	}

	// El body no manda country, currency ni language.
	body := `{"name":"Bacalar renovado","description":"Laguna","price":480}`
	c, recorder := putJSON(t, "/api/destinations/"+fmt.Sprint(destination.ID), fmt.Sprint(destination.ID), body)
	ctrl.Update(c)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	var after models.Destination
	if err := db.First(&after, destination.ID).Error; err != nil {
		t.Fatalf("reload destination: %v", err)
	}
	if after.Name != "Bacalar renovado" {
		t.Errorf("Name = %q", after.Name)
	}
	if after.Price != 480 {
		t.Errorf("Price = %v", after.Price)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt cambió: antes %v, después %v", before.CreatedAt, after.CreatedAt)
	}
	if after.CreatedAt.Year() < 2000 {
		t.Errorf("CreatedAt quedó en cero: %v", after.CreatedAt)
	}
	if after.Rating != 4.2 {
		t.Errorf("Rating = %v, quería 4.2", after.Rating)
	}
	if after.Country != "México" {
		t.Errorf("Country = %q, quería conservar México", after.Country)
	}
	if after.Currency != "MXN" {
		t.Errorf("Currency = %q, quería conservar MXN", after.Currency)
	}
	if after.Language != "Español" {
		t.Errorf("Language = %q, quería conservar Español", after.Language)
	}
}
