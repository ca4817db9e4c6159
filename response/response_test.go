package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vbdhotel/errors"

	"github.com/gin-gonic/gin"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{15, 10, 2},
		{21, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, quería %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestPaginatedEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	Paginated(c, "hotels", []string{"a", "b"}, 2, 10, 15)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, ok := body["hotels"]; !ok {
		t.Error("falta la clave hotels")
	}
	if body["totalPages"] != float64(2) {
		t.Errorf("totalPages = %v", body["totalPages"])
	}
	if body["currentPage"] != float64(2) {
		t.Errorf("currentPage = %v", body["currentPage"])
	}
	if body["total"] != float64(15) {
		t.Errorf("total = %v", body["total"])
	}
}

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validación", errors.Validation("fecha inválida"), http.StatusBadRequest, "fecha inválida"},
		{"conflicto", errors.Conflict("ya existe"), http.StatusBadRequest, "ya existe"},
		{"política", errors.Policy("fuera de ventana"), http.StatusBadRequest, "fuera de ventana"},
		{"auth", errors.New(errors.KindAuth, "Credenciales inválidas"), http.StatusUnauthorized, "Credenciales inválidas"},
		{"forbidden", errors.New(errors.KindForbidden, "Token inválido"), http.StatusForbidden, "Token inválido"},
		{"not found", errors.NotFound("no existe"), http.StatusNotFound, "no existe"},
		{"interno oculta detalle", errors.Internal(errors.New(errors.KindInternal, "pánico en la base")), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			FromError(c, tc.err)

			if recorder.Code != tc.status {
				t.Errorf("status = %d, quería %d", recorder.Code, tc.status)
			}
			var body map[string]string
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if body["error"] != tc.msg {
				t.Errorf("error = %q, quería %q", body["error"], tc.msg)
			}
		})
	}
}
