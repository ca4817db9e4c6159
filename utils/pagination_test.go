package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPagination(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"valores por defecto", "", 1, 10, 0},
		{"página dos", "page=2&limit=10", 2, 10, 10},
		{"límite propio", "page=3&limit=25", 3, 25, 50},
		{"página inválida", "page=abc", 1, 10, 0},
		{"página negativa", "page=-2", 1, 10, 0},
		{"límite cero", "limit=0", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit, offset := GetPagination(contextWithQuery(tc.query))
			if page != tc.wantPage || limit != tc.wantLimit || offset != tc.wantOffset {
				t.Errorf("GetPagination(%q) = (%d, %d, %d), quería (%d, %d, %d)",
					tc.query, page, limit, offset, tc.wantPage, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
