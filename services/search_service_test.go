package services

import "testing"

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Cancún ", "cancun"},
		{"QUERÉTARO", "queretaro"},
		{"reynosa", "reynosa"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeQuery(tc.in); got != tc.want {
			t.Errorf("NormalizeQuery(%q) = %q, quería %q", tc.in, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("Cancún", "cancun"); got != 1 {
		t.Errorf("los textos normalizados iguales deberían dar 1, dio %v", got)
	}
	if got := Similarity("reynoza", "reynosa"); got < 0.7 {
		t.Errorf("un error de una letra debería superar 0.7, dio %v", got)
	}
	if got := Similarity("xyz", "monterrey"); got >= 0.7 {
		t.Errorf("textos sin relación no deberían superar 0.7, dio %v", got)
	}
}

func TestSuggest(t *testing.T) {
	search := NewSearchService()
	cities := []string{"Reynosa", "Monterrey", "Querétaro", "Ciudad Madero"}

	if got := search.Suggest("reynoza", cities); got != "Reynosa" {
		t.Errorf("Suggest(reynoza) = %q, quería Reynosa", got)
	}
	if got := search.Suggest("queretaro", cities); got != "Querétaro" {
		t.Errorf("Suggest(queretaro) = %q, quería Querétaro", got)
	}
	if got := search.Suggest("zzzzzz", cities); got != "" {
		t.Errorf("Suggest(zzzzzz) = %q, quería vacío", got)
	}
	if got := search.Suggest("", cities); got != "" {
		t.Errorf("Suggest con consulta vacía = %q, quería vacío", got)
	}
}
