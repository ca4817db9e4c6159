package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeQuery deja el texto en minúsculas, sin acentos y sin
// espacios sobrantes, para comparar búsquedas de forma tolerante.
func NormalizeQuery(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// Similarity devuelve un valor en [0,1] basado en la distancia de
// Levenshtein entre los textos ya normalizados.
func Similarity(a, b string) float64 {
	a, b = NormalizeQuery(a), NormalizeQuery(b)
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(longest)
}

// SearchService sugiere correcciones cuando una búsqueda de ciudad no
// arroja resultados, a partir del catálogo de ciudades conocidas.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Suggest devuelve la ciudad más parecida a la consulta, o "" si
// ninguna supera el umbral de similitud.
func (s *SearchService) Suggest(query string, cities []string) string {
	if query == "" || len(cities) == 0 {
		return ""
	}

	normalized := make([]string, len(cities))
	byNormalized := make(map[string]string, len(cities))
	for i, city := range cities {
		normalized[i] = NormalizeQuery(city)
		byNormalized[normalized[i]] = city
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	candidate := cm.Closest(NormalizeQuery(query))
	if candidate == "" {
		return ""
	}
	if Similarity(query, candidate) < 0.7 {
		return ""
	}
	return byNormalized[candidate]
}
