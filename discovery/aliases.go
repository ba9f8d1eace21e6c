package discovery

import (
	"strings"

	"storefinder/classification"
)

// brandAlias расширение запроса для торговой сети: если основной поиск дал
// мало результатов и запрос содержит название сети, выполняются
// дополнительные запросы по известным вывескам этой сети.
type brandAlias struct {
	// Trigger подстрока свернутого запроса, включающая расширение
	Trigger string
	// Queries дополнительные поисковые запросы
	Queries []string
}

// brandAliases курируемая таблица вывесок бельгийских сетей.
// Порядок таблицы определяет порядок дополнительных запросов и тем самым
// детерминированность итоговой выдачи.
var brandAliases = []brandAlias{
	{Trigger: "delhaize", Queries: []string{"AD Delhaize", "Delhaize Shop", "Proxy Delhaize"}},
	{Trigger: "carrefour", Queries: []string{"Carrefour Express", "Carrefour Market", "Carrefour Hypermarché"}},
	{Trigger: "colruyt", Queries: []string{"Colruyt", "OKay", "Bio-Planet"}},
	{Trigger: "intermarche", Queries: []string{"Intermarché", "Intermarché Contact"}},
	{Trigger: "match", Queries: []string{"Match", "Smatch"}},
	{Trigger: "spar", Queries: []string{"Spar", "Spar Express", "Eurospar"}},
	{Trigger: "aldi", Queries: []string{"Aldi"}},
	{Trigger: "lidl", Queries: []string{"Lidl"}},
	{Trigger: "cora", Queries: []string{"Cora"}},
	{Trigger: "okay", Queries: []string{"OKay", "OKay Compact"}},
	{Trigger: "louis delhaize", Queries: []string{"Louis Delhaize"}},
}

// expandQueries возвращает дополнительные запросы для первого сработавшего
// расширения. Запрос сворачивается (регистр, диакритика), поэтому
// "Intermarché" включает расширение "intermarche".
func expandQueries(query string) []string {
	folded := classification.Fold(query)
	for _, alias := range brandAliases {
		if strings.Contains(folded, alias.Trigger) {
			return alias.Queries
		}
	}
	return nil
}
