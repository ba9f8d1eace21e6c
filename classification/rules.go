// Package classification относит произвольные названия магазинов и товаров
// к фиксированным категориям при помощи упорядоченных таблиц ключевых слов.
//
// Порядок правил — часть контракта: правила проверяются строго сверху вниз,
// побеждает первое совпадение. Узкие категории стоят выше широких, поэтому
// название, задевающее одновременно узкое и широкое правило, получает метку
// узкого (например "nutella" — это pates-a-tartiner, а не confiserie,
// хотя какао-слова есть и там).
package classification

import "strings"

// Rule одно правило классификации: метка и набор ключевых слов.
// Ключевые слова хранятся в свернутой форме (см. Fold).
type Rule struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// RuleSet упорядоченный набор правил. Позиция правила определяет приоритет.
type RuleSet []Rule

// Classifier классификатор по таблице правил с гарантированной запасной меткой
type Classifier struct {
	rules    RuleSet
	fallback string
}

// NewClassifier создает классификатор поверх переданной таблицы правил.
// Таблица передается извне: у каждой таблицы должен быть один источник
// истины, общий для всех мест вызова.
func NewClassifier(rules RuleSet, fallback string) *Classifier {
	return &Classifier{
		rules:    rules,
		fallback: fallback,
	}
}

// Classify возвращает метку для названия и необязательной внешней таксономии.
// Название и таксономия склеиваются и сворачиваются один раз, далее правила
// проверяются по порядку до первого совпадения. Функция тотальна: при
// отсутствии совпадений возвращается запасная метка. Ошибок не бывает.
func (c *Classifier) Classify(text string, taxonomy ...string) string {
	haystack := text
	if len(taxonomy) > 0 {
		haystack = text + " " + strings.Join(taxonomy, " ")
	}
	haystack = Fold(haystack)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(haystack, kw) {
				return rule.Label
			}
		}
	}

	return c.fallback
}

// Fallback возвращает запасную метку классификатора
func (c *Classifier) Fallback() string {
	return c.fallback
}

// Labels возвращает все метки таблицы в порядке приоритета,
// запасная метка идет последней.
func (c *Classifier) Labels() []string {
	seen := make(map[string]bool, len(c.rules))
	labels := make([]string, 0, len(c.rules)+1)
	for _, rule := range c.rules {
		if !seen[rule.Label] {
			seen[rule.Label] = true
			labels = append(labels, rule.Label)
		}
	}
	return append(labels, c.fallback)
}
