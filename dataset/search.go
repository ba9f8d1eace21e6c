package dataset

import (
	"strings"

	"github.com/kljensen/snowball"

	"storefinder/classification"
)

// Search выполняет регистро- и диакритиконезависимый поиск подстроки
// запроса в названии, бренде, городе и адресе. Если подстрока нигде не
// встретилась, выполняется второй проход по французским основам слов,
// чтобы "surgelés" находил "surgele" и наоборот. Порядок результатов
// совпадает с порядком записей в наборе.
func (d *Dataset) Search(query string) []Hit {
	needle := classification.Fold(query)
	if needle == "" {
		return nil
	}

	var hits []Hit
	for i := range d.stores {
		if d.folded[i].contains(needle) {
			hits = append(hits, Hit{ID: d.ids[i], Store: &d.stores[i]})
		}
	}
	if len(hits) > 0 {
		return hits
	}

	// Второй шанс: сопоставление по основам слов. Стемминг идет по
	// исходному тексту: французский стеммер опирается на диакритику
	// ("surgelée" и "surgelee" дают разные основы), поэтому Fold
	// применяется к основам, а не наоборот.
	stemmed := stemTokens(query)
	if len(stemmed) == 0 {
		return nil
	}

	for i := range d.stores {
		s := &d.stores[i]
		if matchesStems(s.Name+" "+s.Brand+" "+s.City+" "+s.Address, stemmed) {
			hits = append(hits, Hit{ID: d.ids[i], Store: s})
		}
	}
	return hits
}

// contains проверяет вхождение подстроки в любое из полей
func (f *foldedStore) contains(needle string) bool {
	return strings.Contains(f.name, needle) ||
		strings.Contains(f.brand, needle) ||
		strings.Contains(f.city, needle) ||
		strings.Contains(f.address, needle)
}

// matchesStems проверяет, что каждая основа запроса встречается среди
// основ слов полей записи. Поля передаются в исходном виде, до
// удаления диакритики.
func matchesStems(fields string, queryStems []string) bool {
	fieldStems := stemTokens(fields)
	if len(fieldStems) == 0 {
		return false
	}

	index := make(map[string]bool, len(fieldStems))
	for _, s := range fieldStems {
		index[s] = true
	}

	for _, s := range queryStems {
		if !index[s] {
			return false
		}
	}
	return true
}

// stemTokens возвращает свернутые французские основы слов текста.
// Слова, которые стеммер не принял, остаются как есть.
func stemTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	stems := make([]string, 0, len(fields))
	for _, word := range fields {
		stem, err := snowball.Stem(word, "french", true)
		if err != nil || stem == "" {
			stem = word
		}
		stems = append(stems, classification.Fold(stem))
	}
	return stems
}
