// Package dataset содержит курируемый локальный набор бельгийских магазинов.
// Набор неизменяем после загрузки, безопасно разделяется между вызовами без
// блокировок и подставляется в движок явно — тесты подменяют его маленькой
// фикстурой вместо глобального состояния.
package dataset

import (
	"fmt"
	"strings"

	"storefinder/classification"
)

// LocalIDPrefix префикс идентификаторов локальных записей. Внешние
// провайдеры таких идентификаторов не выдают, коллизий не возникает.
const LocalIDPrefix = "local_"

// Store запись курируемого набора: форма ResolvedPlace без идентификатора
type Store struct {
	Name       string            `json:"name"`
	Brand      string            `json:"brand"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	PostalCode string            `json:"postal_code"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Phone      string            `json:"phone,omitempty"`
	Hours      map[string]string `json:"hours,omitempty"`
}

// HasLocation сообщает, есть ли у записи координаты
func (s *Store) HasLocation() bool {
	return s.Lat != 0 || s.Lon != 0
}

// Hit результат локального поиска: запись вместе со стабильным
// локальным идентификатором
type Hit struct {
	ID    string
	Store *Store
}

// Dataset неизменяемый после конструирования набор магазинов
// с предвычисленными индексами для поиска
type Dataset struct {
	stores []Store
	ids    []string
	byID   map[string]int
	folded []foldedStore
}

// foldedStore свернутые поля записи для регистронезависимого поиска
type foldedStore struct {
	name    string
	brand   string
	city    string
	address string
}

// New строит набор из переданных записей. Записи копируются,
// исходный срез может быть изменен вызывающим кодом.
func New(stores []Store) *Dataset {
	d := &Dataset{
		stores: make([]Store, len(stores)),
		ids:    make([]string, len(stores)),
		byID:   make(map[string]int, len(stores)),
		folded: make([]foldedStore, len(stores)),
	}
	copy(d.stores, stores)

	for i := range d.stores {
		id := LocalID(d.stores[i].Name, i)
		d.ids[i] = id
		d.byID[id] = i
		d.folded[i] = foldedStore{
			name:    classification.Fold(d.stores[i].Name),
			brand:   classification.Fold(d.stores[i].Brand),
			city:    classification.Fold(d.stores[i].City),
			address: classification.Fold(d.stores[i].Address),
		}
	}

	return d
}

// Len возвращает число записей набора
func (d *Dataset) Len() int {
	return len(d.stores)
}

// ByID возвращает запись по локальному идентификатору
func (d *Dataset) ByID(id string) (*Store, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &d.stores[idx], true
}

// All возвращает все записи набора в исходном порядке
func (d *Dataset) All() []Hit {
	hits := make([]Hit, len(d.stores))
	for i := range d.stores {
		hits[i] = Hit{ID: d.ids[i], Store: &d.stores[i]}
	}
	return hits
}

// LocalID детерминированно строит локальный идентификатор из названия
// и позиции записи: local_<свернутое-название>_<индекс>
func LocalID(name string, index int) string {
	return fmt.Sprintf("%s%s_%d", LocalIDPrefix, sanitize(name), index)
}

// IsLocalID распознает формат локального идентификатора
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// sanitize сводит название к нижнему регистру без диакритики,
// а прочие символы схлопывает в "_"
func sanitize(name string) string {
	folded := classification.Fold(name)

	var b strings.Builder
	lastUnderscore := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
