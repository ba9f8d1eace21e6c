package classification

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer раскладывает символы в NFD, удаляет комбинирующие знаки
// и собирает обратно в NFC. Так "é" и "e"+"́" дают одинаковый результат.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold приводит текст к форме для сопоставления с ключевыми словами:
// нижний регистр, без диакритики, без лишних пробелов.
// Ключевые слова в таблицах правил уже хранятся в этой форме.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	return strings.Join(strings.Fields(folded), " ")
}
