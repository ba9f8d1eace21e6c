// Package openinghours преобразует текстовые расписания работы магазинов
// (строки вида "Monday: 8:00 AM – 8:00 PM") в каноничную недельную схему.
//
// Известная особенность схемы: если текст часов не распознан ни как
// 12-часовой диапазон, ни как признак "закрыто", он сохраняется в расписании
// как есть. Потребители, ожидающие строго "HH:MM-HH:MM"|"Fermé", могут
// получить произвольный текст — это осознанный компромисс ради того, чтобы
// никогда не терять данные, и он сохранен для совместимости.
package openinghours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Closed каноничный маркер закрытого дня
const Closed = "Fermé"

// Schedule недельное расписание: ключи — канонические английские названия
// дней недели в нижнем регистре. Отсутствие дня означает "неизвестно",
// что отличается от "закрыто".
type Schedule map[string]string

// dayKeys таблица соответствия названий дней каноничным ключам
var dayKeys = map[string]string{
	"monday":    "monday",
	"tuesday":   "tuesday",
	"wednesday": "wednesday",
	"thursday":  "thursday",
	"friday":    "friday",
	"saturday":  "saturday",
	"sunday":    "sunday",
}

// rangePattern 12-часовой диапазон: "8:00 AM – 8:00 PM", разделитель — тире или дефис
var rangePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*[–-]\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)

// Normalize разбирает строки вида "<день>: <часы>" в недельное расписание.
// Строки с нераспознанным названием дня пропускаются: частичное расписание —
// валидный результат, а не ошибка. Функция никогда не возвращает ошибку.
func Normalize(lines []string) Schedule {
	schedule := make(Schedule)

	for _, line := range lines {
		day, hours, ok := splitLine(line)
		if !ok {
			continue
		}

		key, known := dayKeys[strings.ToLower(strings.TrimSpace(day))]
		if !known {
			continue
		}

		schedule[key] = normalizeHours(hours)
	}

	return schedule
}

// splitLine отделяет название дня от текста часов по первому ": "
func splitLine(line string) (day, hours string, ok bool) {
	idx := strings.Index(line, ": ")
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+2:], true
}

// normalizeHours приводит текст часов к "HH:MM-HH:MM" либо к маркеру Closed.
// Нераспознанный текст возвращается без изменений (см. комментарий пакета).
func normalizeHours(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "closed") || strings.Contains(lower, "fermé") {
		return Closed
	}

	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return strings.TrimSpace(text)
	}

	open := to24h(m[1], m[2], m[3])
	close := to24h(m[4], m[5], m[6])
	return open + "-" + close
}

// to24h переводит час/минуты/меридиан в "HH:MM".
// Граничные случаи: 12 AM -> 00, 12 PM -> 12.
func to24h(hourStr, minuteStr, meridiem string) string {
	hour, _ := strconv.Atoi(hourStr)
	if minuteStr == "" {
		minuteStr = "00"
	}

	switch strings.ToUpper(meridiem) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return fmt.Sprintf("%02d:%s", hour, minuteStr)
}
