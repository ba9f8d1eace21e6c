package geo

import "math"

// EarthRadiusKm радиус Земли в километрах, используется в формуле хаверсинуса
const EarthRadiusKm = 6371.0

// Point географическая точка (широта/долгота в градусах)
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid проверяет, что координаты находятся в допустимых диапазонах.
// DistanceKm не вызывает Valid — валидация остается на совести вызывающего кода.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceKm вычисляет расстояние по дуге большого круга между двумя точками
// по формуле хаверсинуса. Результат всегда >= 0, функция симметрична.
// Координаты вне допустимых диапазонов не отклоняются: результат будет
// численно определен, хотя физически бессмыслен.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
