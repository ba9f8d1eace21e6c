package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefinder/discovery"
	"storefinder/geo"
	"storefinder/openinghours"
	"storefinder/server/middleware"
)

// sendError отправляет стандартный JSON ответ об ошибке
func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Error:     true,
		Message:   message,
		RequestID: middleware.FromGin(c),
	})
}

// HandleSuggest обработчик поиска кандидатов
// @Summary Поиск магазинов
// @Description Возвращает ранжированный список кандидатов по текстовому запросу с опциональной геопривязкой
// @Tags discovery
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param lat query number false "Широта для ранжирования по расстоянию"
// @Param lon query number false "Долгота для ранжирования по расстоянию"
// @Success 200 {object} SuggestResponse "Список кандидатов"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/suggest [get]
func (s *Server) HandleSuggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		sendError(c, http.StatusBadRequest, "query parameter q is required")
		return
	}

	near, err := parseCoords(c, "lat", "lon")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	suggestions := s.facade.Suggest(c.Request.Context(), query, near)

	c.JSON(http.StatusOK, SuggestResponse{
		Query:       query,
		Suggestions: suggestions,
		Count:       len(suggestions),
	})
}

// HandleResolve обработчик разрешения кандидата
// @Summary Разрешить кандидата
// @Description Разрешает идентификатор кандидата в полную запись магазина с нормализованным расписанием и меткой сети
// @Tags discovery
// @Produce json
// @Param id path string true "Идентификатор кандидата"
// @Success 200 {object} ResolveResponse "Запись магазина"
// @Failure 404 {object} ErrorResponse "Кандидат не найден"
// @Router /api/resolve/{id} [get]
func (s *Server) HandleResolve(c *gin.Context) {
	id := c.Param("id")

	place, err := s.facade.Resolve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, discovery.ErrNotFound) {
			sendError(c, http.StatusNotFound, "place not found: "+id)
			return
		}
		sendError(c, http.StatusInternalServerError, "resolve failed")
		return
	}

	c.JSON(http.StatusOK, ResolveResponse{Place: place})
}

// HandleClassifyProduct обработчик классификации товара
// @Summary Классифицировать товар
// @Description Определяет категорию товара по имени и опциональной таксономии источника
// @Tags classification
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Имя товара"
// @Success 200 {object} ClassifyResponse "Категория товара"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/classify/product [post]
func (s *Server) HandleClassifyProduct(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: name is required")
		return
	}

	label := s.products.Classify(req.Name, req.Taxonomy...)

	c.JSON(http.StatusOK, ClassifyResponse{Name: req.Name, Label: label})
}

// HandleClassifyStore обработчик определения типа магазина
// @Summary Определить тип магазина
// @Description Определяет сеть или тип магазина по имени и опциональным типам источника
// @Tags classification
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Имя магазина"
// @Success 200 {object} ClassifyResponse "Тип магазина"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/classify/store [post]
func (s *Server) HandleClassifyStore(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: name is required")
		return
	}

	label := s.detector.Classify(req.Name, req.Taxonomy...)

	c.JSON(http.StatusOK, ClassifyResponse{Name: req.Name, Label: label})
}

// HandleNormalizeHours обработчик нормализации расписания
// @Summary Нормализовать расписание
// @Description Приводит строки расписания в 12-часовом формате к каноническому виду HH:MM-HH:MM по дням недели
// @Tags normalization
// @Accept json
// @Produce json
// @Param request body HoursRequest true "Строки расписания"
// @Success 200 {object} HoursResponse "Нормализованное расписание"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/hours/normalize [post]
func (s *Server) HandleNormalizeHours(c *gin.Context) {
	var req HoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: lines is required")
		return
	}

	c.JSON(http.StatusOK, HoursResponse{Schedule: openinghours.Normalize(req.Lines)})
}

// HandleDistance обработчик расчета расстояния
// @Summary Расстояние между точками
// @Description Возвращает расстояние по большому кругу между двумя координатами в километрах
// @Tags geo
// @Produce json
// @Param from_lat query number true "Широта первой точки"
// @Param from_lon query number true "Долгота первой точки"
// @Param to_lat query number true "Широта второй точки"
// @Param to_lon query number true "Долгота второй точки"
// @Success 200 {object} DistanceResponse "Расстояние в километрах"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/distance [get]
func (s *Server) HandleDistance(c *gin.Context) {
	from, err := parseCoords(c, "from_lat", "from_lon")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseCoords(c, "to_lat", "to_lon")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if from == nil || to == nil {
		sendError(c, http.StatusBadRequest, "from_lat, from_lon, to_lat, to_lon are required")
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{DistanceKm: geo.DistanceKm(*from, *to)})
}

// HandleHealth обработчик проверки состояния
// @Summary Состояние сервера
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Статус"
// @Router /health [get]
func (s *Server) HandleHealth(c *gin.Context) {
	count := 0
	if s.local != nil {
		count = s.local.Len()
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Version:    Version,
		StoreCount: count,
	})
}

// parseCoords читает пару координатных query-параметров. Оба отсутствуют —
// возвращается nil без ошибки; один отсутствует или не парсится — ошибка.
func parseCoords(c *gin.Context, latKey, lonKey string) (*geo.Point, error) {
	latStr := c.Query(latKey)
	lonStr := c.Query(lonKey)
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errors.New(latKey + " and " + lonKey + " must be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("invalid " + latKey)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, errors.New("invalid " + lonKey)
	}

	point := geo.Point{Lat: lat, Lon: lon}
	if !point.Valid() {
		return nil, errors.New("coordinates out of range")
	}
	return &point, nil
}
