package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/starlog/catalog-api/internal/core/ports"
)

type FilmHandler struct {
	filmService ports.FilmService
	syncService ports.SyncService
}

func NewFilmHandler(filmService ports.FilmService, syncService ports.SyncService) *FilmHandler {
	return &FilmHandler{filmService: filmService, syncService: syncService}
}

// Create adds a film to the catalog.
//
// @Summary      Create a film
// @Tags         films
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      filmRequest  true  "Film details"
// @Success      201   {object}  filmResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /film/create [post]
func (h *FilmHandler) Create(c echo.Context) error {
	var req filmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	film, err := h.filmService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toFilmResponse(film))
}

// ListAll returns every film with full details.
//
// @Summary      List films
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   filmResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /film/all [get]
func (h *FilmHandler) ListAll(c echo.Context) error {
	films, err := h.filmService.ListWithDetails(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFilmResponses(films))
}

// ListTitles returns only the film titles.
//
// @Summary      List film titles
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /film/titles [get]
func (h *FilmHandler) ListTitles(c echo.Context) error {
	titles, err := h.filmService.ListTitles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, titles)
}

// GetByID returns a single film.
//
// @Summary      Get a film
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Film id"
// @Success      200  {object}  filmResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /film/{id} [get]
func (h *FilmHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid film id")
	}

	film, err := h.filmService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFilmResponse(film))
}

// Update replaces the mutable fields of a film.
//
// @Summary      Update a film
// @Tags         films
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Film id"
// @Param        body  body      filmRequest  true  "Film details"
// @Success      200   {object}  filmResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /film/{id} [patch]
func (h *FilmHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid film id")
	}

	var req filmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	film, err := h.filmService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFilmResponse(film))
}

// Delete removes a film from the catalog.
//
// @Summary      Delete a film
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Film id"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /film/{id} [delete]
func (h *FilmHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid film id")
	}

	if err := h.filmService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// Sync pulls the upstream catalog and upserts every film by title.
//
// @Summary      Sync the catalog from the upstream API
// @Tags         films
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ports.SyncResult
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /film/sync [post]
func (h *FilmHandler) Sync(c echo.Context) error {
	result, err := h.syncService.Sync(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
