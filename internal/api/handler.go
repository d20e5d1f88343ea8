// Package api serves the shop rotations as a read-only JSON API.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hunterjsb/runebot/internal/logging"
	"github.com/hunterjsb/runebot/internal/rotation"
)

const (
	maxDays            = 31
	defaultSearchCount = 5
)

var errBadRequest = errors.New("bad request")

type Handler struct {
	logger   *log.Logger
	clock    quartz.Clock
	maxCount int
}

// NewHandler creates a handler. maxCount caps the search count parameter.
func NewHandler(logger *log.Logger, clock quartz.Clock, maxCount int) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if maxCount < defaultSearchCount {
		maxCount = defaultSearchCount
	}
	return &Handler{logger: logger, clock: clock, maxCount: maxCount}
}

// NewServer wires the handler and its middleware into an echo instance.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(h.logger, h.clock))

	h.Register(e)
	return e
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/merchant", h.rotations(rotation.Merchant{}))
	e.GET("/v1/merchant/search", h.search(rotation.Merchant{}))
	e.GET("/v1/viswax", h.rotations(rotation.Runes{}))
	e.GET("/v1/viswax/search", h.search(rotation.Runes{}))
	e.GET("/v1/items", h.Items)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// rotations serves consecutive days of v starting at ?date= (default today).
func (h *Handler) rotations(v rotation.Variant) echo.HandlerFunc {
	return func(c echo.Context) error {
		day, err := h.dayParam(c, "date")
		if err != nil {
			return mapError(c, h.logger, err)
		}
		days, err := intParam(c, "days", 1, 1, maxDays)
		if err != nil {
			return mapError(c, h.logger, err)
		}

		out := make([]RotationResponse, 0, days)
		for d := day; d < day+int64(days); d++ {
			r, err := rotation.New(v, d)
			if err != nil {
				return mapError(c, h.logger, err)
			}
			out = append(out, toRotation(r))
		}

		return c.JSON(http.StatusOK, RotationsResponse{
			Variant: v.Name(),
			Days:    out,
			Meta:    MetaResp{RequestID: requestID(c)},
		})
	}
}

// search serves the next ?count= days from ?from= (default today) on which
// v stocks ?item=.
func (h *Handler) search(v rotation.Variant) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := c.QueryParam("item")
		if q == "" {
			return mapError(c, h.logger, fmt.Errorf("%w: item is required", errBadRequest))
		}
		count, err := intParam(c, "count", defaultSearchCount, 1, h.maxCount)
		if err != nil {
			return mapError(c, h.logger, err)
		}
		from, err := h.dayParam(c, "from")
		if err != nil {
			return mapError(c, h.logger, err)
		}

		item, err := rotation.Lookup(v, q)
		if err != nil {
			return mapError(c, h.logger, err)
		}

		found, err := rotation.Find(v, from, item.ID, count)
		exhausted := errors.Is(err, rotation.ErrSearchExhausted)
		if err != nil && !exhausted {
			return mapError(c, h.logger, err)
		}

		return c.JSON(http.StatusOK, SearchResponse{
			Variant:   v.Name(),
			Item:      toItem(item),
			From:      rotation.DateOf(from).Format(time.DateOnly),
			Count:     count,
			Results:   toRotations(found),
			Exhausted: exhausted,
			Meta:      MetaResp{RequestID: requestID(c)},
		})
	}
}

// Items lists the catalog of ?variant= (merchant or runes).
func (h *Handler) Items(c echo.Context) error {
	name := c.QueryParam("variant")
	if name == "" {
		name = rotation.Merchant{}.Name()
	}
	v, err := rotation.ByName(name)
	if err != nil {
		return mapError(c, h.logger, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	return c.JSON(http.StatusOK, ItemsResponse{
		Variant: v.Name(),
		Items:   toItems(append(v.Catalog(), v.Fixed()...)),
		Meta:    MetaResp{RequestID: requestID(c)},
	})
}

func (h *Handler) dayParam(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return rotation.Day(h.clock.Now()), nil
	}
	t, err := rotation.ParseDate(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be YYYY-MM-DD", errBadRequest, name)
	}
	return rotation.Day(t), nil
}

func intParam(c echo.Context, name string, fallback, lo, hi int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", errBadRequest, name, lo, hi)
	}
	return n, nil
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func mapError(c echo.Context, logger *log.Logger, err error) error {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, rotation.ErrAmbiguousItem):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, rotation.ErrUnknownItem):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "request_id", requestID(c), "err", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
