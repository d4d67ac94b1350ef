// Package handler contains the echo handlers of the storefront API.
package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentPage returns the page opened by the session middleware
func currentPage(c echo.Context) (*usecase.Page, error) {
	page := deliverycontext.GetPage(c)
	if page == nil {
		return nil, errors.New("no page opened for request")
	}

	return page, nil
}

// pathID reads a required id path parameter
func pathID(c echo.Context, name string) (entity.ID, error) {
	id := entity.ID(c.Param(name))
	if id.IsZero() {
		return "", domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	return id, nil
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
