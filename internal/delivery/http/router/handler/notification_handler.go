package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the live order toasts of the session's role
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// NotificationView is the active toasts with the listener state
type NotificationView struct {
	State  entity.ConnectionState `json:"state"`
	Toasts []*entity.Toast        `json:"toasts"`
}

// ListNotifications returns unexpired toasts addressed to the session. Logged out visitors get none.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	view := NotificationView{State: h.uc.State(), Toasts: []*entity.Toast{}}

	state, err := page.Session.Resolve(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	switch state.Status {
	case entity.SessionCustomer:
		view.Toasts = h.uc.Toasts(entity.ToastFilter{
			Audience:     entity.AudienceCustomer,
			RecipientIDs: []entity.ID{state.Identity.SubjectID},
		})
	case entity.SessionOwner:
		shops, err := page.Shops.OwnerShops(ctx)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		filter := entity.ToastFilter{Audience: entity.AudienceOwner}
		for _, shop := range shops {
			filter.RecipientIDs = append(filter.RecipientIDs, shop.ID)
		}
		view.Toasts = h.uc.Toasts(filter)
	}

	return response.Success(c, http.StatusOK, view, "")
}
