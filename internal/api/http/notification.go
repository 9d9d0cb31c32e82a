package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type notificationHandler struct {
	noteSvc service.NotificationService
}

func (h *notificationHandler) list(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.noteSvc.ListNotifications(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *notificationHandler) markAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.noteSvc.MarkAsRead(r.Context(), userID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}
