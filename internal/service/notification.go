package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID int32, message string) error {
	return s.noteRepo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Message: message,
	})
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int32) ([]domain.Notification, error) {
	return s.noteRepo.ListByUser(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, noteID int32) error {
	return s.noteRepo.MarkAsRead(ctx, noteID, userID)
}
