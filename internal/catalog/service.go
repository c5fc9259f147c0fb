package catalog

import (
	"context"
	"fmt"
	"stagepass/internal/observability"
	"stagepass/internal/store"

	"github.com/google/uuid"
)

// Store is the subset of the persistence layer the catalog needs.
type Store interface {
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	GetEventByID(ctx context.Context, eventID uuid.UUID) (store.Event, error)
	GetAccountByID(ctx context.Context, accountID uuid.UUID) (store.Account, error)
}

// FileStorage presigns download URLs for product files.
type FileStorage interface {
	PresignedDownloadURL(ctx context.Context, fileKey string) (string, error)
}

// Service serves read access to the product catalog and resolves
// time-limited download URLs for product files.
type Service struct {
	store   Store
	storage FileStorage
	logger  *observability.Logger
}

func New(store Store, storage FileStorage, logger *observability.Logger) *Service {
	return &Service{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// GetProduct retrieves a product by ID.
func (s *Service) GetProduct(ctx context.Context, productID uuid.UUID) (store.Product, error) {
	return s.store.GetProductByID(ctx, productID)
}

// GetEvent retrieves an event by ID.
func (s *Service) GetEvent(ctx context.Context, eventID uuid.UUID) (store.Event, error) {
	return s.store.GetEventByID(ctx, eventID)
}

// GetOwner retrieves the organizer account that owns an event.
func (s *Service) GetOwner(ctx context.Context, event store.Event) (store.Account, error) {
	return s.store.GetAccountByID(ctx, event.AccountID)
}

// ResolveFileURL returns a presigned download URL for the product's file.
func (s *Service) ResolveFileURL(ctx context.Context, product store.Product) (string, error) {
	if product.FileKey == "" {
		return "", fmt.Errorf("product %s has no file attached", product.ID)
	}

	url, err := s.storage.PresignedDownloadURL(ctx, product.FileKey)
	if err != nil {
		return "", fmt.Errorf("failed to resolve product file url: %w", err)
	}
	return url, nil
}
