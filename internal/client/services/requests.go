package services

import (
	"context"
	"fmt"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/common"
)

// RequestService covers claim requests: creating one for an item, listing,
// and the staff review flow.
type RequestService interface {
	All(ctx context.Context) ([]models.Request, error)
	Mine(ctx context.Context) ([]models.Request, error)
	Claim(ctx context.Context, itemID int64, notes string) (models.Request, error)
	Review(ctx context.Context, id int64, status models.RequestStatus, notes string) (models.Request, error)
	Delete(ctx context.Context, id int64) error
}

type requestService struct {
	client api.Client
}

func NewRequestService(client api.Client) RequestService {
	return &requestService{client: client}
}

func (s *requestService) All(ctx context.Context) ([]models.Request, error) {
	return s.client.ListRequests(ctx)
}

func (s *requestService) Mine(ctx context.Context) ([]models.Request, error) {
	return s.client.MyRequests(ctx)
}

func (s *requestService) Claim(ctx context.Context, itemID int64, notes string) (models.Request, error) {
	if itemID <= 0 {
		return models.Request{}, fmt.Errorf("%w: item id is required", common.ErrValidation)
	}
	return s.client.CreateRequest(ctx, itemID, notes)
}

// Review resolves a pending request. Only APPROVED or REJECTED are valid
// review outcomes.
func (s *requestService) Review(ctx context.Context, id int64, status models.RequestStatus, notes string) (models.Request, error) {
	if status != models.RequestApproved && status != models.RequestRejected {
		return models.Request{}, fmt.Errorf("%w: review outcome must be APPROVED or REJECTED", common.ErrValidation)
	}
	return s.client.UpdateRequestStatus(ctx, id, status, notes)
}

func (s *requestService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteRequest(ctx, id)
}
