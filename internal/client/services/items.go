package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/foundlab/lostfound/internal/client/api"
	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/common"
)

// ItemService wraps the item operations with the form-level validation the
// report and edit views need. Transition legality stays with the backend.
type ItemService interface {
	All(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	Mine(ctx context.Context) ([]models.Item, error)
	Search(ctx context.Context, query string) ([]models.Item, error)
	ByCategory(ctx context.Context, category string) ([]models.Item, error)
	ByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error)
	Report(ctx context.Context, form models.ItemForm) (models.Item, error)
	Update(ctx context.Context, id int64, form models.ItemForm) (models.Item, error)
	Mark(ctx context.Context, id int64, status models.ItemStatus) (models.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	client api.Client
}

func NewItemService(client api.Client) ItemService {
	return &itemService{client: client}
}

func (s *itemService) All(ctx context.Context) ([]models.Item, error) {
	return s.client.ListItems(ctx)
}

func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return s.client.GetItem(ctx, id)
}

func (s *itemService) Mine(ctx context.Context) ([]models.Item, error) {
	return s.client.MyItems(ctx)
}

func (s *itemService) Search(ctx context.Context, query string) ([]models.Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is empty", common.ErrValidation)
	}
	return s.client.SearchItems(ctx, query)
}

func (s *itemService) ByCategory(ctx context.Context, category string) ([]models.Item, error) {
	return s.client.ItemsByCategory(ctx, category)
}

func (s *itemService) ByStatus(ctx context.Context, status models.ItemStatus) ([]models.Item, error) {
	return s.client.ItemsByStatus(ctx, status)
}

func validateForm(form models.ItemForm) error {
	if form.Title == "" || form.Description == "" || form.Category == "" || form.Location == "" || form.ContactInfo == "" {
		return fmt.Errorf("%w: all item fields except image are required", common.ErrValidation)
	}
	if form.Status != models.ItemLost && form.Status != models.ItemFound {
		return fmt.Errorf("%w: new items are reported as LOST or FOUND", common.ErrValidation)
	}
	return nil
}

func (s *itemService) Report(ctx context.Context, form models.ItemForm) (models.Item, error) {
	if err := validateForm(form); err != nil {
		return models.Item{}, err
	}
	return s.client.CreateItem(ctx, form)
}

func (s *itemService) Update(ctx context.Context, id int64, form models.ItemForm) (models.Item, error) {
	if err := validateForm(form); err != nil {
		return models.Item{}, err
	}
	return s.client.UpdateItem(ctx, id, form)
}

// Mark updates the item status. Only the contextually valid next statuses are
// accepted, mirroring the action buttons the item card offers.
func (s *itemService) Mark(ctx context.Context, id int64, status models.ItemStatus) (models.Item, error) {
	item, err := s.client.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if !slices.Contains(models.NextStatuses(item.Status), status) {
		return models.Item{}, fmt.Errorf("%w: cannot mark %s item as %s",
			common.ErrValidation, item.Status, status)
	}

	return s.client.UpdateItemStatus(ctx, id, status)
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteItem(ctx, id)
}
