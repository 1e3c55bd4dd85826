package service

import (
	"context"
	"errors"

	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type AuctionService interface {
	ListItems(ctx context.Context, activeOnly bool) ([]models.AuctionItem, error)
	GetItem(ctx context.Context, id int64) (*models.AuctionItem, error)
	CreateItem(ctx context.Context, req *models.CreateAuctionItemRequest) (*models.AuctionItem, error)
	UpdateItem(ctx context.Context, id int64, req *models.UpdateAuctionItemRequest) (*models.AuctionItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type auctionService struct {
	repo repository.AuctionRepository
}

func NewAuctionService(repo repository.AuctionRepository) AuctionService {
	return &auctionService{repo: repo}
}

func (s *auctionService) ListItems(ctx context.Context, activeOnly bool) ([]models.AuctionItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch auction items").WithError(err)
	}

	if activeOnly {
		items = lo.Filter(items, func(it models.AuctionItem, _ int) bool { return it.IsActive })
	}

	return items, nil
}

func (s *auctionService) GetItem(ctx context.Context, id int64) (*models.AuctionItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Auction item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch auction item").WithError(err)
	}

	return item, nil
}

// CreateItem stores a new item; new items are listed as active.
func (s *auctionService) CreateItem(ctx context.Context, req *models.CreateAuctionItemRequest) (*models.AuctionItem, error) {
	item := &models.AuctionItem{
		Name:        req.Name,
		Description: req.Description,
		CurrentBid:  decimal.NewFromInt(req.CurrentBid),
		TimeLeft:    req.TimeLeft,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to create auction item").WithError(err)
	}

	return item, nil
}

func (s *auctionService) UpdateItem(ctx context.Context, id int64, req *models.UpdateAuctionItemRequest) (*models.AuctionItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CurrentBid != nil {
		item.CurrentBid = decimal.NewFromInt(*req.CurrentBid)
	}
	if req.TimeLeft != nil {
		item.TimeLeft = *req.TimeLeft
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to update auction item").WithError(err)
	}

	return item, nil
}

func (s *auctionService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Auction item not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete auction item").WithError(err)
	}

	return nil
}
