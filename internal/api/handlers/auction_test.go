package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/almasezhe/warauction/internal/api/handlers"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/internal/services/mocks"
	"github.com/almasezhe/warauction/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAuctionItems(t *testing.T) {
	for _, activeOnly := range []bool{true, false} {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mockAuction := mocks.NewAuctionService(t)
			handler := handlers.NewAuctionHandler(mockAuction)
			req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/auction", nil, nil)
			recorder := httptest.NewRecorder()

			mockAuction.On("ListItems", mock.Anything, activeOnly).
				Return([]models.AuctionItem{{ID: 1, Name: "Field gun", CurrentBid: decimal.NewFromInt(900), IsActive: true}}, nil).Once()

			// Act
			handler.ListItems(activeOnly)(recorder, req)

			// Assert
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestCreateAuctionItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockAuction := mocks.NewAuctionService(t)
		handler := handlers.NewAuctionHandler(mockAuction)
		body := `{"name":"Field gun","current_bid":900,"time_left":3600}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/auction", strings.NewReader(body), adminID, nil)
		recorder := httptest.NewRecorder()

		mockAuction.On("CreateItem", mock.Anything, &models.CreateAuctionItemRequest{Name: "Field gun", CurrentBid: 900, TimeLeft: 3600}).
			Return(&models.AuctionItem{ID: 7, Name: "Field gun", IsActive: true}, nil).Once()

		// Act
		handler.CreateItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Failure - Missing name", func(t *testing.T) {
		// Arrange
		mockAuction := mocks.NewAuctionService(t)
		handler := handlers.NewAuctionHandler(mockAuction)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/auction", strings.NewReader(`{"current_bid":1}`), adminID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.CreateItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdateAuctionItem(t *testing.T) {
	t.Run("Success - Deactivate", func(t *testing.T) {
		// Arrange
		mockAuction := mocks.NewAuctionService(t)
		handler := handlers.NewAuctionHandler(mockAuction)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/admin/auction/7", strings.NewReader(`{"is_active":false}`), adminID,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockAuction.On("UpdateItem", mock.Anything, int64(7), mock.MatchedBy(func(r *models.UpdateAuctionItemRequest) bool {
			return r.IsActive != nil && !*r.IsActive && r.Name == nil
		})).Return(&models.AuctionItem{ID: 7, IsActive: false}, nil).Once()

		// Act
		handler.UpdateItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestDeleteAuctionItem(t *testing.T) {
	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		mockAuction := mocks.NewAuctionService(t)
		handler := handlers.NewAuctionHandler(mockAuction)
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/admin/auction/7", nil, adminID, map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockAuction.On("DeleteItem", mock.Anything, int64(7)).Return(appErrors.NotFoundError("Auction item not found")).Once()

		// Act
		handler.DeleteItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
