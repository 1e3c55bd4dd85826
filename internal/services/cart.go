package service

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"sync"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/cart"
	"github.com/almasezhe/warauction/internal/config"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/models"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// CartService keeps one in-memory cart per signed-in user. Carts are never
// persisted and are lost on restart or sign out.
type CartService interface {
	View(ctx context.Context, userID uuid.UUID, profile string) (*cart.View, error)
	AddItem(ctx context.Context, userID uuid.UUID, optionID int64) (*cart.View, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, optionID int64) (*cart.View, error)
	SetQuantity(ctx context.Context, userID uuid.UUID, req *models.SetQuantityRequest) (*cart.View, error)
	UpdateModifiers(ctx context.Context, userID uuid.UUID, req *models.UpdateModifiersRequest) (*cart.View, error)
	Clear(ctx context.Context, userID uuid.UUID) (*cart.View, error)
	Discard(ctx context.Context, userID uuid.UUID)
	BeginSubmission(ctx context.Context, userID uuid.UUID) (*cart.View, error)
	SettleSubmission(ctx context.Context, userID uuid.UUID, succeeded bool) error
}

type cartSession struct {
	mu   sync.Mutex
	cart *cart.Cart
}

type cartService struct {
	catalog  CatalogService
	pricing  config.Pricing
	policy   *bluemonday.Policy
	mu       sync.Mutex
	sessions map[uuid.UUID]*cartSession
}

func NewCartService(catalog CatalogService, pricing config.Pricing) CartService {
	return &cartService{
		catalog:  catalog,
		pricing:  pricing,
		policy:   bluemonday.StrictPolicy(),
		sessions: make(map[uuid.UUID]*cartSession),
	}
}

func (s *cartService) profile(name string) (cart.Profile, error) {
	if name == "" {
		name = s.pricing.DefaultProfile
	}

	p, err := s.pricing.Profile(name)
	if err != nil {
		return cart.Profile{}, appErrors.BadRequestError("Unknown pricing profile").WithError(err)
	}

	return p, nil
}

// session returns the user's cart session, creating it with the default
// profile on first use.
func (s *cartService) session(userID uuid.UUID) (*cartSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess, nil
	}

	p, err := s.profile("")
	if err != nil {
		return nil, err
	}

	sess := &cartSession{cart: cart.New(p)}
	s.sessions[userID] = sess

	return sess, nil
}

// mutate runs fn against the user's cart unless a submission is in flight.
func (s *cartService) mutate(userID uuid.UUID, fn func(c *cart.Cart) error) (*cart.View, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.cart.State() == cart.SubmissionInFlight {
		return nil, appErrors.ConflictError("Order submission in progress").WithError(cart.ErrSubmissionInProgress)
	}

	if err := fn(sess.cart); err != nil {
		return nil, err
	}

	view := sess.cart.View()

	return &view, nil
}

// View returns the current cart. A non-empty profile that differs from the
// cart's current one starts a fresh cart priced with that profile.
func (s *cartService) View(ctx context.Context, userID uuid.UUID, profile string) (*cart.View, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if profile != "" && profile != sess.cart.Profile().Name {
		if sess.cart.State() == cart.SubmissionInFlight {
			return nil, appErrors.ConflictError("Order submission in progress").WithError(cart.ErrSubmissionInProgress)
		}

		p, err := s.profile(profile)
		if err != nil {
			return nil, err
		}

		middleware.LoggerFromContext(ctx).Info("Switching cart pricing profile",
			slog.String("from", sess.cart.Profile().Name),
			slog.String("to", p.Name),
		)

		sess.cart = cart.New(p)
	}

	view := sess.cart.View()

	return &view, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, optionID int64) (*cart.View, error) {
	option, err := s.catalog.GetOption(ctx, optionID)
	if err != nil {
		return nil, err
	}

	return s.mutate(userID, func(c *cart.Cart) error {
		c.AddItem(option.CatalogItem())
		return nil
	})
}

func (s *cartService) RemoveItem(_ context.Context, userID uuid.UUID, optionID int64) (*cart.View, error) {
	return s.mutate(userID, func(c *cart.Cart) error {
		c.RemoveItem(optionID)
		return nil
	})
}

func (s *cartService) SetQuantity(_ context.Context, userID uuid.UUID, req *models.SetQuantityRequest) (*cart.View, error) {
	return s.mutate(userID, func(c *cart.Cart) error {
		switch c.SetQuantity(req.OptionID, req.Quantity) {
		case cart.QuantityRejected:
			return appErrors.AddValidationError("quantity", "must be at least 1").
				WithDetail(string(cart.QuantityRejected))
		case cart.QuantityNoLine:
			return appErrors.NotFoundError("Option is not in the cart").
				WithDetail(string(cart.QuantityNoLine))
		}

		return nil
	})
}

func (s *cartService) UpdateModifiers(_ context.Context, userID uuid.UUID, req *models.UpdateModifiersRequest) (*cart.View, error) {
	return s.mutate(userID, func(c *cart.Cart) error {
		if req.Message != nil {
			c.SetMessage(s.sanitize(*req.Message))
		}
		if req.Rush != nil {
			c.SetRush(*req.Rush)
		}
		if req.ExtraService != nil {
			c.SetExtraService(*req.ExtraService)
		}

		return nil
	})
}

// sanitize strips markup from the message while keeping plain punctuation
// as typed, so the surcharge counts what the user sees.
func (s *cartService) sanitize(message string) string {
	return html.UnescapeString(s.policy.Sanitize(message))
}

func (s *cartService) Clear(_ context.Context, userID uuid.UUID) (*cart.View, error) {
	return s.mutate(userID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *cartService) Discard(ctx context.Context, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; ok {
		delete(s.sessions, userID)
		middleware.LoggerFromContext(ctx).Info("Cart session discarded", slog.String("user_id", userID.String()))
	}
}

// BeginSubmission moves the cart in flight and returns the snapshot the order
// is built from.
func (s *cartService) BeginSubmission(_ context.Context, userID uuid.UUID) (*cart.View, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.cart.IsEmpty() {
		return nil, appErrors.BadRequestError("Cart is empty")
	}

	if err := sess.cart.BeginSubmission(); err != nil {
		return nil, appErrors.ConflictError("Order submission in progress").WithError(err)
	}

	view := sess.cart.View()

	return &view, nil
}

func (s *cartService) SettleSubmission(ctx context.Context, userID uuid.UUID, succeeded bool) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()

	if !ok {
		middleware.LoggerFromContext(ctx).Warn("Submission settled for a discarded cart", slog.String("user_id", userID.String()))
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var err error
	if succeeded {
		err = sess.cart.CompleteSubmission()
	} else {
		err = sess.cart.FailSubmission()
	}

	if errors.Is(err, cart.ErrNoSubmission) {
		return appErrors.ConflictError("No submission in progress").WithError(err)
	}

	return err
}
