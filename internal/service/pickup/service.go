package pickup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/domain"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
)

// SubmitInput carries the fields of a public pickup request submission.
type SubmitInput struct {
	FullName       string
	Phone          string
	SenderEmail    string
	ReceiverEmail  string
	PickupAddress  string
	DropoffAddress string
	PackageDesc    string
	WeightKg       float64
	Notes          string
}

// Service coordinates pickup request intake and the one-shot conversion of a
// request into a shipment.
type Service struct {
	repo             pickupRepository
	shipments        shipmentConverter
	dispatcher       notify.Dispatcher
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates and configures a pickup Service.
func NewService(repo pickupRepository, shipments shipmentConverter, dispatcher notify.Dispatcher, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if dispatcher == nil {
		dispatcher = notify.NopDispatcher{}
	}
	return &Service{
		repo:             repo,
		shipments:        shipments,
		dispatcher:       dispatcher,
		logger:           logger,
		operationTimeout: timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateSubmit(in *SubmitInput) error {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.PickupAddress) == "" ||
		strings.TrimSpace(in.DropoffAddress) == "" ||
		strings.TrimSpace(in.PackageDesc) == "" {
		return apperr.ErrInvalid
	}
	if in.WeightKg < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Submit validates and persists a new pickup request with status pending,
// then notifies the submitter best-effort if they left an email address.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.PickupRequest, error) {
	if err := validateSubmit(&in); err != nil {
		return nil, err
	}

	weight := in.WeightKg
	if weight == 0 {
		weight = 1.0
	}

	p := &domain.PickupRequest{
		ID:             uuid.NewString(),
		FullName:       strings.TrimSpace(in.FullName),
		Phone:          strings.TrimSpace(in.Phone),
		SenderEmail:    strings.TrimSpace(in.SenderEmail),
		ReceiverEmail:  strings.TrimSpace(in.ReceiverEmail),
		PickupAddress:  strings.TrimSpace(in.PickupAddress),
		DropoffAddress: strings.TrimSpace(in.DropoffAddress),
		PackageDesc:    strings.TrimSpace(in.PackageDesc),
		WeightKg:       weight,
		Notes:          strings.TrimSpace(in.Notes),
		Status:         domain.PickupPending,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notify.Message{
		Kind: notify.KindPickupReceived,
		To:   []string{p.SenderEmail},
		Name: p.FullName,
		Note: p.Notes,
	})

	s.logger.Info("pickup submitted",
		logx.String("event", "pickup_submitted"),
		logx.String("pickup_id", p.ID),
		logx.Float64("weight_kg", p.WeightKg),
	)
	return p, nil
}

// List returns recent pickup requests with the given status. The limit
// defaults to 20 and is capped at 50; the status defaults to pending.
func (s *Service) List(ctx context.Context, status domain.PickupStatus, limit int) ([]domain.PickupRequest, error) {
	if status == "" {
		status = domain.PickupPending
	}
	if !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, status, limit)
}

// UpdateStatus sets a pickup request's status. Transitions are
// administrator-driven and unordered; only the enum itself is enforced.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.PickupStatus) error {
	id = strings.TrimSpace(id)
	if id == "" || !status.Valid() {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Convert turns a pickup request into a shipment exactly once. Repeated calls
// return the existing tracking code with AlreadyConverted set. The shipment
// and its first timeline event are written atomically; the pickup status
// update that follows is a separate write, and its failure is surfaced as
// apperr.ErrPartialConversion without compensation.
func (s *Service) Convert(ctx context.Context, pickupID, eta string) (domain.ConvertResult, error) {
	pickupID = strings.TrimSpace(pickupID)
	if pickupID == "" {
		return domain.ConvertResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.repo.Get(ctx, pickupID)
	if err != nil {
		return domain.ConvertResult{}, err
	}
	if p == nil {
		return domain.ConvertResult{}, apperr.ErrNotFound
	}

	// early exit; the pickup_id unique constraint below is the real guard
	existing, err := s.shipments.GetByPickupID(ctx, pickupID)
	if err != nil {
		return domain.ConvertResult{}, err
	}
	if existing != nil {
		return domain.ConvertResult{TrackingCode: existing.TrackingCode, AlreadyConverted: true}, nil
	}

	sh, err := s.shipments.CreateFromPickup(ctx, p, eta)
	if errors.Is(err, apperr.ErrConflict) {
		// lost the race against a concurrent conversion: the constraint
		// rejected our insert, so re-read the winner and report it
		existing, rerr := s.shipments.GetByPickupID(ctx, pickupID)
		if rerr != nil {
			return domain.ConvertResult{}, rerr
		}
		if existing == nil {
			return domain.ConvertResult{}, err
		}
		return domain.ConvertResult{TrackingCode: existing.TrackingCode, AlreadyConverted: true}, nil
	}
	if err != nil {
		return domain.ConvertResult{}, err
	}

	if ok, err := s.repo.UpdateStatus(ctx, pickupID, domain.PickupAssigned); err != nil || !ok {
		s.logger.Error("pickup status update failed after conversion",
			logx.String("pickup_id", pickupID),
			logx.String("tracking_code", sh.TrackingCode),
			logx.Any("err", err),
		)
		return domain.ConvertResult{}, fmt.Errorf("pickup %s, shipment %s: %w", pickupID, sh.TrackingCode, apperr.ErrPartialConversion)
	}

	s.logger.Info("pickup converted",
		logx.String("event", "pickup_converted"),
		logx.String("pickup_id", pickupID),
		logx.String("tracking_code", sh.TrackingCode),
	)
	return domain.ConvertResult{TrackingCode: sh.TrackingCode, AlreadyConverted: false}, nil
}
