package shipment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/domain"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
	"parcelpoint/internal/ports/shipmenttx"
	"parcelpoint/internal/repository"
	"parcelpoint/internal/tracking"
)

// maxAllocAttempts bounds the insert-and-retry loop for tracking code
// allocation. Five attempts in a 16.7M code space make collision-induced
// failure astronomically unlikely.
const maxAllocAttempts = 5

// initialNoteCreated is the note on the first timeline event of a shipment
// created directly by an administrator.
const initialNoteCreated = "Shipment created"

// initialNoteConverted is the note on the first timeline event of a shipment
// converted from a pickup request.
const initialNoteConverted = "Converted from pickup request"

// CreateInput carries the fields for a direct shipment creation. Only the two
// addresses are required.
type CreateInput struct {
	SenderName     string
	SenderPhone    string
	SenderEmail    string
	ReceiverName   string
	ReceiverPhone  string
	ReceiverEmail  string
	PickupAddress  string
	DropoffAddress string
	ETA            string
}

// Service coordinates shipment business logic: tracking code allocation, the
// append-only timeline, and the cached status projection.
type Service struct {
	repo             shipmentRepository
	dispatcher       notify.Dispatcher
	logger           logx.Logger
	allocRetries     counter
	operationTimeout time.Duration

	generate func() string
}

// NewService creates and configures a shipment Service.
func NewService(repo shipmentRepository, dispatcher notify.Dispatcher, logger logx.Logger, allocRetries counter, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if dispatcher == nil {
		dispatcher = notify.NopDispatcher{}
	}
	return &Service{
		repo:             repo,
		dispatcher:       dispatcher,
		logger:           logger,
		allocRetries:     allocRetries,
		operationTimeout: timeout,
		generate:         tracking.Generate,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create inserts a new shipment with a freshly allocated tracking code and its
// initial "Label created" timeline event in one transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Shipment, error) {
	if strings.TrimSpace(in.PickupAddress) == "" || strings.TrimSpace(in.DropoffAddress) == "" {
		return nil, apperr.ErrInvalid
	}

	sh := &domain.Shipment{
		SenderName:     strings.TrimSpace(in.SenderName),
		SenderPhone:    strings.TrimSpace(in.SenderPhone),
		SenderEmail:    strings.TrimSpace(in.SenderEmail),
		ReceiverName:   strings.TrimSpace(in.ReceiverName),
		ReceiverPhone:  strings.TrimSpace(in.ReceiverPhone),
		ReceiverEmail:  strings.TrimSpace(in.ReceiverEmail),
		PickupAddress:  strings.TrimSpace(in.PickupAddress),
		DropoffAddress: strings.TrimSpace(in.DropoffAddress),
		ETA:            strings.TrimSpace(in.ETA),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.allocate(ctx, sh, initialNoteCreated); err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, sh)
	return sh, nil
}

// CreateFromPickup inserts a shipment derived from a pickup request: sender
// identity and both addresses are copied, receiver contact is left unset.
func (s *Service) CreateFromPickup(ctx context.Context, p *domain.PickupRequest, eta string) (*domain.Shipment, error) {
	if p == nil {
		return nil, apperr.ErrInvalid
	}

	pickupID := p.ID
	sh := &domain.Shipment{
		PickupID:       &pickupID,
		SenderName:     p.FullName,
		SenderPhone:    p.Phone,
		SenderEmail:    p.SenderEmail,
		ReceiverEmail:  p.ReceiverEmail,
		PickupAddress:  p.PickupAddress,
		DropoffAddress: p.DropoffAddress,
		ETA:            strings.TrimSpace(eta),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.allocate(ctx, sh, initialNoteConverted); err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, sh)
	return sh, nil
}

// allocate runs the insert-and-retry loop: generate a candidate code, insert
// shipment + initial event atomically, and on a tracking code collision retry
// with fresh randomness. The store's unique constraint is the authoritative
// guard; this loop is only the client-side recovery strategy.
func (s *Service) allocate(ctx context.Context, sh *domain.Shipment, note string) error {
	sh.ID = uuid.NewString()
	sh.CurrentStatus = domain.StatusLabelCreated

	for attempt := 1; attempt <= maxAllocAttempts; attempt++ {
		sh.TrackingCode = s.generate()

		err := s.repo.WithTx(ctx, func(tx shipmenttx.Repository) error {
			if err := tx.InsertShipment(ctx, sh); err != nil {
				return err
			}
			return tx.InsertEvent(ctx, &domain.TimelineEvent{
				ShipmentID: sh.ID,
				Status:     domain.StatusLabelCreated,
				Note:       note,
			})
		})
		if err == nil {
			return nil
		}
		if repository.IsDuplicateOf(err, repository.ConstraintPickupRef) {
			// a concurrent conversion of the same pickup won the race
			return apperr.ErrConflict
		}
		if !repository.IsDuplicateOf(err, repository.ConstraintTrackingCode) {
			return err
		}

		if s.allocRetries != nil {
			s.allocRetries.Inc()
		}
		s.logger.Warn("tracking code collision, retrying",
			logx.String("tracking_code", sh.TrackingCode),
			logx.Int("attempt", attempt),
		)
	}
	return apperr.ErrAllocationExhausted
}

// GetByPickupID returns the shipment converted from the given pickup request,
// or nil if none exists.
func (s *Service) GetByPickupID(ctx context.Context, pickupID string) (*domain.Shipment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.GetByPickupID(ctx, pickupID)
}

// Track returns a shipment and its ordered timeline by tracking code.
func (s *Service) Track(ctx context.Context, code string) (*domain.TrackView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sh, err := s.repo.GetByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, apperr.ErrNotFound
	}

	events, err := s.repo.ListEvents(ctx, sh.ID)
	if err != nil {
		return nil, err
	}
	return &domain.TrackView{Shipment: *sh, Timeline: events}, nil
}

// List returns recent shipments, optionally filtered by a tracking code
// substring. The limit defaults to 20 and is capped at 50.
func (s *Service) List(ctx context.Context, query string, limit int) ([]domain.Shipment, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, strings.TrimSpace(query), limit)
}

// AppendStatus appends a timeline event and refreshes the cached status
// projection in the same transaction.
func (s *Service) AppendStatus(ctx context.Context, code, status, note string) error {
	code = strings.TrimSpace(code)
	status = strings.TrimSpace(status)
	note = strings.TrimSpace(note)
	if code == "" || status == "" {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sh, err := s.repo.GetByTrackingCode(ctx, code)
	if err != nil {
		return err
	}
	if sh == nil {
		return apperr.ErrNotFound
	}

	err = s.repo.WithTx(ctx, func(tx shipmenttx.Repository) error {
		if err := tx.InsertEvent(ctx, &domain.TimelineEvent{
			ShipmentID: sh.ID,
			Status:     status,
			Note:       note,
		}); err != nil {
			return err
		}
		return tx.UpdateCurrentStatus(ctx, sh.ID, status)
	})
	if err != nil {
		return err
	}

	s.dispatcher.Dispatch(ctx, notify.Message{
		Kind:         notify.KindStatusUpdate,
		To:           []string{sh.SenderEmail, sh.ReceiverEmail},
		TrackingCode: sh.TrackingCode,
		Status:       status,
		Note:         note,
		ETA:          sh.ETA,
	})

	s.logger.Info("status appended",
		logx.String("event", "status_appended"),
		logx.String("tracking_code", sh.TrackingCode),
		logx.String("status", status),
	)
	return nil
}

func (s *Service) notifyCreated(ctx context.Context, sh *domain.Shipment) {
	s.dispatcher.Dispatch(ctx, notify.Message{
		Kind:         notify.KindShipmentCreated,
		To:           []string{sh.SenderEmail, sh.ReceiverEmail},
		Name:         sh.SenderName,
		TrackingCode: sh.TrackingCode,
		Status:       sh.CurrentStatus,
		ETA:          sh.ETA,
	})

	s.logger.Info("shipment created",
		logx.String("event", "shipment_created"),
		logx.String("tracking_code", sh.TrackingCode),
	)
}
