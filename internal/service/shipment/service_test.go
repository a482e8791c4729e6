package shipment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"parcelpoint/internal/apperr"
	"parcelpoint/internal/domain"
	"parcelpoint/internal/logx"
	"parcelpoint/internal/notify"
	"parcelpoint/internal/ports/shipmenttx"
	"parcelpoint/internal/repository"
)

type stubTx struct {
	insertShipmentFn func(context.Context, *domain.Shipment) error
	insertEventFn    func(context.Context, *domain.TimelineEvent) error
	getIDFn          func(context.Context, string) (string, error)
	updateStatusFn   func(context.Context, string, string) error
}

func (s *stubTx) InsertShipment(ctx context.Context, sh *domain.Shipment) error {
	if s.insertShipmentFn == nil {
		return nil
	}
	return s.insertShipmentFn(ctx, sh)
}

func (s *stubTx) InsertEvent(ctx context.Context, e *domain.TimelineEvent) error {
	if s.insertEventFn == nil {
		return nil
	}
	return s.insertEventFn(ctx, e)
}

func (s *stubTx) GetIDByTrackingCode(ctx context.Context, code string) (string, error) {
	if s.getIDFn == nil {
		return "", nil
	}
	return s.getIDFn(ctx, code)
}

func (s *stubTx) UpdateCurrentStatus(ctx context.Context, shipmentID, status string) error {
	if s.updateStatusFn == nil {
		return nil
	}
	return s.updateStatusFn(ctx, shipmentID, status)
}

type stubRepo struct {
	tx                *stubTx
	withTxErr         error
	getByTrackingFn   func(context.Context, string) (*domain.Shipment, error)
	getByPickupFn     func(context.Context, string) (*domain.Shipment, error)
	listFn            func(context.Context, string, int) ([]domain.Shipment, error)
	listEventsFn      func(context.Context, string) ([]domain.TimelineEvent, error)
	withTxInterceptFn func(fn func(tx shipmenttx.Repository) error) error
}

func (r *stubRepo) WithTx(_ context.Context, fn func(tx shipmenttx.Repository) error) error {
	if r.withTxInterceptFn != nil {
		return r.withTxInterceptFn(fn)
	}
	if r.withTxErr != nil {
		return r.withTxErr
	}
	tx := r.tx
	if tx == nil {
		tx = &stubTx{}
	}
	return fn(tx)
}

func (r *stubRepo) GetByTrackingCode(ctx context.Context, code string) (*domain.Shipment, error) {
	if r.getByTrackingFn == nil {
		return nil, nil
	}
	return r.getByTrackingFn(ctx, code)
}

func (r *stubRepo) GetByPickupID(ctx context.Context, pickupID string) (*domain.Shipment, error) {
	if r.getByPickupFn == nil {
		return nil, nil
	}
	return r.getByPickupFn(ctx, pickupID)
}

func (r *stubRepo) List(ctx context.Context, query string, limit int) ([]domain.Shipment, error) {
	if r.listFn == nil {
		return nil, nil
	}
	return r.listFn(ctx, query, limit)
}

func (r *stubRepo) ListEvents(ctx context.Context, shipmentID string) ([]domain.TimelineEvent, error) {
	if r.listEventsFn == nil {
		return nil, nil
	}
	return r.listEventsFn(ctx, shipmentID)
}

type countingCounter struct {
	mu sync.Mutex
	n  int
}

func (c *countingCounter) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *countingCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type recordingDispatcher struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg notify.Message) {
	d.mu.Lock()
	d.msgs = append(d.msgs, msg)
	d.mu.Unlock()
}

func (d *recordingDispatcher) messages() []notify.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.Message(nil), d.msgs...)
}

func trackingDupErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: repository.ConstraintTrackingCode}
}

func pickupDupErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: repository.ConstraintPickupRef}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	var insertedShipment *domain.Shipment
	var insertedEvent *domain.TimelineEvent
	repo := &stubRepo{tx: &stubTx{
		insertShipmentFn: func(_ context.Context, sh *domain.Shipment) error {
			insertedShipment = sh
			return nil
		},
		insertEventFn: func(_ context.Context, e *domain.TimelineEvent) error {
			insertedEvent = e
			return nil
		},
	}}
	dispatcher := &recordingDispatcher{}

	svc := NewService(repo, dispatcher, logx.Nop(), nil, time.Second)

	got, err := svc.Create(context.Background(), CreateInput{
		SenderName:     "  Jane  ",
		SenderEmail:    "jane@example.com",
		ReceiverEmail:  "bob@example.com",
		PickupAddress:  "1 First St",
		DropoffAddress: "2 Second St",
	})
	require.NoError(t, err)
	require.Same(t, insertedShipment, got)
	require.NotEmpty(t, got.ID)
	require.True(t, domain.ValidateTrackingCode(got.TrackingCode), "got %q", got.TrackingCode)
	require.Equal(t, domain.StatusLabelCreated, got.CurrentStatus)
	require.Equal(t, "Jane", got.SenderName)
	require.Nil(t, got.PickupID)

	require.NotNil(t, insertedEvent)
	require.Equal(t, got.ID, insertedEvent.ShipmentID)
	require.Equal(t, domain.StatusLabelCreated, insertedEvent.Status)
	require.Equal(t, "Shipment created", insertedEvent.Note)

	msgs := dispatcher.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, notify.KindShipmentCreated, msgs[0].Kind)
	require.Equal(t, got.TrackingCode, msgs[0].TrackingCode)
	require.Equal(t, []string{"jane@example.com", "bob@example.com"}, msgs[0].To)
}

func TestCreate_MissingAddresses(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)

	_, err := svc.Create(context.Background(), CreateInput{DropoffAddress: "x"})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = svc.Create(context.Background(), CreateInput{PickupAddress: "x", DropoffAddress: "   "})
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCreate_RetriesOnTrackingCollision(t *testing.T) {
	t.Parallel()

	attempts := 0
	var codes []string
	repo := &stubRepo{}
	repo.withTxInterceptFn = func(fn func(tx shipmenttx.Repository) error) error {
		attempts++
		if attempts <= 2 {
			return trackingDupErr()
		}
		return fn(&stubTx{})
	}

	retries := &countingCounter{}
	svc := NewService(repo, nil, logx.Nop(), retries, time.Second)
	svc.generate = func() string {
		c := tailCode(len(codes))
		codes = append(codes, c)
		return c
	}

	got, err := svc.Create(context.Background(), CreateInput{
		PickupAddress:  "a",
		DropoffAddress: "b",
	})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
	require.Equal(t, 2, retries.value())
	// every attempt drew fresh randomness
	require.Equal(t, codes[len(codes)-1], got.TrackingCode)
	require.Len(t, codes, 3)
}

func tailCode(n int) string {
	const hexDigits = "0123456789ABCDEF"
	return "PP-00000" + string(hexDigits[n%16])
}

func TestCreate_AllocationExhausted(t *testing.T) {
	t.Parallel()

	attempts := 0
	repo := &stubRepo{}
	repo.withTxInterceptFn = func(func(tx shipmenttx.Repository) error) error {
		attempts++
		return trackingDupErr()
	}

	retries := &countingCounter{}
	svc := NewService(repo, nil, logx.Nop(), retries, time.Second)

	_, err := svc.Create(context.Background(), CreateInput{PickupAddress: "a", DropoffAddress: "b"})
	require.ErrorIs(t, err, apperr.ErrAllocationExhausted)
	require.Equal(t, maxAllocAttempts, attempts)
	require.Equal(t, maxAllocAttempts, retries.value())
}

func TestCreate_NonCollisionErrorNotRetried(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("disk on fire")
	attempts := 0
	repo := &stubRepo{}
	repo.withTxInterceptFn = func(func(tx shipmenttx.Repository) error) error {
		attempts++
		return wantErr
	}

	svc := NewService(repo, nil, logx.Nop(), nil, time.Second)

	_, err := svc.Create(context.Background(), CreateInput{PickupAddress: "a", DropoffAddress: "b"})
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 1, attempts)
}

func TestCreateFromPickup_CopiesPickupFields(t *testing.T) {
	t.Parallel()

	var inserted *domain.Shipment
	repo := &stubRepo{tx: &stubTx{
		insertShipmentFn: func(_ context.Context, sh *domain.Shipment) error {
			inserted = sh
			return nil
		},
	}}

	svc := NewService(repo, nil, logx.Nop(), nil, time.Second)

	p := &domain.PickupRequest{
		ID:             "p1",
		FullName:       "Jane",
		Phone:          "+1555",
		SenderEmail:    "jane@example.com",
		ReceiverEmail:  "bob@example.com",
		PickupAddress:  "1 First St",
		DropoffAddress: "2 Second St",
	}

	got, err := svc.CreateFromPickup(context.Background(), p, "3 days")
	require.NoError(t, err)
	require.Same(t, inserted, got)
	require.NotNil(t, got.PickupID)
	require.Equal(t, "p1", *got.PickupID)
	require.Equal(t, "Jane", got.SenderName)
	require.Equal(t, "+1555", got.SenderPhone)
	require.Equal(t, "bob@example.com", got.ReceiverEmail)
	require.Empty(t, got.ReceiverName)
	require.Empty(t, got.ReceiverPhone)
	require.Equal(t, "3 days", got.ETA)
}

func TestCreateFromPickup_ConcurrentConversionIsConflict(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	repo.withTxInterceptFn = func(func(tx shipmenttx.Repository) error) error {
		return pickupDupErr()
	}

	svc := NewService(repo, nil, logx.Nop(), nil, time.Second)

	_, err := svc.CreateFromPickup(context.Background(), &domain.PickupRequest{ID: "p1"}, "")
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateFromPickup_NilPickup(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)
	_, err := svc.CreateFromPickup(context.Background(), nil, "")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestTrack_Success(t *testing.T) {
	t.Parallel()

	sh := &domain.Shipment{ID: "s1", TrackingCode: "PP-AB12CD", CurrentStatus: domain.StatusInTransit}
	events := []domain.TimelineEvent{
		{ID: 1, ShipmentID: "s1", Status: domain.StatusLabelCreated},
		{ID: 2, ShipmentID: "s1", Status: domain.StatusInTransit},
	}

	repo := &stubRepo{
		getByTrackingFn: func(_ context.Context, code string) (*domain.Shipment, error) {
			require.Equal(t, "PP-AB12CD", code)
			return sh, nil
		},
		listEventsFn: func(_ context.Context, shipmentID string) ([]domain.TimelineEvent, error) {
			require.Equal(t, "s1", shipmentID)
			return events, nil
		},
	}

	svc := NewService(repo, nil, logx.Nop(), nil, time.Second)

	view, err := svc.Track(context.Background(), "  PP-AB12CD  ")
	require.NoError(t, err)
	require.Equal(t, *sh, view.Shipment)
	require.Equal(t, events, view.Timeline)
}

func TestTrack_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)

	_, err := svc.Track(context.Background(), "PP-000000")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTrack_EmptyCode(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)

	_, err := svc.Track(context.Background(), "   ")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestList_LimitDefaults(t *testing.T) {
	t.Parallel()

	var gotLimit int
	var gotQuery string
	repo := &stubRepo{
		listFn: func(_ context.Context, query string, limit int) ([]domain.Shipment, error) {
			gotQuery = query
			gotLimit = limit
			return nil, nil
		},
	}

	svc := NewService(repo, nil, logx.Nop(), nil, time.Second)

	_, err := svc.List(context.Background(), " PP ", 0)
	require.NoError(t, err)
	require.Equal(t, 20, gotLimit)
	require.Equal(t, "PP", gotQuery)

	_, err = svc.List(context.Background(), "", 9999)
	require.NoError(t, err)
	require.Equal(t, 50, gotLimit)
}

func TestAppendStatus_Success(t *testing.T) {
	t.Parallel()

	sh := &domain.Shipment{
		ID:           "s1",
		TrackingCode: "PP-AB12CD",
		SenderEmail:  "jane@example.com",
		ETA:          "2 days",
	}

	var insertedEvent *domain.TimelineEvent
	var statusUpdate struct {
		id, status string
	}
	repo := &stubRepo{
		getByTrackingFn: func(context.Context, string) (*domain.Shipment, error) { return sh, nil },
		tx: &stubTx{
			insertEventFn: func(_ context.Context, e *domain.TimelineEvent) error {
				insertedEvent = e
				return nil
			},
			updateStatusFn: func(_ context.Context, id, status string) error {
				statusUpdate.id = id
				statusUpdate.status = status
				return nil
			},
		},
	}
	dispatcher := &recordingDispatcher{}

	svc := NewService(repo, dispatcher, logx.Nop(), nil, time.Second)

	err := svc.AppendStatus(context.Background(), "PP-AB12CD", "  In transit ", " left the depot ")
	require.NoError(t, err)

	require.NotNil(t, insertedEvent)
	require.Equal(t, "s1", insertedEvent.ShipmentID)
	require.Equal(t, "In transit", insertedEvent.Status)
	require.Equal(t, "left the depot", insertedEvent.Note)

	require.Equal(t, "s1", statusUpdate.id)
	require.Equal(t, "In transit", statusUpdate.status)

	msgs := dispatcher.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, notify.KindStatusUpdate, msgs[0].Kind)
	require.Equal(t, "In transit", msgs[0].Status)
	require.Equal(t, "2 days", msgs[0].ETA)
}

func TestAppendStatus_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)

	require.ErrorIs(t, svc.AppendStatus(context.Background(), "", "In transit", ""), apperr.ErrInvalid)
	require.ErrorIs(t, svc.AppendStatus(context.Background(), "PP-AB12CD", "  ", ""), apperr.ErrInvalid)
}

func TestAppendStatus_UnknownCode(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, time.Second)

	err := svc.AppendStatus(context.Background(), "PP-000000", "Delivered", "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAppendStatus_TxFailureSkipsNotification(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("deadlock")
	repo := &stubRepo{
		getByTrackingFn: func(context.Context, string) (*domain.Shipment, error) {
			return &domain.Shipment{ID: "s1", TrackingCode: "PP-AB12CD"}, nil
		},
		withTxErr: wantErr,
	}
	dispatcher := &recordingDispatcher{}

	svc := NewService(repo, dispatcher, logx.Nop(), nil, time.Second)

	err := svc.AppendStatus(context.Background(), "PP-AB12CD", "Delivered", "")
	require.ErrorIs(t, err, wantErr)
	require.Empty(t, dispatcher.messages())
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubRepo{}, nil, logx.Nop(), nil, 0)
	require.Equal(t, 3*time.Second, svc.operationTimeout)
	require.NotNil(t, svc.dispatcher)
	require.NotNil(t, svc.generate)
}
