package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/booking"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/infra"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/clock"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/queue"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSeatNotFound            = errs.New("seat not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrSeriesNotFound          = errs.New("series has no future bookings")
	ErrInvalidUserName         = errs.New("invalid user name")
	ErrInvalidDate             = errs.New("invalid date")
	ErrInvalidRecurrence       = errs.New("invalid recurrence")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError carries the full conflict list plus the preview so the
// caller can self-service a fix through the suggestions.
type ConflictError struct {
	Message   string
	Conflicts []queries.ConflictView
	Preview   *queries.PreviewView
}

func (e *ConflictError) Error() string {
	return e.Message
}

type CreateBookingParams struct {
	SeatID        string
	Date          string
	UserName      string
	Recurrence    *queries.RecurrenceInput
	SkipConflicts bool
}

// CreateBookingResult is either a single booking (Single set, no series
// payload) or a series outcome.
type CreateBookingResult struct {
	Single         *queries.BookingView
	SeriesID       *uuid.UUID
	Created        []*queries.BookingView
	Skipped        []string
	Conflicts      []queries.ConflictView
	RequestedCount int
	Preview        *queries.PreviewView
}

type CancelBookingResult struct {
	Booking *queries.BookingView
}

type CancelSeriesResult struct {
	SeriesID uuid.UUID
	Removed  []*queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*CancelBookingResult, error)
	CancelSeries(ctx context.Context, seriesID uuid.UUID) (*CancelSeriesResult, error)
}

type bookingCommandsImpl struct {
	bookings      BookingRepository
	seats         SeatRepository
	cancellations CancellationRepository
	publisher     EventPublisher
	db            TxBeginner
	clock         clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	seats SeatRepository,
	cancellations CancellationRepository,
	publisher EventPublisher,
	db TxBeginner,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:      bookings,
		seats:         seats,
		cancellations: cancellations,
		publisher:     publisher,
		db:            db,
		clock:         clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	userName, err := booking.NewUserName(params.UserName)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserName)
	}

	startDate, err := booking.NewBookingDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	spec, err := params.Recurrence.ToSpec()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}

	if _, err := c.seats.FindByID(ctx, params.SeatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := c.bookings.AcquireSeatLock(ctx, tx, params.SeatID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	existing, err := c.bookings.ListBySeat(ctx, tx, params.SeatID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	index := booking.NewBookingIndex(params.SeatID, existing)
	plan, err := booking.BuildPlan(params.SeatID, startDate, spec, index)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}

	suggestions, err := booking.Suggest(plan, index)
	if err != nil {
		return nil, err
	}
	preview := queries.NewPreviewView(plan, suggestions)

	if plan.HasConflicts() && (!params.SkipConflicts || plan.FullyBlocked()) {
		message := "requested dates conflict with existing bookings"
		if plan.FullyBlocked() {
			message = "all requested dates conflict with existing bookings"
		}
		return nil, &ConflictError{
			Message:   message,
			Conflicts: preview.Conflicts,
			Preview:   preview,
		}
	}

	now := c.clock.Now()
	var seriesID *uuid.UUID
	if plan.RequestedCount() > 1 {
		id := uuid.New()
		seriesID = &id
	}

	created := make([]*booking.Booking, 0, len(plan.Available))
	for _, date := range plan.Available {
		b, err := booking.NewBooking(params.SeatID, date, userName, seriesID, now)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidUserName)
		}
		created = append(created, b)
	}

	if err := c.bookings.Insert(ctx, tx, created); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &CreateBookingResult{
		SeriesID:       seriesID,
		Created:        make([]*queries.BookingView, len(created)),
		Skipped:        conflictDates(plan.Conflicts),
		Conflicts:      preview.Conflicts,
		RequestedCount: plan.RequestedCount(),
		Preview:        preview,
	}
	for i, b := range created {
		result.Created[i] = queries.NewBookingView(b)
	}
	if plan.RequestedCount() == 1 && len(created) == 1 {
		result.Single = result.Created[0]
	}

	c.publishCreated(ctx, result, params.SeatID, userName.String(), now.Format(time.RFC3339))
	return result, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*CancelBookingResult, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	target, err := c.bookings.FindByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.bookings.AcquireSeatLock(ctx, tx, target.SeatID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if err := c.bookings.Delete(ctx, tx, []uuid.UUID{target.ID()}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	record := booking.NewCancellationRecord(target, booking.SourceSingle, now)
	if err := c.cancellations.Append(ctx, tx, []booking.CancellationRecord{record}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.publishCanceled(ctx, []*booking.Booking{target}, booking.SourceSingle, now)
	return &CancelBookingResult{Booking: queries.NewBookingView(target)}, nil
}

func (c *bookingCommandsImpl) CancelSeries(ctx context.Context, seriesID uuid.UUID) (*CancelSeriesResult, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	members, err := c.bookings.ListBySeries(ctx, tx, seriesID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	cutoff := booking.DateOf(now)
	_, remove := booking.PartitionSeries(members, seriesID, cutoff)
	if len(remove) == 0 {
		return nil, ErrSeriesNotFound
	}

	// A series always belongs to one seat.
	if err := c.bookings.AcquireSeatLock(ctx, tx, remove[0].SeatID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ids := make([]uuid.UUID, len(remove))
	records := make([]booking.CancellationRecord, len(remove))
	for i, b := range remove {
		ids[i] = b.ID()
		records[i] = booking.NewCancellationRecord(b, booking.SourceSeries, now)
	}

	if err := c.bookings.Delete(ctx, tx, ids); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.cancellations.Append(ctx, tx, records); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.publishCanceled(ctx, remove, booking.SourceSeries, now)

	result := &CancelSeriesResult{
		SeriesID: seriesID,
		Removed:  make([]*queries.BookingView, len(remove)),
	}
	for i, b := range remove {
		result.Removed[i] = queries.NewBookingView(b)
	}
	return result, nil
}

func (c *bookingCommandsImpl) publishCreated(ctx context.Context, result *CreateBookingResult, seatID, userName, createdAt string) {
	if c.publisher == nil {
		return
	}
	event := queue.BookingCreatedEvent{
		SeatID:    seatID,
		UserName:  userName,
		Skipped:   result.Skipped,
		CreatedAt: createdAt,
	}
	if result.SeriesID != nil {
		event.SeriesID = result.SeriesID.String()
	}
	for _, b := range result.Created {
		event.Dates = append(event.Dates, b.Date)
	}
	if err := c.publisher.PublishBookingCreated(ctx, event); err != nil {
		slog.Warn("failed to publish booking created event", "seat_id", seatID, "error", err)
	}
}

func (c *bookingCommandsImpl) publishCanceled(ctx context.Context, removed []*booking.Booking, source booking.CancellationSource, now time.Time) {
	if c.publisher == nil || len(removed) == 0 {
		return
	}
	first := removed[0]
	event := queue.BookingCanceledEvent{
		SeatID:      first.SeatID(),
		UserName:    first.UserName().String(),
		Source:      string(source),
		CancelledAt: now.Format(time.RFC3339),
	}
	if sid := first.SeriesID(); sid != nil {
		event.SeriesID = sid.String()
	}
	for _, b := range removed {
		event.Dates = append(event.Dates, b.Date().String())
	}
	if err := c.publisher.PublishBookingCanceled(ctx, event); err != nil {
		slog.Warn("failed to publish booking canceled event", "seat_id", first.SeatID(), "error", err)
	}
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}

func conflictDates(conflicts []booking.Conflict) []string {
	dates := make([]string, len(conflicts))
	for i, c := range conflicts {
		dates[i] = c.Date.String()
	}
	return dates
}
