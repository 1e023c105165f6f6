package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resort-booking-backend/internal/booking"
	"resort-booking-backend/internal/calendar"
	"resort-booking-backend/internal/model"
	"resort-booking-backend/internal/payment"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	ListRooms(ctx context.Context) ([]model.Room, error)
	RoomCapacityByDate(ctx context.Context, roomID int64, startDate, endDate time.Time) (*CapacityReport, error)
	BlockedDates(ctx context.Context, roomID int64, today time.Time) (*BlockedDatesReport, error)
	FullyBookedWithin(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*AvailabilityReport, error)

	CreateBooking(ctx context.Context, now time.Time, params CreateBookingParams) (*CreateBookingResult, error)
	ListUserBookings(ctx context.Context, userID int64) ([]UserBooking, error)

	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB

	// Admission for a room is a read-modify-write over that room's booking
	// set, so concurrent creations for the same room are serialized with a
	// per-room lock held across the whole transaction. Without it, two
	// requests could both count the same occupancy snapshot and over-admit,
	// or allocate the same queue position.
	mu        sync.Mutex
	roomLocks map[int64]*sync.Mutex
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		db:        db,
		roomLocks: make(map[int64]*sync.Mutex),
	}
}

// DB exposes the underlying connection for handlers that only read.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) lockRoom(roomID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

// CreateBooking runs the whole admission decision for one creation request:
// validation, the fully-booked hard check, Confirmed/Queued classification,
// queue position allocation and the atomic booking + payment insert.
func (s *gormStore) CreateBooking(ctx context.Context, now time.Time, params CreateBookingParams) (*CreateBookingResult, error) {
	checkIn, checkOut := calendar.Day(params.CheckIn), calendar.Day(params.CheckOut)
	today := calendar.Day(now)

	if checkIn.Before(today) {
		return nil, booking.NewValidationError("check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, booking.NewValidationError("check-out must be after check-in date")
	}

	lock := s.lockRoom(params.RoomID)
	lock.Lock()
	defer lock.Unlock()

	var result *CreateBookingResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := fetchRoom(tx, params.RoomID)
		if err != nil {
			return err
		}

		overlapping, err := fetchOverlappingBookings(tx, params.RoomID, checkIn, checkOut)
		if err != nil {
			return err
		}

		fullDates, err := booking.FullDates(room.Capacity, overlapping, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("failed to tally candidate range: %w", err)
		}
		if len(fullDates) > 0 {
			return &booking.ConflictError{FullyBookedDates: fullDates}
		}

		// The per-day check above and this whole-range booking count run at
		// different granularities. A range can pass the first and still be
		// queued here.
		overlapCount := booking.OverlapCount(overlapping, checkIn, checkOut)
		status := booking.Classify(room.Capacity, overlapCount)

		var queuePos *int
		if status == model.StatusQueued {
			pos, err := nextQueuePosition(tx, params.RoomID)
			if err != nil {
				return err
			}
			queuePos = &pos
		}

		nights := calendar.DayCount(checkIn, checkOut)
		totalPrice := float64(nights) * room.PricePerNight

		txnID := params.TransactionID
		if txnID == "" {
			txnID = payment.NewTransactionID(params.Provider)
		}

		record := model.Booking{
			PublicID:      newBookingID(),
			UserID:        params.UserID,
			RoomID:        room.ID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Nights:        nights,
			Adults:        params.Adults,
			Children:      params.Children,
			TotalPrice:    totalPrice,
			Status:        status,
			QueuePosition: queuePos,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		pay := model.Payment{
			BookingID:     record.ID,
			TransactionID: txnID,
			Provider:      params.Provider,
			Amount:        totalPrice,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return fmt.Errorf("failed to create payment record: %w", err)
		}

		result = &CreateBookingResult{
			BookingID:     record.PublicID,
			TransactionID: txnID,
			Status:        status,
			QueuePosition: queuePos,
			TotalPrice:    totalPrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// nextQueuePosition reads the highest queue position currently assigned among
// the room's queued bookings and returns the next slot. Runs inside the
// admission transaction.
func nextQueuePosition(tx *gorm.DB, roomID int64) (int, error) {
	var maxPos int
	err := tx.Model(&model.Booking{}).
		Where("room_id = ? AND status = ?", roomID, model.StatusQueued).
		Select("COALESCE(MAX(queue_position), 0)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read queue position: %w", err)
	}
	return maxPos + 1, nil
}

// RoomCapacityByDate computes the per-date occupancy ledger for the window
// [startDate, endDate).
func (s *gormStore) RoomCapacityByDate(ctx context.Context, roomID int64, startDate, endDate time.Time) (*CapacityReport, error) {
	db := s.db.WithContext(ctx)
	room, err := fetchRoom(db, roomID)
	if err != nil {
		return nil, err
	}

	overlapping, err := fetchOverlappingBookings(db, roomID, calendar.Day(startDate), calendar.Day(endDate))
	if err != nil {
		return nil, err
	}

	dates, err := booking.Occupancy(room.Capacity, overlapping, startDate, endDate)
	if err != nil {
		if errors.Is(err, calendar.ErrEmptyRange) {
			return nil, booking.NewValidationError("end date must be after start date")
		}
		return nil, err
	}

	return &CapacityReport{Capacity: room.Capacity, Dates: dates}, nil
}

// BlockedDates returns every date at capacity for the room, across the whole
// horizon of bookings whose checkout is today or later. Used to disable dates
// in the booking calendar.
func (s *gormStore) BlockedDates(ctx context.Context, roomID int64, today time.Time) (*BlockedDatesReport, error) {
	db := s.db.WithContext(ctx)
	room, err := fetchRoom(db, roomID)
	if err != nil {
		return nil, err
	}

	var rows []model.Booking
	err = db.
		Where("room_id = ? AND status IN ? AND check_out >= ?",
			roomID, activeStatuses, calendar.Day(today)).
		Order("check_in").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return &BlockedDatesReport{
		BlockedDates: booking.BlockedDates(room.Capacity, rows),
		Capacity:     room.Capacity,
	}, nil
}

// FullyBookedWithin returns the dates inside [checkIn, checkOut) that are
// already at capacity. This is the oracle consulted before admission; any
// non-empty result is a hard rejection.
func (s *gormStore) FullyBookedWithin(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*AvailabilityReport, error) {
	db := s.db.WithContext(ctx)
	room, err := fetchRoom(db, roomID)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut = calendar.Day(checkIn), calendar.Day(checkOut)
	overlapping, err := fetchOverlappingBookings(db, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	fullDates, err := booking.FullDates(room.Capacity, overlapping, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, calendar.ErrEmptyRange) {
			return nil, booking.NewValidationError("check-out must be after check-in date")
		}
		return nil, err
	}

	return &AvailabilityReport{
		IsFull:           len(fullDates) > 0,
		FullyBookedDates: fullDates,
		Capacity:         room.Capacity,
	}, nil
}

// ListRooms returns all room types with their facilities, cheapest first.
func (s *gormStore) ListRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Preload("Facilities").
		Order("price_per_night ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// ListUserBookings returns the user's bookings joined with payment info,
// newest first.
func (s *gormStore) ListUserBookings(ctx context.Context, userID int64) ([]UserBooking, error) {
	var rows []UserBooking
	err := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select(`bookings.public_id AS booking_id,
			rooms.name AS room_name,
			bookings.check_in,
			bookings.check_out,
			bookings.nights,
			bookings.total_price,
			bookings.status,
			bookings.queue_position,
			bookings.created_at,
			payments.transaction_id,
			payments.provider AS payment_provider`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("LEFT JOIN payments ON payments.booking_id = bookings.id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return rows, nil
}

// CreateUser inserts a new user after checking the email is not taken.
func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", user.Email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return booking.NewValidationError("email already registered")
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail looks a user up for login.
func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// GetUserByID resolves an authenticated session's user.
func (s *gormStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &user, nil
}

// --- Helpers ---

var activeStatuses = []model.BookingStatus{model.StatusConfirmed, model.StatusQueued}

func fetchRoom(db *gorm.DB, roomID int64) (*model.Room, error) {
	var room model.Room
	err := db.First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	return &room, nil
}

// fetchOverlappingBookings loads the room's Confirmed and Queued bookings
// whose interval shares a day with [windowStart, windowEnd).
func fetchOverlappingBookings(db *gorm.DB, roomID int64, windowStart, windowEnd time.Time) ([]model.Booking, error) {
	var rows []model.Booking
	err := db.
		Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			roomID, activeStatuses, windowEnd, windowStart).
		Order("check_in").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}
	return rows, nil
}

// newBookingID generates the human-facing booking reference, e.g.
// "BK-1717430400-9f86d081".
func newBookingID() string {
	return fmt.Sprintf("BK-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}
