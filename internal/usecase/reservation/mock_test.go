package reservation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

// -- Mock Repository --

type mockRepo struct {
	mu sync.Mutex

	doctors      map[uint]*models.Doctor
	days         map[uint][]time.Time
	slots        map[uint]map[int][]string
	reservations map[uint]*models.Reservation
	nextID       uint

	failImageInsert  bool
	beforeTransition func()
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors:      make(map[uint]*models.Doctor),
		days:         make(map[uint][]time.Time),
		slots:        make(map[uint]map[int][]string),
		reservations: make(map[uint]*models.Reservation),
	}
}

func (m *mockRepo) addDoctor(id, userID uint, name string) {
	m.doctors[id] = &models.Doctor{
		ID:       id,
		UserID:   userID,
		User:     models.User{ID: userID, Name: name, Role: models.RoleDoctor},
		Hospital: models.Hospital{Name: "서울병원"},
	}
}

func (m *mockRepo) addWorkingDay(doctorID uint, date time.Time) {
	m.days[doctorID] = append(m.days[doctorID], date)
}

func (m *mockRepo) addSlots(doctorID uint, weekday int, times ...string) {
	if m.slots[doctorID] == nil {
		m.slots[doctorID] = make(map[int][]string)
	}
	m.slots[doctorID][weekday] = append(m.slots[doctorID][weekday], times...)
}

func (m *mockRepo) addReservation(r models.Reservation) *models.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.reservations[r.ID] = &r
	return &r
}

func (m *mockRepo) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) GetDoctorByUserID(_ context.Context, userID uint) (*models.Doctor, error) {
	for _, d := range m.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRepo) ListWorkingDays(_ context.Context, doctorID uint, from, to time.Time) ([]models.WorkingDay, error) {
	var out []models.WorkingDay
	for _, d := range m.days[doctorID] {
		if !d.Before(from) && d.Before(to) {
			out = append(out, models.WorkingDay{DoctorID: doctorID, Date: d})
		}
	}
	return out, nil
}

func (m *mockRepo) HasWorkingDay(_ context.Context, doctorID uint, date time.Time) (bool, error) {
	for _, d := range m.days[doctorID] {
		if d.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ListSlotTimes(_ context.Context, doctorID uint, weekday int) ([]string, error) {
	out := append([]string(nil), m.slots[doctorID][weekday]...)
	sort.Strings(out)
	return out, nil
}

func (m *mockRepo) takenLocked(doctorID uint, date time.Time) []string {
	var out []string
	for _, r := range m.reservations {
		s, _ := domain.StatusFromID(r.StatusID)
		if r.DoctorID == doctorID && r.Date.Equal(date) && s.Occupies() {
			out = append(out, r.Time)
		}
	}
	sort.Strings(out)
	return out
}

func (m *mockRepo) ListTakenTimes(_ context.Context, doctorID uint, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.takenLocked(doctorID, date), nil
}

func (m *mockRepo) IsSlotTaken(_ context.Context, doctorID uint, date time.Time, hm string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.ContainsTime(m.takenLocked(doctorID, date), hm), nil
}

func (m *mockRepo) CreateReservation(_ context.Context, r *models.Reservation, images []models.ReservationImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if domain.ContainsTime(m.takenLocked(r.DoctorID, r.Date), r.Time) {
		return httperr.ErrConflict(domain.CodeSlotTaken)
	}
	if m.failImageInsert {
		return errors.New("insert reservation_images: connection reset")
	}

	m.nextID++
	r.ID = m.nextID
	stored := *r
	for _, img := range images {
		img.ReservationID = r.ID
		stored.Images = append(stored.Images, img)
	}
	r.Images = stored.Images
	m.reservations[r.ID] = &stored
	return nil
}

func (m *mockRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	if d, ok := m.doctors[r.DoctorID]; ok {
		cp.Doctor = *d
	}
	return &cp, nil
}

func (m *mockRepo) TransitionStatus(_ context.Context, id uint, from, to domain.Status, opinion *string) (bool, error) {
	if m.beforeTransition != nil {
		m.beforeTransition()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	if !ok || r.StatusID != from.ID() {
		return false, nil
	}
	r.StatusID = to.ID()
	if opinion != nil {
		r.Opinion = *opinion
	}
	return true, nil
}

func (m *mockRepo) ListReservationsByUser(_ context.Context, userID uint) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Reservation
	for _, r := range m.reservations {
		if r.UserID == userID {
			cp := *r
			if d, ok := m.doctors[r.DoctorID]; ok {
				cp.Doctor = *d
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

var _ domain.Repository = (*mockRepo)(nil)

// -- Mock Image Store --

type mockImageStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	removed []string
	failOn  int // 1-based index of the Save call that fails; 0 never fails
	calls   int
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{saved: make(map[string][]byte)}
}

func (s *mockImageStore) Save(_ context.Context, folder string, r io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failOn == s.calls {
		return "", errors.New("s3 unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d.webp", folder, s.calls)
	s.saved[key] = b
	return key, nil
}

func (s *mockImageStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, key)
	s.removed = append(s.removed, key)
	return nil
}

var _ domain.ImageStore = (*mockImageStore)(nil)

// -- Helpers --

// Monday, 15 January 2024.
var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 1, 15+offset, 0, 0, 0, 0, time.UTC)
}

func images(n int) []Image {
	out := make([]Image, n)
	for i := range out {
		out[i] = Image{Filename: fmt.Sprintf("photo%d.jpg", i), Content: bytes.NewReader([]byte{byte(i)})}
	}
	return out
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", code)
	}
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected error %q, got %v", code, err)
	}
}
