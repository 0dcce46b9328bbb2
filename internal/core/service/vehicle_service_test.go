package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
	"github.com/99minutos/vehicles-api/internal/pkg/validation"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubVehicleRepo struct {
	vehicles   []domain.Vehicle
	nextID     int64
	lastFilter ports.VehicleFilter
	findCalls  int
	gate       *findGate
}

// findGate parks the next FindByID after it has read its row, until release
// is closed.
type findGate struct {
	armed   atomic.Bool
	read    chan struct{}
	release chan struct{}
}

func newFindGate() *findGate {
	g := &findGate{read: make(chan struct{}), release: make(chan struct{})}
	g.armed.Store(true)
	return g
}

func (r *stubVehicleRepo) index(id int64) int {
	for i, v := range r.vehicles {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r *stubVehicleRepo) FindByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	r.findCalls++
	i := r.index(id)
	if i < 0 {
		return nil, domain.ErrVehicleNotFound
	}
	clone := r.vehicles[i]
	if r.gate != nil && r.gate.armed.CompareAndSwap(true, false) {
		close(r.gate.read)
		<-r.gate.release
	}
	return &clone, nil
}

// List mirrors the store: case-insensitive name match, brand ignored.
func (r *stubVehicleRepo) List(_ context.Context, f ports.VehicleFilter) ([]domain.Vehicle, error) {
	r.lastFilter = f
	var matched []domain.Vehicle
	for _, v := range r.vehicles {
		if f.Name != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(f.Name)) {
			continue
		}
		matched = append(matched, v)
	}
	return paginate(matched, f.Page), nil
}

func (r *stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) error {
	r.nextID++
	v.ID = r.nextID
	r.vehicles = append(r.vehicles, *v)
	return nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.ErrVehicleNotFound
	}
	r.vehicles[i] = *v
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrVehicleNotFound
	}
	r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
	return nil
}

type stubCache struct {
	items       map[int64]domain.Vehicle
	getErr      error
	invalidated []int64
}

func newStubCache() *stubCache { return &stubCache{items: make(map[int64]domain.Vehicle)} }

func (c *stubCache) Get(_ context.Context, id int64) (*domain.Vehicle, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (c *stubCache) Set(_ context.Context, v *domain.Vehicle) error {
	c.items[v.ID] = *v
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id int64) error {
	delete(c.items, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func newTestVehicleService(repo *stubVehicleRepo, cache VehicleCache) *VehicleService {
	return NewVehicleService(repo, cache, validation.New(), zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestVehicleService_Create_Success(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, nil)

	v, err := svc.Create(context.Background(), domain.VehicleInput{Name: "Uno", Brand: "Fiat", Year: 1950})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.ID != 1 || v.Name != "Uno" || v.Brand != "Fiat" || v.Year != 1950 {
		t.Fatalf("unexpected vehicle: %+v", v)
	}
}

func TestVehicleService_Create_AllViolationsReported(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, nil)

	_, err := svc.Create(context.Background(), domain.VehicleInput{Year: 1949})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %v", ve.Messages)
	}
	if len(repo.vehicles) != 0 {
		t.Fatalf("no vehicle should be stored on validation failure")
	}
}

func TestVehicleService_Create_YearBoundary(t *testing.T) {
	svc := newTestVehicleService(&stubVehicleRepo{}, nil)

	for _, year := range []int{1900, 1949} {
		_, err := svc.Create(context.Background(), domain.VehicleInput{Name: "Beetle", Brand: "VW", Year: year})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) || len(ve.Messages) != 1 || !strings.Contains(ve.Messages[0], "too old") {
			t.Fatalf("year %d: expected age message, got %v", year, err)
		}
	}
	for _, year := range []int{1950, 2024} {
		if _, err := svc.Create(context.Background(), domain.VehicleInput{Name: "Beetle", Brand: "VW", Year: year}); err != nil {
			t.Fatalf("year %d: unexpected error %v", year, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Round-trip: create → get → update → get → delete → get
// ---------------------------------------------------------------------------

func TestVehicleService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestVehicleService(&stubVehicleRepo{}, newStubCache())

	created, err := svc.Create(ctx, domain.VehicleInput{Name: "Gol", Brand: "VW", Year: 2010})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil || *got != *created {
		t.Fatalf("GetByID: got %+v err %v, want %+v", got, err, created)
	}

	if _, err := svc.Update(ctx, created.ID, domain.VehicleInput{Name: "Polo", Brand: "Volkswagen", Year: 2020}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = svc.GetByID(ctx, created.ID)
	if err != nil || got.Name != "Polo" || got.Brand != "Volkswagen" || got.Year != 2020 {
		t.Fatalf("GetByID after update: got %+v err %v", got, err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound after delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestVehicleService_Update_NotFound(t *testing.T) {
	svc := newTestVehicleService(&stubVehicleRepo{}, nil)

	_, err := svc.Update(context.Background(), 42, domain.VehicleInput{Name: "X", Brand: "Y", Year: 2000})
	if !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestVehicleService_Update_Validation(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, nil)
	created, _ := svc.Create(context.Background(), domain.VehicleInput{Name: "Gol", Brand: "VW", Year: 2010})

	_, err := svc.Update(context.Background(), created.ID, domain.VehicleInput{Name: "", Brand: "VW", Year: 1800})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Messages) != 2 {
		t.Fatalf("expected 2 validation messages, got %v", err)
	}
	if repo.vehicles[0].Name != "Gol" {
		t.Fatalf("vehicle must not change on validation failure")
	}
}

func TestVehicleService_Delete_NotFound(t *testing.T) {
	svc := newTestVehicleService(&stubVehicleRepo{}, nil)

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Cache behaviour
// ---------------------------------------------------------------------------

func TestVehicleService_GetByID_ServesFromCache(t *testing.T) {
	repo := &stubVehicleRepo{}
	cache := newStubCache()
	svc := newTestVehicleService(repo, cache)
	created, _ := svc.Create(context.Background(), domain.VehicleInput{Name: "Gol", Brand: "VW", Year: 2010})

	for range 3 {
		if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
			t.Fatalf("GetByID: %v", err)
		}
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected 1 repository lookup, got %d", repo.findCalls)
	}
}

func TestVehicleService_GetByID_CacheErrorFallsBackToStore(t *testing.T) {
	repo := &stubVehicleRepo{}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := newTestVehicleService(repo, cache)
	created, _ := svc.Create(context.Background(), domain.VehicleInput{Name: "Gol", Brand: "VW", Year: 2010})

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil || got.ID != created.ID {
		t.Fatalf("expected store fallback, got %+v err %v", got, err)
	}
}

func TestVehicleService_GetByID_ConcurrentUpdateNotCachedStale(t *testing.T) {
	ctx := context.Background()
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, newStubCache())
	created, _ := svc.Create(ctx, domain.VehicleInput{Name: "Old", Brand: "VW", Year: 2010})

	gate := newFindGate()
	repo.gate = gate
	done := make(chan *domain.Vehicle)
	go func() {
		v, _ := svc.GetByID(ctx, created.ID)
		done <- v
	}()

	<-gate.read
	if _, err := svc.Update(ctx, created.ID, domain.VehicleInput{Name: "New", Brand: "VW", Year: 2010}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	close(gate.release)

	if v := <-done; v == nil || v.Name != "Old" {
		t.Fatalf("in-flight read should see the row it loaded, got %+v", v)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("expected updated name after update completed, got %q", got.Name)
	}
}

func TestVehicleService_MutationsInvalidateCache(t *testing.T) {
	cache := newStubCache()
	svc := newTestVehicleService(&stubVehicleRepo{}, cache)
	created, _ := svc.Create(context.Background(), domain.VehicleInput{Name: "Gol", Brand: "VW", Year: 2010})
	_, _ = svc.GetByID(context.Background(), created.ID)

	_, _ = svc.Update(context.Background(), created.ID, domain.VehicleInput{Name: "Polo", Brand: "VW", Year: 2011})
	_ = svc.Delete(context.Background(), created.ID)

	if len(cache.invalidated) != 2 {
		t.Fatalf("expected 2 invalidations, got %v", cache.invalidated)
	}
	if _, ok := cache.items[created.ID]; ok {
		t.Fatalf("cache entry should be gone")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestVehicleService_List_PaginationAndNameFilter(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, nil)
	for i := range 25 {
		name := "Sedan"
		if i%5 == 0 {
			name = "Pickup"
		}
		_, _ = svc.Create(context.Background(), domain.VehicleInput{Name: name, Brand: "Ford", Year: 2000 + i})
	}

	page2, _ := svc.List(context.Background(), ports.VehicleFilter{Page: domain.Page{Number: 2}})
	if len(page2) != 10 || page2[0].ID != 11 || page2[9].ID != 20 {
		t.Fatalf("expected items 11..20 on page 2, got %+v", page2)
	}

	all, _ := svc.List(context.Background(), ports.VehicleFilter{})
	if len(all) != 25 {
		t.Fatalf("expected 25 without page, got %d", len(all))
	}

	pickups, _ := svc.List(context.Background(), ports.VehicleFilter{Name: "PICK"})
	if len(pickups) != 5 {
		t.Fatalf("expected 5 pickups, got %d", len(pickups))
	}
}

func TestVehicleService_List_BrandPassedThrough(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc := newTestVehicleService(repo, nil)
	_, _ = svc.Create(context.Background(), domain.VehicleInput{Name: "Uno", Brand: "Fiat", Year: 2000})

	got, _ := svc.List(context.Background(), ports.VehicleFilter{Brand: "Toyota"})
	if repo.lastFilter.Brand != "Toyota" {
		t.Fatalf("brand should reach the repository unchanged")
	}
	if len(got) != 1 {
		t.Fatalf("brand must not filter results, got %d", len(got))
	}
}
