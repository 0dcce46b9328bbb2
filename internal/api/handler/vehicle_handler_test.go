package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

type stubVehicleService struct {
	createFn  func(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Vehicle, error)
	listFn    func(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error)
	updateFn  func(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubVehicleService) Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
	return s.createFn(ctx, in)
}

func (s *stubVehicleService) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubVehicleService) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	return s.listFn(ctx, filter)
}

func (s *stubVehicleService) Update(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubVehicleService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestVehicleHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubVehicleService{
		createFn: func(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: 3, Name: in.Name, Brand: in.Brand, Year: in.Year}, nil
		},
	}
	h := NewVehicleHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/vehicles", `{"name":"Uno","brand":"Fiat","year":1950}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/vehicles/3" {
		t.Fatalf("unexpected Location: %q", loc)
	}

	var resp vehicleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp != (vehicleResponse{ID: 3, Name: "Uno", Brand: "Fiat", Year: 1950}) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestVehicleHandler_Create_ValidationError(t *testing.T) {
	e := newTestEcho()
	stub := &stubVehicleService{
		createFn: func(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
			return nil, domain.NewValidationError("name is required", "brand is required")
		},
	}
	h := NewVehicleHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/vehicles", `{"year":2000}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", resp.Messages)
	}
}

func TestVehicleHandler_List_PassesFilter(t *testing.T) {
	e := newTestEcho()
	var got ports.VehicleFilter
	stub := &stubVehicleService{
		listFn: func(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
			got = filter
			return nil, nil
		},
	}
	h := NewVehicleHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/vehicles?page=3&name=gol&brand=VW", nil), rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Page.Number != 3 || got.Name != "gol" || got.Brand != "VW" {
		t.Fatalf("unexpected filter: %+v", got)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestVehicleHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewVehicleHandler(&stubVehicleService{})

	for _, id := range []string{"abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		c := withID(e.NewContext(httptest.NewRequest(http.MethodGet, "/vehicles/"+id, nil), rec), id)

		if err := h.Get(c); err != nil {
			t.Fatalf("%s: handler error: %v", id, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", id, rec.Code)
		}
	}
}

func TestVehicleHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubVehicleService{
		updateFn: func(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
			return nil, domain.ErrVehicleNotFound
		},
	}
	h := NewVehicleHandler(stub)

	rec := httptest.NewRecorder()
	c := withID(e.NewContext(jsonRequest(http.MethodPut, "/vehicles/9", `{"name":"A","brand":"B","year":2000}`), rec), "9")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestVehicleHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := map[int64]bool{}
	stub := &stubVehicleService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 999 {
				return domain.ErrVehicleNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	h := NewVehicleHandler(stub)

	rec := httptest.NewRecorder()
	c := withID(e.NewContext(httptest.NewRequest(http.MethodDelete, "/vehicles/4", nil), rec), "4")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || !deleted[4] {
		t.Fatalf("expected 204 and deletion, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = withID(e.NewContext(httptest.NewRequest(http.MethodDelete, "/vehicles/999", nil), rec), "999")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
