package handler

import "github.com/99minutos/vehicles-api/internal/core/domain"

func toAdministratorResponse(a domain.Administrator) administratorResponse {
	return administratorResponse{ID: a.ID, Email: a.Email, Role: a.Role}
}

func toAdministratorResponses(admins []domain.Administrator) []administratorResponse {
	out := make([]administratorResponse, len(admins))
	for i, a := range admins {
		out[i] = toAdministratorResponse(a)
	}
	return out
}

func toVehicleInput(r vehicleRequest) domain.VehicleInput {
	return domain.VehicleInput{Name: r.Name, Brand: r.Brand, Year: r.Year}
}

func toVehicleResponse(v domain.Vehicle) vehicleResponse {
	return vehicleResponse{ID: v.ID, Name: v.Name, Brand: v.Brand, Year: v.Year}
}

func toVehicleResponses(vehicles []domain.Vehicle) []vehicleResponse {
	out := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = toVehicleResponse(v)
	}
	return out
}
