package handler

// validationResponse is the 400 envelope listing every violated rule.
type validationResponse struct {
	Messages []string `json:"messages"`
}

type homeResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

// --- Administrators ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type createAdministratorRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=Adm Editor"`
}

// administratorResponse never carries the password hash.
type administratorResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// --- Vehicles ---

// vehicleRequest is checked by the vehicle service so create and update
// share one set of rules.
type vehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

type vehicleResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
