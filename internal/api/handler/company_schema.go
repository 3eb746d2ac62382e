package handler

// --- Request types ---

type createCompanyRequest struct {
	NIT     string `json:"nit"     validate:"required,max=20"`
	Name    string `json:"name"    validate:"required,max=200"`
	Address string `json:"address" validate:"max=500"`
	Phone   string `json:"phone"   validate:"max=50"`
}

type updateCompanyRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Address string `json:"address" validate:"max=500"`
	Phone   string `json:"phone"   validate:"max=50"`
}
