package handler

// --- Request types ---

type createProductRequest struct {
	Code            string   `json:"code"            validate:"required,max=50"`
	Name            string   `json:"name"            validate:"required,max=200"`
	Characteristics string   `json:"characteristics" validate:"max=1000"`
	Price           float64  `json:"price"           validate:"required,gt=0"`
	Currency        string   `json:"currency"        validate:"omitempty,len=3,uppercase"`
	CompanyNIT      string   `json:"company_nit"     validate:"required"`
	CategoryIDs     []string `json:"category_ids"`
}

type updateProductRequest struct {
	Code            string   `json:"code"            validate:"required,max=50"`
	Name            string   `json:"name"            validate:"required,max=200"`
	Characteristics string   `json:"characteristics" validate:"max=1000"`
	Price           float64  `json:"price"           validate:"required,gt=0"`
	Currency        string   `json:"currency"        validate:"omitempty,len=3,uppercase"`
	CompanyNIT      string   `json:"company_nit"     validate:"required"`
	CategoryIDs     []string `json:"category_ids"`
}
