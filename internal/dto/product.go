package dto

type ProductResponseDTO struct {
	ID          string `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	Name        string `json:"name" example:"watering can"`
	Description string `json:"description" example:"Gives the tree a quick growth boost."`
	Price       int64  `json:"price" example:"15"`
}

type PurchaseResponseDTO struct {
	Message    string `json:"message"`
	NewBalance int64  `json:"new_balance" example:"105"`
}
