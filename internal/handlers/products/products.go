package products

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
	"github.com/haruharu/groveback/internal/service/productservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Purchase(ctx context.Context, userID, productID uuid.UUID) (*domain.LedgerEntry, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List godoc
//
//	@Summary		List products
//	@Description	List active products available for coin purchase
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response := make([]dto.ProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductResponseDTO{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Buy a product
//	@Description	Spend coins on a product. The balance check and the debit run in one transaction.
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			productID	path		string	true	"Product ID"
//	@Success		200			{object}	dto.PurchaseResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product ID"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/products/{productID}/purchase [post]
func (h *ProductHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	entry, err := h.productService.Purchase(r.Context(), userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrProductNotFound),
			errors.Is(err, productservice.ErrProductInactive):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message:    "Purchase complete",
		NewBalance: entry.BalanceAfter,
	})
}
