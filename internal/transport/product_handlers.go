package transport

import (
	"encoding/json"
	"net/http"

	"grafica-be/internal/pricing"
	"grafica-be/internal/product"
	"grafica-be/internal/utils"

	"github.com/gorilla/mux"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]productPayload, len(products))
	for i, p := range products {
		out[i] = toProductPayload(p)
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.Products.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toProductPayload(p), http.StatusOK)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req newProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := h.Products.CreateProduct(r.Context(), product.NewProductInput{
		Name:           req.Name,
		Category:       req.Category,
		BasePricePerM2: req.BasePricePerM2,
		IsFixedPrice:   req.IsFixedPrice,
		MinPrice:       req.MinPrice,
		Pricing:        toPricingConfig(req.Pricing),
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, toProductPayload(p), http.StatusCreated)
}

func (h *Handler) UpdateProductPricing(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := h.Products.UpdateProductPricing(r.Context(), id, product.UpdatePricingInput{
		BasePricePerM2: req.BasePricePerM2,
		MinPrice:       req.MinPrice,
		Pricing:        toPricingConfig(req.Pricing),
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, toProductPayload(p), http.StatusOK)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Products.DeleteProduct(r.Context(), id); err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Quote prices a configuration without creating anything. This backs the
// public calculator screen.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := h.Products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	q, err := pricing.ComputeQuote(p, req.WidthCm, req.HeightCm, req.Quantity, req.SelectedVariant)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, quotePayload{
		AreaM2:        q.AreaM2.StringFixed(4),
		EffectiveRate: q.EffectiveRate.StringFixed(2),
		UnitPrice:     q.UnitPrice.StringFixed(2),
		FloorApplied:  q.FloorApplied,
		Total:         q.Total.StringFixed(2),
	}, http.StatusOK)
}
