package transport

import (
	"time"

	"grafica-be/internal/notification"
	"grafica-be/internal/order"
	"grafica-be/internal/product"
	"grafica-be/internal/user"

	"github.com/shopspring/decimal"
)

type pricingConfigPayload struct {
	PricesByVariant map[string]decimal.Decimal `json:"prices_by_variant,omitempty"`
	VariantOptions  []string                   `json:"variant_options,omitempty"`
}

type productPayload struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Category       string                `json:"category"`
	BasePricePerM2 string                `json:"base_price_per_m2"`
	IsFixedPrice   bool                  `json:"is_fixed_price"`
	MinPrice       string                `json:"min_price"`
	Pricing        *pricingConfigPayload `json:"pricing_config,omitempty"`
}

func toProductPayload(p *product.Product) productPayload {
	out := productPayload{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		BasePricePerM2: p.BasePricePerM2.StringFixed(2),
		IsFixedPrice:   p.IsFixedPrice,
		MinPrice:       p.MinPrice.StringFixed(2),
	}
	if p.Pricing != nil {
		out.Pricing = &pricingConfigPayload{
			PricesByVariant: p.Pricing.PricesByVariant,
			VariantOptions:  p.Pricing.VariantOptions,
		}
	}
	return out
}

type newProductRequest struct {
	Name           string                `json:"name"`
	Category       string                `json:"category"`
	BasePricePerM2 decimal.Decimal       `json:"base_price_per_m2"`
	IsFixedPrice   bool                  `json:"is_fixed_price"`
	MinPrice       decimal.Decimal       `json:"min_price"`
	Pricing        *pricingConfigPayload `json:"pricing_config,omitempty"`
}

type updatePricingRequest struct {
	BasePricePerM2 decimal.Decimal       `json:"base_price_per_m2"`
	MinPrice       decimal.Decimal       `json:"min_price"`
	Pricing        *pricingConfigPayload `json:"pricing_config,omitempty"`
}

func toPricingConfig(p *pricingConfigPayload) *product.PricingConfig {
	if p == nil {
		return nil
	}
	return &product.PricingConfig{
		PricesByVariant: p.PricesByVariant,
		VariantOptions:  p.VariantOptions,
	}
}

type quoteRequest struct {
	ProductID       string  `json:"product_id"`
	WidthCm         float64 `json:"width_cm"`
	HeightCm        float64 `json:"height_cm"`
	Quantity        int     `json:"quantity"`
	SelectedVariant *string `json:"selected_variant,omitempty"`
}

type quotePayload struct {
	AreaM2        string `json:"area_m2"`
	EffectiveRate string `json:"effective_rate"`
	UnitPrice     string `json:"unit_price"`
	FloorApplied  bool   `json:"floor_applied"`
	Total         string `json:"total"`
}

type orderPayload struct {
	ID                 string    `json:"id"`
	ProductID          string    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ClientName         string    `json:"client_name"`
	ClientPhone        *string   `json:"client_phone,omitempty"`
	ClientDocument     *string   `json:"client_document,omitempty"`
	WidthCm            float64   `json:"width_cm"`
	HeightCm           float64   `json:"height_cm"`
	Quantity           int       `json:"quantity"`
	SelectedVariant    *string   `json:"selected_variant,omitempty"`
	Finishing          *string   `json:"finishing,omitempty"`
	Instructions       *string   `json:"instructions,omitempty"`
	FilePaths          []string  `json:"file_paths,omitempty"`
	TotalPrice         string    `json:"total_price"`
	Status             string    `json:"status"`
	AllowedTransitions []string  `json:"allowed_transitions"`
	CreatedAt          time.Time `json:"created_at"`
}

func toOrderPayload(o *order.Order) orderPayload {
	allowed := order.AllowedTransitions(o.Status)
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = string(s)
	}

	return orderPayload{
		ID:                 o.ID,
		ProductID:          o.ProductID,
		ProductName:        o.ProductName,
		ClientName:         o.ClientName,
		ClientPhone:        o.ClientPhone,
		ClientDocument:     o.ClientDocument,
		WidthCm:            o.WidthCm,
		HeightCm:           o.HeightCm,
		Quantity:           o.Quantity,
		SelectedVariant:    o.SelectedVariant,
		Finishing:          o.Finishing,
		Instructions:       o.Instructions,
		FilePaths:          o.FilePaths,
		TotalPrice:         o.TotalPrice.StringFixed(2),
		Status:             string(o.Status),
		AllowedTransitions: names,
		CreatedAt:          o.CreatedAt,
	}
}

func toOrderPayloads(orders []*order.Order) []orderPayload {
	out := make([]orderPayload, len(orders))
	for i, o := range orders {
		out[i] = toOrderPayload(o)
	}
	return out
}

type notificationPayload struct {
	ID        uint      `json:"id"`
	Role      string    `json:"recipient_role"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	OrderID   *string   `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationPayloads(list []*notification.Notification) []notificationPayload {
	out := make([]notificationPayload, len(list))
	for i, n := range list {
		out[i] = notificationPayload{
			ID:        n.ID,
			Role:      n.RecipientRole,
			Message:   n.Message,
			Read:      n.Read,
			OrderID:   n.OrderID,
			CreatedAt: n.CreatedAt,
		}
	}
	return out
}

type userPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserPayload(u *user.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
