package transport

import (
	"context"
	"errors"
	"net/http"

	"grafica-be/internal/logger"
	"grafica-be/internal/order"
	"grafica-be/internal/pricing"
	"grafica-be/internal/product"
	"grafica-be/internal/user"
	"grafica-be/internal/utils"

	"go.uber.org/zap"
)

// writeDomainError translates domain errors into HTTP responses.
// Validation and business-rule errors carry detail for the UI; storage
// failures are logged with full context and answered with a generic 500.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *order.ValidationError
	if errors.As(err, &vErr) {
		utils.WriteJSON(w, map[string]any{
			"error":      "validation failed",
			"violations": vErr.Violations,
		}, http.StatusBadRequest)
		return
	}

	var sErr *order.StorageError
	if errors.As(err, &sErr) {
		logger.FromCtx(ctx).Error("storage failure",
			zap.String("op", sErr.Op),
			zap.Error(sErr.Err),
		)
		utils.WriteJSONError(w, "internal error, try again", http.StatusInternalServerError)
		return
	}

	switch {
	case errors.Is(err, pricing.ErrInvalidDimension),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrUnknownVariant),
		errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, product.ErrInvalidPricingConfig):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, user.ErrUserNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, product.ErrProductExists),
		errors.Is(err, user.ErrEmailExists):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, user.ErrInvalidCredentials):
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)

	default:
		logger.FromCtx(ctx).Error("unhandled error", zap.Error(err))
		utils.WriteJSONError(w, "internal error, try again", http.StatusInternalServerError)
	}
}
