package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"grafica-be/internal/files"
	"grafica-be/internal/order"
	"grafica-be/internal/utils"

	"github.com/gorilla/mux"
)

// ~25 MB: a handful of print-ready PDFs.
const maxUploadBytes = 25 << 20

// CreateOrder accepts a multipart form: the order fields plus zero or
// more artwork files under "files".
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.WriteJSONError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	input := order.CreateOrderInput{
		ProductID:       r.FormValue("product_id"),
		ClientName:      r.FormValue("client_name"),
		ClientPhone:     optionalField(r, "client_phone"),
		ClientDocument:  optionalField(r, "client_document"),
		SelectedVariant: optionalField(r, "selected_variant"),
		Finishing:       optionalField(r, "finishing"),
		Instructions:    optionalField(r, "instructions"),
	}
	input.WidthCm, _ = strconv.ParseFloat(r.FormValue("width_cm"), 64)
	input.HeightCm, _ = strconv.ParseFloat(r.FormValue("height_cm"), 64)
	input.Quantity, _ = strconv.Atoi(r.FormValue("quantity"))

	if r.MultipartForm != nil {
		var uploads []files.Upload
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				utils.WriteJSONError(w, "unreadable upload: "+fh.Filename, http.StatusBadRequest)
				return
			}
			defer f.Close()
			uploads = append(uploads, files.Upload{Name: fh.Filename, Reader: f})
		}

		if len(uploads) > 0 {
			paths, err := h.Files.Store(r.Context(), uploads)
			if err != nil {
				writeDomainError(r.Context(), w, err)
				return
			}
			input.FilePaths = paths
		}
	}

	o, err := h.Orders.Create(r.Context(), input)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, toOrderPayload(o), http.StatusCreated)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toOrderPayload(o), http.StatusOK)
}

func (h *Handler) ListActiveOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListActive(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toOrderPayloads(orders), http.StatusOK)
}

func (h *Handler) ListOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListHistory(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toOrderPayloads(orders), http.StatusOK)
}

func (h *Handler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	o, err := h.Orders.Transition(r.Context(), mux.Vars(r)["id"], order.OrderStatus(req.Status))
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toOrderPayload(o), http.StatusOK)
}

func (h *Handler) UpdateOrderDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientName     *string `json:"client_name,omitempty"`
		ClientPhone    *string `json:"client_phone,omitempty"`
		ClientDocument *string `json:"client_document,omitempty"`
		Instructions   *string `json:"instructions,omitempty"`
		Finishing      *string `json:"finishing,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	o, err := h.Orders.UpdateDetails(r.Context(), mux.Vars(r)["id"], order.UpdateDetailsInput{
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientDocument: req.ClientDocument,
		Instructions:   req.Instructions,
		Finishing:      req.Finishing,
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteJSON(w, toOrderPayload(o), http.StatusOK)
}

func optionalField(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
