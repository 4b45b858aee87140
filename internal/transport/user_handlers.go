package transport

import (
	"encoding/json"
	"net/http"

	"grafica-be/internal/user"
	"grafica-be/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	token, u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"token": token,
		"user":  toUserPayload(u),
	}, http.StatusOK)
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Register(r.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, toUserPayload(u), http.StatusCreated)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]userPayload, len(users))
	for i, u := range users {
		out[i] = toUserPayload(u)
	}
	utils.WriteJSON(w, out, http.StatusOK)
}
