package http

import (
	"net/http"

	"github.com/tair/catalog-service/internal/catalog/usecase/command"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /login
func (h *CatalogHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	resp, err := h.commands.Login.Handle(r.Context(), command.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, resp)
}
