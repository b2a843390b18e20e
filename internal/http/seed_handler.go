package http

import (
	"context"
	"net/http"
)

type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

type SeedHandler struct {
	seeder Seeder
}

func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

type SeedResponseDTO struct {
	Inserted int `json:"inserted"`
}

// POST /seed
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.seeder.Seed(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SeedResponseDTO{Inserted: inserted})
}
