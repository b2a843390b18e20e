package http

import (
	"net/http"

	"github.com/luxtime/backend/internal/repository"
)

// DiagHandler reports store reachability for GET /test. It never fails the
// request: every error is folded into the response body so the endpoint
// stays usable exactly when things are broken.
type DiagHandler struct {
	store          *repository.Store
	databaseURLSet bool
	databaseName   string
}

func NewDiagHandler(store *repository.Store, databaseURLSet bool, databaseName string) *DiagHandler {
	return &DiagHandler{
		store:          store,
		databaseURLSet: databaseURLSet,
		databaseName:   databaseName,
	}
}

type DiagResponseDTO struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// GET /test
func (h *DiagHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := DiagResponseDTO{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store.Configured() {
		resp.Database = "Available"

		urlState := "Not Set"
		if h.databaseURLSet {
			urlState = "Set"
		}
		resp.DatabaseURL = &urlState

		nameState := h.databaseName
		if nameState == "" {
			nameState = "Not Set"
		}
		resp.DatabaseName = &nameState

		collections, err := h.store.CollectionNames(r.Context())
		if err != nil {
			resp.Database = "Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			resp.Collections = collections
			resp.Database = "Connected & Working"
			resp.ConnectionStatus = "Connected"
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
