package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/api"
	"github.com/HunterTXx/privateplapay/pkg/mapping"
	"github.com/HunterTXx/privateplapay/pkg/storage"
)

// ProfilesHandler handles profile bootstrap.
type ProfilesHandler struct {
	Store storage.ApiStore
}

// NewProfilesHandler creates a new ProfilesHandler.
func NewProfilesHandler(store storage.ApiStore) *ProfilesHandler {
	return &ProfilesHandler{Store: store}
}

// CreateProfile creates the account record for a new user. Balance caches
// start at zero and the version counter at one.
func (h *ProfilesHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var newProfile api.NewProfile
	if err := json.NewDecoder(r.Body).Decode(&newProfile); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newProfile.UserId == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	domainProfile := mapping.ToDomainNewProfile(&newProfile)
	domainProfile.Version = 1
	domainProfile.CreatedAt = time.Now().UTC()

	created, err := h.Store.CreateProfile(r.Context(), domainProfile)
	if err != nil {
		if errors.Is(err, storage.ErrProfileConflict) {
			http.Error(w, "Profile for this user already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create profile: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProfile(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
