package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// handleListUsers returns only the accounts the caller created.
func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	users, err := a.auth.FindByCreator(r.Context(), claims.Subject)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if problems := validateNewUser(req.Email, req.Password, req.Name); len(problems) > 0 {
		writeError(w, r, http.StatusBadRequest, problems)
		return
	}

	user, err := a.auth.Create(r.Context(), req.Email, req.Password, req.Name, claims.Subject)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// handleGetUser responds 404 both when the id does not exist and when the
// account belongs to another creator.
func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id := mux.Vars(r)["id"]

	user, err := a.auth.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if user == nil || user.CreatedBy == nil || *user.CreatedBy != claims.Subject {
		writeError(w, r, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id := mux.Vars(r)["id"]

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if problems := validateUserPatch(req.Email, req.Password, req.Name); len(problems) > 0 {
		writeError(w, r, http.StatusBadRequest, problems)
		return
	}

	user, err := a.auth.Update(r.Context(), id, req.Email, req.Password, req.Name, claims.Subject)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id := mux.Vars(r)["id"]

	if err := a.auth.Delete(r.Context(), id, claims.Subject); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
