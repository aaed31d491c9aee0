package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/userhub/internal/authrpc"
	"github.com/dmitrijs2005/userhub/internal/token"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User        *authrpc.User `json:"user"`
	AccessToken string        `json:"accessToken"`
}

func (a *API) issueToken(user *authrpc.User) (string, error) {
	return token.Generate(user.ID, user.Email, a.secret, a.validity)
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if problems := validateNewUser(req.Email, req.Password, req.Name); len(problems) > 0 {
		writeError(w, r, http.StatusBadRequest, problems)
		return
	}

	user, err := a.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	accessToken, err := a.issueToken(user)
	if err != nil {
		a.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{User: user, AccessToken: accessToken})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.auth.Validate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		writeError(w, r, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	accessToken, err := a.issueToken(user)
	if err != nil {
		a.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, AccessToken: accessToken})
}

// handleListAllUsers returns every account regardless of creator. It still
// requires a valid token.
func (a *API) handleListAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.auth.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
