// internal/handler/auth.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type SignupResponse struct {
	BaseResponse
	User  any    `json:"user"`
	Token string `json:"token"`
}

type LoginResponse struct {
	BaseResponse
	User  any    `json:"user"`
	Token string `json:"token"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	output, err := h.accounts.Signup(r.Context(), input)
	if err != nil {
		slog.WarnContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, r, err)
		return
	}

	// The caller is not authenticated yet; the account is its own.
	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	output, err := h.accounts.Login(r.Context(), input)
	if err != nil {
		slog.WarnContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.Me(r.Context(), viewer(r).UserID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, user)
}

// SubscribeHandler activates premium and returns a token carrying the new tier.
func (h *AuthHandler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SubscribeInput
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &input); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
	}

	output, err := h.accounts.Subscribe(r.Context(), viewer(r).UserID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

// ListAccountsHandler is the admin account listing.
func (h *AuthHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	page := pageFrom(r)
	users, total, err := h.accounts.ListAccounts(r.Context(), page.Offset, page.Limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        accountsOrEmpty(users),
		Total:        total,
	})
}

func accountsOrEmpty(users []*model.User) []*model.User {
	if users == nil {
		return []*model.User{}
	}
	return users
}
