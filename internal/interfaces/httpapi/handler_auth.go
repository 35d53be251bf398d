package httpapi

import (
	"fmt"
	"net/http"

	"github.com/nkoroi/county-league/internal/domain/user"
	"github.com/nkoroi/county-league/internal/usecase"
)

// RegisterUser creates an account from form fields. The optional role
// field defaults to plain user; a rejected value fails validation
// instead of being silently downgraded.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	fields, err := requiredForm(r, "username", "email", "password", "phone")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	account, err := h.auth.Register(ctx, usecase.RegisterInput{
		Username: fields["username"],
		Email:    fields["email"],
		Phone:    fields["phone"],
		Password: fields["password"],
		Role:     user.Role(r.FormValue("role")),
	})
	if err != nil {
		h.fail(ctx, w, "register user", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, payload{"user": userToDTO(*account)})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) UserLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UserLogin")
	defer span.End()

	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	account, pair, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.fail(ctx, w, "user login", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload{
		"user":          userToDTO(*account),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshToken")
	defer span.End()

	var req refreshRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	account, pair, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.fail(ctx, w, "refresh token", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload{
		"user":          userToDTO(*account),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// GetUser returns the account behind the presented token.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrAuth))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload{"user": userToDTO(*principal)})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	accounts, err := h.users.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list users", err)
		return
	}

	items := make([]userDTO, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, userToDTO(a))
	}
	writeSuccess(ctx, w, http.StatusOK, payload{"users": items})
}

type updateUserRequest struct {
	UserID   int64   `json:"user_id" validate:"required,gt=0"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UpdateUser is the admin field-set update, including role promotion.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	var req updateUserRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	upd := user.Update{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		upd.Role = &role
	}

	updated, err := h.users.Update(ctx, req.UserID, upd)
	if err != nil {
		h.fail(ctx, w, "update user", err)
		return
	}

	h.recordAudit(ctx, "update_user", &updated.ID)
	writeSuccess(ctx, w, http.StatusOK, payload{"user": userToDTO(*updated)})
}

type userIDRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	var req userIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.users.SoftDelete(ctx, req.UserID); err != nil {
		h.fail(ctx, w, "delete user", err)
		return
	}

	h.recordAudit(ctx, "delete_user", &req.UserID)
	writeSuccess(ctx, w, http.StatusOK, payload{"user_id": req.UserID})
}

func (h *Handler) RestoreUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RestoreUser")
	defer span.End()

	var req userIDRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.users.Restore(ctx, req.UserID); err != nil {
		h.fail(ctx, w, "restore user", err)
		return
	}

	h.recordAudit(ctx, "restore_user", &req.UserID)
	writeSuccess(ctx, w, http.StatusOK, payload{"user_id": req.UserID})
}
