package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/internal/dto"
	"github.com/dialloibra/microcredit/internal/service/userservice"
	pkgauth "github.com/dialloibra/microcredit/pkg/auth"
	"github.com/dialloibra/microcredit/pkg/utils"
	"github.com/dialloibra/microcredit/pkg/validate"
)

type Service interface {
	List(ctx context.Context, actor *domain.Principal) ([]domain.User, error)
	Create(ctx context.Context, actor *domain.Principal, in userservice.CreateInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.Principal, userID int, in userservice.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.Principal, userID int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func respondUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, authz.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrEmailTaken),
		errors.Is(err, userservice.ErrHasCredits):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, userservice.ErrInvalidRole),
		errors.Is(err, userservice.ErrSelfDelete):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func userID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// List godoc
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	list, err := h.userService.List(r.Context(), actor)
	if err != nil {
		respondUserError(w, err)
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, dto.NewUserResponse(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Create a user
//	@Description	Create an account with any role. Unlike public registration this endpoint may create supervisors and administrators.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User payload"
//	@Success		201		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Router			/api/admin/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), actor, userservice.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

// Update godoc
//
//	@Summary		Update a user
//	@Description	Replace name, email and role. The password changes only when a new one is supplied.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an administrator"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Router			/api/admin/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := userID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), actor, id, userservice.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// Delete godoc
//
//	@Summary		Delete a user
//	@Description	Remove an account. Refused for your own account and for clients that still own credits.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Deleting your own account"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not an administrator"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"User still owns credits"
//	@Router			/api/admin/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := pkgauth.PrincipalFromContext(r.Context())

	id, ok := userID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), actor, id); err != nil {
		respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}
