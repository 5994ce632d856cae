package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"student-backend/model"
	"student-backend/store"
	"student-backend/util"
)

type UserController struct {
	store store.UserStore
	log   zerolog.Logger
}

func NewUserController(store store.UserStore, log zerolog.Logger) *UserController {
	return &UserController{store: store, log: log}
}

func (uc *UserController) Register(r chi.Router) {
	r.Post("/signup", uc.HandleSignup)
	r.Post("/login", uc.HandleLogin)
	r.Get("/users", uc.HandleListUsers)
	r.Put("/updateUser/{id}", uc.HandleUpdateUser)
	r.Delete("/deleteUser/{id}", uc.HandleDeleteUser)
}

func (uc *UserController) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	// Pre-save existence check; the unique index on email is what actually
	// closes the window between this read and the insert below.
	_, err := uc.store.FindUserByEmail(r.Context(), req.Email)
	if err == nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		uc.log.Error().Err(err).Msg("signup: email lookup failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error().Err(err).Msg("signup: failed to hash password")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	_, err = uc.store.AddUser(r.Context(), model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		uc.log.Error().Err(err).Msg("signup: failed to create user")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	uc.log.Info().Str("email", req.Email).Msg("user registered")
	util.WriteSuccessResponse(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (uc *UserController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	// Unknown email and wrong password share one response, so the caller
	// cannot tell which failed. No session or token is issued on success.
	user, err := uc.store.FindUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		uc.log.Error().Err(err).Msg("login: email lookup failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		util.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	uc.log.Info().Str("email", req.Email).Msg("login successful")
	util.WriteSuccessResponse(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (uc *UserController) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.store.ListUsers(r.Context())
	if err != nil {
		uc.log.Error().Err(err).Msg("failed to fetch users")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	// model.User never serializes the password hash, so this is safe to
	// return as-is.
	util.WriteSuccessResponse(w, http.StatusOK, users)
}

func (uc *UserController) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error().Err(err).Msg("update user: failed to hash password")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	updated, err := uc.store.UpdateUser(r.Context(), id, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	})
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, store.ErrDuplicateEmail) {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		uc.log.Error().Err(err).Str("id", id.Hex()).Msg("failed to update user")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	uc.log.Info().Str("id", id.Hex()).Msg("user updated")
	response := struct {
		Message string     `json:"message"`
		User    model.User `json:"user"`
	}{Message: "User updated successfully", User: updated}
	util.WriteSuccessResponse(w, http.StatusOK, response)
}

func (uc *UserController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	err = uc.store.DeleteUser(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		uc.log.Error().Err(err).Str("id", id.Hex()).Msg("failed to delete user")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	uc.log.Info().Str("id", id.Hex()).Msg("user deleted")
	util.WriteSuccessResponse(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
