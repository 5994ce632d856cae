package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"student-backend/model"
	"student-backend/store"
	"student-backend/util"
)

type StudentController struct {
	store store.StudentStore
	log   zerolog.Logger
}

func NewStudentController(store store.StudentStore, log zerolog.Logger) *StudentController {
	return &StudentController{store: store, log: log}
}

func (sc *StudentController) Register(r chi.Router) {
	r.Get("/students", sc.HandleListStudents)
	r.Post("/students", sc.HandleAddStudent)
	r.Put("/students/{id}", sc.HandleUpdateStudent)
	r.Delete("/students/{id}", sc.HandleDeleteStudent)
}

func (sc *StudentController) HandleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := sc.store.ListStudents(r.Context())
	if err != nil {
		sc.log.Error().Err(err).Msg("failed to fetch students")
		util.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, students)
}

func (sc *StudentController) HandleAddStudent(w http.ResponseWriter, r *http.Request) {
	// No required-field validation: missing fields persist as empty strings
	// and a repeated id creates a second record.
	var student model.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := sc.store.AddStudent(r.Context(), student)
	if err != nil {
		sc.log.Error().Err(err).Str("id", student.ID).Msg("failed to add student")
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sc.log.Info().Str("id", created.ID).Msg("student added")
	util.WriteSuccessResponse(w, http.StatusCreated, created)
}

func (sc *StudentController) HandleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var student model.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Lookup is by the business id field, first match; the replacement is
	// wholesale, including the id itself.
	updated, err := sc.store.UpdateStudent(r.Context(), id, student)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		sc.log.Error().Err(err).Str("id", id).Msg("failed to update student")
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sc.log.Info().Str("id", id).Msg("student updated")
	util.WriteSuccessResponse(w, http.StatusOK, updated)
}

func (sc *StudentController) HandleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := sc.store.DeleteStudent(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		sc.log.Error().Err(err).Str("id", id).Msg("failed to delete student")
		util.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sc.log.Info().Str("id", id).Msg("student deleted")
	util.WriteSuccessResponse(w, http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}
