package routines

import (
	"encoding/json"
	"net/http"

	"github.com/tutostrucoscode/GymMetrics/internal/auth"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
	"github.com/tutostrucoscode/GymMetrics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// RoutineResponse is a Routine with its id, which the stored document keeps as key.
type RoutineResponse struct {
	ID string `json:"id"`
	Routine
}

type CatalogExerciseResponse struct {
	ID string `json:"id"`
	CatalogExercise
}

// CreateRoutineRequest creates a routine. With EndWeight set, the active routine is
// closed at that weight first.
type CreateRoutineRequest struct {
	Routine
	EndWeight *float64 `json:"endWeight"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.list")
	defer span.End()

	routines, err := handler.service.List(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		gymstats.WriteError(w, "list routines", err)
		return
	}

	resp := make([]RoutineResponse, 0, len(routines))
	for _, routine := range routines {
		resp = append(resp, RoutineResponse{ID: routine.ID, Routine: routine})
	}
	writeJson(w, resp, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.get")
	defer span.End()

	routine, err := handler.service.Get(ctx, auth.UserIDFromContext(ctx), mux.Vars(r)["routineId"])
	if err != nil {
		gymstats.WriteError(w, "get routine", err)
		return
	}

	writeJson(w, RoutineResponse{ID: routine.ID, Routine: routine}, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.routines.create")
	defer span.End()

	var req CreateRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("create routine, unmarshal json params: %s", err)
		http.Error(w, "invalid routine", http.StatusBadRequest)
		return
	}

	userID := auth.UserIDFromContext(ctx)
	var (
		routine Routine
		err     error
	)
	if req.EndWeight != nil {
		routine, err = handler.service.StartNew(ctx, userID, *req.EndWeight, req.Routine)
	} else {
		routine, err = handler.service.Create(ctx, userID, req.Routine)
	}
	if err != nil {
		gymstats.WriteError(w, "create routine", err)
		return
	}

	writeJson(w, RoutineResponse{ID: routine.ID, Routine: routine}, http.StatusCreated)
}

func (handler *Handler) HandleCatalogList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.catalog.list")
	defer span.End()

	catalog, err := handler.service.Catalog(ctx)
	if err != nil {
		gymstats.WriteError(w, "list catalog", err)
		return
	}

	resp := make([]CatalogExerciseResponse, 0, len(catalog))
	for _, ex := range catalog {
		resp = append(resp, CatalogExerciseResponse{ID: ex.ID, CatalogExercise: ex})
	}
	writeJson(w, resp, http.StatusOK)
}

func (handler *Handler) HandleCatalogAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.catalog.add")
	defer span.End()

	var ex CatalogExercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		log.Debugf("add catalog exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddCatalogExercise(ctx, ex)
	if err != nil {
		gymstats.WriteError(w, "add catalog exercise", err)
		return
	}

	writeJson(w, CatalogExerciseResponse{ID: added.ID, CatalogExercise: added}, http.StatusCreated)
}

func (handler *Handler) HandleCatalogUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.catalog.update")
	defer span.End()

	var ex CatalogExercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		log.Debugf("update catalog exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return
	}
	ex.ID = mux.Vars(r)["exerciseId"]

	updated, err := handler.service.UpdateCatalogExercise(ctx, ex)
	if err != nil {
		gymstats.WriteError(w, "update catalog exercise", err)
		return
	}

	writeJson(w, CatalogExerciseResponse{ID: updated.ID, CatalogExercise: updated}, http.StatusOK)
}

func writeJson(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "response failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
