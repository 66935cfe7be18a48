package logs

import (
	"encoding/json"
	"net/http"

	"github.com/tutostrucoscode/GymMetrics/internal/auth"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/editor"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
	"github.com/tutostrucoscode/GymMetrics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleLogs answers GET .../logs?day=<label|all>. Without a day the view starts on
// the routine's first training day.
func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.list")
	defer span.End()

	view, err := handler.service.Logs(ctx, auth.UserIDFromContext(ctx), mux.Vars(r)["routineId"], r.URL.Query().Get("day"))
	if err != nil {
		gymstats.WriteError(w, "fetch logs", err)
		return
	}

	viewJson, err := json.Marshal(view)
	if err != nil {
		log.Errorf("marshal logs view: %s", err)
		http.Error(w, "fetch logs failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, viewJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := ParseLogID(vars["logId"])
	if err != nil {
		gymstats.WriteError(w, "delete log", err)
		return
	}

	if err := handler.service.Delete(ctx, auth.UserIDFromContext(ctx), vars["routineId"], id); err != nil {
		gymstats.WriteError(w, "delete log", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleEdit answers with the editor of the row's exercise. The logged sets are not
// loaded into it; see Service.Edit.
func (handler *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.logs.edit")
	defer span.End()

	vars := mux.Vars(r)
	id, err := ParseLogID(vars["logId"])
	if err != nil {
		gymstats.WriteError(w, "edit log", err)
		return
	}

	e, err := handler.service.Edit(ctx, auth.UserIDFromContext(ctx), vars["routineId"], id)
	if err != nil {
		gymstats.WriteError(w, "edit log", err)
		return
	}

	draftJson, err := json.Marshal(editor.NewDraftResponse(e))
	if err != nil {
		log.Errorf("marshal draft: %s", err)
		http.Error(w, "edit log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, draftJson, http.StatusOK)
}
