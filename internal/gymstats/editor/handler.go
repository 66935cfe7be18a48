package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tutostrucoscode/GymMetrics/internal/auth"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
	"github.com/tutostrucoscode/GymMetrics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=editor_test

type committer interface {
	Commit(ctx context.Context, userID, routineID, exerciseID string, entries []gymstats.SetEntry) (history.Committed, error)
}

type setCountResolver interface {
	DefaultSetCount(ctx context.Context, exerciseID string) (int, error)
}

type routineSource interface {
	Get(ctx context.Context, userID, routineID string) (routines.Routine, error)
}

type DraftResponse struct {
	RoutineID  string              `json:"routineId"`
	ExerciseID string              `json:"exerciseId"`
	Sets       []gymstats.SetEntry `json:"sets"`
	Trends     []Trend             `json:"trends"`
}

func NewDraftResponse(e *Editor) DraftResponse {
	return DraftResponse{
		RoutineID:  e.RoutineID(),
		ExerciseID: e.ExerciseID(),
		Sets:       e.Entries(),
		Trends:     e.Trends(),
	}
}

type UpdateFieldRequest struct {
	Field string `json:"field"`
	// Value is the raw form input; a JSON string or number.
	Value json.RawMessage `json:"value"`
}

type CommitResponse struct {
	Date      string              `json:"date"`
	Timestamp string              `json:"timestamp"`
	Sets      []gymstats.SetEntry `json:"sets"`
}

// Handler serves the drafts of the session user. A draft is only reachable through
// a routine the user owns and an exercise that routine plans.
type Handler struct {
	drafts    draftStore
	committer committer
	setCounts setCountResolver
	routines  routineSource
}

func NewHandler(drafts draftStore, committer committer, setCounts setCountResolver, routines routineSource) *Handler {
	return &Handler{
		drafts:    drafts,
		committer: committer,
		setCounts: setCounts,
		routines:  routines,
	}
}

// OpenEditor opens the draft of an exercise, seeding new drafts with the catalog set count.
func OpenEditor(ctx context.Context, drafts draftStore, setCounts setCountResolver, routineID, exerciseID string) (*Editor, error) {
	setCount, err := setCounts.DefaultSetCount(ctx, exerciseID)
	if err != nil {
		if !errors.Is(err, gymstats.ErrNotFound) {
			return nil, err
		}
		log.Debugf("editor: exercise [%s] not in catalog, using one set", exerciseID)
		setCount = 1
	}
	return Open(ctx, drafts, routineID, exerciseID, setCount)
}

func (handler *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.open")
	defer span.End()

	e, err := handler.open(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "open draft", err)
		return
	}

	writeDraft(w, e, http.StatusOK)
}

func (handler *Handler) HandleUpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.update_field")
	defer span.End()

	var req UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("update draft field, unmarshal json params: %s", err)
		http.Error(w, "invalid update request", http.StatusBadRequest)
		return
	}

	field, err := ParseField(req.Field)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, index, ok := handler.openAtIndex(ctx, w, r)
	if !ok {
		return
	}

	if err := e.UpdateField(ctx, index, field, rawFormValue(req.Value)); err != nil {
		gymstats.WriteError(w, "update draft field", err)
		return
	}

	writeDraft(w, e, http.StatusOK)
}

func (handler *Handler) HandleAddEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.add_entry")
	defer span.End()

	e, err := handler.open(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "add draft entry", err)
		return
	}

	if err := e.AddEntry(ctx); err != nil {
		gymstats.WriteError(w, "add draft entry", err)
		return
	}

	writeDraft(w, e, http.StatusCreated)
}

func (handler *Handler) HandleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.remove_entry")
	defer span.End()

	e, index, ok := handler.openAtIndex(ctx, w, r)
	if !ok {
		return
	}

	if _, err := e.RemoveEntry(ctx, index); err != nil {
		gymstats.WriteError(w, "remove draft entry", err)
		return
	}

	writeDraft(w, e, http.StatusOK)
}

func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.trends")
	defer span.End()

	e, err := handler.open(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "draft trends", err)
		return
	}

	trendsJson, err := json.Marshal(e.Trends())
	if err != nil {
		log.Errorf("marshal draft trends: %s", err)
		http.Error(w, "draft trends failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trendsJson, http.StatusOK)
}

// HandleClear discards the draft. Closing the editor without committing keeps it.
func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.clear")
	defer span.End()

	routine, exerciseID, err := handler.ownedDraft(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "clear draft", err)
		return
	}

	if err := handler.drafts.Clear(ctx, routine.ID, exerciseID); err != nil {
		gymstats.WriteError(w, "clear draft", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.drafts.commit")
	defer span.End()

	e, err := handler.open(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "commit", err)
		return
	}

	routineID, exerciseID := e.RoutineID(), e.ExerciseID()
	committed, err := handler.committer.Commit(ctx, auth.UserIDFromContext(ctx), routineID, exerciseID, e.Entries())
	if err != nil {
		gymstats.WriteError(w, "commit", err)
		return
	}

	respJson, err := json.Marshal(CommitResponse{
		Date:      committed.Date,
		Timestamp: committed.Event.Timestamp,
		Sets:      committed.Event.Sets,
	})
	if err != nil {
		log.Errorf("marshal commit response: %s", err)
		http.Error(w, "commit failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("committed [%s/%s] on %s", routineID, exerciseID, committed.Date)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

// ownedDraft resolves the {routineId} and {exerciseId} path vars for the session user.
// Routines of other users are reported as not found.
func (handler *Handler) ownedDraft(ctx context.Context, r *http.Request) (routines.Routine, string, error) {
	vars := mux.Vars(r)
	routine, err := handler.routines.Get(ctx, auth.UserIDFromContext(ctx), vars["routineId"])
	if err != nil {
		return routines.Routine{}, "", err
	}

	exerciseID := vars["exerciseId"]
	if !routine.Plans(exerciseID) {
		log.Debugf("editor: exercise [%s] is not planned in routine [%s]", exerciseID, routine.ID)
		return routines.Routine{}, "", fmt.Errorf("%w: not planned in this routine", routines.ErrExerciseNotFound)
	}
	return routine, exerciseID, nil
}

func (handler *Handler) open(ctx context.Context, r *http.Request) (*Editor, error) {
	routine, exerciseID, err := handler.ownedDraft(ctx, r)
	if err != nil {
		return nil, err
	}
	return OpenEditor(ctx, handler.drafts, handler.setCounts, routine.ID, exerciseID)
}

// openAtIndex opens the editor and validates the {index} path var against it. On
// failure the response has been written.
func (handler *Handler) openAtIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Editor, int, bool) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "invalid set index", http.StatusBadRequest)
		return nil, 0, false
	}

	e, err := handler.open(ctx, r)
	if err != nil {
		gymstats.WriteError(w, "open draft", err)
		return nil, 0, false
	}

	if index < 0 || index >= e.Len() {
		http.Error(w, fmt.Sprintf("set index %d out of range", index), http.StatusBadRequest)
		return nil, 0, false
	}

	return e, index, true
}

func writeDraft(w http.ResponseWriter, e *Editor, status int) {
	draftJson, err := json.Marshal(NewDraftResponse(e))
	if err != nil {
		log.Errorf("marshal draft: %s", err)
		http.Error(w, "draft response failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, draftJson, status)
}

// rawFormValue turns a JSON string or number into the text the form field held.
func rawFormValue(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(value))
}
