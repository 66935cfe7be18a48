package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
	"github.com/tutostrucoscode/GymMetrics/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// IdpSecretHeader carries the shared secret of the identity provider on login.
const IdpSecretHeader = "X-IDP-Secret"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type sessionService interface {
	Login(ctx context.Context, idpSecret string, identity Identity, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	service sessionService
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
	}
}

// TokenFromRequest returns the bearer token of r, or "".
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var identity Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		log.Debugf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	token, err := handler.service.Login(ctx, r.Header.Get(IdpSecretHeader), identity, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongSecret):
			log.Tracef("[secret] failed login attempt for user: %s", identity.UserID)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		case errors.Is(err, ErrMissingIdentity):
			http.Error(w, "error, user id empty", http.StatusBadRequest)
		default:
			log.Errorf("login failed, store session: %s", err)
			http.Error(w, "login failed", http.StatusInternalServerError)
		}
		span.SetStatus(codes.Error, "login-failed")
		return
	}

	tokenJson, err := json.Marshal(struct {
		Token string `json:"token"`
	}{Token: token})
	if err != nil {
		log.Errorf("login failed, marshal token: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new login success for user: %s", identity.UserID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tokenJson, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Tracef("logout for [%s] success", UserIDFromContext(ctx))
	pkg.WriteTextResponseOK(w, "logged-out")
}
