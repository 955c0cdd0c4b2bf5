package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go-datasvc/pkg/database"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionIDKey contextKey = "session_id"

// Session is the per-session state kept in the distributed store,
// the counterpart of the legacy in-process session object.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// SessionInterceptor reproduces the legacy Session_Start hook on top of a
// redis-backed store with a sliding idle timeout. Session_End has no
// reliable equivalent (exactly as in legacy out-of-process session state);
// expiry is delegated to the store's TTL.
type SessionInterceptor struct {
	redis       *database.Redis
	cookieName  string
	idleTimeout time.Duration
}

func NewSessionInterceptor(redis *database.Redis, cookieName string, idleTimeout time.Duration) *SessionInterceptor {
	return &SessionInterceptor{
		redis:       redis,
		cookieName:  cookieName,
		idleTimeout: idleTimeout,
	}
}

func (s *SessionInterceptor) Before(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	if s.redis == nil {
		// No store configured; sessions degrade to nothing rather than
		// blocking request handling.
		return ctx
	}

	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		key := sessionKey(cookie.Value)
		refreshed, err := s.redis.Expire(ctx, key, s.idleTimeout)
		if err != nil && err != redis.Nil {
			slog.Warn("Session store unavailable", "error", err)
			return ctx
		}
		if refreshed {
			return context.WithValue(ctx, sessionIDKey, cookie.Value)
		}
		// Idle timeout elapsed; fall through and start a fresh session.
	}

	return s.startSession(ctx, w)
}

func (s *SessionInterceptor) After(ctx context.Context, r *http.Request, status int, duration time.Duration) {
	// Sliding expiration is refreshed in Before; nothing to do on the way out.
}

func (s *SessionInterceptor) startSession(ctx context.Context, w http.ResponseWriter) context.Context {
	id := uuid.New().String()
	now := time.Now().UTC()

	session := Session{
		ID:        id,
		StartedAt: now,
		LastSeen:  now,
	}

	if err := s.redis.SetJSON(ctx, sessionKey(id), session, s.idleTimeout); err != nil {
		slog.Warn("Failed to persist session", "error", err)
		return ctx
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("Session started",
		slog.String("session_id", id),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)

	return context.WithValue(ctx, sessionIDKey, id)
}

func sessionKey(id string) string {
	return "session:" + id
}

// GetSessionID returns the session ID for the request, or an empty
// string when no session was established.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
