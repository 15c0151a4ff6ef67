package identity

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
)

// Заголовки проставляет api-gateway после аутентификации. Пользователя
// "по умолчанию" нет: запрос без identity отклоняется.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserName     = "X-User-Name"
	HeaderUserEmail    = "X-User-Email"
	HeaderUserRole     = "X-User-Role"
	HeaderUserVerified = "X-User-Verified"
	HeaderUserPlan     = "X-User-Plan"
)

type ctxKey struct{}

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFromHeaders(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}

// WithActor кладёт актора в контекст напрямую, минуя HTTP. Используется
// kafka-обработчиками и тестами.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func actorFromHeaders(r *http.Request) (entities.Actor, bool) {
	id := r.Header.Get(HeaderUserID)
	role := r.Header.Get(HeaderUserRole)
	if id == "" || role == "" {
		return entities.Actor{}, false
	}

	switch entities.ActorRole(role) {
	case entities.RoleBusiness, entities.RoleLogistics, entities.RoleAdmin:
	default:
		return entities.Actor{}, false
	}

	verified, _ := strconv.ParseBool(r.Header.Get(HeaderUserVerified))

	return entities.Actor{
		ID:          id,
		Name:        r.Header.Get(HeaderUserName),
		Email:       r.Header.Get(HeaderUserEmail),
		Role:        entities.ActorRole(role),
		IsVerified:  verified,
		CurrentPlan: entities.PlanID(r.Header.Get(HeaderUserPlan)),
	}, true
}
