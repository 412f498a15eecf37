package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const actorKey ctxKey = "actor"

// ActorContext lee el header X-Employee-ID y deja el empleado actuante en
// el contexto. No es autenticación (fuera de alcance): solo atribución,
// p.ej. qué cuidador realizó un check-in. Sin header, el request sigue igual.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := strings.TrimSpace(r.Header.Get("X-Employee-ID")); id != "" {
			ctx := context.WithValue(r.Context(), actorKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetActorID(ctx context.Context) (string, bool) {
	v := ctx.Value(actorKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
