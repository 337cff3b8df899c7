package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/webshop/internal/http/errors"
	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
)

// =================================================================================
// AUTHENTICATION MIDDLEWARES
// =================================================================================

// RequireAuth valida Authorization: Bearer <JWT> y guarda la identidad en el
// contexto. Si el token es inválido o no está presente, responde 401.
func RequireAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				errors.WriteError(w, errors.ErrTokenMissing)
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := issuer.Parse(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="`+err.Error()+`"`)
				errors.WriteError(w, errors.ErrTokenInvalid.WithDetail(err.Error()))
				return
			}

			ctx := r.Context()
			if sub := jwtx.Subject(claims); sub != "" {
				ctx = WithUserID(ctx, sub)
			}
			if email, _ := claims["email"].(string); email != "" {
				ctx = WithEmail(ctx, email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth intenta validar el token JWT pero NO falla si no está presente.
// Lo usan las rutas que aceptan invitados (ej: crear una orden sin cuenta).
func OptionalAuth(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				// No hay token, continuar sin identidad
				next.ServeHTTP(w, r)
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := issuer.Parse(raw)
			if err != nil {
				// Token inválido pero opcional, continuar sin identidad
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			if sub := jwtx.Subject(claims); sub != "" {
				ctx = WithUserID(ctx, sub)
			}
			if email, _ := claims["email"].(string); email != "" {
				ctx = WithEmail(ctx, email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
