package session

import (
	"context"
	"net/http"

	"medistore/globals"
	"medistore/models"
	"medistore/utils"

	"github.com/julienschmidt/httprouter"
)

// WithSession resolves the session once and stores it in the request context.
func (s *Resolver) WithSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		info, signedIn := s.Resolve(r)
		ctx := context.WithValue(r.Context(), globals.UserInfoKey, info)
		ctx = context.WithValue(ctx, globals.SignedInKey, signedIn)
		next(w, r.WithContext(ctx), ps)
	}
}

// FromRequest returns the resolved user and whether a real session backs it.
// Handlers outside the session middleware get the guest record.
func FromRequest(r *http.Request) (models.UserInfo, bool) {
	info, signedIn, _ := FromContext(r.Context())
	return info, signedIn
}

// FromContext is FromRequest plus a third return reporting whether the
// middleware ran at all, so callers can fall back to resolving themselves.
func FromContext(ctx context.Context) (models.UserInfo, bool, bool) {
	info, ok := ctx.Value(globals.UserInfoKey).(models.UserInfo)
	if !ok {
		return models.GuestUser(), false, false
	}
	signedIn, _ := ctx.Value(globals.SignedInKey).(bool)
	return info, signedIn, true
}

// RequireRole guards mutating proxy routes: 401 for guests, 403 for a
// signed-in user with the wrong role.
func (s *Resolver) RequireRole(next httprouter.Handle, roles ...models.Role) httprouter.Handle {
	return s.WithSession(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		info, signedIn := FromRequest(r)
		if !signedIn {
			utils.RespondWithError(w, http.StatusUnauthorized, "Please login first")
			return
		}
		for _, role := range roles {
			if info.Role == role {
				next(w, r, ps)
				return
			}
		}
		utils.RespondWithError(w, http.StatusForbidden, "You do not have access to this resource")
	})
}
