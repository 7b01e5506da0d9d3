package session

import (
	"io"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Auth endpoints are proxied instead of called cross-origin so the provider's
// Set-Cookie lands on this origin. Bodies pass through untouched.

func (s *Resolver) SignIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.proxy(w, r, "/api/auth/sign-in/email")
}

func (s *Resolver) SignUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.proxy(w, r, "/api/auth/sign-up/email")
}

func (s *Resolver) SignOut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.proxy(w, r, "/api/auth/sign-out")
}

func (s *Resolver) proxy(w http.ResponseWriter, r *http.Request, path string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.AuthURL+path, r.Body)
	if err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if cookie := r.Header.Get("Cookie"); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	res, err := s.HTTP.Do(req)
	if err != nil {
		log.Println("session: auth proxy failed:", err)
		http.Error(w, "Something went wrong", http.StatusBadGateway)
		return
	}
	defer res.Body.Close()

	for _, sc := range res.Header.Values("Set-Cookie") {
		w.Header().Add("Set-Cookie", sc)
	}
	if ct := res.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(res.StatusCode)
	if _, err := io.Copy(w, res.Body); err != nil {
		log.Println("session: auth proxy copy failed:", err)
	}
}
