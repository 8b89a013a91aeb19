package server

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// editorLock gates database-editing endpoints behind a shared password,
// supplied as a bearer token and compared against its bcrypt hash. A nil
// hash disables the lock entirely (the default for a local install).
func editorLock(hash []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(hash) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			password, found := strings.CutPrefix(auth, "Bearer ")
			if !found || password == "" {
				writeError(w, http.StatusUnauthorized, "editor password required")
				return
			}
			if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
				writeError(w, http.StatusUnauthorized, "invalid editor password")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
