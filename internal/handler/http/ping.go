package http

import "net/http"

// ping is the unauthenticated reachability probe. Clients poll it to decide
// whether the sync transport is online; it deliberately touches nothing
// beyond the HTTP stack.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
