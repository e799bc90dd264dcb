package http

import "net/http"

// RecommendTerm handles POST /loan/recommend-term. Requests must declare a
// JSON content type.
func (h *LoanHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "term-recommendation", true)
}
