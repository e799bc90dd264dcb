package http

import "net/http"

// CalculateDebtExitPlan handles POST /loan/debt-exit-plan.
func (h *LoanHandler) CalculateDebtExitPlan(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "debt-exit-plan", false)
}
