package http

import "net/http"

// NewRouter wires the calculator API and the /loan/* routes behind the rate
// limiter.
func NewRouter(svc *CalculatorHandler, loans *LoanHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /calculators", svc.List)
	mux.HandleFunc("POST /calculators/{id}", svc.Calculate)
	mux.HandleFunc("POST /calculators/{id}/export", svc.Export)
	mux.HandleFunc("GET /history", svc.History)

	mux.HandleFunc("/loan/calculate", loans.CalculateLoan)
	mux.HandleFunc("/loan/recommend-term", loans.RecommendTerm)
	mux.HandleFunc("/loan/debt-exit-plan", loans.CalculateDebtExitPlan)

	return RateLimitMiddleware(limiter, mux)
}
