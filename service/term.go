package service

import (
	"sort"

	"github.com/joeyg6393/fincalcs/domain"
)

// RecommendTerm scans every term in [MinTermMonths, MaxTermMonths], drops
// the ones whose payment exceeds MaxMonthlyPayment and ranks the rest by
// the caller's preference.
func RecommendTerm(input domain.TermRecommendationInput) (domain.TermRecommendationResult, error) {
	err := firstErr(
		requirePositive("amount", input.Amount),
		requireRate("interestRate", input.InterestRate),
		requirePositive("maxMonthlyPayment", input.MaxMonthlyPayment),
	)
	if err != nil {
		return domain.TermRecommendationResult{}, err
	}
	if input.MinTermMonths <= 0 || input.MaxTermMonths <= 0 {
		return domain.TermRecommendationResult{}, invalid("minTermMonths", "terms must be positive")
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return domain.TermRecommendationResult{}, invalid("minTermMonths", "must not exceed maxTermMonths")
	}
	if input.MaxTermMonths > MaxTermMonths {
		return domain.TermRecommendationResult{}, invalid("maxTermMonths", "exceeds the maximum of %d months", MaxTermMonths)
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return domain.TermRecommendationResult{}, invalid("maxTermMonths", "range exceeds the maximum of %d months", MaxTermRangeMonths)
	}
	switch input.Preference {
	case domain.PreferMinimizeInterest, domain.PreferMinimizePayment, domain.PreferBalanced:
	default:
		return domain.TermRecommendationResult{}, invalid("preference", "unsupported preference %q", input.Preference)
	}

	var recommendations []domain.TermRecommendation
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		result, err := CalculateLoan(domain.LoanInput{
			Amount:       input.Amount,
			InterestRate: input.InterestRate,
			TermMonths:   term,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}
		if result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Score:          termScore(result, input, term),
			Reason:         termReason(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, invalid("maxMonthlyPayment",
			"no term between %d and %d months fits a payment of $%.2f",
			input.MinTermMonths, input.MaxTermMonths, input.MaxMonthlyPayment)
	}

	// Ties keep the shorter term first.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	end := min(len(recommendations), 4)
	recommendations[0].Reason = explainTerm(input.Amount, input.InterestRate,
		recommendations[0], input.Preference, recommendations[1:end])

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

// termScore rates a term from 0 to 10 on interest, payment and length,
// weighted by preference.
func termScore(result domain.LoanResult, input domain.TermRecommendationInput, term int) float64 {
	maxInterest := input.Amount * (input.InterestRate / 100) * float64(input.MaxTermMonths) / MonthsPerYear
	minInterest := input.Amount * (input.InterestRate / 100) * float64(input.MinTermMonths) / MonthsPerYear
	interestRange := maxInterest - minInterest

	floorPayment := input.Amount / float64(input.MaxTermMonths)
	paymentRange := input.MaxMonthlyPayment - floorPayment

	var interestScore, paymentScore float64
	termScore := 10.0
	if interestRange > 0 {
		interestScore = 10 * (1 - (result.TotalInterest-minInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10 * (1 - (result.MonthlyPayment-floorPayment)/paymentRange)
	}
	if span := input.MaxTermMonths - input.MinTermMonths; span > 0 {
		termScore = 10 * (1 - float64(term-input.MinTermMonths)/float64(span))
	}

	var score float64
	switch input.Preference {
	case domain.PreferMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	default:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}
	return roundTo2Decimals(score)
}
