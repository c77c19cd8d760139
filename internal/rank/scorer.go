package rank

import "leadselector/internal/domain"

// Scorer fills the score fields of a normalized lead.
type Scorer interface {
	Score(lead *domain.Lead)
}
