package service

import "math"

// CriteriaScores carries the five criterion scores of one rating, each
// expected in [1,5].
type CriteriaScores struct {
	Fairness    float64
	Competence  float64
	Clarity     float64
	Helpfulness float64
	Patience    float64
}

// Valid reports whether every score is inside the allowed range.
func (s CriteriaScores) Valid() bool {
	for _, v := range []float64{s.Fairness, s.Competence, s.Clarity, s.Helpfulness, s.Patience} {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}

// Overall is the arithmetic mean of the five criteria rounded to 2 decimals.
// This is the only place the overall score is computed; it is never taken
// from a client.
func (s CriteriaScores) Overall() float64 {
	mean := (s.Fairness + s.Competence + s.Clarity + s.Helpfulness + s.Patience) / 5
	return round2(mean)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
