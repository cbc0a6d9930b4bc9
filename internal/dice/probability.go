package dice

// Probability computes the exact probability that bid is true given the
// caller's hand. Every unseen die is an independent uniform draw over
// cfg.FaceCount faces; a die satisfies the bid either by being the wildcard
// or by showing the bid face directly. Those two mechanisms are mutually
// exclusive per die, so the computation conditions first on the number of
// wildcards among the unseen dice and then on the number of direct face
// matches among the remaining non-wildcards.
func Probability(cfg GameConfig, hand Hand, bid Bid) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if err := bid.Validate(cfg); err != nil {
		return 0, err
	}
	if err := hand.Validate(cfg); err != nil {
		return 0, err
	}

	external := cfg.TotalDice - len(hand)
	needed := bid.Count - hand.Friendly(cfg, bid.Face)
	if needed <= 0 {
		// The hand alone already satisfies the bid.
		return 1, nil
	}

	d := float64(cfg.FaceCount)
	total := 0.0
	for i := 0; i <= external; i++ {
		// P(exactly i wildcards among the unseen dice).
		wildcardP := binomialPMF(external, i, 1/d)
		if i >= needed {
			total += wildcardP
			continue
		}
		// Remaining dice are uniform over the d-1 non-wildcard faces.
		// Sum P(at least needed-i direct matches | i wildcards).
		rest := external - i
		sub := 0.0
		for j := needed - i; j <= rest; j++ {
			sub += binomialPMF(rest, j, 1/(d-1))
		}
		total += wildcardP * sub
	}
	return total, nil
}

// binomialPMF returns C(n, k) * p^k * (1-p)^(n-k).
func binomialPMF(n, k int, p float64) float64 {
	prob := 1.0
	for i := k; i > 0; i-- {
		prob *= p * float64(n-k+i) / float64(i)
	}
	for i := 0; i < n-k; i++ {
		prob *= 1 - p
	}
	return prob
}
