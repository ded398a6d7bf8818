package achievements

// Rarity represents how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// StreakRarity returns the rarity for a streak milestone.
func StreakRarity(length int) Rarity {
	switch {
	case length >= 50:
		return RarityLegendary
	case length >= 20:
		return RarityEpic
	case length >= 10:
		return RarityRare
	default:
		return RarityCommon
	}
}

// TotalRarity returns the rarity for a total-correct milestone.
func TotalRarity(count int) Rarity {
	switch {
	case count >= 500:
		return RarityLegendary
	case count >= 250:
		return RarityEpic
	case count >= 50:
		return RarityRare
	default:
		return RarityCommon
	}
}

// LargeNumberRarity returns the rarity for a big-number milestone.
func LargeNumberRarity(threshold int) Rarity {
	switch {
	case threshold >= 1000:
		return RarityLegendary
	case threshold >= 100:
		return RarityEpic
	default:
		return RarityRare
	}
}

// Rarity returns the rarity of d.
func (d Definition) Rarity() Rarity {
	switch d.Category {
	case CategoryStreak:
		return StreakRarity(d.Requirement)
	case CategoryTotalCorrect:
		return TotalRarity(d.Requirement)
	case CategoryLargeNumbers:
		return LargeNumberRarity(d.Target.Number)
	case CategoryNumberMastery:
		if d.Target.IsRange() && d.Target.High > 12 {
			return RarityLegendary
		}
		return RarityRare
	default:
		return RarityCommon
	}
}
