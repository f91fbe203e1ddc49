package quiz

type Difficulty string

const (
	DifficultyFacile    Difficulty = "facile"
	DifficultyMoyen     Difficulty = "moyen"
	DifficultyDifficile Difficulty = "difficile"
)

var AllDifficulties = []Difficulty{
	DifficultyFacile,
	DifficultyMoyen,
	DifficultyDifficile,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type AccessType string

const (
	AccessGratuit AccessType = "gratuit"
	AccessPremium AccessType = "premium"
)

func (a AccessType) IsValid() bool {
	return a == AccessGratuit || a == AccessPremium
}
