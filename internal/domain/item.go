package domain

// Rarity represents how hard an item is to come by in the wild
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityVeryRare  Rarity = "VERY_RARE"
	RarityLegendary Rarity = "LEGENDARY"
)

// IsValid reports whether the rarity is one of the known levels
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityVeryRare, RarityLegendary:
		return true
	}
	return false
}

// Item is a catalog entry that trades reference by id
type Item struct {
	ID      int    `json:"item_id" db:"item_id"`
	Name    string `json:"name" db:"item_name"`
	Rarity  Rarity `json:"rarity" db:"rarity"`
	Details string `json:"details" db:"details"`
}
