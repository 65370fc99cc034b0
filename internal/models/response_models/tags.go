package response_models

// Tag is a qualitative descriptor from a closed vocabulary.
type Tag string

const (
	TagArtsy          Tag = "ARTSY"
	TagBudgetFriendly Tag = "BUDGET_FRIENDLY"
	TagCozy           Tag = "COZY"
	TagCrowded        Tag = "CROWDED"
	TagDateNight      Tag = "DATE_NIGHT"
	TagIconic         Tag = "ICONIC"
	TagLoud           Tag = "LOUD"
	TagNature         Tag = "NATURE"
	TagPremium        Tag = "PREMIUM"
	TagRomantic       Tag = "ROMANTIC"
)

// AllTags is the vocabulary in ascending order.
var AllTags = []Tag{
	TagArtsy,
	TagBudgetFriendly,
	TagCozy,
	TagCrowded,
	TagDateNight,
	TagIconic,
	TagLoud,
	TagNature,
	TagPremium,
	TagRomantic,
}

func (t Tag) Valid() bool {
	for _, known := range AllTags {
		if t == known {
			return true
		}
	}
	return false
}

type TagResponse struct {
	Name string `json:"name"`
}
