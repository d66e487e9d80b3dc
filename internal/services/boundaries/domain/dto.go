package domain

// UpsertInput replaces a creator's boundaries wholesale
// categories arrive as wire names and are parsed against the taxonomy
type UpsertInput struct {
	AllowedCategories []string `json:"allowed_categories" validate:"omitempty,dive,min=1" example:"TECHNOLOGY,AI_ML"`
	BlockedCategories []string `json:"blocked_categories" validate:"omitempty,dive,min=1" example:"FINANCE"`
	BlockedBrands     []string `json:"blocked_brands"     validate:"omitempty,dive,min=1,max=200" example:"scamco"`
	MinCPM            *string  `json:"min_cpm"            validate:"omitempty" example:"5.00"`
	PreferredTone     string   `json:"preferred_tone"     validate:"required,oneof=PROFESSIONAL CASUAL FRIENDLY" example:"PROFESSIONAL"`
	MaxAdsPerIssue    int      `json:"max_ads_per_issue"  validate:"required,min=1,max=20" example:"3"`
}
