package domain

// CreateAdvertiserInput registers a new advertiser
type CreateAdvertiserInput struct {
	Name         string `json:"name"          validate:"required,min=1,max=200" example:"TechCorp Solutions"`
	Website      string `json:"website"       validate:"omitempty,url" example:"https://techcorp.example.com"`
	ContactEmail string `json:"contact_email" validate:"required,email" example:"ads@techcorp.example.com"`
}

// CreateCampaignInput opens a campaign under an advertiser
type CreateCampaignInput struct {
	AdvertiserID     string   `json:"advertiser_id"     validate:"required,uuid4" example:"7f8c1f9a-0b7e-4f7e-9f5b-2d8c1a6e4b3d"`
	Name             string   `json:"name"              validate:"required,min=1,max=200" example:"Cloud Platform Launch"`
	Description      string   `json:"description"       validate:"omitempty,max=2000"`
	TargetCategories []string `json:"target_categories" validate:"omitempty,dive,min=1" example:"TECHNOLOGY,SAAS"`
	TargetKeywords   []string `json:"target_keywords"   validate:"omitempty,dive,min=1,max=100" example:"cloud,infrastructure"`
	Budget           string   `json:"budget"            validate:"required" example:"5000.00"`
	CPM              string   `json:"cpm"               validate:"required" example:"8.50"`
	StartDate        string   `json:"start_date"        validate:"required" example:"2026-03-01T00:00:00Z"`
	EndDate          string   `json:"end_date"          validate:"required" example:"2026-06-01T00:00:00Z"`
}

// CreateCreativeInput adds a creative to a campaign
type CreateCreativeInput struct {
	CampaignID     string `json:"campaign_id"     validate:"required,uuid4"`
	Headline       string `json:"headline"        validate:"required,min=1,max=200" example:"Ship faster on our cloud"`
	Body           string `json:"body"            validate:"required,min=1,max=2000"`
	CTAText        string `json:"cta_text"        validate:"required,min=1,max=100" example:"Start free"`
	DestinationURL string `json:"destination_url" validate:"required,url"`
	Tone           string `json:"tone"            validate:"required,oneof=PROFESSIONAL CASUAL FRIENDLY" example:"PROFESSIONAL"`
}

// SetCampaignStatusInput moves a campaign through its lifecycle
type SetCampaignStatusInput struct {
	Status string `json:"status" validate:"required,oneof=DRAFT ACTIVE PAUSED COMPLETED" example:"ACTIVE"`
}
