// Command adloom-seed loads a demo catalog, creators, and one annotated
// issue so a fresh environment has something to recommend against
package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adloom/internal/platform/config"
	"adloom/internal/platform/logger"
	"adloom/internal/platform/store"

	"adloom/internal/modkit/repokit"

	boundariesdom "adloom/internal/services/boundaries/domain"
	boundariesrepo "adloom/internal/services/boundaries/repo"
	boundariessvc "adloom/internal/services/boundaries/service"
	catalogdom "adloom/internal/services/catalog/domain"
	catalogrepo "adloom/internal/services/catalog/repo"
	catalogsvc "adloom/internal/services/catalog/service"
	issuesdom "adloom/internal/services/issues/domain"
	issuesrepo "adloom/internal/services/issues/repo"
	issuessvc "adloom/internal/services/issues/service"
)

type creator struct {
	ID             string
	Email          string
	Name           string
	NewsletterName string
}

type campaignSeed struct {
	Advertiser string
	Input      catalogdom.CreateCampaignInput
	Creatives  []catalogdom.CreateCreativeInput
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()
	ctx := context.Background()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:  true,
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(ctx) }()

	db := repokit.TxRunner(st.PG)
	catalog := catalogsvc.New(db, catalogrepo.NewPG())
	boundaries := boundariessvc.New(db, boundariesrepo.NewPG())
	issues := issuessvc.New(db, issuesrepo.NewPG(), issuessvc.Config{})

	creators := seedCreators(ctx, l, db)
	seedBoundaries(ctx, l, boundaries, creators)
	seedCatalog(ctx, l, catalog)
	seedIssue(ctx, l, issues, creators[0])

	l.Info().Msg("seed complete")
}

func seedCreators(ctx context.Context, l *logger.Logger, db repokit.TxRunner) []creator {
	creators := []creator{
		{ID: uuid.NewString(), Email: "sarah@technewsletter.example", Name: "Sarah Chen", NewsletterName: "TechBrief Weekly"},
		{ID: uuid.NewString(), Email: "marcus@moneytalk.example", Name: "Marcus Webb", NewsletterName: "Money Talk"},
		{ID: uuid.NewString(), Email: "elena@wellnessdigest.example", Name: "Elena Ruiz", NewsletterName: "Wellness Digest"},
	}
	err := db.Tx(ctx, func(q repokit.Queryer) error {
		for _, c := range creators {
			_, err := q.Exec(ctx, `
				INSERT INTO creators (id, email, name, newsletter_name, created_at)
				VALUES ($1, $2, $3, $4, now())
				ON CONFLICT (email) DO NOTHING
			`, c.ID, c.Email, c.Name, c.NewsletterName)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Panic().Err(err).Msg("seed creators failed")
	}
	return creators
}

func seedBoundaries(
	ctx context.Context,
	l *logger.Logger,
	svc *boundariessvc.Service,
	creators []creator,
) {
	min := "5.00"
	inputs := []boundariesdom.UpsertInput{
		{
			AllowedCategories: []string{"TECHNOLOGY", "SAAS", "AI_ML"},
			BlockedBrands:     []string{"crypto"},
			MinCPM:            &min,
			PreferredTone:     "PROFESSIONAL",
			MaxAdsPerIssue:    3,
		},
		{
			BlockedCategories: []string{"ENTERTAINMENT"},
			PreferredTone:     "CASUAL",
			MaxAdsPerIssue:    2,
		},
		{
			AllowedCategories: []string{"HEALTH", "LIFESTYLE"},
			PreferredTone:     "FRIENDLY",
			MaxAdsPerIssue:    1,
		},
	}
	for i, c := range creators {
		if _, err := svc.Upsert(ctx, c.ID, inputs[i]); err != nil {
			l.Panic().Err(err).Str("creator", c.Email).Msg("seed boundaries failed")
		}
	}
}

func seedCatalog(ctx context.Context, l *logger.Logger, svc *catalogsvc.Service) {
	now := time.Now().UTC()
	start := now.AddDate(0, -1, 0).Format(time.RFC3339)
	end := now.AddDate(0, 2, 0).Format(time.RFC3339)

	advertisers := []catalogdom.CreateAdvertiserInput{
		{Name: "TechCorp Solutions", Website: "https://techcorp.example.com", ContactEmail: "ads@techcorp.example.com"},
		{Name: "FinanceHub Pro", Website: "https://financehub.example.com", ContactEmail: "media@financehub.example.com"},
		{Name: "HealthyLife Wellness", Website: "https://healthylife.example.com", ContactEmail: "partners@healthylife.example.com"},
		{Name: "AI Innovations Inc", Website: "https://aiinnovations.example.com", ContactEmail: "growth@aiinnovations.example.com"},
	}
	ids := map[string]string{}
	for _, in := range advertisers {
		a, err := svc.CreateAdvertiser(ctx, in)
		if err != nil {
			l.Panic().Err(err).Str("advertiser", in.Name).Msg("seed advertiser failed")
		}
		ids[in.Name] = a.ID
	}

	campaigns := []campaignSeed{
		{
			Advertiser: "TechCorp Solutions",
			Input: catalogdom.CreateCampaignInput{
				Name:             "Developer Tools Launch",
				Description:      "Cloud IDE and deployment pipeline for small teams",
				TargetCategories: []string{"TECHNOLOGY", "SAAS"},
				TargetKeywords:   []string{"developer", "cloud", "devops"},
				Budget:           "5000.00", CPM: "8.50",
				StartDate: start, EndDate: end,
			},
			Creatives: []catalogdom.CreateCreativeInput{
				{
					Headline: "Ship code, not config", Body: "TechCorp's cloud IDE gets your team from commit to production in minutes.",
					CTAText: "Start free", DestinationURL: "https://techcorp.example.com/ide", Tone: "PROFESSIONAL",
				},
				{
					Headline: "Your pipeline called. It's bored.", Body: "Automate the boring parts of deployment with TechCorp.",
					CTAText: "See how", DestinationURL: "https://techcorp.example.com/pipeline", Tone: "CASUAL",
				},
			},
		},
		{
			Advertiser: "FinanceHub Pro",
			Input: catalogdom.CreateCampaignInput{
				Name:             "Smart Investing Push",
				Description:      "Portfolio analytics for retail investors",
				TargetCategories: []string{"FINANCE", "BUSINESS"},
				TargetKeywords:   []string{"investing", "portfolio", "stocks"},
				Budget:           "8000.00", CPM: "12.00",
				StartDate: start, EndDate: end,
			},
			Creatives: []catalogdom.CreateCreativeInput{
				{
					Headline: "Know what your money is doing", Body: "FinanceHub Pro turns raw positions into clear portfolio insight.",
					CTAText: "Try the dashboard", DestinationURL: "https://financehub.example.com/pro", Tone: "PROFESSIONAL",
				},
			},
		},
		{
			Advertiser: "HealthyLife Wellness",
			Input: catalogdom.CreateCampaignInput{
				Name:             "Morning Routine Reset",
				Description:      "Habit tracking and guided meditation app",
				TargetCategories: []string{"HEALTH", "LIFESTYLE"},
				TargetKeywords:   []string{"wellness", "meditation", "habits"},
				Budget:           "3000.00", CPM: "6.75",
				StartDate: start, EndDate: end,
			},
			Creatives: []catalogdom.CreateCreativeInput{
				{
					Headline: "Five quiet minutes a day", Body: "HealthyLife's guided sessions fit inside the busiest mornings.",
					CTAText: "Breathe in", DestinationURL: "https://healthylife.example.com/app", Tone: "FRIENDLY",
				},
			},
		},
		{
			Advertiser: "AI Innovations Inc",
			Input: catalogdom.CreateCampaignInput{
				Name:             "AI Writing Assistant",
				Description:      "Drafting and editing copilot for newsletters",
				TargetCategories: []string{"AI_ML", "TECHNOLOGY"},
				TargetKeywords:   []string{"ai", "writing", "automation"},
				Budget:           "10000.00", CPM: "15.00",
				StartDate: start, EndDate: end,
			},
			Creatives: []catalogdom.CreateCreativeInput{
				{
					Headline: "Write the letter, not the drafts", Body: "AI Innovations' assistant cuts newsletter production time in half.",
					CTAText: "Draft with AI", DestinationURL: "https://aiinnovations.example.com/writer", Tone: "PROFESSIONAL",
				},
			},
		},
		{
			Advertiser: "AI Innovations Inc",
			Input: catalogdom.CreateCampaignInput{
				Name:             "Chatbot Platform Beta",
				Description:      "Support chatbot builder, waitlist phase",
				TargetCategories: []string{"AI_ML", "SAAS"},
				TargetKeywords:   []string{"chatbot", "support", "automation"},
				Budget:           "4000.00", CPM: "9.25",
				StartDate: start, EndDate: end,
			},
			Creatives: []catalogdom.CreateCreativeInput{
				{
					Headline: "Answers before the coffee brews", Body: "Build a support bot that actually resolves tickets.",
					CTAText: "Join the beta", DestinationURL: "https://aiinnovations.example.com/chat", Tone: "FRIENDLY",
				},
			},
		},
	}

	for _, cs := range campaigns {
		in := cs.Input
		in.AdvertiserID = ids[cs.Advertiser]
		c, err := svc.CreateCampaign(ctx, in)
		if err != nil {
			l.Panic().Err(err).Str("campaign", in.Name).Msg("seed campaign failed")
		}
		if _, err := svc.SetCampaignStatus(ctx, c.ID, catalogdom.SetCampaignStatusInput{Status: "ACTIVE"}); err != nil {
			l.Panic().Err(err).Str("campaign", in.Name).Msg("seed campaign activation failed")
		}
		for _, cr := range cs.Creatives {
			cr.CampaignID = c.ID
			if _, err := svc.CreateCreative(ctx, cr); err != nil {
				l.Panic().Err(err).Str("campaign", in.Name).Msg("seed creative failed")
			}
		}
	}
}

func seedIssue(ctx context.Context, l *logger.Logger, svc *issuessvc.Service, c creator) {
	_, err := svc.Create(ctx, c.ID, issuesdom.CreateInput{
		Title: "The AI automation issue",
		Content: "AI tools are changing how newsletters get made. This week we look at how " +
			"ai drafting assistants handle research, why automation beats manual curation " +
			"for link roundups, and where ai still falls flat. Automation is not a silver " +
			"bullet, but paired with good editing, ai workflows free up hours every week. " +
			"We close with a practical automation checklist for solo creators.",
	})
	if err != nil {
		l.Panic().Err(err).Msg("seed issue failed")
	}
}
