// Package fixture contém os dados de exemplo usados pelo storage em memória e pelo cmd/seed.
// Os valores são fixos para que duas cargas gerem o mesmo conteúdo.
package fixture

import (
	"fmt"
	"time"

	"github.com/AdamaC336/bay2/internal/domain"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin"

	HydraBarkCode     = "HB"
	PawsomeTreatsCode = "PT"
)

type Agent struct {
	domain.InsertAIAgent
	Cost float64
}

// BrandData agrupa uma marca e todas as linhas que pertencem a ela.
// Os BrandID das linhas são preenchidos na carga.
type BrandData struct {
	Brand   domain.InsertBrand
	Revenue []domain.InsertRevenue
	AdSpend []domain.InsertAdSpend
	Agents  []Agent
	Ads     []domain.InsertAdPerformance
	Tasks   []domain.InsertOpsTask
}

type Dataset struct {
	Users  []domain.InsertUser
	Brands []BrandData
}

// Default é o conjunto carregado pelo storage em memória: uma marca, o admin e
// uma amostra de cada entidade relativa a now.
func Default(now time.Time) Dataset {
	return Dataset{
		Users: []domain.InsertUser{
			{
				Username: AdminUsername,
				Password: AdminPassword,
				Name:     strPtr("John Doe"),
				Role:     domain.RoleAdmin,
			},
		},
		Brands: []BrandData{hydraBark(now)},
	}
}

// Extended acrescenta uma segunda marca com 30 dias de histórico
func Extended(now time.Time) Dataset {
	ds := Default(now)
	ds.Brands = append(ds.Brands, pawsomeTreats(now))
	return ds
}

func hydraBark(now time.Time) BrandData {
	data := BrandData{
		Brand: domain.InsertBrand{Name: "HydraBark", Code: HydraBarkCode},
	}

	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -i)

		platform := "meta"
		if i%2 != 0 {
			platform = "tiktok"
		}

		data.Revenue = append(data.Revenue, domain.InsertRevenue{
			Date:   date,
			Amount: 10000 + variation(i, 5000),
			Source: "shopify",
		})
		data.AdSpend = append(data.AdSpend, domain.InsertAdSpend{
			Date:     date,
			Amount:   3000 + variation(i, 1500),
			Platform: platform,
			Campaign: strPtr(fmt.Sprintf("Campaign %d", i)),
			AdSet:    strPtr(fmt.Sprintf("Ad Set %d", i)),
		})
	}

	data.Agents = []Agent{
		{
			InsertAIAgent: domain.InsertAIAgent{
				Name:    "Customer Support Assistant",
				Type:    "support",
				Status:  domain.AIAgentStatusActive,
				Metrics: domain.AgentMetrics{"conversations": 24, "avgResponse": "3.2s", "satisfaction": "92%"},
			},
			Cost: 0.84,
		},
		{
			InsertAIAgent: domain.InsertAIAgent{
				Name:    "Content Creator",
				Type:    "content",
				Status:  domain.AIAgentStatusActive,
				Metrics: domain.AgentMetrics{"articles": 3, "tokens": "14.2k", "quality": "8.7/10"},
			},
			Cost: 2.36,
		},
		{
			InsertAIAgent: domain.InsertAIAgent{
				Name:    "Ad Optimizer",
				Type:    "ads",
				Status:  domain.AIAgentStatusPaused,
				Metrics: domain.AgentMetrics{"optimizations": 0, "adSets": 12, "roasImpact": "--"},
			},
		},
	}

	data.Ads = []domain.InsertAdPerformance{
		tiktokAd(now, "TT_HB_PUPPY_01", "HydraBark Puppy", 1245.32, 3.8, 2.1, domain.AdStatusActive, "photo-1581888227599-779811939961"),
		tiktokAd(now, "TT_HB_SENIOR_02", "HydraBark Senior", 864.50, 2.4, 1.3, domain.AdStatusWarning, "photo-1588943211346-0908a1fb0b01"),
		tiktokAd(now, "TT_HB_ADULT_01", "HydraBark Adult", 1762.18, 4.2, 2.8, domain.AdStatusActive, "photo-1576201836106-db1758fd1c97"),
		tiktokAd(now, "TT_HB_BUNDLE_03", "HydraBark Bundle", 0, 1.2, 0.9, domain.AdStatusPaused, "photo-1567014543648-e4391c989aab"),
	}

	data.Tasks = []domain.InsertOpsTask{
		task("Review new ad creatives", "Review 5 new TikTok ad creatives from the design team",
			domain.OpsTaskStatusTodo, "marketing", now.AddDate(0, 0, 1), 0),
		task("Approve customer refund", "Process refund for order #4392 due to shipping damage",
			domain.OpsTaskStatusTodo, "support", now, 0),
		task("Set up new product variants", "Create 3 new size variants for HydraBark Adult formula",
			domain.OpsTaskStatusTodo, "product", now.AddDate(0, 0, 3), 0),
		task("Optimize ad budget allocation", "Redistribute budget from underperforming campaigns to high ROAS ads",
			domain.OpsTaskStatusInProgress, "marketing", now, 75),
		task("Update inventory forecast", "Recalculate Q3 inventory needs based on new growth projections",
			domain.OpsTaskStatusInProgress, "operations", now.AddDate(0, 0, 2), 40),
		task("Publish weekly blog post", `Publish "Top 10 Dog Nutrition Myths" blog post`,
			domain.OpsTaskStatusDone, "marketing", now.AddDate(0, 0, -1), 100),
		task("Update customer email sequence", "Revise the post-purchase email sequence with new product recommendations",
			domain.OpsTaskStatusDone, "support", now, 100),
	}

	return data
}

func pawsomeTreats(now time.Time) BrandData {
	data := BrandData{
		Brand: domain.InsertBrand{Name: "PawsomeTreats", Code: PawsomeTreatsCode},
	}

	sources := []string{"direct", "organic", "referral", "social", "email"}
	platforms := []string{"facebook", "instagram", "tiktok", "google"}

	for i := 30; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)

		for j, source := range sources {
			data.Revenue = append(data.Revenue, domain.InsertRevenue{
				Date:   date,
				Amount: 300 + variation(i*len(sources)+j, 160),
				Source: source,
			})
		}
		for j, platform := range platforms {
			data.AdSpend = append(data.AdSpend, domain.InsertAdSpend{
				Date:     date,
				Amount:   150 + variation(i*len(platforms)+j, 75),
				Platform: platform,
			})
		}
	}

	data.Agents = []Agent{
		{
			InsertAIAgent: domain.InsertAIAgent{
				Name:    "Customer Feedback Analyzer",
				Type:    "analytics",
				Status:  domain.AIAgentStatusActive,
				Metrics: domain.AgentMetrics{"reviewsAnalyzed": 532, "insightsGenerated": 48, "actionItems": 16},
			},
			Cost: 39.99,
		},
		{
			InsertAIAgent: domain.InsertAIAgent{
				Name:    "Product Recommendation Engine",
				Type:    "sales",
				Status:  domain.AIAgentStatusActive,
				Metrics: domain.AgentMetrics{"recommendationAccuracy": 89, "upsellRate": 24, "avgOrderValueIncrease": "$7.42"},
			},
			Cost: 59.99,
		},
	}

	data.Ads = []domain.InsertAdPerformance{
		{AdSetID: "fb_ad_223", AdSetName: "Organic Treat Collection", Platform: "facebook", Spend: 980.50, ROAS: 3.8, CTR: 2.5, Status: domain.AdStatusActive, Date: now},
		{AdSetID: "ig_ad_224", AdSetName: "Training Treats Special", Platform: "instagram", Spend: 750.25, ROAS: 4.1, CTR: 2.9, Status: domain.AdStatusActive, Date: now},
		{AdSetID: "tt_ad_225", AdSetName: "Dental Health Chews", Platform: "tiktok", Spend: 620.40, ROAS: 2.3, CTR: 1.8, Status: domain.AdStatusPaused, Date: now},
	}

	data.Tasks = []domain.InsertOpsTask{
		task("Update ingredient list on the website", "Refresh the ingredient list to follow the new labeling rules",
			domain.OpsTaskStatusTodo, "website", now.AddDate(0, 0, 5), 0),
		task("Supplier negotiations", "Renegotiate contracts with the main suppliers for better prices",
			domain.OpsTaskStatusInProgress, "procurement", now.AddDate(0, 0, 10), 60),
		task("Production staff training", "Run the new quality procedures training for the production team",
			domain.OpsTaskStatusDone, "hr", now.AddDate(0, 0, -3), 100),
	}

	return data
}

// variation gera um desvio determinístico em [0, spread) com duas casas decimais
func variation(seed int, spread int) float64 {
	cents := ((seed+1)*7919 + seed*seed*104729) % (spread * 100)
	return float64(cents) / 100
}

func tiktokAd(now time.Time, id, name string, spend, roas, ctr float64, status domain.AdStatus, photo string) domain.InsertAdPerformance {
	return domain.InsertAdPerformance{
		AdSetID:   id,
		AdSetName: name,
		Platform:  "tiktok",
		Spend:     spend,
		ROAS:      roas,
		CTR:       ctr,
		Status:    status,
		Thumbnail: strPtr("https://images.unsplash.com/" + photo),
		Date:      now,
	}
}

func task(title, description string, status domain.OpsTaskStatus, category string, due time.Time, progress int) domain.InsertOpsTask {
	return domain.InsertOpsTask{
		Title:       title,
		Description: strPtr(description),
		Status:      status,
		Category:    category,
		DueDate:     &due,
		Progress:    &progress,
	}
}

func strPtr(s string) *string {
	return &s
}
