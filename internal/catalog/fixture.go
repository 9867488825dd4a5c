package catalog

import "usecase-market/internal/model"

// DefaultUseCases returns the built-in catalog fixture, used when no
// catalog file or S3 source is configured.
func DefaultUseCases() []model.UseCase {
	return []model.UseCase{
		{
			ID:          "1",
			Title:       "AI Customer Service Chatbot",
			Description: "Deploy an intelligent chatbot that handles 80% of customer inquiries automatically, reducing support costs and improving response times.",
			Category:    "Customer Support",
			Rating:      4.8,
			Reviews:     124,
			Price:       "$49",
			PriceCents:  4900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-1", Name: "TechCorp Solutions", Verified: true},
		},
		{
			ID:          "2",
			Title:       "Email Marketing Optimizer",
			Description: "AI system that optimizes email subject lines, send times, and content for maximum engagement and conversion rates.",
			Category:    "Marketing",
			Rating:      4.9,
			Reviews:     87,
			Price:       "$79",
			PriceCents:  7900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-2", Name: "MarketAI Labs", Verified: true},
		},
		{
			ID:          "3",
			Title:       "Document Classification System",
			Description: "Automatically sort and classify incoming documents, emails, and files into predefined categories with 95% accuracy.",
			Category:    "Document Management",
			Rating:      4.7,
			Reviews:     156,
			Price:       "$39",
			PriceCents:  3900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-3", Name: "DocuTech", Verified: false},
		},
		{
			ID:          "4",
			Title:       "Sales Lead Scoring",
			Description: "AI model that scores and prioritizes sales leads based on conversion probability, helping teams focus on high-value prospects.",
			Category:    "Sales",
			Rating:      4.9,
			Reviews:     203,
			Price:       "$89",
			PriceCents:  8900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-4", Name: "SalesForce Pro", Verified: true},
		},
		{
			ID:          "5",
			Title:       "Inventory Demand Prediction",
			Description: "Predict future inventory needs using AI to prevent stockouts and reduce excess inventory by up to 30%.",
			Category:    "Supply Chain",
			Rating:      4.6,
			Reviews:     91,
			Price:       "$129",
			PriceCents:  12900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-5", Name: "LogiTech AI", Verified: true},
		},
		{
			ID:          "6",
			Title:       "Content Generation Assistant",
			Description: "Generate high-quality blog posts, social media content, and marketing copy tailored to your brand voice and audience.",
			Category:    "Content Creation",
			Rating:      4.8,
			Reviews:     312,
			Price:       "$59",
			PriceCents:  5900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-6", Name: "ContentMaster", Verified: true},
		},
		{
			ID:          "7",
			Title:       "Expense Report Automation",
			Description: "AI-powered system that extracts data from receipts and automatically generates expense reports, saving 5+ hours per week.",
			Category:    "Finance",
			Rating:      4.7,
			Reviews:     89,
			Price:       "$69",
			PriceCents:  6900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-7", Name: "FinanceBot Inc", Verified: false},
		},
		{
			ID:          "8",
			Title:       "Social Media Analytics AI",
			Description: "Track brand mentions, sentiment analysis, and competitor insights across all social platforms with automated reporting.",
			Category:    "Analytics",
			Rating:      4.5,
			Reviews:     167,
			Price:       "$99",
			PriceCents:  9900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-8", Name: "SocialMetrics", Verified: true},
		},
		{
			ID:          "9",
			Title:       "Resume Screening Assistant",
			Description: "Automatically screen and rank job applications based on custom criteria, reducing hiring time by 60%.",
			Category:    "Human Resources",
			Rating:      4.8,
			Reviews:     145,
			Price:       "$79",
			PriceCents:  7900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-9", Name: "HireRight AI", Verified: true},
		},
		{
			ID:              "featured1",
			Title:           "AI-Powered Customer Support Automation",
			Description:     "Complete solution for automating 80% of customer inquiries using advanced NLP. Includes chatbot training, escalation workflows, and analytics dashboard.",
			Category:        "Customer Service",
			Rating:          4.9,
			Reviews:         127,
			ROI:             "340%",
			TimeToImplement: "2-3 weeks",
			Price:           "$399",
			PriceCents:      39900,
			Featured:        true,
			Status:          model.UseCaseStatusPublished,
			Seller:          model.Seller{ID: "featured-seller1", Name: "TechCorp Solutions", Verified: true},
		},
		{
			ID:              "featured2",
			Title:           "Document Processing & Analysis Pipeline",
			Description:     "Automated document extraction, classification, and insights generation. Processes invoices, contracts, and reports with 99.2% accuracy.",
			Category:        "Process Automation",
			Rating:          4.8,
			Reviews:         94,
			ROI:             "520%",
			TimeToImplement: "1-2 weeks",
			Price:           "$279",
			PriceCents:      27900,
			Featured:        true,
			Status:          model.UseCaseStatusPublished,
			Seller:          model.Seller{ID: "featured-seller2", Name: "DataFlow AI", Verified: true},
		},
		{
			ID:              "featured3",
			Title:           "Predictive Analytics Dashboard",
			Description:     "Advanced forecasting models for sales, inventory, and market trends. Real-time data visualization with customizable alerts and reports.",
			Category:        "Data Analytics",
			Rating:          4.7,
			Reviews:         156,
			ROI:             "445%",
			TimeToImplement: "3-4 weeks",
			Price:           "$549",
			PriceCents:      54900,
			Featured:        true,
			Status:          model.UseCaseStatusPublished,
			Seller:          model.Seller{ID: "featured-seller3", Name: "AnalyticsPro", Verified: true},
		},
	}
}
