package decks

import "github.com/go-while/go-grantdecks/internal/models"

// K99R00 builds the NIH BRAIN Initiative K99/R00 deck
func K99R00() *models.Deck {
	return &models.Deck{
		Slug:  SlugK99R00,
		Name:  "NIH K99/R00",
		Theme: models.Theme{Accent: "blue"},
		Title: models.TitleSlide{
			Heading:  "NIH BRAIN Initiative K99/R00",
			Subtitle: "Pathway to Independence Award",
			Tagline:  "A Funding Strategy for NeuroAI Research",
			Audience: audience,
		},
		Slides: []models.Slide{
			slide("Overview & Purpose",
				twoColumns(
					section("Program Description",
						"Facilitates transition from postdoctoral research to independent faculty position",
						"Two phases: mentored (K99) followed by independent research (R00)",
						"Special emphasis on diversity in NIH BRAIN Initiative version",
						"Focus on innovative approaches in NeuroAI",
					),
					section("Key Benefits",
						"Substantial funding: Up to $250,000/year during R00 phase",
						"Career stability during critical transition period",
						"Enhanced visibility within neuroscience community",
						"Protected research time (75% effort commitment)",
					),
				),
			),
			slide("Eligibility & Requirements",
				twoColumns(
					section("Eligibility Criteria",
						"Postdoctoral researchers with ≤5 years experience",
						"Must be in mentored position at application time",
						"U.S. citizenship not required for standard K99",
						"U.S. citizenship/permanent residency required for BRAIN diversity K99",
					),
					section("Application Components",
						"Research plan integrating K99 and R00 phases",
						"Career development plan",
						"Strong mentorship team with expertise in NeuroAI",
						"Institutional commitment letters",
					),
				),
			),
			slide("Alignment with NeuroAI Center",
				bullets("Strategic Alignment",
					lead("Multimodal Data Integration:", "My proposed K99/R00 would focus on developing transformer-based architectures for integrating EEG, EHR, and neuroimaging data—directly supporting Dr. Zabihi's work on HyperEnsemble learning."),
					lead("Explainable AI:", "Will incorporate SHAP values and attention mechanisms to make models interpretable for clinicians, addressing a key center priority."),
					lead("Clinical Translation:", "Focuses on prognostic models for coma recovery, aligning with Dr. Rosenthal's clinical research priorities."),
					lead("Institutional Strength:", "MGH's strong NIH funding track record enhances competitiveness for this award."),
				),
			),
			slide("Timeline & Strategy",
				stacked(
					timeline("Key Dates", "w-32", "mb-2",
						at("Feb 13, 2025:", "Next standard application deadline"),
						at("June 13, 2025:", "BRAIN Initiative diversity K99/R00 deadline"),
						at("7-9 months:", "Review timeline from submission to award"),
						at("Up to 5 years:", "Total award duration (K99: 1-2 years; R00: 3 years)"),
					),
					section("Application Strategy",
						"Develop proposal in first 3-6 months at NeuroAI Center",
						"Leverage center's unique datasets and computational resources",
						"Incorporate mentorship from both Dr. Rosenthal and Dr. Zabihi",
						"Include preliminary results from initial projects at the center",
					),
				),
			),
			slide("Expected Outcomes",
				twoColumns(
					section("Research Deliverables",
						"Novel transformer architecture for multimodal neural data",
						"Clinical validation of prognostic models",
						"Open-source software and datasets",
						"3-4 high-impact publications",
					),
					section("Career Advancement",
						"Transition to independent investigator position",
						"Establish independent NeuroAI research program",
						"Development of clinical collaborations",
						"Foundation for future R01 applications",
					),
				),
			),
		},
	}
}
