package decks

import "github.com/go-while/go-grantdecks/internal/models"

// McKnightScholars builds the McKnight Scholars Award deck
func McKnightScholars() *models.Deck {
	return &models.Deck{
		Slug:  SlugMcKnightScholars,
		Name:  "McKnight Scholars",
		Theme: models.Theme{Accent: "purple"},
		Title: models.TitleSlide{
			Heading:  "McKnight Scholars Award",
			Subtitle: "Explainable NeuroAI for Neural Circuit Understanding",
			Tagline:  "A Three-Year Research Proposal",
			Audience: audience,
		},
		Slides: []models.Slide{
			slide("Award Overview",
				twoColumns(
					section("Program Description",
						"Prestigious award for early-career neuroscientists",
						"Supports exceptional scientists establishing independent labs",
						"Emphasis on impactful neuroscience research",
						"Values diversity, equity, and inclusion in science",
					),
					section("Award Details",
						"$225,000 total funding over three years ($75,000/year)",
						"Flexible use of funds (equipment, salary, supplies, etc.)",
						"No indirect costs allowed",
						"10 awardees selected annually",
					),
				),
			),
			slide("Eligibility & Timeline",
				twoColumns(
					section("Eligibility Requirements",
						"Assistant Professors with less than 5 years at that rank",
						"At non-profit research institutions in U.S.",
						"Demonstrated commitment to inclusive lab environment",
						"Cannot be tenured or hold another McKnight award",
					),
					timeline("Key Dates (2026 Cycle)", "w-32", "mb-2",
						at("August 2025:", "Application period opens"),
						at("January 2026:", "Application deadline"),
						at("April 2026:", "Finalist notifications"),
						at("May 2026:", "Interviews"),
						at("July 1, 2026:", "Funding begins"),
					),
				),
			),
			slide("Proposed Research",
				bullets("Neural Circuit Decoding through Explainable NeuroAI",
					lead("Research Goal:", "Develop neuroscience-informed AI architectures that reveal underlying neural circuit mechanisms while maintaining clinical interpretability."),
					lead("Innovative Approach:", "Create circuit-inspired attention mechanisms that mimic known neurological processes, enabling both improved predictions and mechanistic insights into brain function."),
					lead("Technical Framework:", "Implement dual-path neural networks where one path maximizes predictive performance while the second generates interpretable circuit models that neurologists can validate."),
					lead("Clinical Applications:", "Focus on neurological recovery mechanisms after acute brain injury, identifying circuit-level biomarkers that predict recovery trajectories."),
					lead("Broader Impact:", `Bridge the gap between "black box" AI systems and neurological mechanistic understanding, potentially transforming how we understand brain function and disease.`),
				),
			),
			slide("Research Specific Aims",
				stacked(
					section("Aim 1: Circuit-Inspired Neural Network Architecture",
						"Develop attention mechanisms modeled after known neural circuit principles",
						"Incorporate hierarchical processing inspired by brain structure",
						"Validate architecture on publicly available EEG datasets",
					),
					section("Aim 2: Mechanistic Interpretability Framework",
						"Create visualization tools that map model activations to neural circuit components",
						"Develop circuit reconstruction algorithms from model weights",
						"Test interpretations against existing neurophysiological knowledge",
					),
					section("Aim 3: Clinical Validation and Application",
						"Apply framework to predict recovery from traumatic brain injury and coma",
						"Identify circuit-level biomarkers predictive of outcomes",
						"Validate findings through clinical collaboration",
					),
				),
			),
			slide("Alignment with NeuroAI Center",
				bullets("Strategic Fit with Center's Mission",
					lead("Research Synergy:", "Directly complements Dr. Zabihi's work on EEG signal processing and Dr. Rosenthal's research on physiologic biomarkers for brain monitoring."),
					lead("Explainable AI Focus:", "Addresses the center's need for interpretable AI models that clinicians can understand and trust, especially in critical care settings."),
					lead("Clinical Translation:", "Practical applications align with MGH's clinical mission while advancing fundamental neuroscience understanding."),
					lead("Collaborative Potential:", "Leverages MGH's unique datasets and clinical expertise while bringing novel AI approaches to existing problems."),
					lead("DEI Commitment:", "Proposal includes specific plans for inclusive lab environment and outreach, matching McKnight Foundation's increased emphasis on diversity."),
				),
			),
			slide("Expected Outcomes & Impact",
				twoColumns(
					section("Scientific Contributions",
						"Novel circuit-inspired neural network architectures",
						"Framework for extracting mechanistic insights from AI models",
						"New understanding of circuit mechanisms in recovery",
						"3-5 high-impact publications",
					),
					section("Broader Impact",
						"Bridge between AI performance and neuroscientific understanding",
						"Improved clinical prognostication tools",
						"Open-source software and educational resources",
						"Mentorship of diverse trainees in NeuroAI",
					),
				),
			),
			slide("McKnight Scholar Community",
				text("The McKnight Scholar award provides not just funding, but access to a prestigious community of neuroscientists that continues throughout one's career:"),
				bullets("",
					lead("Annual Conference:", "McKnight Scholars attend the annual McKnight Conference on Neuroscience for three years after receiving the award, then return every three years."),
					lead("Networking Opportunities:", "Connect with leading neuroscientists across career stages and research areas."),
					lead("Collaborative Potential:", "McKnight Scholars often develop cross-institutional research collaborations."),
					lead("Career Development:", "Senior McKnight Scholars provide mentorship and career guidance."),
				),
				quote(`"Most McKnight award winners will tell you that a huge benefit of receiving a McKnight award is the chance to join a community of the nation's best neuroscientists that they will continue to learn from, interact and collaborate with over their lifetime."`),
			),
		},
	}
}
