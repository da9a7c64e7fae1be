package decks

import "github.com/go-while/go-grantdecks/internal/models"

// NSFCareer builds the NSF CAREER Award deck
func NSFCareer() *models.Deck {
	return &models.Deck{
		Slug:  SlugNSFCareer,
		Name:  "NSF CAREER",
		Theme: models.Theme{Accent: "green"},
		Title: models.TitleSlide{
			Heading:  "NSF CAREER Award",
			Subtitle: "Advancing NeuroAI through Integrated Research and Education",
			Tagline:  "A Five-Year Research and Education Plan",
			Audience: audience,
		},
		Slides: []models.Slide{
			slide("Program Overview",
				twoColumns(
					section("Award Description",
						"NSF's most prestigious award for early-career faculty",
						"Supports those with potential to serve as academic role models",
						"Integrates research and education activities",
						"Builds foundation for lifetime of leadership",
					),
					section("Award Details",
						"5-year project period",
						"Minimum award of $400,000 total",
						"Cognitive Neuroscience program average: $175,000-$225,000 per year",
						"Annual submission deadline in July",
					),
				),
			),
			slide("Eligibility & Requirements",
				twoColumns(
					section("Eligibility Criteria",
						"Tenure-track (or equivalent) Assistant Professor",
						"Untenured at time of application",
						"Educational activities must be integrated with research",
						"Need departmental support letter",
					),
					section("Proposal Components",
						"Innovative research plan",
						"Integrated education plan (not just a list of activities)",
						"Departmental letter confirming support",
						"Prior NSF research results (if applicable)",
					),
				),
			),
			slide("Proposed Research Plan",
				bullets("NeuroAI-Based Self-Supervised Learning for Neurological Prognostication",
					lead("Research Goal:", "Develop novel self-supervised learning approaches for neurophysiological data that require minimal labeled examples while maintaining clinical interpretability."),
					lead("Approach:", "Implement contrastive learning techniques on unlabeled EEG and physiological data, creating foundation models that can be fine-tuned for specific clinical applications."),
					lead("Technical Innovation:", "Design neurophysiology-specific data augmentation techniques that preserve clinically relevant signal characteristics while creating diverse training examples."),
					lead("Clinical Applications:", "Apply these techniques to develop prognostic models for neurological recovery with a focus on interpretable predictions that can guide clinical decision-making."),
					lead("Broader Impact:", "Address the persistent challenge of limited labeled data in clinical neuroscience while making AI systems more accessible to non-AI specialists."),
				),
			),
			slide("Integrated Education Plan",
				twoColumns(
					section("Educational Goals",
						"Bridge the gap between neuroscience and AI education",
						"Increase diversity in NeuroAI workforce",
						"Develop interdisciplinary curriculum materials",
						"Engage clinicians in AI literacy",
					),
					section("Key Activities",
						`Develop "NeuroAI Bootcamp" for underrepresented students`,
						"Create open educational resources for clinician AI literacy",
						"Establish mentored research program for first-gen college students",
						"Develop K-12 outreach program with brain-computer interface demos",
					),
				),
			),
			slide("Alignment with NeuroAI Center",
				bullets("Strategic Alignment",
					lead("Research Focus:", "Self-supervised learning for neurophysiological data directly complements Dr. Zabihi's work on multimodal data integration while extending the center's capabilities to handle limited labeled data scenarios."),
					lead("Clinical Translation:", "Interpretability focus aligns with Dr. Rosenthal's emphasis on clinically relevant biomarker development and deployment of AI in neurological care."),
					lead("Educational Synergy:", "NeuroAI Bootcamp can leverage the center's expertise and infrastructure, potentially becoming an annual program that enhances the center's educational mission."),
					lead("External Visibility:", "NSF CAREER award would enhance the center's national profile in AI education and bring additional resources for educational initiatives."),
				),
			),
			slide("Timeline & Implementation",
				stacked(
					timeline("5-Year Research & Education Roadmap", "w-24", "mb-3",
						at("Year 1:", "Develop foundational self-supervised learning framework; launch pilot NeuroAI Bootcamp"),
						at("Year 2:", "Extend framework to multimodal data; create open educational resources"),
						at("Year 3:", "Implement clinical validation; expand mentored research program"),
						at("Year 4:", "Develop interpretability tools; establish K-12 outreach program"),
						at("Year 5:", "Deploy integrated system in clinical environment; assess educational outcomes"),
					),
					section("Application Strategy",
						"Submit proposal after first year at NeuroAI Center (July 2026)",
						"Obtain preliminary data through initial center projects",
						"Secure departmental and institutional support letters",
						"Develop education plan in collaboration with Harvard and MGH educational offices",
					),
				),
			),
			slide("Expected Outcomes & Impact",
				twoColumns(
					section("Research Outcomes",
						"Novel self-supervised learning framework for clinical neuroscience",
						"Reduction in labeled data requirements by 60-70%",
						"Open-source software library and benchmark datasets",
						"5+ peer-reviewed publications in top AI and neuroscience journals",
					),
					section("Educational Impact",
						"Train 50+ students from underrepresented backgrounds in NeuroAI",
						"Develop curriculum used by 10+ institutions",
						"Increase AI literacy among 100+ clinicians",
						"Establish sustainable educational programs that continue beyond award period",
					),
				),
			),
		},
	}
}
