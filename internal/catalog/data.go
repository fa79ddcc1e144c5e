package catalog

// Static catalog content. Defined once at build time, read-only.
//
// Point values follow a single convention across all three catalogs:
// 3 = top-tier evidence, 2 = strong, 1 = partial, 0 = none.

var eb1aCatalog = Catalog{
	VisaType: VisaEB1A,
	Criteria: []Criterion{
		{
			ID:          "awards",
			Title:       "Awards & Prizes",
			Description: "Receipt of lesser nationally or internationally recognized prizes or awards",
			Questions: []Question{{
				ID:     "award_level",
				Prompt: "What is the highest level of award you have received?",
				Options: []Option{
					{Value: 3, Label: "International award (e.g., Nobel Prize, Fields Medal)"},
					{Value: 2, Label: "National award (e.g., NSF CAREER, National Book Award)"},
					{Value: 1, Label: "Regional/State award"},
					{Value: 0, Label: "No significant awards"},
				},
			}},
		},
		{
			ID:          "membership",
			Title:       "Exclusive Memberships",
			Description: "Membership in associations requiring outstanding achievements",
			Questions: []Question{{
				ID:     "membership_type",
				Prompt: "Are you a member of any exclusive professional associations?",
				Options: []Option{
					{Value: 3, Label: "Extremely selective (e.g., National Academy of Sciences)"},
					{Value: 2, Label: "Selective with peer review (e.g., IEEE Fellow)"},
					{Value: 1, Label: "Professional association with criteria"},
					{Value: 0, Label: "No exclusive memberships"},
				},
			}},
		},
		{
			ID:          "media",
			Title:       "Media Coverage",
			Description: "Published material about you in professional or major trade publications",
			Questions: []Question{{
				ID:     "media_level",
				Prompt: "Has your work been featured in media?",
				Options: []Option{
					{Value: 3, Label: "Major international media (CNN, NYT, Forbes)"},
					{Value: 2, Label: "National media or top trade publications"},
					{Value: 1, Label: "Regional media or trade publications"},
					{Value: 0, Label: "No significant media coverage"},
				},
			}},
		},
		{
			ID:          "judging",
			Title:       "Judging Experience",
			Description: "Participation as a judge of the work of others",
			Questions: []Question{{
				ID:     "judging_role",
				Prompt: "Have you served as a judge or reviewer?",
				Options: []Option{
					{Value: 3, Label: "Major competitions/grants (NSF, NIH panels)"},
					{Value: 2, Label: "Peer review for top journals"},
					{Value: 1, Label: "Conference reviewer or minor competitions"},
					{Value: 0, Label: "No judging experience"},
				},
			}},
		},
		{
			ID:          "contributions",
			Title:       "Original Contributions",
			Description: "Original contributions of major significance in your field",
			Questions: []Question{{
				ID:     "contribution_impact",
				Prompt: "What is the impact of your original contributions?",
				Options: []Option{
					{Value: 3, Label: "Breakthrough with wide adoption (patents, methods used globally)"},
					{Value: 2, Label: "Significant impact (100+ citations, implemented by others)"},
					{Value: 1, Label: "Some impact (published research, minor innovations)"},
					{Value: 0, Label: "No documented original contributions"},
				},
			}},
		},
	},
}

var o1aCatalog = Catalog{
	VisaType: VisaO1A,
	Criteria: []Criterion{
		{
			ID:          "awards",
			Title:       "Awards & Prizes",
			Description: "Receipt of nationally or internationally recognized prizes or awards for excellence",
			Questions: []Question{
				{
					ID:     "award_level",
					Prompt: "What is the highest level of award or prize you have received?",
					Options: []Option{
						{Value: 3, Label: "Major international award (Nobel Prize, Fields Medal, Olympic Medal)"},
						{Value: 2, Label: "Significant national/international award in your field"},
						{Value: 1, Label: "Regional or specialized field award"},
						{Value: 0, Label: "No significant awards"},
					},
				},
				{
					ID:     "award_prestige",
					Prompt: "Can you document the prestige and selection criteria of your awards?",
					Options: []Option{
						{Value: 3, Label: "Yes, with extensive documentation of competitive selection"},
						{Value: 2, Label: "Yes, with basic documentation"},
						{Value: 1, Label: "Partially documented"},
						{Value: 0, Label: "No documentation available"},
					},
				},
			},
		},
		{
			ID:          "membership",
			Title:       "Professional Memberships",
			Description: "Membership in associations requiring outstanding achievements",
			Questions: []Question{{
				ID:     "membership_exclusivity",
				Prompt: "Are you a member of exclusive professional associations?",
				Options: []Option{
					{Value: 3, Label: "Extremely selective association (e.g., National Academy of Sciences)"},
					{Value: 2, Label: "Selective association with peer review (e.g., IEEE Fellow)"},
					{Value: 1, Label: "Professional association with membership criteria"},
					{Value: 0, Label: "No exclusive memberships"},
				},
			}},
		},
		{
			ID:          "media",
			Title:       "Media Coverage",
			Description: "Published material in professional or major trade publications or major media",
			Questions: []Question{
				{
					ID:     "media_coverage",
					Prompt: "Has there been media coverage about you and your work?",
					Options: []Option{
						{Value: 3, Label: "Major international media (CNN, BBC, Nature, Science)"},
						{Value: 2, Label: "National media or top trade publications"},
						{Value: 1, Label: "Regional media or specialized publications"},
						{Value: 0, Label: "No significant media coverage"},
					},
				},
				{
					ID:     "media_focus",
					Prompt: "What was the focus of the media coverage?",
					Options: []Option{
						{Value: 3, Label: "Featured story specifically about my work and achievements"},
						{Value: 2, Label: "Substantial coverage with quotes and discussion of my work"},
						{Value: 1, Label: "Mentioned as part of broader coverage"},
						{Value: 0, Label: "Not applicable"},
					},
				},
			},
		},
		{
			ID:          "judging",
			Title:       "Judging Experience",
			Description: "Participation as judge of the work of others in the field",
			Questions: []Question{{
				ID:     "judging_level",
				Prompt: "Have you served as a judge or peer reviewer?",
				Options: []Option{
					{Value: 3, Label: "Major grant panels (NSF, NIH) or top journal editorial board"},
					{Value: 2, Label: "Peer reviewer for respected journals or conferences"},
					{Value: 1, Label: "Occasional review work or minor competitions"},
					{Value: 0, Label: "No judging experience"},
				},
			}},
		},
		{
			ID:          "contributions",
			Title:       "Original Contributions",
			Description: "Original scientific, scholarly, or business-related contributions of major significance",
			Questions: []Question{
				{
					ID:     "contribution_impact",
					Prompt: "What is the impact of your original contributions?",
					Options: []Option{
						{Value: 3, Label: "Breakthrough innovation widely adopted (patents, methods used globally)"},
						{Value: 2, Label: "Significant contributions (100+ citations, implementations by others)"},
						{Value: 1, Label: "Some original contributions (published research, minor innovations)"},
						{Value: 0, Label: "No documented original contributions"},
					},
				},
				{
					ID:     "contribution_evidence",
					Prompt: "How can you demonstrate the impact?",
					Options: []Option{
						{Value: 3, Label: "Patents, licenses, widespread adoption, testimonials from leaders"},
						{Value: 2, Label: "Citations, implementation by others, peer recognition"},
						{Value: 1, Label: "Publications and some peer acknowledgment"},
						{Value: 0, Label: "Limited evidence"},
					},
				},
			},
		},
		{
			ID:          "authorship",
			Title:       "Scholarly Articles",
			Description: "Authorship of scholarly articles in professional journals or major media",
			Questions: []Question{{
				ID:     "publication_record",
				Prompt: "What is your publication record?",
				Options: []Option{
					{Value: 3, Label: "50+ publications with 1000+ citations, h-index > 20"},
					{Value: 2, Label: "20+ publications with 500+ citations, h-index 10-20"},
					{Value: 1, Label: "5-20 publications with some citations"},
					{Value: 0, Label: "Few or no publications"},
				},
			}},
		},
		{
			ID:          "critical_role",
			Title:       "Critical/Essential Role",
			Description: "Employment in a critical or essential capacity for distinguished organizations",
			Questions: []Question{{
				ID:     "role_importance",
				Prompt: "Have you held critical roles in distinguished organizations?",
				Options: []Option{
					{Value: 3, Label: "C-level or equivalent at renowned organization"},
					{Value: 2, Label: "Senior/Lead role at respected organization"},
					{Value: 1, Label: "Important contributor at known organization"},
					{Value: 0, Label: "No particularly distinguished roles"},
				},
			}},
		},
		{
			ID:          "high_salary",
			Title:       "High Remuneration",
			Description: "Command high salary or remuneration for services",
			Questions: []Question{{
				ID:     "salary_level",
				Prompt: "How does your compensation compare to others in your field?",
				Options: []Option{
					{Value: 3, Label: "Top 5% in my field (can document with statistics)"},
					{Value: 2, Label: "Top 10-20% in my field"},
					{Value: 1, Label: "Above average for my experience level"},
					{Value: 0, Label: "Average or below average"},
				},
			}},
		},
	},
}

var niwCatalog = Catalog{
	VisaType: VisaNIW,
	Criteria: []Criterion{
		{
			ID:          NIWPreliminaryID,
			Title:       "Preliminary Qualifications",
			Description: "First, we need to verify you meet the basic EB-2 requirements",
			Questions: []Question{
				{
					ID:     "education",
					Prompt: "What is your highest level of education?",
					Options: []Option{
						{Value: 3, Label: "PhD or equivalent doctoral degree"},
						{Value: 2, Label: "Master's degree or higher"},
						{Value: 1, Label: "Bachelor's degree + 5 years progressive experience"},
						{Value: 0, Label: "Bachelor's degree with less than 5 years experience"},
					},
				},
				{
					ID:      "exceptional_ability",
					Prompt:  "Can you demonstrate exceptional ability in your field?",
					Subtext: "Need to meet at least 3 of 6 criteria: degree, 10+ years experience, license, high salary, membership, or recognition",
					Options: []Option{
						{Value: 3, Label: "Yes, I meet 5-6 exceptional ability criteria"},
						{Value: 2, Label: "Yes, I meet 3-4 exceptional ability criteria"},
						{Value: 1, Label: "I might meet 2-3 criteria"},
						{Value: 0, Label: "I don't meet exceptional ability criteria"},
					},
				},
			},
		},
		{
			ID:          NIWProng1ID,
			Title:       "Prong 1: Substantial Merit & National Importance",
			Description: "Your proposed endeavor must have both substantial merit and national importance",
			Questions: []Question{
				{
					ID:     "field_importance",
					Prompt: "What field is your proposed endeavor in?",
					Options: []Option{
						{Value: 3, Label: "Critical field (healthcare, national security, infrastructure, energy)"},
						{Value: 2, Label: "Important field (technology, education, environment, research)"},
						{Value: 1, Label: "Valuable field (business, arts, social sciences)"},
						{Value: 0, Label: "General professional field"},
					},
				},
				{
					ID:     "endeavor_type",
					Prompt: "What type of endeavor are you proposing?",
					Options: []Option{
						{Value: 3, Label: "Groundbreaking research or innovation with wide applications"},
						{Value: 2, Label: "Important advancement in my field"},
						{Value: 1, Label: "Valuable contribution to existing knowledge/practice"},
						{Value: 0, Label: "Standard professional work"},
					},
				},
				{
					ID:     "potential_impact",
					Prompt: "What is the potential impact of your work?",
					Options: []Option{
						{Value: 3, Label: "Could revolutionize the field or solve major problems"},
						{Value: 2, Label: "Significant improvements to current methods/systems"},
						{Value: 1, Label: "Incremental improvements"},
						{Value: 0, Label: "Limited or unclear impact"},
					},
				},
				{
					ID:     "geographic_scope",
					Prompt: "What is the geographic scope of your endeavor's impact?",
					Options: []Option{
						{Value: 3, Label: "National or international impact"},
						{Value: 2, Label: "Multiple states or regions"},
						{Value: 1, Label: "Single state or major metropolitan area"},
						{Value: 0, Label: "Local impact only"},
					},
				},
				{
					ID:     "beneficiaries",
					Prompt: "Who will benefit from your endeavor?",
					Options: []Option{
						{Value: 3, Label: "Entire U.S. population or major sectors"},
						{Value: 2, Label: "Significant portion of population or industry"},
						{Value: 1, Label: "Specific communities or niche sectors"},
						{Value: 0, Label: "Limited group or single organization"},
					},
				},
				{
					ID:     "national_interest_alignment",
					Prompt: "How does your endeavor align with U.S. national interests?",
					Options: []Option{
						{Value: 3, Label: "Directly addresses stated national priorities (infrastructure bill, CHIPS Act, climate goals)"},
						{Value: 2, Label: "Supports economic competitiveness or public health/safety"},
						{Value: 1, Label: "Contributes to cultural, educational, or social advancement"},
						{Value: 0, Label: "Indirect or unclear connection to national interests"},
					},
				},
				{
					ID:     "urgency",
					Prompt: "Is there urgency to your endeavor?",
					Options: []Option{
						{Value: 3, Label: "Critical timing - addresses immediate national need or crisis"},
						{Value: 2, Label: "Time-sensitive - important to implement soon"},
						{Value: 1, Label: "Valuable but not time-critical"},
						{Value: 0, Label: "No particular urgency"},
					},
				},
			},
		},
		{
			ID:          NIWProng2ID,
			Title:       "Prong 2: Well-Positioned to Advance the Endeavor",
			Description: "You must demonstrate you are well-positioned to advance your proposed endeavor",
			Questions: []Question{
				{
					ID:     "relevant_experience",
					Prompt: "How much relevant experience do you have?",
					Options: []Option{
						{Value: 3, Label: "10+ years with progressive leadership roles"},
						{Value: 2, Label: "5-10 years with demonstrated achievements"},
						{Value: 1, Label: "2-5 years with some accomplishments"},
						{Value: 0, Label: "Less than 2 years or limited experience"},
					},
				},
				{
					ID:     "past_success",
					Prompt: "What is your track record of success in similar endeavors?",
					Options: []Option{
						{Value: 3, Label: "Multiple successful projects with documented impact"},
						{Value: 2, Label: "Some successful projects or implementations"},
						{Value: 1, Label: "Contributing role in successful projects"},
						{Value: 0, Label: "Limited demonstrable success"},
					},
				},
				{
					ID:     "recognition",
					Prompt: "What recognition have you received in your field?",
					Options: []Option{
						{Value: 3, Label: "International or national recognition (awards, media, speaking)"},
						{Value: 2, Label: "Professional recognition (peer awards, invited talks)"},
						{Value: 1, Label: "Some recognition (publications, conference presentations)"},
						{Value: 0, Label: "Limited external recognition"},
					},
				},
				{
					ID:     "unique_skills",
					Prompt: "Do you have unique or rare skills for this endeavor?",
					Options: []Option{
						{Value: 3, Label: "Unique combination of skills rarely found together"},
						{Value: 2, Label: "Specialized expertise in high-demand area"},
						{Value: 1, Label: "Strong but not unique skillset"},
						{Value: 0, Label: "Common professional skills"},
					},
				},
				{
					ID:     "funding",
					Prompt: "What funding or resources do you have access to?",
					Options: []Option{
						{Value: 3, Label: "Secured significant funding (government grants, major investment)"},
						{Value: 2, Label: "Some funding secured or strong prospects"},
						{Value: 1, Label: "Initial funding or self-funded"},
						{Value: 0, Label: "No funding secured"},
					},
				},
				{
					ID:     "institutional_support",
					Prompt: "What institutional support do you have?",
					Options: []Option{
						{Value: 3, Label: "Major institution/company backing with resources committed"},
						{Value: 2, Label: "Formal collaboration agreements or job offer"},
						{Value: 1, Label: "Letters of interest or informal support"},
						{Value: 0, Label: "No institutional support"},
					},
				},
				{
					ID:     "team",
					Prompt: "What team or collaborators do you have?",
					Options: []Option{
						{Value: 3, Label: "Established team of experts committed to project"},
						{Value: 2, Label: "Key collaborators identified and interested"},
						{Value: 1, Label: "Some potential collaborators"},
						{Value: 0, Label: "Working alone"},
					},
				},
			},
		},
		{
			ID:          NIWProng3ID,
			Title:       "Prong 3: Balancing Test - Why Waive Labor Certification?",
			Description: "On balance, it must benefit the U.S. to waive the job offer and labor certification requirements",
			Questions: []Question{
				{
					ID:     "economic_benefit",
					Prompt: "What economic benefits will your endeavor provide?",
					Options: []Option{
						{Value: 3, Label: "Create 50+ jobs or generate $10M+ economic activity"},
						{Value: 2, Label: "Create 10-50 jobs or significant economic impact"},
						{Value: 1, Label: "Some job creation or economic benefit"},
						{Value: 0, Label: "Limited economic impact"},
					},
				},
				{
					ID:     "innovation_advancement",
					Prompt: "How will your work advance U.S. interests?",
					Options: []Option{
						{Value: 3, Label: "Keep U.S. globally competitive in critical technology/field"},
						{Value: 2, Label: "Advance U.S. capabilities in important area"},
						{Value: 1, Label: "Contribute to U.S. knowledge base"},
						{Value: 0, Label: "Limited advancement"},
					},
				},
				{
					ID:     "societal_benefit",
					Prompt: "What broader societal benefits will result?",
					Options: []Option{
						{Value: 3, Label: "Major public health, safety, or welfare improvements"},
						{Value: 2, Label: "Significant quality of life improvements"},
						{Value: 1, Label: "Some societal benefits"},
						{Value: 0, Label: "Primarily private benefit"},
					},
				},
				{
					ID:     "work_nature",
					Prompt: "Why doesn't your endeavor fit traditional employment?",
					Options: []Option{
						{Value: 3, Label: "Entrepreneurial/self-employed - will create jobs for others"},
						{Value: 2, Label: "Research/work benefits multiple institutions"},
						{Value: 1, Label: "Specialized role hard to define in traditional terms"},
						{Value: 0, Label: "Could fit traditional employment"},
					},
				},
				{
					ID:     "urgency_factor",
					Prompt: "Why is waiting for labor certification problematic?",
					Options: []Option{
						{Value: 3, Label: "Time-critical opportunity that will be lost"},
						{Value: 2, Label: "Significant delays would harm the endeavor"},
						{Value: 1, Label: "Would prefer to start sooner"},
						{Value: 0, Label: "No particular time pressure"},
					},
				},
				{
					ID:     "unique_contribution",
					Prompt: "Why can't a U.S. worker fulfill this same role?",
					Options: []Option{
						{Value: 3, Label: "My unique background/expertise is essential to the endeavor"},
						{Value: 2, Label: "Very few people globally have my combination of skills"},
						{Value: 1, Label: "My specific experience gives me advantages"},
						{Value: 0, Label: "Others could potentially do this work"},
					},
				},
			},
		},
	},
}
