package casestudy

import (
	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// builtinCases is the shipped outcome catalog. Records are anonymized
// composites of published adjudications; every curated ID referenced by the
// matcher must resolve here (NewRepository does not enforce this, the matcher
// test does).
var builtinCases = []CaseStudy{
	{
		ID:       "eb1a-tech-001",
		VisaType: catalog.VisaEB1A,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "AI/ML Researcher - 400+ Citations Quick Approval",
		Timeline: "5 months total processing",
		Profile: Profile{
			Position:        "Senior AI Research Scientist",
			Company:         "Major Tech Company",
			ExperienceLevel: "8 years",
			Education:       "PhD in Computer Science",
			Country:         "India",
		},
		Metrics: Metrics{Publications: 42, Citations: 412, Patents: 3, HIndex: 18, Salary: "$280,000"},
		Evidence: []string{
			"Original contributions to transformer architectures",
			"Lead author on papers in NeurIPS and ICML",
			"Judging for major ML conferences",
			"Patents in neural network optimization",
			"Media coverage in tech publications",
			"Letters from leading AI researchers",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Strong citation metrics above field average",
			"Clear original contributions to AI field",
			"Well-documented judging roles",
			"Strategic use of comparative evidence",
		},
		ProcessingNotes: "Texas Service Center, no premium processing, approved without RFE",
	},
	{
		ID:       "eb1a-tech-002",
		VisaType: catalog.VisaEB1A,
		Field:    FieldTech,
		Strength: scoring.StrengthModerate,
		Title:    "ML Engineer at Enterprise Search Startup - Initially Denied Then Approved",
		Timeline: "18 months with appeal",
		Profile: Profile{
			Position:        "ML Engineer",
			Company:         "Enterprise Search Startup",
			ExperienceLevel: "5 years",
			Education:       "MS in Computer Science",
			Country:         "India",
		},
		Metrics: Metrics{Publications: 8, Citations: 156, Patents: 1, HIndex: 7},
		Evidence: []string{
			"Contributions to enterprise search technology",
			"Open source contributions",
			"Speaking at tech conferences",
			"Patents pending in search algorithms",
			"Critical role at high-growth startup",
		},
		Outcome: OutcomeDeniedThenApproved,
		KeyFailure: []string{
			"Initial petition lacked comparative evidence",
			"Insufficient documentation of original contributions",
			"Weak letters of recommendation",
		},
		KeySuccess: []string{
			"Appeal included stronger expert letters",
			"Added detailed citation analysis",
			"Better documentation of industry impact",
			"Highlighted unique technical contributions",
		},
		DenialReasons: []string{
			"Failed to establish sustained national acclaim",
			"Insufficient evidence of original contributions",
		},
		ProcessingNotes: "Initially denied at Nebraska Service Center, approved on appeal with additional evidence",
	},
	{
		ID:       "eb1a-tech-003",
		VisaType: catalog.VisaEB1A,
		Field:    FieldTech,
		Strength: scoring.StrengthModerate,
		Title:    "ML Engineer - National Security Impact Without High Citations",
		Timeline: "7 months",
		Profile: Profile{
			Position:        "Machine Learning Engineer",
			Company:         "Defense Contractor",
			ExperienceLevel: "6 years",
			Education:       "MS in Computer Science",
			Country:         "China",
		},
		Metrics: Metrics{Publications: 5, Citations: 48, Patents: 2},
		Evidence: []string{
			"Work on ML models for national security applications",
			"Security clearance and government contracts",
			"Letters from military officials",
			"Contributions to critical infrastructure",
			"Limited publications due to classified work",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"National interest angle strongly emphasized",
			"Quality over quantity approach for evidence",
			"Strong government support letters",
			"Unique expertise in specialized area",
		},
		ProcessingNotes: "Texas Service Center, approved after RFE addressing publication limitations",
	},
	{
		ID:       "eb1a-tech-004",
		VisaType: catalog.VisaEB1A,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Senior AI Researcher at Major Tech Company",
		Timeline: "45 days regular processing",
		Profile: Profile{
			Position:        "Senior AI Research Scientist",
			Company:         "Major Technology Corporation",
			Institution:     "Previously at Top Research Lab",
			ExperienceLevel: "12 years in AI/ML research",
			Education:       "PhD Computer Science - Top 10 University",
			Country:         "China",
		},
		Metrics: Metrics{
			Publications: 15, Citations: 450, HIndex: 18, Patents: 4,
			Salary: "$380,000", Funding: "Patents licensed by Fortune 500 companies",
		},
		Evidence: []string{
			"15 peer-reviewed publications in top AI conferences",
			"450 citations with h-index of 18",
			"4 USPTO patents with commercial implementation",
			"IEEE Best Paper Award recipient",
			"Patents licensed and implemented by multiple Fortune 500 companies",
			"Invited speaker at major AI conferences",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Patents with proven commercial value and licensing deals",
			"Clear documentation of technology transfer to industry",
			"Exceptional compensation relative to field",
			"Awards from recognized professional organizations",
		},
		ProcessingNotes: "Approved without RFE in 45 days via regular processing. Strong commercial impact was key differentiator.",
	},
	{
		ID:       "eb1a-biotech-002",
		VisaType: catalog.VisaEB1A,
		Field:    FieldBiotech,
		Strength: scoring.StrengthStrong,
		Title:    "Cancer Biology Researcher - 5-Day Approval",
		Timeline: "5 days with premium processing",
		Profile: Profile{
			Position:        "Associate Professor",
			Institution:     "Top Medical School",
			ExperienceLevel: "10 years",
			Education:       "PhD in Cancer Biology",
			Country:         "China",
		},
		Metrics: Metrics{Publications: 52, Citations: 1876, HIndex: 24, Funding: "$4.2M in grants"},
		Evidence: []string{
			"Breakthrough in immunotherapy research",
			"Published in Nature, Science, Cell",
			"Peer review for top journals",
			"International conference organizer",
			"WHO advisory panel member",
			"Research led to clinical trials",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Publications in highest-impact journals",
			"Direct path from research to clinical application",
			"International recognition through WHO role",
			"Strong institutional support",
		},
		ProcessingNotes: "Premium processing, fastest approval on record for biotech EB-1A",
	},
	{
		ID:       "eb1a-biotech-003",
		VisaType: catalog.VisaEB1A,
		Field:    FieldBiotech,
		Strength: scoring.StrengthVeryStrong,
		Title:    "Oncology Research Director",
		Timeline: "5 days via premium processing",
		Profile: Profile{
			Position:        "Director of Cancer Research",
			Company:         "Major Cancer Research Institute",
			Institution:     "Harvard Medical School",
			ExperienceLevel: "15 years in oncology research",
			Education:       "MD/PhD - Top Medical School",
			Country:         "Germany",
		},
		Metrics: Metrics{Publications: 22, Citations: 680, HIndex: 24, Patents: 3, Funding: "NIH R01 grant recipient"},
		Evidence: []string{
			"22 publications in Nature, Cell, and Science",
			"Principal Investigator on NIH R01 grant",
			"3 patents in cancer therapeutics",
			"Research aligned with Cancer Moonshot initiative",
			"Editorial board member of oncology journals",
			"Invited speaker at international cancer conferences",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Publications in highest-impact journals",
			"Direct alignment with national health priorities",
			"NIH grant funding as principal investigator",
			"Patents with therapeutic applications",
		},
		ProcessingNotes: "5-day premium processing approval. Strong alignment with Cancer Moonshot was highlighted throughout petition.",
	},
	{
		ID:       "eb1a-fintech-001",
		VisaType: catalog.VisaEB1A,
		Field:    FieldFintech,
		Strength: scoring.StrengthStrong,
		Title:    "Asset Manager - Agricultural Equipment Creative Case",
		Timeline: "6 months",
		Profile: Profile{
			Position:        "Managing Director",
			Company:         "Agricultural Finance Firm",
			ExperienceLevel: "20 years",
			Education:       "MBA in Finance",
			Country:         "Netherlands",
		},
		Metrics: Metrics{TransactionVolume: "$2.5B managed", Salary: "$850,000 + bonuses"},
		Evidence: []string{
			"Pioneered agricultural equipment financing model",
			"Published in Journal of Agricultural Economics",
			"Board positions on industry associations",
			"Created 500+ jobs through financing programs",
			"Government advisory roles",
			"Media coverage in major financial publications",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Creative interpretation of extraordinary ability",
			"Showed impact beyond traditional finance",
			"Strong economic impact evidence",
			"High compensation as proof of value",
		},
		ProcessingNotes: "Nebraska Service Center, creative approach linking finance to national food security",
	},
	{
		ID:       "o1a-tech-001",
		VisaType: catalog.VisaO1A,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Senior Product Strategist - 1,015 Page Petition",
		Timeline: "15 days with premium processing",
		Profile: Profile{
			Position:        "Senior Product Strategist",
			Company:         "Major Tech Company",
			ExperienceLevel: "12 years",
			Education:       "MBA + MS Computer Science",
			Country:         "Pakistan",
		},
		Metrics: Metrics{Salary: "$450,000", ConferencesSpeaking: 15, Publications: 8},
		Evidence: []string{
			"Led products with 100M+ users",
			"Speaker at major tech conferences",
			"Published in top business publications",
			"Advisory board positions",
			"Media coverage in major tech publications",
			"Patents in user experience design",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Overwhelming documentation strategy",
			"High salary as evidence of extraordinary ability",
			"Multiple types of evidence across categories",
			"Strong employer support",
		},
		ProcessingNotes: "Premium processing, approved in 15 days without RFE, extensive documentation",
	},
	{
		ID:       "o1a-tech-002",
		VisaType: catalog.VisaO1A,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Startup Founder - Top Accelerator & Funding-Based Approval",
		Timeline: "10 days with premium processing",
		Profile: Profile{
			Position:        "Founder & CEO",
			Company:         "VC-backed Startup",
			ExperienceLevel: "7 years",
			Education:       "BS in Computer Science",
			Country:         "Brazil",
		},
		Metrics: Metrics{Funding: "$12M Series A", GitHubStars: 15000, ConferencesSpeaking: 8},
		Evidence: []string{
			"Top accelerator acceptance (1.5% acceptance rate)",
			"Led team of 25 engineers",
			"Open source project with 15K GitHub stars",
			"Major tech conference finalist",
			"Tier-1 VC investment",
			"Featured in major tech publications",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Top accelerator acceptance as extraordinary achievement",
			"Significant venture funding",
			"Measurable impact through open source",
			"Strong Silicon Valley network letters",
		},
		ProcessingNotes: "California Service Center, premium processing, approved without RFE",
	},
	{
		ID:       "o1a-tech-004",
		VisaType: catalog.VisaO1A,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Product Manager at Unicorn Startup",
		Timeline: "15 days premium processing",
		Profile: Profile{
			Position:        "VP of Product",
			Company:         "Unicorn Startup (>$1B valuation)",
			Institution:     "Y Combinator",
			ExperienceLevel: "8 years",
			Education:       "MBA from Top Business School",
			Country:         "Canada",
		},
		Metrics: Metrics{Funding: "$3M seed funding raised", Salary: "$280,000", ConferencesSpeaking: 10},
		Evidence: []string{
			"Y Combinator alumnus",
			"$3M seed funding raised for previous startup",
			"TechCrunch Disrupt finalist",
			"2 startups successfully acquired",
			"Featured speaker at product conferences",
			"Consultation letter from product management association",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Y Combinator credential highly regarded",
			"Proven track record with acquisitions",
			"TechCrunch coverage demonstrated recognition",
			"Strong consultation letter from industry org",
		},
		ProcessingNotes: "15-day approval. Startup success metrics and Y Combinator connection were compelling.",
	},
	{
		ID:       "o1a-biotech-001",
		VisaType: catalog.VisaO1A,
		Field:    FieldBiotech,
		Strength: scoring.StrengthStrong,
		Title:    "Clinical Trial Director",
		Timeline: "3 weeks premium processing",
		Profile: Profile{
			Position:        "Director of Clinical Trials",
			Company:         "Pharmaceutical Company",
			Institution:     "Harvard Medical School",
			ExperienceLevel: "12 years",
			Education:       "MD from Top Medical School",
			Country:         "UK",
		},
		Metrics: Metrics{Publications: 8, Citations: 340, Salary: "$275,000"},
		Evidence: []string{
			"Led Phase 3 trials resulting in FDA approval",
			"Published trial results in NEJM and Lancet",
			"Essential role in bringing drug to market",
			"Invited speaker at medical conferences",
			"Expert witness in pharmaceutical litigation",
			"Consultation from medical association",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Direct role in FDA-approved drug",
			"Publications in highest-impact medical journals",
			"Essential role documentation from employer",
			"Expert witness experience showed recognition",
		},
		ProcessingNotes: "Approved quickly. FDA approval involvement and NEJM publications were decisive factors.",
	},
	{
		ID:       "o1a-fintech-001",
		VisaType: catalog.VisaO1A,
		Field:    FieldFintech,
		Strength: scoring.StrengthStrong,
		Title:    "Fintech Founder - $100M+ Transaction Volume",
		Timeline: "12 days with premium processing",
		Profile: Profile{
			Position:        "Founder & CEO",
			Company:         "Payment Processing Startup",
			ExperienceLevel: "10 years",
			Education:       "BS in Computer Science",
			Country:         "Nigeria",
		},
		Metrics: Metrics{TransactionVolume: "$150M processed annually", Funding: "$25M Series B", ConferencesSpeaking: 10},
		Evidence: []string{
			"Built payment rails for emerging markets",
			"Processing $150M in annual transactions",
			"Featured in major tech and business publications",
			"Top-tier VC investment",
			"Speaking at major fintech conferences",
			"Advisory positions with central banks",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Significant transaction volume as impact metric",
			"High-profile venture funding",
			"Government advisory roles",
			"Media coverage in major publications",
		},
		ProcessingNotes: "California Service Center, strong venture backing helped establish extraordinary ability",
	},
	{
		ID:       "niw-tech-001",
		VisaType: catalog.VisaNIW,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "AI PhD with Military Alignment - 358 Citations",
		Timeline: "8 months",
		Profile: Profile{
			Position:        "AI Research Scientist",
			Institution:     "University Research Lab",
			ExperienceLevel: "4 years post-PhD",
			Education:       "PhD in Artificial Intelligence",
			Country:         "Iran",
		},
		Metrics: Metrics{Publications: 28, Citations: 358, HIndex: 14, Funding: "$2.3M in grants"},
		Evidence: []string{
			"DARPA grant recipient",
			"Work on autonomous systems for defense",
			"Published in top-tier AI journals",
			"Collaboration with military research labs",
			"Letters from Pentagon officials",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Clear national security implications",
			"Strong citation metrics for career stage",
			"Direct military application of research",
			"Well-documented grant funding",
		},
		ProcessingNotes: "Premium processing, approved without RFE, Texas Service Center",
	},
	{
		ID:       "niw-tech-004",
		VisaType: catalog.VisaNIW,
		Field:    FieldTech,
		Strength: scoring.StrengthWeak,
		Title:    "Full Stack Developer - Too Generic",
		Timeline: "5 months",
		Profile: Profile{
			Position:        "Senior Full Stack Developer",
			Company:         "Software Consultancy",
			ExperienceLevel: "10 years",
			Education:       "Bachelor's in Computer Science, 10 years experience",
			Country:         "Brazil",
		},
		Metrics: Metrics{Salary: "$165,000"},
		Evidence: []string{
			"Improving web applications",
			"General software development",
			"Client testimonials",
			"No specific national interest focus",
		},
		Outcome: OutcomeDenied,
		KeyFailure: []string{
			"Need specific, impactful focus",
			"Generic web development insufficient",
			"Failed to articulate national importance",
		},
		DenialReasons: []string{
			"Endeavor not of national importance",
			"Too generic and broad",
			"Many others doing similar work",
			"No unique contribution identified",
		},
		ProcessingNotes: "Denied on Prong 1. USCIS found proposed endeavor too generic without national importance.",
	},
	{
		ID:       "niw-tech-006",
		VisaType: catalog.VisaNIW,
		Field:    FieldTech,
		Strength: scoring.StrengthVeryStrong,
		Title:    "Climate Tech Data Scientist - Cross-Sector",
		Timeline: "5 months",
		Profile: Profile{
			Position:        "Principal Data Scientist",
			Company:         "Climate Analytics Startup",
			ExperienceLevel: "5 years",
			Education:       "PhD in Environmental Data Science",
			Country:         "India",
		},
		Metrics: Metrics{Publications: 11, Citations: 189},
		Evidence: []string{
			"AI for wildfire prediction",
			"Cross-sector: Tech + Environmental",
			"CalFire implementation",
			"30% improvement in prediction accuracy",
			"Estimated 100+ lives saved annually",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Lives saved quantification",
			"Property protection impact",
			"Government agency adoption",
			"Cross-sector national priorities",
		},
		ProcessingNotes: "Approved quickly. Life-saving technology with government adoption was compelling.",
	},
	{
		ID:       "niw-tech-007",
		VisaType: catalog.VisaNIW,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Social Impact Technologist - Disability Access",
		Timeline: "9 months",
		Profile: Profile{
			Position:        "Accessibility Technology Lead",
			Company:         "Assistive Technology Company",
			ExperienceLevel: "5 years",
			Education:       "Master's in Human-Computer Interaction",
			Country:         "India",
		},
		Metrics: Metrics{Citations: 23},
		Evidence: []string{
			"Technology for disability access",
			"ADA compliance innovations",
			"Letters from disability advocates",
			"Congressional testimony on accessibility",
			"Technology adopted by 500+ organizations",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"ADA compliance and inclusion priorities",
			"Broad organizational adoption",
			"Congressional recognition",
			"Approved despite minimal citations",
		},
		ProcessingNotes: "Approved after RFE. Social impact and ADA compliance overcame weak academic metrics.",
	},
	{
		ID:       "niw-tech-008",
		VisaType: catalog.VisaNIW,
		Field:    FieldTech,
		Strength: scoring.StrengthStrong,
		Title:    "Cloud Security Architect - No PhD, Approved",
		Timeline: "4 months",
		Profile: Profile{
			Position:        "Principal Security Architect",
			Company:         "Cloud Infrastructure Provider",
			ExperienceLevel: "8 years",
			Education:       "Bachelor's in Computer Science",
			Country:         "India",
		},
		Metrics: Metrics{Salary: "$285,000"},
		Evidence: []string{
			"Developing zero-trust architecture for critical infrastructure",
			"Letters from DHS officials",
			"Letters from banking executives",
			"Direct alignment with national cybersecurity strategy",
			"Led security for systems protecting 50M users",
			"Prevented $100M+ in potential breaches",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Direct alignment with national security priorities",
			"Quantified impact on critical infrastructure",
			"Strong government and industry support letters",
			"Proved expertise despite no advanced degree",
		},
		ProcessingNotes: "Approved without RFE. National security angle and government support letters were decisive.",
	},
	{
		ID:       "niw-biotech-004",
		VisaType: catalog.VisaNIW,
		Field:    FieldBiotech,
		Strength: scoring.StrengthModerate,
		Title:    "Marine Biologist - Environmental Focus",
		Timeline: "10 months total",
		Profile: Profile{
			Position:        "Senior Marine Researcher",
			Company:         "Oceanographic Institute",
			ExperienceLevel: "12 years",
			Education:       "PhD in Marine Biology",
			Country:         "Australia",
		},
		Metrics: Metrics{Publications: 7, Citations: 156},
		Evidence: []string{
			"Coral reef restoration technology",
			"Carbon sequestration research",
			"Initial RFE: Economic impact unclear",
			"Added fishing industry impact data",
			"Added tourism economic analysis",
		},
		Outcome: OutcomeRFEThenApproved,
		KeySuccess: []string{
			"Successfully addressed economic impact in RFE",
			"Quantified carbon sequestration value",
			"Showed fishing industry benefits",
		},
		ProcessingNotes: "Approved 2 months after RFE response. Economic impact quantification was key to approval.",
	},
	{
		ID:       "niw-biotech-006",
		VisaType: catalog.VisaNIW,
		Field:    FieldBiotech,
		Strength: scoring.StrengthVeryStrong,
		Title:    "Biotech/AI Hybrid - Drug Discovery",
		Timeline: "4 months",
		Profile: Profile{
			Position:        "Computational Biology Director",
			Company:         "AI Drug Discovery Company",
			ExperienceLevel: "5 years",
			Education:       "PhD in Computational Biology, MS in AI",
			Country:         "India",
		},
		Metrics: Metrics{Publications: 18, Citations: 567, Patents: 8},
		Evidence: []string{
			"AI-driven rare disease drug discovery",
			"Combining biotech and AI priorities",
			"FDA breakthrough designation",
			"Patient advocacy group support",
			"3 drugs in clinical trials",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Combines multiple national priorities",
			"Rare disease focus",
			"FDA recognition",
			"Clear pipeline to patient impact",
		},
		ProcessingNotes: "Approved without RFE. Rare disease focus and FDA breakthrough designation were decisive.",
	},
	{
		ID:       "niw-biotech-007",
		VisaType: catalog.VisaNIW,
		Field:    FieldBiotech,
		Strength: scoring.StrengthStrong,
		Title:    "Alzheimer's Researcher - 12 Citations Approved",
		Timeline: "8 months",
		Profile: Profile{
			Position:        "Postdoctoral Researcher",
			Company:         "University Medical Center",
			ExperienceLevel: "2 years",
			Education:       "PhD in Neuroscience",
			Country:         "Germany",
		},
		Metrics: Metrics{Publications: 5, Citations: 12},
		Evidence: []string{
			"Novel biomarkers for early Alzheimer's detection",
			"Addressing national health crisis",
			"Letters from Alzheimer's Association",
			"NIH interest in the research",
			"Potential to save billions in healthcare costs",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Addressing major national health crisis",
			"Strong support from disease advocacy groups",
			"Quantified healthcare cost savings",
			"Approved despite very low citations",
		},
		ProcessingNotes: "Approved after RFE response. National health crisis angle overcame weak publication record.",
	},
	{
		ID:       "niw-fintech-001",
		VisaType: catalog.VisaNIW,
		Field:    FieldFintech,
		Strength: scoring.StrengthWeak,
		Title:    "Mathematical Statistician - Failed Due to Changing Endeavors",
		Timeline: "12 months to denial",
		Profile: Profile{
			Position:        "Quantitative Analyst",
			Company:         "Hedge Fund",
			ExperienceLevel: "5 years",
			Education:       "PhD in Statistics",
			Country:         "Russia",
		},
		Metrics: Metrics{Publications: 8, Citations: 112, Salary: "$225,000"},
		Evidence: []string{
			"Developed trading algorithms",
			"Published on market microstructure",
			"Speaking at quant conferences",
			"Risk management innovations",
		},
		Outcome: OutcomeDenied,
		KeyFailure: []string{
			"Changed from academic to industry focus",
			"Could not show continuity of endeavor",
			"Weak national interest argument",
			"Work primarily benefits private investors",
		},
		DenialReasons: []string{
			"Proposed endeavor differs from past work",
			"Failed to establish national importance",
			"Benefits primarily accrue to employer",
		},
		ProcessingNotes: "Denied at Texas Service Center, example of importance of consistent endeavor",
	},
	{
		ID:       "niw-fintech-005",
		VisaType: catalog.VisaNIW,
		Field:    FieldFintech,
		Strength: scoring.StrengthStrong,
		Title:    "RegTech Compliance Architect - No Publications",
		Timeline: "5 months",
		Profile: Profile{
			Position:        "Chief Compliance Architect",
			Company:         "RegTech Startup",
			ExperienceLevel: "5 years",
			Education:       "Master's in Computer Science, JD",
			Country:         "India",
		},
		Metrics: Metrics{TransactionVolume: "$500M fraud prevented"},
		Evidence: []string{
			"Built AML system for major banks",
			"Preventing financial crimes through AI",
			"$500M in prevented fraud documented",
			"Letters from Treasury officials",
			"FinCEN interest in the technology",
		},
		Outcome: OutcomeApproved,
		KeySuccess: []string{
			"Quantified national economic protection",
			"Government agency support",
			"Clear crime prevention impact",
			"Approved without academic publications",
		},
		ProcessingNotes: "Approved without publications. Quantified fraud prevention and government support were key.",
	},
}
