package catalog

// Seed returns the embedded catalog of central government schemes. The data is
// static reference content; eligibility specs carry the published criteria in
// the sparse form the evaluator consumes.
func Seed() []Scheme {
	return []Scheme{
		{
			ID:       "PM-KISAN",
			Category: CategoryAgriculture,
			Name: LocalizedText{
				"en": "PM-KISAN Samman Nidhi",
				"hi": "प्रधानमंत्री किसान सम्मान निधि",
			},
			Description: LocalizedText{
				"en": "Income support of ₹6,000 per year for land-holding farmer families, paid in three instalments.",
				"hi": "भूमिधारक किसान परिवारों को प्रति वर्ष ₹6,000 की आय सहायता, तीन किस्तों में।",
			},
			Benefits: LocalizedText{
				"en": "₹2,000 every four months credited directly to the bank account.",
				"hi": "हर चार महीने में ₹2,000 सीधे बैंक खाते में।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Land ownership records", "Bank account details"},
				"hi": {"आधार कार्ड", "भूमि स्वामित्व अभिलेख", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:                ptr(18),
				MaxAge:                ptr(75),
				MaxIncome:             ptr(200000.0),
				Occupations:           []string{"Farmer"},
				RequiresLandOwnership: ptr(true),
			},
			Difficulty:      "easy",
			Rating:          4.5,
			SuccessRate:     88,
			ProcessingTime:  "30-45 days",
			ApplicationLink: "https://pmkisan.gov.in",
		},
		{
			ID:       "PMFBY",
			Category: CategoryAgriculture,
			Name: LocalizedText{
				"en": "Pradhan Mantri Fasal Bima Yojana",
				"hi": "प्रधानमंत्री फसल बीमा योजना",
			},
			Description: LocalizedText{
				"en": "Crop insurance against natural calamities, pests and diseases at subsidised premium rates.",
				"hi": "प्राकृतिक आपदाओं, कीटों और रोगों के विरुद्ध रियायती प्रीमियम पर फसल बीमा।",
			},
			Benefits: LocalizedText{
				"en": "Premium capped at 2% for kharif and 1.5% for rabi crops; full sum insured on crop loss.",
				"hi": "खरीफ के लिए 2% और रबी के लिए 1.5% प्रीमियम सीमा; फसल हानि पर पूर्ण बीमित राशि।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Land records or tenancy agreement", "Sowing declaration", "Bank account details"},
				"hi": {"आधार कार्ड", "भूमि अभिलेख या किरायेदारी अनुबंध", "बुवाई घोषणा", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				Occupations:           []string{"Farmer"},
				RequiresLandOwnership: ptr(true),
			},
			Difficulty:      "medium",
			Rating:          4.0,
			SuccessRate:     74,
			ProcessingTime:  "45-60 days",
			ApplicationLink: "https://pmfby.gov.in",
			Deadline:        "2026-07-31",
		},
		{
			ID:       "KCC",
			Category: CategoryAgriculture,
			Name: LocalizedText{
				"en": "Kisan Credit Card",
				"hi": "किसान क्रेडिट कार्ड",
			},
			Description: LocalizedText{
				"en": "Short-term credit for cultivation and allied activities at concessional interest rates.",
				"hi": "रियायती ब्याज दरों पर खेती और संबद्ध गतिविधियों के लिए अल्पकालिक ऋण।",
			},
			Benefits: LocalizedText{
				"en": "Credit up to ₹3 lakh at 4% effective interest with prompt repayment.",
				"hi": "समय पर चुकौती पर 4% प्रभावी ब्याज के साथ ₹3 लाख तक का ऋण।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Land records", "Passport-size photograph", "Bank account details"},
				"hi": {"आधार कार्ड", "भूमि अभिलेख", "पासपोर्ट आकार का फोटो", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:      ptr(18),
				MaxAge:      ptr(75),
				Occupations: []string{"Farmer"},
			},
			Difficulty:      "medium",
			Rating:          4.2,
			SuccessRate:     70,
			ProcessingTime:  "15-30 days",
			ApplicationLink: "https://www.myscheme.gov.in/schemes/kcc",
		},
		{
			ID:       "PM-JAY",
			Category: CategoryHealth,
			Name: LocalizedText{
				"en": "Ayushman Bharat PM-JAY",
				"hi": "आयुष्मान भारत प्रधानमंत्री जन आरोग्य योजना",
			},
			Description: LocalizedText{
				"en": "Health cover of ₹5 lakh per family per year for secondary and tertiary hospitalisation.",
				"hi": "द्वितीयक और तृतीयक अस्पताल में भर्ती के लिए प्रति परिवार प्रति वर्ष ₹5 लाख का स्वास्थ्य कवर।",
			},
			Benefits: LocalizedText{
				"en": "Cashless treatment at empanelled hospitals across the country.",
				"hi": "देश भर के सूचीबद्ध अस्पतालों में कैशलेस इलाज।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Ration card", "Income certificate"},
				"hi": {"आधार कार्ड", "राशन कार्ड", "आय प्रमाण पत्र"},
			},
			Eligibility: EligibilitySpec{
				MaxIncome: ptr(100000.0),
			},
			Difficulty:      "easy",
			Rating:          4.6,
			SuccessRate:     91,
			ProcessingTime:  "7-15 days",
			ApplicationLink: "https://pmjay.gov.in",
		},
		{
			ID:       "PMAY-G",
			Category: CategoryHousing,
			Name: LocalizedText{
				"en": "Pradhan Mantri Awas Yojana - Gramin",
				"hi": "प्रधानमंत्री आवास योजना - ग्रामीण",
			},
			Description: LocalizedText{
				"en": "Financial assistance for construction of pucca houses for houseless rural families.",
				"hi": "आवासहीन ग्रामीण परिवारों के लिए पक्के मकान के निर्माण हेतु वित्तीय सहायता।",
			},
			Benefits: LocalizedText{
				"en": "₹1.20 lakh in plains and ₹1.30 lakh in hilly areas, plus MGNREGA wages for labour.",
				"hi": "मैदानी क्षेत्रों में ₹1.20 लाख और पहाड़ी क्षेत्रों में ₹1.30 लाख, साथ में मनरेगा मजदूरी।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Job card under MGNREGA", "Bank account details", "Income certificate"},
				"hi": {"आधार कार्ड", "मनरेगा जॉब कार्ड", "बैंक खाता विवरण", "आय प्रमाण पत्र"},
			},
			Eligibility: EligibilitySpec{
				MaxIncome: ptr(120000.0),
				Locations: []string{LocationRural},
			},
			Difficulty:      "medium",
			Rating:          4.3,
			SuccessRate:     68,
			ProcessingTime:  "90-180 days",
			ApplicationLink: "https://pmayg.nic.in",
		},
		{
			ID:       "PMUY",
			Category: CategoryWomen,
			Name: LocalizedText{
				"en": "Pradhan Mantri Ujjwala Yojana",
				"hi": "प्रधानमंत्री उज्ज्वला योजना",
			},
			Description: LocalizedText{
				"en": "Free LPG connections to women of low-income households to replace unsafe cooking fuels.",
				"hi": "असुरक्षित ईंधनों की जगह कम आय वाले परिवारों की महिलाओं को मुफ्त एलपीजी कनेक्शन।",
			},
			Benefits: LocalizedText{
				"en": "Free connection, first refill and stove; subsidy of ₹300 per cylinder up to 12 refills a year.",
				"hi": "मुफ्त कनेक्शन, पहला रिफिल और चूल्हा; वर्ष में 12 रिफिल तक ₹300 प्रति सिलेंडर सब्सिडी।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Ration card", "Bank account details"},
				"hi": {"आधार कार्ड", "राशन कार्ड", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:    ptr(18),
				MaxIncome: ptr(100000.0),
			},
			Difficulty:      "easy",
			Rating:          4.4,
			SuccessRate:     85,
			ProcessingTime:  "15-30 days",
			ApplicationLink: "https://www.pmuy.gov.in",
		},
		{
			ID:       "APY",
			Category: CategoryPension,
			Name: LocalizedText{
				"en": "Atal Pension Yojana",
				"hi": "अटल पेंशन योजना",
			},
			Description: LocalizedText{
				"en": "Guaranteed minimum monthly pension of ₹1,000-₹5,000 after 60 for unorganised-sector workers.",
				"hi": "असंगठित क्षेत्र के कामगारों के लिए 60 वर्ष के बाद ₹1,000-₹5,000 की गारंटीशुदा मासिक पेंशन।",
			},
			Benefits: LocalizedText{
				"en": "Fixed pension from age 60 with government co-contribution for eligible subscribers.",
				"hi": "60 वर्ष की आयु से निश्चित पेंशन, पात्र अभिदाताओं के लिए सरकारी सह-योगदान।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Savings bank account", "Mobile number"},
				"hi": {"आधार कार्ड", "बचत बैंक खाता", "मोबाइल नंबर"},
			},
			Eligibility: EligibilitySpec{
				MinAge:    ptr(18),
				MaxAge:    ptr(40),
				MaxIncome: ptr(250000.0),
			},
			Difficulty:      "easy",
			Rating:          4.1,
			SuccessRate:     93,
			ProcessingTime:  "7 days",
			ApplicationLink: "https://www.npscra.nsdl.co.in/scheme-details.php",
		},
		{
			ID:       "IGNOAPS",
			Category: CategoryPension,
			Name: LocalizedText{
				"en": "Indira Gandhi National Old Age Pension",
				"hi": "इंदिरा गांधी राष्ट्रीय वृद्धावस्था पेंशन",
			},
			Description: LocalizedText{
				"en": "Monthly pension for citizens aged 60 or above from below-poverty-line households.",
				"hi": "गरीबी रेखा से नीचे के परिवारों के 60 वर्ष या अधिक आयु के नागरिकों के लिए मासिक पेंशन।",
			},
			Benefits: LocalizedText{
				"en": "₹200 per month for ages 60-79 and ₹500 per month from age 80.",
				"hi": "60-79 वर्ष के लिए ₹200 प्रति माह और 80 वर्ष से ₹500 प्रति माह।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Age proof", "BPL certificate", "Bank account details"},
				"hi": {"आधार कार्ड", "आयु प्रमाण", "बीपीएल प्रमाण पत्र", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:    ptr(60),
				MaxIncome: ptr(100000.0),
			},
			Difficulty:      "easy",
			Rating:          3.9,
			SuccessRate:     82,
			ProcessingTime:  "30-60 days",
			ApplicationLink: "https://nsap.nic.in",
		},
		{
			ID:       "IGNDPS",
			Category: CategoryPension,
			Name: LocalizedText{
				"en": "Indira Gandhi National Disability Pension",
				"hi": "इंदिरा गांधी राष्ट्रीय दिव्यांगता पेंशन",
			},
			Description: LocalizedText{
				"en": "Monthly pension for persons with severe or multiple disabilities from low-income households.",
				"hi": "कम आय वाले परिवारों के गंभीर या बहु-दिव्यांग व्यक्तियों के लिए मासिक पेंशन।",
			},
			Benefits: LocalizedText{
				"en": "₹300 per month plus state top-ups where applicable.",
				"hi": "₹300 प्रति माह तथा जहाँ लागू हो राज्य का अतिरिक्त अंश।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Disability certificate", "BPL certificate", "Bank account details"},
				"hi": {"आधार कार्ड", "दिव्यांगता प्रमाण पत्र", "बीपीएल प्रमाण पत्र", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:             ptr(18),
				MaxAge:             ptr(79),
				MaxIncome:          ptr(100000.0),
				RequiresDisability: ptr(true),
			},
			Difficulty:      "medium",
			Rating:          4.0,
			SuccessRate:     77,
			ProcessingTime:  "30-60 days",
			ApplicationLink: "https://nsap.nic.in",
		},
		{
			ID:       "NSP-POST-MATRIC",
			Category: CategoryEducation,
			Name: LocalizedText{
				"en": "Post Matric Scholarship (SC/ST/OBC)",
				"hi": "पोस्ट मैट्रिक छात्रवृत्ति (अजा/अजजा/अपिव)",
			},
			Description: LocalizedText{
				"en": "Scholarship for students from reserved categories studying at post-matriculation level.",
				"hi": "मैट्रिक के बाद पढ़ने वाले आरक्षित वर्ग के विद्यार्थियों के लिए छात्रवृत्ति।",
			},
			Benefits: LocalizedText{
				"en": "Full tuition reimbursement plus maintenance allowance for the academic year.",
				"hi": "पूर्ण शिक्षण शुल्क प्रतिपूर्ति तथा शैक्षणिक वर्ष के लिए निर्वाह भत्ता।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Caste certificate", "Income certificate", "Previous marksheet", "Bank account details"},
				"hi": {"आधार कार्ड", "जाति प्रमाण पत्र", "आय प्रमाण पत्र", "पिछली अंकतालिका", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:           ptr(16),
				MaxAge:           ptr(30),
				MaxIncome:        ptr(250000.0),
				SocialCategories: []string{"SC", "ST", "OBC"},
				EducationLevels:  []string{"10th", "12th"},
			},
			Difficulty:      "medium",
			Rating:          4.2,
			SuccessRate:     79,
			ProcessingTime:  "60-90 days",
			ApplicationLink: "https://scholarships.gov.in",
			Deadline:        "2026-10-31",
		},
		{
			ID:       "PM-MUDRA",
			Category: CategoryBusiness,
			Name: LocalizedText{
				"en": "Pradhan Mantri MUDRA Yojana",
				"hi": "प्रधानमंत्री मुद्रा योजना",
			},
			Description: LocalizedText{
				"en": "Collateral-free loans up to ₹10 lakh for non-corporate, non-farm micro enterprises.",
				"hi": "गैर-कॉर्पोरेट, गैर-कृषि सूक्ष्म उद्यमों के लिए ₹10 लाख तक का बिना गारंटी ऋण।",
			},
			Benefits: LocalizedText{
				"en": "Shishu, Kishore and Tarun loan tiers through banks, NBFCs and MFIs.",
				"hi": "बैंकों, एनबीएफसी और एमएफआई के माध्यम से शिशु, किशोर और तरुण ऋण श्रेणियाँ।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Business plan", "Identity and address proof", "Bank account details"},
				"hi": {"आधार कार्ड", "व्यवसाय योजना", "पहचान और पते का प्रमाण", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:      ptr(18),
				MaxAge:      ptr(65),
				Occupations: []string{"Self-Employed", "Business", "Entrepreneur"},
			},
			Difficulty:      "medium",
			Rating:          4.1,
			SuccessRate:     65,
			ProcessingTime:  "30-45 days",
			ApplicationLink: "https://www.mudra.org.in",
		},
		{
			ID:       "STANDUP-INDIA",
			Category: CategoryBusiness,
			Name: LocalizedText{
				"en": "Stand-Up India",
				"hi": "स्टैंड-अप इंडिया",
			},
			Description: LocalizedText{
				"en": "Bank loans between ₹10 lakh and ₹1 crore for SC/ST and women entrepreneurs setting up greenfield enterprises.",
				"hi": "ग्रीनफील्ड उद्यम स्थापित करने वाले अजा/अजजा और महिला उद्यमियों के लिए ₹10 लाख से ₹1 करोड़ तक के बैंक ऋण।",
			},
			Benefits: LocalizedText{
				"en": "Composite loan covering 85% of the project cost with a 7-year repayment window.",
				"hi": "परियोजना लागत के 85% तक का समग्र ऋण, 7 वर्ष की चुकौती अवधि।",
			},
			Documents: LocalizedList{
				"en": {"Aadhaar card", "Caste certificate", "Project report", "Bank account details"},
				"hi": {"आधार कार्ड", "जाति प्रमाण पत्र", "परियोजना रिपोर्ट", "बैंक खाता विवरण"},
			},
			Eligibility: EligibilitySpec{
				MinAge:           ptr(18),
				MaxAge:           ptr(65),
				Occupations:      []string{"Self-Employed", "Business", "Entrepreneur"},
				SocialCategories: []string{"SC", "ST"},
			},
			Difficulty:      "hard",
			Rating:          3.8,
			SuccessRate:     52,
			ProcessingTime:  "60-90 days",
			ApplicationLink: "https://www.standupmitra.in",
		},
	}
}

// ptr keeps sparse eligibility literals readable.
func ptr[T any](v T) *T { return &v }
