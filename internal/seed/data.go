package seed

import "github.com/betterballot/ballot-api/internal/candidates"

// berkeleyCitywideZipcodes is the ZIP span of citywide contests.
var berkeleyCitywideZipcodes = []string{
	"94701", "94702", "94703", "94704", "94705",
	"94707", "94708", "94709", "94710", "94720",
}

func intPtr(v int) *int { return &v }

// Candidates is the bundled 2024 Berkeley dataset the seeder loads.
var Candidates = []candidates.ProfileInput{
	{
		Name:      "Kate Harrison",
		Position:  "Mayor",
		Party:     "Democrat",
		Biography: "Kate Harrison has served on the Berkeley City Council since 2017, representing Downtown Berkeley and the UC Berkeley campus area in District 4. She has been a strong advocate for affordable housing, climate action, and progressive policies.",
		Education: []string{
			"UC Berkeley, Master of Public Policy",
			"Yale University, BA in Political Science",
		},
		Experience: []string{
			"Berkeley City Council, District 4 (2017-Present)",
			"Budget and Finance Policy Committee Chair",
			"Public Works Commission (2012-2016)",
			"Senior Analyst, Berkeley City Auditors Office (2008-2012)",
		},
		Endorsements: []string{
			"Berkeley Progressive Alliance",
			"Berkeley Tenants Union",
			"Sierra Club",
			"Berkeley Citizens Action",
		},
		Policies: []candidates.PolicyInput{
			{
				Title:       "Affordable Housing",
				Description: "Expand affordable housing by requiring higher inclusionary percentages in new developments and protecting existing tenants from displacement.",
				Priority:    intPtr(90),
			},
			{
				Title:       "Climate Action",
				Description: "Implement Berkeleys Climate Action Plan to achieve carbon neutrality by 2030, including electrification of buildings and transportation.",
				Priority:    intPtr(85),
			},
			{
				Title:       "Public Safety",
				Description: "Reform police practices and invest in community-based crisis response for mental health emergencies and non-violent incidents.",
				Priority:    intPtr(80),
			},
			{
				Title:       "Homelessness",
				Description: "Expand shelter capacity and permanent supportive housing while providing comprehensive services to address root causes of homelessness.",
				Priority:    intPtr(95),
			},
		},
		SocialMedia: &candidates.SocialMediaInput{
			Website:   "https://www.kateharrison.info",
			Email:     "kate@kateharrison.info",
			Twitter:   "https://twitter.com/KateHarrisonD4",
			Facebook:  "https://facebook.com/KateHarrisonD4",
			Instagram: "https://instagram.com/KateHarrisonD4",
		},
		RecentPosts: []candidates.RecentPostInput{
			{
				Date:     "October 12, 2024",
				Platform: "Twitter",
				Content:  "Join us this Saturday for our campaign kickoff at Civic Center Park! Well be discussing our vision for Berkeleys future.",
				Link:     "https://twitter.com/KateHarrisonD4/status/1447",
			},
			{
				Date:     "October 8, 2024",
				Platform: "Facebook",
				Content:  "Today the City Council unanimously passed our proposal to expand affordable housing requirements. This is a big win for working families in Berkeley!",
				Link:     "https://facebook.com/KateHarrisonD4/posts/2345",
			},
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "Citywide",
			Office:   "Mayor",
			Zipcodes: berkeleyCitywideZipcodes,
		},
	},
	{
		Name:      "Terry Taplin",
		Position:  "City Council District 2",
		Party:     "Democrat",
		Biography: "Terry Taplin is a poet, community organizer, and transit advocate who has lived in West Berkeley for over 15 years. As a renter and public transit rider, he understands the challenges facing working-class residents.",
		Education: []string{
			"UC Berkeley, BA in English Literature",
			"City College of San Francisco, AA in Humanities",
		},
		Experience: []string{
			"Berkeley Transportation Commission (2018-2022)",
			"Berkeley Poetry Festival Organizer (2016-2020)",
			"West Berkeley Neighborhood Association Board Member",
		},
		Endorsements: []string{
			"Berkeley Democratic Club",
			"East Bay Young Democrats",
			"Former Mayor Tom Bates",
		},
		Policies: []candidates.PolicyInput{
			{
				Title:       "Transportation",
				Description: "Improve public transit, expand bike lanes, and create a more walkable West Berkeley with better connections to the waterfront.",
				Priority:    intPtr(90),
			},
			{
				Title:       "Housing",
				Description: "Increase housing production along transit corridors while protecting existing affordable units and preventing displacement.",
				Priority:    intPtr(85),
			},
		},
		SocialMedia: &candidates.SocialMediaInput{
			Website:  "https://www.terrytaplin.com",
			Email:    "info@terrytaplin.com",
			Twitter:  "https://twitter.com/TerryTaplin",
			Facebook: "https://facebook.com/TerryTaplinForBerkeley",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 2",
			Office:   "City Council District 2",
			Zipcodes: []string{"94702", "94703"},
		},
	},
	{
		Name:      "Shoshana O'Keefe",
		Position:  "City Council District 5",
		Party:     "Democrat",
		Biography: "Shoshana O'Keefe is a housing advocate and community organizer focused on affordability and climate action in Berkeley.",
		Education: []string{
			"UC Berkeley, Master in City Planning",
			"Brown University, BA in Urban Studies",
		},
		Experience: []string{
			"Berkeley Housing Advisory Commission (2019-Present)",
			"Climate Action Coalition Coordinator (2018-2022)",
			"Affordable Housing Developer (2015-Present)",
		},
		Endorsements: []string{
			"Berkeley Tenants Union",
			"Sierra Club",
			"Berkeley Progressive Alliance",
		},
		Policies: []candidates.PolicyInput{
			{
				Title:       "Affordable Housing",
				Description: "Create more affordable housing for working families, seniors, and students through inclusive zoning and anti-displacement policies.",
				Priority:    intPtr(95),
			},
			{
				Title:       "Climate Justice",
				Description: "Implement Berkeleys Climate Action Plan with an emphasis on equity and ensuring environmental benefits reach all neighborhoods.",
				Priority:    intPtr(90),
			},
			{
				Title:       "Transit and Mobility",
				Description: "Improve public transit access, expand bike infrastructure, and make North Berkeley more walkable and accessible.",
				Priority:    intPtr(85),
			},
		},
		SocialMedia: &candidates.SocialMediaInput{
			Website:   "https://www.shoshanaokeefe.org",
			Email:     "shoshana@shoshanaokeefe.org",
			Twitter:   "https://twitter.com/ShoshanaOKeefe",
			Facebook:  "https://facebook.com/ShoshanaOKeefeForBerkeley",
			Instagram: "https://instagram.com/shoshana4berkeley",
		},
		RecentPosts: []candidates.RecentPostInput{
			{
				Date:     "October 15, 2024",
				Platform: "Instagram",
				Content:  "Thanks to everyone who joined our community forum on housing affordability last night! Great discussion on practical solutions for Berkeley.",
				Link:     "https://instagram.com/p/shoshana4berkeley/12345",
			},
			{
				Date:     "October 10, 2024",
				Platform: "Twitter",
				Content:  "Excited to announce our endorsement from the Berkeley Tenants Union! Looking forward to working together to protect renters and expand affordable housing.",
				Link:     "https://twitter.com/ShoshanaOKeefe/status/54321",
			},
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 5",
			Office:   "City Council District 5",
			Zipcodes: []string{"94707", "94708", "94709"},
		},
	},
	{
		Name:      "Logan Bowle",
		Position:  "Mayor",
		Party:     "Independent",
		Biography: "Logan Bowle is a community organizer and housing advocate with extensive experience working with nonprofit organizations. His campaign focuses on affordable housing solutions and community-led development.",
		SocialMedia: &candidates.SocialMediaInput{
			Website: "https://www.loganbowle.org",
			Email:   "logan@loganbowle.org",
			Twitter: "https://twitter.com/LoganBowle",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "Citywide",
			Office:   "Mayor",
			Zipcodes: berkeleyCitywideZipcodes,
		},
	},
	{
		Name:      "Ben Bartlett",
		Position:  "City Council District 3",
		Party:     "Democrat",
		Biography: "Ben Bartlett is the incumbent City Councilmember for District 3, representing South Berkeley. A third-generation Berkeley resident, he has focused on affordable housing, environmental justice, and economic opportunity during his first term.",
		SocialMedia: &candidates.SocialMediaInput{
			Website: "https://www.benbartlett.com",
			Email:   "info@benbartlett.com",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 3",
			Office:   "City Council District 3",
			Zipcodes: []string{"94703", "94704"},
		},
	},
	{
		Name:      "Nilang Gor",
		Position:  "City Council District 5",
		Party:     "Democrat",
		Biography: "Nilang Gor is a scientist and educator committed to environmental justice and community-led solutions to Berkeleys challenges.",
		SocialMedia: &candidates.SocialMediaInput{
			Website:  "https://www.nilanggor.com",
			Email:    "nilang@nilanggor.com",
			Facebook: "https://facebook.com/NilangGorForBerkeley",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 5",
			Office:   "City Council District 5",
			Zipcodes: []string{"94707", "94708", "94709"},
		},
	},
	{
		Name:      "Brent Blackaby",
		Position:  "City Council District 6",
		Party:     "Democrat",
		Biography: "Brent Blackaby is a nonprofit executive and parent who has lived in Berkeley for over 20 years. He is focused on public safety, supporting local businesses, and improving city services.",
		SocialMedia: &candidates.SocialMediaInput{
			Website:  "https://www.brentblackaby.com",
			Email:    "brent@brentblackaby.com",
			Facebook: "https://facebook.com/BlackabyForBerkeley",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 6",
			Office:   "City Council District 6",
			Zipcodes: []string{"94707", "94708"},
		},
	},
	{
		Name:      "Andy Katz",
		Position:  "City Council District 6",
		Party:     "Democrat",
		Biography: "Andy Katz is an environmental attorney and public health advocate who has served on the East Bay Municipal Utility District Board since 2006. He is focused on infrastructure, climate resilience, and public health.",
		SocialMedia: &candidates.SocialMediaInput{
			Website: "https://www.andykatz.org",
			Email:   "andy@andykatz.org",
			Twitter: "https://twitter.com/AndyKatzBerkeley",
		},
		ElectionInfo: &candidates.ElectionInfo{
			District: "District 6",
			Office:   "City Council District 6",
			Zipcodes: []string{"94707", "94708"},
		},
	},
}
