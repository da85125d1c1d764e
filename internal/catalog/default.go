package catalog

import "visa-eligibility-engine/internal/models"

// Default returns the built-in Thailand visa catalog.
// Thresholds are business heuristics in Thai baht, not legal advice.
// Order matters: it is the last tie-break when scores are equal.
func Default() *Catalog {
	c, err := New(defaultEntries())
	if err != nil {
		// The embedded data is checked by tests; failing here is a build defect.
		panic("invalid built-in catalog: " + err.Error())
	}
	return c
}

func defaultEntries() []models.VisaProfile {
	return []models.VisaProfile{
		{
			Code:           "DTV",
			Title:          "Destination Thailand Visa",
			Badge:          "Most flexible",
			Description:    "Five-year multiple entry visa for remote workers and soft-power activities such as Muay Thai or cooking courses.",
			Cost:           "10,000 THB",
			ProcessingTime: "1-3 weeks",
			Difficulty:     models.DifficultyEasy,
			Type:           models.EntryTypeMain,
			BaseScore:      60,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:     20,
				MinSavings: 500000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRemoteWork, models.PurposeWellness},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay, models.PurposeStudy},
				DurationTiers:     []models.DurationTier{models.DurationTierMedium, models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierMedium,
				CreativeAngles:    []models.Flag{models.FlagMuayThai, models.FlagThaiCooking, models.FlagWellnessRetreat, models.FlagFreelance},
				Reason:            "Covers remote work and long stays with 180 days per entry.",
				Tradeoff:          "Must be issued by an embassy abroad; each stay beyond 180 days needs an extension or exit.",
			},
		},
		{
			Code:           "RET-EXT",
			Title:          "Retirement Extension (in-country)",
			Badge:          "Retire in Thailand",
			Description:    "One-year extension of stay for retirees already in Thailand on a Non-Immigrant O visa.",
			Cost:           "1,900 THB",
			ProcessingTime: "1 day - 1 month",
			Difficulty:     models.DifficultyModerate,
			Type:           models.EntryTypeMain,
			BaseScore:      58,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationInside,
			Convertible:    false,
			Requirements: models.Requirements{
				MinAge:     50,
				MinSavings: 800000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRetirement},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierHigh,
				CreativeAngles:    []models.Flag{models.FlagWellnessRetreat},
				Reason:            "Cheapest way to renew residence every year once you are settled.",
				Tradeoff:          "800,000 THB must stay seasoned in a Thai bank account; 90-day reporting applies.",
			},
		},
		{
			Code:           "NON-OA",
			Title:          "Non-Immigrant O-A (Long Stay)",
			Description:    "One-year retirement visa applied for from your home country.",
			Cost:           "5,000 THB",
			ProcessingTime: "2-6 weeks",
			Difficulty:     models.DifficultyHard,
			Type:           models.EntryTypeAlternative,
			BaseScore:      52,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    false,
			Requirements: models.Requirements{
				MinAge:     50,
				MinSavings: 800000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRetirement},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierHigh,
				Reason:            "Arrive with a full year of retirement status already granted.",
				Tradeoff:          "Needs health insurance, police and medical certificates from your home country.",
			},
		},
		{
			Code:           "NON-OX",
			Title:          "Non-Immigrant O-X (10-Year Retirement)",
			Description:    "Ten-year retirement visa for nationals of participating countries.",
			Cost:           "10,000 THB",
			ProcessingTime: "4-8 weeks",
			Difficulty:     models.DifficultyHard,
			Type:           models.EntryTypePremium,
			BaseScore:      50,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    false,
			Requirements: models.Requirements{
				MinAge:     50,
				MinSavings: 3000000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRetirement},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierExtended},
				BudgetTier:        models.BudgetTierPremium,
				Reason:            "Longest retirement status with the fewest renewals.",
				Tradeoff:          "3,000,000 THB deposit and only selected nationalities qualify.",
			},
		},
		{
			Code:           "PRIVILEGE",
			Title:          "Thailand Privilege Membership",
			Badge:          "Hassle-free",
			Description:    "Paid membership granting a 5 to 20 year privilege entry visa with concierge services.",
			Cost:           "900,000 - 5,000,000 THB",
			ProcessingTime: "1-3 months",
			Difficulty:     models.DifficultyEasy,
			Type:           models.EntryTypePremium,
			BaseScore:      55,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:     20,
				MinSavings: 900000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeLongStay, models.PurposeRetirement},
				SecondaryPurposes: []models.Purpose{models.PurposeRemoteWork, models.PurposeInvestment, models.PurposeBusiness},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierPremium,
				CreativeAngles:    []models.Flag{models.FlagWellnessRetreat},
				Reason:            "No financial proof beyond the fee and very little paperwork.",
				Tradeoff:          "Large upfront fee that is not refundable; does not allow work.",
			},
		},
		{
			Code:           "LTR-WP",
			Title:          "Long-Term Resident: Wealthy Pensioner",
			Description:    "Ten-year residence for retirees with a stable passive income.",
			Cost:           "50,000 THB",
			ProcessingTime: "1-2 months",
			Difficulty:     models.DifficultyHard,
			Type:           models.EntryTypePremium,
			BaseScore:      48,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:    50,
				MinIncome: 2400000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRetirement},
				SecondaryPurposes: []models.Purpose{models.PurposeInvestment, models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierExtended},
				BudgetTier:        models.BudgetTierHigh,
				Reason:            "Ten years of status with annual reporting instead of 90-day reporting.",
				Tradeoff:          "Income proof for the last two years and health insurance are required.",
			},
		},
		{
			Code:           "LTR-WFT",
			Title:          "Long-Term Resident: Work-from-Thailand Professional",
			Description:    "Ten-year residence for employees of established foreign companies working remotely.",
			Cost:           "50,000 THB",
			ProcessingTime: "1-2 months",
			Difficulty:     models.DifficultyHard,
			Type:           models.EntryTypeAlternative,
			BaseScore:      50,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:    20,
				MinIncome: 1400000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeRemoteWork},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierHigh,
				CreativeAngles:    []models.Flag{models.FlagFreelance},
				Reason:            "Lets you keep a foreign salary legally while living in Thailand.",
				Tradeoff:          "Employer size and income history are checked; freelancers rarely qualify.",
			},
		},
		{
			Code:           "NON-O-MARRIAGE",
			Title:          "Non-Immigrant O (Thai Spouse)",
			Badge:          "Family",
			Description:    "Yearly visa for foreigners married to a Thai national.",
			Cost:           "2,000 - 5,000 THB",
			ProcessingTime: "2-4 weeks",
			Difficulty:     models.DifficultyModerate,
			Type:           models.EntryTypeMain,
			BaseScore:      56,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:              20,
				MinSavings:          400000,
				RequiresLocalSpouse: true,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeFamily},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierMedium,
				Reason:            "Lower financial threshold than retirement and allows a work permit.",
				Tradeoff:          "Marriage must be registered in Thailand and home visits may be checked.",
			},
		},
		{
			Code:           "NON-O-CHILD",
			Title:          "Non-Immigrant O (Thai Child)",
			Description:    "Yearly visa for parents supporting a Thai child.",
			Cost:           "2,000 - 5,000 THB",
			ProcessingTime: "2-4 weeks",
			Difficulty:     models.DifficultyModerate,
			Type:           models.EntryTypeAdditional,
			BaseScore:      54,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:             20,
				MinSavings:         400000,
				RequiresLocalChild: true,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeFamily},
				SecondaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierMedium,
				Reason:            "Keeps you with your child without a marriage requirement.",
				Tradeoff:          "Birth certificate and proof of support are reviewed at every renewal.",
			},
		},
		{
			Code:           "ED",
			Title:          "Non-Immigrant ED (Education)",
			Description:    "Study visa for language schools, universities and accredited Muay Thai or cooking courses.",
			Cost:           "20,000 - 40,000 THB per year incl. tuition",
			ProcessingTime: "2-6 weeks",
			Difficulty:     models.DifficultyEasy,
			Type:           models.EntryTypeAdditional,
			BaseScore:      50,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge: 0,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeStudy},
				SecondaryPurposes: []models.Purpose{models.PurposeWellness, models.PurposeLongStay},
				DurationTiers:     []models.DurationTier{models.DurationTierMedium, models.DurationTierLong},
				BudgetTier:        models.BudgetTierLow,
				CreativeAngles:    []models.Flag{models.FlagMuayThai, models.FlagThaiCooking},
				Reason:            "Low cost and no savings requirement.",
				Tradeoff:          "Attendance is checked and the school must stay accredited.",
			},
		},
		{
			Code:           "SMART",
			Title:          "SMART Visa",
			Description:    "Up to four years for talent, investors and executives in targeted industries.",
			Cost:           "10,000 THB per year",
			ProcessingTime: "1-3 months",
			Difficulty:     models.DifficultyHard,
			Type:           models.EntryTypeAdditional,
			BaseScore:      46,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge:    20,
				MinIncome: 1200000,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeBusiness, models.PurposeInvestment},
				SecondaryPurposes: []models.Purpose{models.PurposeRemoteWork},
				DurationTiers:     []models.DurationTier{models.DurationTierLong, models.DurationTierExtended},
				BudgetTier:        models.BudgetTierHigh,
				Reason:            "Work without a separate work permit and bring family members.",
				Tradeoff:          "Requires BOI endorsement of the employer or investment.",
			},
		},
		{
			Code:           "NON-B",
			Title:          "Non-Immigrant B (Business)",
			Description:    "Business visa for employment with a Thai company or running a registered business.",
			Cost:           "2,000 - 5,000 THB",
			ProcessingTime: "2-4 weeks",
			Difficulty:     models.DifficultyModerate,
			Type:           models.EntryTypeAdditional,
			BaseScore:      48,
			PayToStay:      false,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    true,
			Requirements: models.Requirements{
				MinAge: 20,
			},
			Fit: models.Fit{
				PrimaryPurposes:   []models.Purpose{models.PurposeBusiness},
				SecondaryPurposes: []models.Purpose{models.PurposeInvestment},
				DurationTiers:     []models.DurationTier{models.DurationTierMedium, models.DurationTierLong},
				BudgetTier:        models.BudgetTierMedium,
				Reason:            "Standard route to a Thai work permit.",
				Tradeoff:          "Tied to a sponsoring company that must meet capital and staffing rules.",
			},
		},
		{
			Code:           "TR",
			Title:          "Tourist Visa (TR)",
			Description:    "Sixty-day single entry tourist visa.",
			Cost:           "1,000 - 2,000 THB",
			ProcessingTime: "1 week",
			Difficulty:     models.DifficultyEasy,
			Type:           models.EntryTypeAdditional,
			BaseScore:      40,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    false,
			Tourist:        true,
			Fit: models.Fit{
				PrimaryPurposes: []models.Purpose{models.PurposeTourism},
				DurationTiers:   []models.DurationTier{models.DurationTierShort},
				BudgetTier:      models.BudgetTierLow,
				Reason:          "Simple holiday entry.",
				Tradeoff:        "Not a residence option.",
			},
		},
		{
			Code:           "VISA-EXEMPT",
			Title:          "Visa Exemption Entry",
			Description:    "Visa-free entry for eligible passports.",
			Cost:           "Free",
			ProcessingTime: "On arrival",
			Difficulty:     models.DifficultyEasy,
			Type:           models.EntryTypeAdditional,
			BaseScore:      40,
			BaseLocation:   models.BaseLocationAny,
			Convertible:    true,
			Tourist:        true,
			Fit: models.Fit{
				PrimaryPurposes: []models.Purpose{models.PurposeTourism},
				DurationTiers:   []models.DurationTier{models.DurationTierShort},
				BudgetTier:      models.BudgetTierLow,
				Reason:          "No application needed.",
				Tradeoff:        "Not a residence option.",
			},
		},
		{
			Code:           "STV",
			Title:          "Special Tourist Visa",
			Description:    "Discontinued long-stay tourist visa.",
			Cost:           "2,000 THB",
			ProcessingTime: "n/a",
			Difficulty:     models.DifficultyModerate,
			Type:           models.EntryTypeAdditional,
			BaseScore:      45,
			PayToStay:      true,
			BaseLocation:   models.BaseLocationOutside,
			Convertible:    false,
			Excluded:       true,
			Requirements: models.Requirements{
				MinSavings: 500000,
			},
			Fit: models.Fit{
				PrimaryPurposes: []models.Purpose{models.PurposeLongStay},
				DurationTiers:   []models.DurationTier{models.DurationTierMedium, models.DurationTierLong},
				BudgetTier:      models.BudgetTierMedium,
				Reason:          "Kept for historic requests only.",
				Tradeoff:        "No longer issued.",
			},
		},
	}
}
