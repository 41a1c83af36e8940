package catalog

func defaultEntries() map[string]Entry {
	entries := []Entry{
		// Cleansers
		{
			ID: "gentle_cleanser", Name: "Gentle Hydrating Cleanser", Category: Cleanser,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"sensitivity", "dryness", "redness"},
			Strength: Gentle, Price: PriceRange{Min: 6, Max: 16}, Essential: true,
		},
		{
			ID: "foaming_cleanser", Name: "Oil Control Foaming Cleanser", Category: Cleanser,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"oiliness", "large_pores"},
			Strength: Gentle, Price: PriceRange{Min: 7, Max: 15}, Essential: true,
		},
		{
			ID: "salicylic_cleanser", Name: "Salicylic Acid Cleanser", Category: Cleanser,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"acne", "oiliness", "large_pores"},
			Strength: Moderate, Price: PriceRange{Min: 9, Max: 18}, ActiveIngredients: []string{"salicylic_acid"},
			RequiresExperience: "intermediate", Essential: true,
		},
		{
			ID: "cream_cleanser", Name: "Nourishing Cream Cleanser", Category: Cleanser,
			SuitableFor: []string{"dry", "normal"}, Addresses: []string{"dryness", "dehydration"},
			Strength: Gentle, Price: PriceRange{Min: 12, Max: 28}, Essential: true,
		},

		// Moisturizers
		{
			ID: "lightweight_moisturizer", Name: "Lightweight Gel Moisturizer", Category: Moisturizer,
			SuitableFor: []string{"oily", "combination", "normal"}, Addresses: []string{"dehydration", "oiliness"},
			Strength: Gentle, Price: PriceRange{Min: 9, Max: 24}, Essential: true,
		},
		{
			ID: "rich_moisturizer", Name: "Rich Ceramide Moisturizer", Category: Moisturizer,
			SuitableFor: []string{"dry", "normal", "sensitive"}, Addresses: []string{"dryness", "aging"},
			Strength: Gentle, Price: PriceRange{Min: 14, Max: 38}, ActiveIngredients: []string{"ceramides"},
			Essential: true,
		},
		{
			ID: "barrier_repair_cream", Name: "Barrier Repair Cream", Category: Moisturizer,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"sensitivity", "redness", "dryness"},
			Strength: Gentle, Price: PriceRange{Min: 24, Max: 52}, ActiveIngredients: []string{"ceramides"},
			Essential: true,
		},

		// Sunscreens
		{
			ID: "mineral_sunscreen", Name: "Mineral Sunscreen SPF 50", Category: Sunscreen,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"sensitivity", "redness", "aging", "hyperpigmentation"},
			Strength: Gentle, Price: PriceRange{Min: 22, Max: 42}, ActiveIngredients: []string{"zinc_oxide"},
			Essential: true,
		},
		{
			ID: "chemical_sunscreen", Name: "Lightweight Sunscreen SPF 50", Category: Sunscreen,
			SuitableFor: []string{"normal", "dry", "combination", "oily"}, Addresses: []string{"aging", "hyperpigmentation"},
			Strength: Gentle, Price: PriceRange{Min: 9, Max: 20}, Essential: true,
		},
		{
			ID: "matte_sunscreen", Name: "Matte Finish Sunscreen SPF 50", Category: Sunscreen,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"oiliness", "aging", "hyperpigmentation"},
			Strength: Gentle, Price: PriceRange{Min: 12, Max: 30}, Essential: true,
		},

		// Actives
		{
			ID: "niacinamide", Name: "Niacinamide 10%", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"acne", "oiliness", "large_pores", "hyperpigmentation", "redness"},
			Strength: Gentle, Price: PriceRange{Min: 6, Max: 18}, ActiveIngredients: []string{"niacinamide"},
			RequiresExperience: "beginner",
		},
		{
			ID: "salicylic_acid", Name: "Salicylic Acid 2% (BHA)", Category: Active,
			SuitableFor: []string{"oily", "combination", "normal"}, Addresses: []string{"acne", "large_pores", "texture", "oiliness"},
			Strength: Moderate, Price: PriceRange{Min: 8, Max: 24}, ActiveIngredients: []string{"salicylic_acid"},
			RequiresExperience: "intermediate",
		},
		{
			ID: "retinol", Name: "Retinol 0.3%", Category: Active,
			SuitableFor: []string{"normal", "oily", "combination", "dry"}, Addresses: []string{"aging", "texture", "acne", "hyperpigmentation"},
			Strength: Strong, Price: PriceRange{Min: 24, Max: 70}, ActiveIngredients: []string{"retinoid"},
			RequiresExperience: "intermediate",
			Instructions:       "Apply a pea-sized amount to dry skin two nights a week, increasing slowly as tolerated",
		},
		{
			ID: "adapalene", Name: "Adapalene 0.1% Gel", Category: Active,
			SuitableFor: []string{"oily", "combination", "normal"}, Addresses: []string{"acne", "texture", "aging"},
			Strength: Strong, Price: PriceRange{Min: 12, Max: 18}, ActiveIngredients: []string{"retinoid"},
			RequiresExperience: "intermediate",
		},
		{
			ID: "bakuchiol", Name: "Bakuchiol Serum", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"aging", "texture", "hyperpigmentation"},
			Strength: Gentle, Price: PriceRange{Min: 18, Max: 45}, ActiveIngredients: []string{"bakuchiol"},
			RequiresExperience: "beginner",
		},
		{
			ID: "vitamin_c", Name: "Vitamin C 15% (L-Ascorbic Acid)", Category: Active,
			SuitableFor: []string{"normal", "oily", "combination", "dry"}, Addresses: []string{"hyperpigmentation", "dullness", "aging"},
			Strength: Moderate, Price: PriceRange{Min: 25, Max: 80}, ActiveIngredients: []string{"vitamin_c"},
			RequiresExperience: "intermediate", MorningUse: true,
			Instructions: "Apply 3-4 drops to clean dry skin in the morning before moisturizer",
		},
		{
			ID: "ascorbyl_glucoside", Name: "Ascorbyl Glucoside (Gentle Vitamin C)", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"hyperpigmentation", "dullness", "aging"},
			Strength: Gentle, Price: PriceRange{Min: 10, Max: 22}, ActiveIngredients: []string{"vitamin_c"},
			RequiresExperience: "beginner", MorningUse: true,
		},
		{
			ID: "glycolic_acid", Name: "Glycolic Acid 7% (AHA)", Category: Active,
			SuitableFor: []string{"normal", "oily", "combination"}, Addresses: []string{"texture", "dullness", "hyperpigmentation"},
			Strength: Strong, Price: PriceRange{Min: 9, Max: 28}, ActiveIngredients: []string{"aha"},
			RequiresExperience: "advanced",
		},
		{
			ID: "lactic_acid", Name: "Lactic Acid 10% (AHA)", Category: Active,
			SuitableFor: []string{"normal", "dry", "combination"}, Addresses: []string{"dullness", "texture", "dryness"},
			Strength: Moderate, Price: PriceRange{Min: 8, Max: 26}, ActiveIngredients: []string{"aha"},
			RequiresExperience: "intermediate",
		},
		{
			ID: "pha_toner", Name: "PHA Exfoliating Toner", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"texture", "dullness"},
			Strength: Gentle, Price: PriceRange{Min: 14, Max: 32}, ActiveIngredients: []string{"pha"},
			RequiresExperience: "beginner",
		},
		{
			ID: "alpha_arbutin", Name: "Alpha Arbutin 2%", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"hyperpigmentation", "dullness"},
			Strength: Gentle, Price: PriceRange{Min: 8, Max: 20}, ActiveIngredients: []string{"alpha_arbutin"},
			RequiresExperience: "beginner",
		},
		{
			ID: "peptides", Name: "Multi-Peptide Serum", Category: Active,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"aging", "dark_circles", "dryness"},
			Strength: Gentle, Price: PriceRange{Min: 16, Max: 55}, ActiveIngredients: []string{"peptides"},
			RequiresExperience: "beginner",
		},
		{
			ID: "copper_peptides", Name: "Copper Peptide Serum", Category: Active,
			SuitableFor: []string{"normal", "dry", "combination"}, Addresses: []string{"aging", "texture"},
			Strength: Moderate, Price: PriceRange{Min: 35, Max: 90}, ActiveIngredients: []string{"copper_peptides"},
			RequiresExperience: "intermediate",
		},
		{
			ID: "zinc_pca", Name: "Zinc PCA Serum", Category: Active,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"oiliness", "acne", "large_pores"},
			Strength: Gentle, Price: PriceRange{Min: 7, Max: 18}, ActiveIngredients: []string{"zinc"},
			RequiresExperience: "beginner",
		},

		// Treatments
		{
			ID: "benzoyl_peroxide", Name: "Benzoyl Peroxide 2.5%", Category: Treatment,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"acne"},
			Strength: Strong, Price: PriceRange{Min: 6, Max: 14}, ActiveIngredients: []string{"benzoyl_peroxide"},
			ConflictsWith: []string{"retinoid"}, RequiresExperience: "intermediate",
			Instructions: "Apply a thin layer to breakouts only; it bleaches towels and pillowcases",
		},
		{
			ID: "azelaic_acid", Name: "Azelaic Acid 10%", Category: Treatment,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"redness", "acne", "hyperpigmentation", "sensitivity"},
			Strength: Moderate, Price: PriceRange{Min: 10, Max: 30}, ActiveIngredients: []string{"azelaic_acid"},
			RequiresExperience: "beginner",
		},
		{
			ID: "tranexamic_acid", Name: "Tranexamic Acid Serum", Category: Treatment,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"hyperpigmentation"},
			Strength: Gentle, Price: PriceRange{Min: 22, Max: 48}, RequiresExperience: "intermediate",
		},
		{
			ID: "caffeine_eye", Name: "Caffeine Eye Serum", Category: Treatment,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"dark_circles"},
			Strength: Gentle, Price: PriceRange{Min: 7, Max: 24}, ActiveIngredients: []string{"caffeine"},
			RequiresExperience: "beginner", MorningUse: true,
			Instructions: "Tap a rice-grain amount around the orbital bone with your ring finger",
		},
		{
			ID: "clay_mask", Name: "Purifying Clay Mask", Category: Treatment,
			SuitableFor: []string{"oily", "combination"}, Addresses: []string{"oiliness", "large_pores", "acne"},
			Strength: Moderate, Price: PriceRange{Min: 10, Max: 34}, RequiresExperience: "beginner",
			Instructions: "Apply an even layer once or twice a week and rinse before it fully dries",
		},
		{
			ID: "sulfur_spot", Name: "Sulfur Spot Treatment", Category: Treatment,
			SuitableFor: []string{"oily", "combination", "normal"}, Addresses: []string{"acne"},
			Strength: Moderate, Price: PriceRange{Min: 8, Max: 16}, ActiveIngredients: []string{"sulfur"},
			RequiresExperience: "beginner",
		},

		// Hydrating
		{
			ID: "centella", Name: "Centella Asiatica Serum", Category: Hydrating,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"sensitivity", "redness", "acne"},
			Strength: Gentle, Price: PriceRange{Min: 9, Max: 26}, ActiveIngredients: []string{"centella"},
			RequiresExperience: "beginner",
		},
		{
			ID: "hyaluronic_acid", Name: "Hyaluronic Acid Serum", Category: Hydrating,
			SuitableFor: []string{AllSkinTypes}, Addresses: []string{"dehydration", "dryness", "aging"},
			Strength: Gentle, Price: PriceRange{Min: 7, Max: 22}, ActiveIngredients: []string{"hyaluronic_acid"},
			RequiresExperience: "beginner",
		},
		{
			ID: "squalane", Name: "Squalane Oil", Category: Hydrating,
			SuitableFor: []string{"dry", "normal", "sensitive", "combination"}, Addresses: []string{"dryness", "dehydration"},
			Strength: Gentle, Price: PriceRange{Min: 8, Max: 30}, ActiveIngredients: []string{"squalane"},
			RequiresExperience: "beginner",
		},
	}

	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		out[e.ID] = e
	}
	return out
}
