package catalog

import "math"

// defaultBand is the budget tier used when a market has no band for the
// requested tier.
const defaultBand = "mid-range"

// Product is a concrete market product standing in for a catalog entry.
type Product struct {
	Name  string
	Price float64
}

// Market parameterizes the pipeline for one country. A nil Products map means
// the whole catalog is available at its reference price ranges.
type Market struct {
	Code     string
	Currency string
	Bands    map[string]PriceRange
	Products map[string]Product
}

// Band returns the price band for a budget tier, falling back to the
// mid-range band. A market without bands accepts any price.
func (m Market) Band(tier string) PriceRange {
	if b, ok := m.Bands[tier]; ok {
		return b
	}
	if b, ok := m.Bands[defaultBand]; ok {
		return b
	}
	return PriceRange{Min: 0, Max: math.MaxFloat64}
}

// Available reports whether the entry can be bought in this market.
func (m Market) Available(id string) bool {
	if m.Products == nil {
		return true
	}
	_, ok := m.Products[id]
	return ok
}

// Price returns the local price of an entry: the exact product price when the
// market lists one, the reference range otherwise.
func (m Market) Price(e Entry) PriceRange {
	if p, ok := m.Products[e.ID]; ok {
		return PriceRange{Min: p.Price, Max: p.Price}
	}
	return e.Price
}

// DisplayName returns the local product name, or the catalog name.
func (m Market) DisplayName(e Entry) string {
	if p, ok := m.Products[e.ID]; ok && p.Name != "" {
		return p.Name
	}
	return e.Name
}

// InBudget reports whether the entry is available and its price overlaps the
// band for tier.
func (m Market) InBudget(e Entry, tier string) bool {
	return m.Available(e.ID) && m.Price(e).Overlaps(m.Band(tier))
}

func defaultMarkets() map[string]Market {
	return map[string]Market{
		"US": {
			Code:     "US",
			Currency: "USD",
			Bands: map[string]PriceRange{
				"budget":    {Min: 0, Max: 20},
				"mid-range": {Min: 0, Max: 50},
				"premium":   {Min: 0, Max: 100},
				"luxury":    {Min: 0, Max: 1000},
			},
		},
		"GB": {
			Code:     "GB",
			Currency: "GBP",
			Bands: map[string]PriceRange{
				"budget":    {Min: 0, Max: 16},
				"mid-range": {Min: 0, Max: 40},
				"premium":   {Min: 0, Max: 80},
				"luxury":    {Min: 0, Max: 800},
			},
			// Adapalene is prescription-only in the UK.
			Products: map[string]Product{
				"gentle_cleanser":         {Name: "Gentle Hydrating Cleanser 236ml", Price: 9.50},
				"foaming_cleanser":        {Name: "Foaming Facial Cleanser 236ml", Price: 8.00},
				"salicylic_cleanser":      {Name: "BHA Blemish Cleanser 150ml", Price: 11.00},
				"cream_cleanser":          {Name: "Cream Cleansing Balm 125ml", Price: 13.50},
				"lightweight_moisturizer": {Name: "Oil-Free Gel Moisturiser 50ml", Price: 10.00},
				"rich_moisturizer":        {Name: "Ceramide Moisturising Cream 177ml", Price: 15.00},
				"barrier_repair_cream":    {Name: "Barrier Repair Cream 50ml", Price: 28.00},
				"mineral_sunscreen":       {Name: "Mineral Fluid SPF50 50ml", Price: 24.00},
				"chemical_sunscreen":      {Name: "Invisible Fluid SPF50 50ml", Price: 12.00},
				"matte_sunscreen":         {Name: "Mattifying Sun Fluid SPF50 50ml", Price: 14.00},
				"niacinamide":             {Name: "Niacinamide 10% + Zinc 1% 30ml", Price: 5.90},
				"salicylic_acid":          {Name: "Salicylic Acid 2% Solution 30ml", Price: 6.50},
				"benzoyl_peroxide":        {Name: "Benzoyl Peroxide 5% Gel 25g", Price: 7.50},
				"retinol":                 {Name: "Retinol 0.3% Serum 30ml", Price: 34.00},
				"bakuchiol":               {Name: "Bakuchiol Plant Retinol Serum 30ml", Price: 18.00},
				"vitamin_c":               {Name: "Vitamin C 15% Serum 30ml", Price: 38.00},
				"ascorbyl_glucoside":      {Name: "Ascorbyl Glucoside 12% Solution 30ml", Price: 10.90},
				"glycolic_acid":           {Name: "Glycolic Acid 7% Toner 240ml", Price: 11.00},
				"lactic_acid":             {Name: "Lactic Acid 10% Serum 30ml", Price: 8.50},
				"pha_toner":               {Name: "PHA Exfoliating Toner 150ml", Price: 14.00},
				"azelaic_acid":            {Name: "Azelaic Acid 10% Suspension 30ml", Price: 9.50},
				"alpha_arbutin":           {Name: "Alpha Arbutin 2% Serum 30ml", Price: 9.00},
				"tranexamic_acid":         {Name: "Tranexamic Acid 5% Serum 30ml", Price: 22.00},
				"peptides":                {Name: "Multi-Peptide Serum 30ml", Price: 15.00},
				"copper_peptides":         {Name: "Copper Peptide Serum 30ml", Price: 32.00},
				"centella":                {Name: "Centella Soothing Ampoule 30ml", Price: 12.00},
				"hyaluronic_acid":         {Name: "Hyaluronic Acid 2% + B5 30ml", Price: 7.00},
				"squalane":                {Name: "100% Plant-Derived Squalane 30ml", Price: 8.00},
				"caffeine_eye":            {Name: "Caffeine Eye Serum 30ml", Price: 7.50},
				"zinc_pca":                {Name: "Zinc PCA Balancing Serum 30ml", Price: 9.00},
				"clay_mask":               {Name: "Purifying Clay Mask 100ml", Price: 12.00},
				"sulfur_spot":             {Name: "Sulphur Spot Treatment 15ml", Price: 8.00},
			},
		},
		"IN": {
			Code:     "IN",
			Currency: "INR",
			Bands: map[string]PriceRange{
				"budget":    {Min: 0, Max: 1200},
				"mid-range": {Min: 0, Max: 3000},
				"premium":   {Min: 0, Max: 7000},
				"luxury":    {Min: 0, Max: 60000},
			},
			Products: map[string]Product{
				"gentle_cleanser":         {Name: "Gentle Skin Cleanser 125ml", Price: 450},
				"foaming_cleanser":        {Name: "Oil Control Foaming Face Wash 100ml", Price: 399},
				"salicylic_cleanser":      {Name: "2% Salicylic Acid Face Wash 100ml", Price: 549},
				"cream_cleanser":          {Name: "Hydrating Cream Cleanser 100ml", Price: 699},
				"lightweight_moisturizer": {Name: "Oil-Free Gel Moisturizer 50g", Price: 499},
				"rich_moisturizer":        {Name: "Ceramide Moisturizing Cream 50g", Price: 899},
				"barrier_repair_cream":    {Name: "Barrier Repair Cream 50g", Price: 1850},
				"mineral_sunscreen":       {Name: "Mineral Sunscreen SPF 50 50g", Price: 1450},
				"chemical_sunscreen":      {Name: "Ultra Light Sunscreen SPF 50 50g", Price: 599},
				"matte_sunscreen":         {Name: "Matte Finish Sunscreen SPF 50 50g", Price: 799},
				"niacinamide":             {Name: "Niacinamide 10% Serum 30ml", Price: 599},
				"salicylic_acid":          {Name: "Salicylic Acid 2% Serum 30ml", Price: 549},
				"benzoyl_peroxide":        {Name: "Benzoyl Peroxide 2.5% Gel 20g", Price: 260},
				"retinol":                 {Name: "Retinol 0.3% Serum 30ml", Price: 1999},
				"adapalene":               {Name: "Adapalene 0.1% Gel 15g", Price: 350},
				"bakuchiol":               {Name: "Bakuchiol Serum 30ml", Price: 899},
				"vitamin_c":               {Name: "Vitamin C 15% Serum 30ml", Price: 2399},
				"ascorbyl_glucoside":      {Name: "Ascorbyl Glucoside 10% Serum 30ml", Price: 699},
				"glycolic_acid":           {Name: "Glycolic Acid 8% Toner 100ml", Price: 699},
				"lactic_acid":             {Name: "Lactic Acid 10% Serum 30ml", Price: 649},
				"pha_toner":               {Name: "PHA 3% Toner 100ml", Price: 899},
				"azelaic_acid":            {Name: "Azelaic Acid 10% Cream 30g", Price: 575},
				"alpha_arbutin":           {Name: "Alpha Arbutin 2% Serum 30ml", Price: 549},
				"tranexamic_acid":         {Name: "Tranexamic Acid 3% Serum 30ml", Price: 1499},
				"peptides":                {Name: "Peptide Complex Serum 30ml", Price: 1299},
				"centella":                {Name: "Centella Calming Serum 30ml", Price: 799},
				"hyaluronic_acid":         {Name: "Hyaluronic Acid 2% Serum 30ml", Price: 549},
				"squalane":                {Name: "Squalane Face Oil 30ml", Price: 699},
				"caffeine_eye":            {Name: "Caffeine Under Eye Serum 30ml", Price: 599},
				"zinc_pca":                {Name: "Zinc PCA Oil Balancing Serum 30ml", Price: 649},
				"clay_mask":               {Name: "Kaolin Clay Mask 100g", Price: 499},
				"sulfur_spot":             {Name: "Sulphur Acne Spot Gel 15g", Price: 299},
			},
		},
	}
}
