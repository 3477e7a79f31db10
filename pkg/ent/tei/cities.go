package tei

// DefaultCities maps the cities of the printers to GeoNames references.
func DefaultCities() map[string]string {
	return map[string]string{
		"Anvers":           "geonames:2803138",
		"Bordeaux":         "geonames:3031582",
		"Chalon-sur-Saône": "geonames:3027484",
		"Dijon":            "geonames:3021372",
		"Lyon":             "geonames:2996944",
		"Marseille":        "geonames:2995469",
		"Orléans":          "geonames:2989317",
		"Paris":            "geonames:2988507",
		"Poitiers":         "geonames:2986495",
		"Pontoise":         "geonames:2986140",
		"Rennes":           "geonames:2983990",
		"Rouen":            "geonames:2982652",
		"Saumur":           "geonames:2975758",
		"Sens":             "geonames:2975050",
		"Toul":             "geonames:2972350",
		"Toulouse":         "geonames:2972315",
		"Tours":            "geonames:2972191",
		"Den Haag":         "geonames:2747373",
	}
}

// DefaultEditor is the author of the first version of the profiles.
func DefaultEditor() Editor {
	return Editor{
		ID:   "ZC",
		Ref:  "orcid:0000-0002-3327-3967",
		Name: "Zoé Cappe",
		Resp: "Créateur de la fiche",
	}
}

// DefaultAssembler returns an Assembler with the settings the profiles
// were first created with.
func DefaultAssembler() Assembler {
	return Assembler{
		Cities:      DefaultCities(),
		Editor:      DefaultEditor(),
		ChangeDate:  "2022-07-10",
		ChangeText:  "Création de la fiche",
		Placeholder: true,
	}
}
