// Package data holds the static demo catalog and directory seeds. The
// storefront has no database; everything is loaded once at startup.
package data

import "github.com/kingofshadpow/SOS-Auto/models"

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// Products returns the seed catalog. Each call returns a fresh slice so
// callers can own their copy.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "prod-001",
			Name:        "Filtre à Huile",
			Brand:       "Renault",
			Category:    "Filtration",
			SubCategory: "Filtre à huile",
			PartNumber:  "8200768927",
			Price:       15.99,
			Description: "Filtre à huile d'origine Renault pour moteurs essence et diesel. Garantit une filtration optimale et prolonge la durée de vie du moteur.",
			Specifications: map[string]string{
				"Hauteur":   "90 mm",
				"Diamètre":  "76 mm",
				"Filetage":  "M20 x 1.5",
				"Matériau":  "Papier filtrant haute densité",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Dacia", "Nissan"},
				Models: []string{"Clio IV", "Clio V", "Megane III", "Megane IV", "Captur", "Duster"},
				Years:  []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022},
			},
			Images:            []string{"/images/products/filtre-huile-renault.jpg"},
			Stock:             25,
			LowStockThreshold: 5,
			Rating:            4.7,
			ReviewCount:       128,
			IsPopular:         true,
			Alternatives: []models.Product{
				{
					ID:          "prod-001-alt1",
					Name:        "Filtre à Huile",
					Brand:       "Mann",
					Category:    "Filtration",
					SubCategory: "Filtre à huile",
					PartNumber:  "W75/3",
					Price:       12.50,
					Description: "Filtre à huile Mann-Filter, qualité équipementier d'origine.",
					Compatibility: models.Compatibility{
						Brands: []string{"Renault", "Dacia", "Nissan"},
						Models: []string{"Clio IV", "Clio V", "Megane III", "Captur", "Duster"},
						Years:  []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020},
					},
					Images:            []string{"/images/products/filtre-huile-mann.jpg"},
					Stock:             40,
					LowStockThreshold: 8,
					Rating:            4.5,
					ReviewCount:       86,
				},
			},
		},
		{
			ID:            "prod-002",
			Name:          "Plaquettes de Frein Avant",
			Brand:         "Bosch",
			Category:      "Freinage",
			SubCategory:   "Plaquettes de frein",
			PartNumber:    "0986494104",
			Price:         45.99,
			OriginalPrice: floatPtr(59.99),
			Description:   "Jeu de plaquettes de frein avant Bosch. Freinage progressif et silencieux, faible émission de poussière.",
			Specifications: map[string]string{
				"Épaisseur": "17.5 mm",
				"Largeur":   "140 mm",
				"Hauteur":   "54.5 mm",
				"Témoin":    "Témoin d'usure acoustique inclus",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Peugeot", "Citroën"},
				Models: []string{"Clio IV", "208", "2008", "C3", "C4 Cactus"},
				Years:  []int{2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021},
			},
			Images:            []string{"/images/products/plaquettes-bosch.jpg"},
			Stock:             18,
			LowStockThreshold: 4,
			Rating:            4.8,
			ReviewCount:       214,
			IsPopular:         true,
			Alternatives: []models.Product{
				{
					ID:          "prod-002-alt1",
					Name:        "Plaquettes de Frein Avant",
					Brand:       "TRW",
					Category:    "Freinage",
					SubCategory: "Plaquettes de frein",
					PartNumber:  "GDB1789",
					Price:       38.90,
					Description: "Plaquettes de frein avant TRW, homologuées ECE R90.",
					Compatibility: models.Compatibility{
						Brands: []string{"Renault", "Peugeot", "Citroën"},
						Models: []string{"Clio IV", "208", "C3"},
						Years:  []int{2013, 2014, 2015, 2016, 2017, 2018, 2019},
					},
					Images:            []string{"/images/products/plaquettes-trw.jpg"},
					Stock:             22,
					LowStockThreshold: 5,
					Rating:            4.4,
					ReviewCount:       97,
				},
			},
		},
		{
			ID:          "prod-003",
			Name:        "Filtre à Air",
			Brand:       "Peugeot",
			Category:    "Filtration",
			SubCategory: "Filtre à air",
			PartNumber:  "1444TT",
			Price:       22.50,
			Description: "Filtre à air d'origine Peugeot. Protège le moteur des impuretés et optimise la combustion.",
			Specifications: map[string]string{
				"Longueur": "213 mm",
				"Largeur":  "213 mm",
				"Hauteur":  "58 mm",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Peugeot", "Citroën", "DS"},
				Models: []string{"208", "308", "2008", "3008", "C3", "C4", "DS3"},
				Years:  []int{2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023},
			},
			Images:            []string{"/images/products/filtre-air-peugeot.jpg"},
			Stock:             31,
			LowStockThreshold: 6,
			Rating:            4.6,
			ReviewCount:       74,
			IsPopular:         true,
		},
		{
			ID:          "prod-004",
			Name:        "Amortisseur Arrière",
			Brand:       "Monroe",
			Category:    "Suspension",
			SubCategory: "Amortisseurs",
			PartNumber:  "G8803",
			Price:       89.99,
			Description: "Amortisseur arrière à gaz Monroe Original. Confort et tenue de route d'origine, vendu à l'unité.",
			Specifications: map[string]string{
				"Type":         "Bitube à gaz",
				"Fixation":     "Œillet / Tige",
				"Longueur max": "565 mm",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault"},
				Models: []string{"Megane III", "Scenic III", "Fluence"},
				Years:  []int{2009, 2010, 2011, 2012, 2013, 2014, 2015, 2016},
			},
			Images:            []string{"/images/products/amortisseur-monroe.jpg"},
			Stock:             8,
			LowStockThreshold: 3,
			Rating:            4.5,
			ReviewCount:       56,
		},
		{
			ID:          "prod-005",
			Name:        "Batterie 12V 60Ah",
			Brand:       "Varta",
			Category:    "Électricité",
			SubCategory: "Batteries",
			PartNumber:  "D59",
			Price:       98.00,
			Description: "Batterie Varta Blue Dynamic 12V 60Ah 540A. Démarrage fiable par tous les temps.",
			Specifications: map[string]string{
				"Tension":            "12 V",
				"Capacité":           "60 Ah",
				"Courant de pointe":  "540 A",
				"Polarité":           "+ à droite",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Peugeot", "Citroën", "Volkswagen", "Ford"},
				Models: []string{"Clio IV", "208", "C3", "Polo", "Fiesta", "Golf VII"},
				Years:  []int{2010, 2011, 2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022},
			},
			Images:            []string{"/images/products/batterie-varta.jpg"},
			Stock:             12,
			LowStockThreshold: 4,
			Rating:            4.7,
			ReviewCount:       183,
			IsPopular:         true,
		},
		{
			ID:            "prod-006",
			Name:          "Kit de Distribution",
			Brand:         "Gates",
			Category:      "Distribution",
			SubCategory:   "Kits de distribution",
			PartNumber:    "K015578XS",
			Price:         129.90,
			OriginalPrice: floatPtr(164.90),
			Description:   "Kit de distribution complet Gates PowerGrip : courroie, galet tendeur et galet enrouleur.",
			Specifications: map[string]string{
				"Nombre de dents": "123",
				"Largeur":         "25.4 mm",
				"Contenu":         "Courroie + 2 galets",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Dacia"},
				Models: []string{"Clio III", "Clio IV", "Kangoo", "Sandero", "Logan"},
				Years:  []int{2008, 2009, 2010, 2011, 2012, 2013, 2014, 2015, 2016, 2017},
			},
			Images:            []string{"/images/products/kit-distribution-gates.jpg"},
			Stock:             6,
			LowStockThreshold: 2,
			Rating:            4.9,
			ReviewCount:       41,
		},
		{
			ID:          "prod-007",
			Name:        "Bougies d'Allumage (x4)",
			Brand:       "NGK",
			Category:    "Allumage",
			SubCategory: "Bougies",
			PartNumber:  "BKR6EK",
			Price:       28.60,
			Description: "Jeu de 4 bougies d'allumage NGK à double électrode. Allumage franc et consommation maîtrisée.",
			Specifications: map[string]string{
				"Écartement": "0.9 mm",
				"Filetage":   "M14 x 1.25",
				"Culot":      "19 mm",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Peugeot", "Citroën", "BMW", "Mini"},
				Models: []string{"208", "308", "C3", "Serie 1", "Cooper"},
				Years:  []int{2006, 2007, 2008, 2009, 2010, 2011, 2012, 2013, 2014, 2015},
			},
			Images:            []string{"/images/products/bougies-ngk.jpg"},
			Stock:             44,
			LowStockThreshold: 10,
			Rating:            4.6,
			ReviewCount:       102,
		},
		{
			ID:          "prod-008",
			Name:        "Disques de Frein Avant (x2)",
			Brand:       "Brembo",
			Category:    "Freinage",
			SubCategory: "Disques de frein",
			PartNumber:  "09.9772.11",
			Price:       74.50,
			Description: "Paire de disques de frein avant ventilés Brembo, revêtement UV anti-corrosion.",
			Specifications: map[string]string{
				"Diamètre":  "258 mm",
				"Épaisseur": "22 mm",
				"Type":      "Ventilé",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Dacia"},
				Models: []string{"Clio IV", "Captur", "Sandero"},
				Years:  []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020},
			},
			Images:            []string{"/images/products/disques-brembo.jpg"},
			Stock:             0,
			LowStockThreshold: 3,
			RestockDate:       strPtr("2026-09-15"),
			Rating:            4.8,
			ReviewCount:       67,
		},
		{
			ID:          "prod-009",
			Name:        "Courroie d'Accessoires",
			Brand:       "Contitech",
			Category:    "Distribution",
			SubCategory: "Courroies",
			PartNumber:  "6PK1019",
			Price:       19.40,
			Description: "Courroie trapézoïdale à nervures Contitech pour l'entraînement des accessoires.",
			Specifications: map[string]string{
				"Nervures": "6",
				"Longueur": "1019 mm",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Peugeot", "Citroën", "Ford"},
				Models: []string{"206", "207", "C2", "C3", "Fiesta"},
				Years:  []int{2002, 2003, 2004, 2005, 2006, 2007, 2008, 2009, 2010, 2011, 2012},
			},
			Images:            []string{"/images/products/courroie-contitech.jpg"},
			Stock:             27,
			LowStockThreshold: 5,
			Rating:            4.3,
			ReviewCount:       38,
		},
		{
			ID:          "prod-010",
			Name:        "Essuie-Glaces Avant (x2)",
			Brand:       "Valeo",
			Category:    "Visibilité",
			SubCategory: "Essuie-glaces",
			PartNumber:  "VF397",
			Price:       24.90,
			Description: "Paire de balais d'essuie-glace plats Valeo Silencio X.TRM, montage d'origine.",
			Specifications: map[string]string{
				"Côté conducteur": "600 mm",
				"Côté passager":   "400 mm",
				"Fixation":        "Pinch tab",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Peugeot", "Citroën", "Volkswagen"},
				Models: []string{"Clio IV", "Megane IV", "308", "C4", "Golf VII"},
				Years:  []int{2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022},
			},
			Images:            []string{"/images/products/essuie-glace-valeo.jpg"},
			Stock:             53,
			LowStockThreshold: 10,
			Rating:            4.4,
			ReviewCount:       149,
			IsPopular:         true,
		},
		{
			ID:            "prod-011",
			Name:          "Kit d'Embrayage",
			Brand:         "Valeo",
			Category:      "Transmission",
			SubCategory:   "Embrayage",
			PartNumber:    "826317",
			Price:         245.00,
			OriginalPrice: floatPtr(289.00),
			Description:   "Kit d'embrayage complet Valeo 3 pièces : mécanisme, disque et butée.",
			Specifications: map[string]string{
				"Diamètre":      "215 mm",
				"Nombre dents":  "26",
				"Contenu":       "Mécanisme + disque + butée",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"BMW"},
				Models: []string{"Serie 1", "Serie 3"},
				Years:  []int{2005, 2006, 2007, 2008, 2009, 2010, 2011},
			},
			Images:            []string{"/images/products/embrayage-valeo.jpg"},
			Stock:             4,
			LowStockThreshold: 2,
			Rating:            4.7,
			ReviewCount:       29,
		},
		{
			ID:          "prod-012",
			Name:        "Filtre d'Habitacle",
			Brand:       "Mann",
			Category:    "Filtration",
			SubCategory: "Filtre habitacle",
			PartNumber:  "CUK2545",
			Price:       16.80,
			Description: "Filtre d'habitacle à charbon actif Mann-Filter. Retient pollens, poussières et odeurs.",
			Specifications: map[string]string{
				"Type":     "Charbon actif",
				"Longueur": "264 mm",
				"Largeur":  "164 mm",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Nissan"},
				Models: []string{"Clio IV", "Captur", "Juke", "Micra"},
				Years:  []int{2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019},
			},
			Images:            []string{"/images/products/filtre-habitacle-mann.jpg"},
			Stock:             36,
			LowStockThreshold: 8,
			Rating:            4.5,
			ReviewCount:       61,
		},
		{
			ID:          "prod-013",
			Name:        "Ampoules H7 (x2)",
			Brand:       "Philips",
			Category:    "Visibilité",
			SubCategory: "Éclairage",
			PartNumber:  "12972VPS2",
			Price:       18.95,
			Description: "Paire d'ampoules halogènes Philips VisionPlus H7, jusqu'à 60% de lumière en plus.",
			Specifications: map[string]string{
				"Culot":     "PX26d",
				"Puissance": "55 W",
				"Tension":   "12 V",
			},
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Peugeot", "Citroën", "Volkswagen", "Ford", "BMW"},
				Models: []string{"Clio IV", "208", "308", "C3", "Golf VII", "Fiesta", "Serie 1"},
				Years:  []int{2000, 2005, 2010, 2012, 2014, 2016, 2018, 2020, 2022},
			},
			Images:            []string{"/images/products/ampoules-philips.jpg"},
			Stock:             68,
			LowStockThreshold: 15,
			Rating:            4.2,
			ReviewCount:       204,
		},
	}
}
