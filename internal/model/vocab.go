package model

// Item categories.
const (
	CategoryChemistry      = "Chemistry"
	CategoryHematology     = "Hematology"
	CategoryImmunoserology = "Immunoserology"
)

// Categories lists the permitted categories in display order.
var Categories = []string{
	CategoryChemistry,
	CategoryHematology,
	CategoryImmunoserology,
}

// ItemNames maps each category to its fixed, ordered list of permitted item
// names. The lists drive form selection only; Validate deliberately does not
// reject names outside them, so free-text entries stay loadable.
var ItemNames = map[string][]string{
	CategoryChemistry: {
		"Glucose",
		"Cholesterol",
		"Triglycerides",
		"HDL Cholesterol",
		"Creatinine",
		"Uric Acid",
		"Blood Urea Nitrogen",
		"SGPT (ALT)",
		"SGOT (AST)",
		"Total Protein",
		"Albumin",
	},
	CategoryHematology: {
		"CBC Diluent",
		"Lyse Reagent",
		"EDTA Tubes",
		"Wright's Stain",
		"Reticulocyte Stain",
		"Probe Cleanser",
	},
	CategoryImmunoserology: {
		"HBsAg Test Kit",
		"Anti-HCV Test Kit",
		"HIV 1/2 Test Kit",
		"Syphilis (RPR) Kit",
		"Dengue NS1 Kit",
		"Typhoid IgG/IgM Kit",
	},
}
