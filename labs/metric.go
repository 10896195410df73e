/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

// Metric identifies a tracked lab value. The string form is the column name
// used by the backing store.
type Metric string

// Blood counts.
const (
	WBC Metric = "WBC"
	RBC Metric = "RBC"
	Hb  Metric = "Hb"
	HCT Metric = "HCT"
	PLT Metric = "PLT"
)

// Kidney markers.
const (
	Urea            Metric = "Urea"
	CreatinineBlood Metric = "Creatinine_blood"
	SDMA            Metric = "SDMA"
	Phosphorus      Metric = "Phosphorus"
)

// Electrolytes.
const (
	Potassium Metric = "Potassium"
	Sodium    Metric = "Sodium"
	Chloride  Metric = "Chloride"
	ICalcium  Metric = "iCalcium"
)

// Liver and pancreas.
const (
	ALT          Metric = "ALT"
	Lipase       Metric = "Lipase"
	Amylase      Metric = "Amylase"
	Albumin      Metric = "Albumin"
	TotalProtein Metric = "Total_protein"
)

// Cardiac markers.
const (
	Troponin Metric = "Troponin"
)

// Urinalysis. UPCRatio is derived from ProteinUrine and CreatinineUrine and
// is never entered directly.
const (
	USG             Metric = "USG"
	ProteinUrine    Metric = "Protein_urine"
	CreatinineUrine Metric = "Creatinine_urine"
	UPCRatio        Metric = "UPC_ratio"
	LeukocytesUrine Metric = "Leukocytes_urine"
	GlucoseUrine    Metric = "Glucose_urine"
	Casts           Metric = "Casts"
)

// Panel groups metrics the way a lab report does.
type Panel string

// Panel values in report order.
const (
	PanelBloodCounts   Panel = "Blood Counts"
	PanelKidney        Panel = "Kidney"
	PanelElectrolytes  Panel = "Electrolytes"
	PanelLiverPancreas Panel = "Liver & Pancreas"
	PanelCardiac       Panel = "Cardiac"
	PanelUrine         Panel = "Urine"
)

// MetricDefinition describes one metric: how it is shown and its normal range.
type MetricDefinition struct {
	Metric  Metric
	Name    string
	Unit    string
	Panel   Panel
	Range   Range
	Derived bool
}

// metricDefinitions lists every tracked metric in store column order.
func metricDefinitions() []MetricDefinition {
	return []MetricDefinition{
		// Blood counts
		{Metric: WBC, Name: "White blood cells", Unit: "×10⁹/L", Panel: PanelBloodCounts, Range: Range{Low: 6.0, High: 17.0}},
		{Metric: RBC, Name: "Red blood cells", Unit: "×10¹²/L", Panel: PanelBloodCounts, Range: Range{Low: 5.5, High: 8.5}},
		{Metric: Hb, Name: "Hemoglobin", Unit: "g/L", Panel: PanelBloodCounts, Range: Range{Low: 120, High: 180}},
		{Metric: HCT, Name: "Hematocrit", Unit: "%", Panel: PanelBloodCounts, Range: Range{Low: 37, High: 55}},
		{Metric: PLT, Name: "Platelets", Unit: "×10⁹/L", Panel: PanelBloodCounts, Range: Range{Low: 200, High: 500}},

		// Kidney (key markers for CKD)
		{Metric: Urea, Name: "Urea", Unit: "mmol/L", Panel: PanelKidney, Range: Range{Low: 3.5, High: 10.0}},
		{Metric: CreatinineBlood, Name: "Creatinine (blood)", Unit: "µmol/L", Panel: PanelKidney, Range: Range{Low: 60, High: 140}},
		{Metric: SDMA, Name: "SDMA", Unit: "µg/dL", Panel: PanelKidney, Range: Range{Low: 0, High: 14}},
		{Metric: Phosphorus, Name: "Phosphorus", Unit: "mmol/L", Panel: PanelKidney, Range: Range{Low: 0.8, High: 2.0}},

		// Electrolytes
		{Metric: Potassium, Name: "Potassium", Unit: "mmol/L", Panel: PanelElectrolytes, Range: Range{Low: 3.5, High: 5.5}},
		{Metric: Sodium, Name: "Sodium", Unit: "mmol/L", Panel: PanelElectrolytes, Range: Range{Low: 140, High: 155}},
		{Metric: Chloride, Name: "Chloride", Unit: "mmol/L", Panel: PanelElectrolytes, Range: Range{Low: 105, High: 120}},
		{Metric: ICalcium, Name: "Ionized calcium", Unit: "mmol/L", Panel: PanelElectrolytes, Range: Range{Low: 1.1, High: 1.4}},

		// Liver and pancreas
		{Metric: ALT, Name: "ALT", Unit: "U/L", Panel: PanelLiverPancreas, Range: Range{Low: 10, High: 125}},
		{Metric: Lipase, Name: "Pancreatic lipase", Unit: "U/L", Panel: PanelLiverPancreas, Range: Range{Low: 0, High: 250}},
		{Metric: Amylase, Name: "Amylase", Unit: "U/L", Panel: PanelLiverPancreas, Range: Range{Low: 300, High: 2000}},
		{Metric: Albumin, Name: "Albumin", Unit: "g/L", Panel: PanelLiverPancreas, Range: Range{Low: 25, High: 40}},
		{Metric: TotalProtein, Name: "Total protein", Unit: "g/L", Panel: PanelLiverPancreas, Range: Range{Low: 55, High: 75}},

		// Cardiac
		{Metric: Troponin, Name: "Troponin", Unit: "ng/mL", Panel: PanelCardiac, Range: Range{Low: 0, High: 0.2}},

		// Urine
		{Metric: USG, Name: "Urine specific gravity", Unit: "", Panel: PanelUrine, Range: Range{Low: 1.015, High: 1.045}},
		{Metric: ProteinUrine, Name: "Protein (urine)", Unit: "mg/dL", Panel: PanelUrine, Range: Range{Low: 0, High: 30}},
		{Metric: CreatinineUrine, Name: "Creatinine (urine)", Unit: "mg/dL", Panel: PanelUrine, Range: Range{Low: 50, High: 250}},
		{Metric: UPCRatio, Name: "Protein/creatinine (UPC)", Unit: "UPC", Panel: PanelUrine, Range: Range{Low: 0.0, High: 0.5}, Derived: true},
		{Metric: LeukocytesUrine, Name: "Leukocytes (urine)", Unit: "per HPF", Panel: PanelUrine, Range: Range{Low: 0, High: 5}},
		{Metric: GlucoseUrine, Name: "Glucose (urine)", Unit: "", Panel: PanelUrine, Range: Range{Low: 0, High: 0}},
		{Metric: Casts, Name: "Casts", Unit: "per HPF", Panel: PanelUrine, Range: Range{Low: 0, High: 0}},
	}
}

// KeyMetrics returns the markers watched most closely for CKD and
// pancreatitis, in report order.
func KeyMetrics() []Metric {
	return []Metric{
		CreatinineBlood, Urea, Phosphorus, SDMA, // kidney
		ProteinUrine, UPCRatio, CreatinineUrine, USG, // urine
		Lipase, ALT, Albumin, // pancreas and liver
		Potassium, ICalcium, // electrolytes
	}
}
