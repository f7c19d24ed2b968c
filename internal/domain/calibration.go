package domain

// Calibration holds the jurisdiction- and period-specific constants of the
// simplified pension, insurance and tax model. Values are loaded from the
// defaults in the calculation package and may be overridden per scenario file.
type Calibration struct {
	Pension   PensionCalibration   `yaml:"pension" json:"pension"`
	Insurance InsuranceCalibration `yaml:"insurance" json:"insurance"`
	Tax       TaxCalibration       `yaml:"tax" json:"tax"`
}

// PensionCalibration describes the earnings-point scheme.
type PensionCalibration struct {
	AverageAnnualIncome  float64 `yaml:"average_annual_income" json:"average_annual_income"`
	ContributionCeiling  float64 `yaml:"contribution_ceiling" json:"contribution_ceiling"` // annual, not indexed
	MaxPointsPerYear     float64 `yaml:"max_points_per_year" json:"max_points_per_year"`
	WageGrowthMargin     float64 `yaml:"wage_growth_margin" json:"wage_growth_margin"` // added to inflation
	MaxWageGrowth        float64 `yaml:"max_wage_growth" json:"max_wage_growth"`
	PensionValuePerPoint float64 `yaml:"pension_value_per_point" json:"pension_value_per_point"`
	PensionValueGrowth   float64 `yaml:"pension_value_growth" json:"pension_value_growth"`
}

// InsuranceCalibration holds the health and long-term care contribution rates.
type InsuranceCalibration struct {
	GeneralHealthRate      float64 `yaml:"general_health_rate" json:"general_health_rate"`
	SupplementalHealthRate float64 `yaml:"supplemental_health_rate" json:"supplemental_health_rate"`
	LongTermCareRate       float64 `yaml:"long_term_care_rate" json:"long_term_care_rate"`
	MedicalInflation       float64 `yaml:"medical_inflation" json:"medical_inflation"`
}

// TaxCalibration holds the income tax approximation.
type TaxCalibration struct {
	Bands                 []TaxBand      `yaml:"bands" json:"bands"`
	ChurchTaxRate         float64        `yaml:"church_tax_rate" json:"church_tax_rate"`
	ReducedChurchTaxRate  float64        `yaml:"reduced_church_tax_rate" json:"reduced_church_tax_rate"`
	ReducedChurchTaxAreas []Jurisdiction `yaml:"reduced_church_tax_areas" json:"reduced_church_tax_areas"`
}

// TaxBand is a slice of annual taxable income taxed at a marginal rate that
// moves linearly from StartRate at Lower to EndRate at Upper. Upper zero marks
// the open top band; a flat band has StartRate == EndRate.
type TaxBand struct {
	Lower     float64 `yaml:"lower" json:"lower"`
	Upper     float64 `yaml:"upper" json:"upper"`
	StartRate float64 `yaml:"start_rate" json:"start_rate"`
	EndRate   float64 `yaml:"end_rate" json:"end_rate"`
}
