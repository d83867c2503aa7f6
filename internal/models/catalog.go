package models

// AnalysisType is one entry of the fixed lab catalog.
type AnalysisType struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// AnalysisCatalog lists the lab analyses the clinic offers, in the order
// the site presents them. Names are the Arabic display names.
var AnalysisCatalog = []AnalysisType{
	{Code: "blood", Name: "تحليل الدم"},
	{Code: "urine", Name: "تحليل البول"},
	{Code: "hormones", Name: "تحليل الهرمونات"},
	{Code: "vitamins", Name: "تحليل الفيتامينات"},
	{Code: "allergy", Name: "تحليل الحساسية"},
	{Code: "genetic", Name: "التحليل الوراثي"},
}

// AnalysisDisplayName resolves a catalog code to its display name. Unknown
// codes fall back to the raw code.
func AnalysisDisplayName(code string) string {
	for _, a := range AnalysisCatalog {
		if a.Code == code {
			return a.Name
		}
	}
	return code
}

// Doctor is a bookable clinician from the configured roster.
type Doctor struct {
	Name      string `yaml:"name" json:"name"`
	Specialty string `yaml:"specialty" json:"specialty"`
}
