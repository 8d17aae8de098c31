package models

import "time"

// PatientSummary is one row of the patient_summary materialized view, the
// read model every chart query runs against.
type PatientSummary struct {
	ID    int64  `json:"id" gorm:"column:id;primaryKey"`
	DnaID string `json:"-" gorm:"column:dna_id"`

	Age                   *int       `json:"age"`
	Gender                *string    `json:"gender"`
	Nationality           *string    `json:"nationality"`
	EnrollmentDate        *time.Time `json:"enrollment_date"`
	CurrentCityCategory   *string    `json:"current_city_category"`
	ChildhoodCityCategory *string    `json:"childhood_city_category"`
	MigrationPattern      *string    `json:"migration_pattern"`

	BMI          *float64 `json:"bmi" gorm:"column:bmi"`
	SystolicBP   *float64 `json:"systolic_bp" gorm:"column:systolic_bp"`
	DiastolicBP  *float64 `json:"diastolic_bp" gorm:"column:diastolic_bp"`
	HeartRate    *float64 `json:"heart_rate"`
	WeightKg     *float64 `json:"weight_kg"`
	HeightCm     *float64 `json:"height_cm"`
	SmokingYears *float64 `json:"smoking_years"`

	HbA1c     *float64 `json:"hba1c" gorm:"column:hba1c"`
	TroponinI *float64 `json:"troponin_i" gorm:"column:troponin_i"`

	EchoEF *float64 `json:"echo_ef" gorm:"column:echo_ef"`
	MriEF  *float64 `json:"mri_ef" gorm:"column:mri_ef"`
	LVMass *float64 `json:"lv_mass" gorm:"column:lv_mass"`
	RVEF   *float64 `json:"rv_ef" gorm:"column:rv_ef"`

	DataCompleteness int `json:"data_completeness"`
}

// TableName specifies the view name
func (PatientSummary) TableName() string {
	return "patient_summary"
}
