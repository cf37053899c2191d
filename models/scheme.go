// Package models contains domain entities and business models for the scheme portal
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Scheme categories
const (
	CategorySubsidy           = "Subsidy"
	CategoryLoan              = "Loan"
	CategoryInsurance         = "Insurance"
	CategoryTraining          = "Training"
	CategoryEquipment         = "Equipment"
	CategoryIrrigation        = "Irrigation"
	CategoryOrganicFarming    = "Organic Farming"
	CategoryMarketSupport     = "Market Support"
	CategoryLandDevelopment   = "Land Development"
	CategoryWeatherProtection = "Weather Protection"
	CategoryOther             = "Other"
)

// SchemeCategories lists every valid category value
var SchemeCategories = []string{
	CategorySubsidy,
	CategoryLoan,
	CategoryInsurance,
	CategoryTraining,
	CategoryEquipment,
	CategoryIrrigation,
	CategoryOrganicFarming,
	CategoryMarketSupport,
	CategoryLandDevelopment,
	CategoryWeatherProtection,
	CategoryOther,
}

// StateAllIndia is the default state value for schemes that apply nationwide
const StateAllIndia = "All India"

// SchemeStates lists every valid state value
var SchemeStates = []string{
	StateAllIndia, "Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar",
	"Chhattisgarh", "Goa", "Gujarat", "Haryana", "Himachal Pradesh",
	"Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
	"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Delhi", "Other",
}

// IsValidCategory reports whether v belongs to the category enumeration
func IsValidCategory(v string) bool {
	for _, c := range SchemeCategories {
		if c == v {
			return true
		}
	}
	return false
}

// IsValidState reports whether v belongs to the state enumeration
func IsValidState(v string) bool {
	for _, s := range SchemeStates {
		if s == v {
			return true
		}
	}
	return false
}

// Scheme is a government assistance program record shown to end users
type Scheme struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_schemes_uuid" json:"id"`

	Name             string `gorm:"size:200;not null" json:"name"`
	ShortDescription string `gorm:"size:300;not null" json:"shortDescription"`
	Description      string `gorm:"type:text;not null" json:"description"`
	OfficialLink     string `gorm:"size:2048;not null" json:"officialLink"`
	Category         string `gorm:"size:64;not null;index:idx_schemes_category" json:"category"`
	Ministry         string `gorm:"size:255;not null;index:idx_schemes_ministry" json:"ministry"`
	Eligibility      string `gorm:"type:text;not null" json:"eligibility"`
	Benefits         string `gorm:"type:text;not null" json:"benefits"`

	ApplicationProcess string         `gorm:"type:text" json:"applicationProcess,omitempty"`
	Documents          pq.StringArray `gorm:"type:text[]" json:"documents,omitempty"`
	LaunchDate         *time.Time     `json:"launchDate,omitempty"`
	ImageURL           string         `gorm:"size:2048;default:''" json:"imageUrl"`
	State              string         `gorm:"size:64;not null;default:'All India';index:idx_schemes_state" json:"state"`

	IsActive  *bool `gorm:"default:true;index:idx_schemes_is_active" json:"isActive"`
	ViewCount int64 `gorm:"not null;default:0" json:"viewCount"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_schemes_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// SchemeFilter represents filter criteria for scheme queries.
// Search performs a ranked full-text match over name, descriptions, category
// and ministry; NameOrCategoryLike is the looser unranked substring match used
// by the admin listing. The two are never combined.
type SchemeFilter struct {
	ID                 *uint
	UUID               *uuid.UUID
	Category           *string
	State              *string
	MinistryLike       *string
	IsActive           *bool
	Search             *string
	NameOrCategoryLike *string
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
}
