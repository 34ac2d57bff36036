package activity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Category is the coarse grouping of an infant-care event.
type Category string

const (
	CategoryFeeding     Category = "feeding"
	CategoryDiaper      Category = "diaper"
	CategorySleep       Category = "sleep"
	CategoryHealth      Category = "health"
	CategoryMeasurement Category = "measurement"
	CategoryMedicine    Category = "medicine"
	CategoryVaccine     Category = "vaccine"
	CategoryOther       Category = "other"
)

// Type refines a Category to a specific activity.
type Type string

const (
	TypeBottleFeed   Type = "bottle_feed"
	TypeBreastFeed   Type = "breast_feed"
	TypeSolidFood    Type = "solid_food"
	TypeExtraction   Type = "breast_milk_extraction"
	TypeWetDiaper    Type = "wet_diaper"
	TypeDirtyDiaper  Type = "dirty_diaper"
	TypeDiaperChange Type = "diaper_change"
	TypeNap          Type = "nap"
	TypeNightSleep   Type = "night_sleep"
	TypeWakeUp       Type = "wake_up"
	TypeTemperature  Type = "temperature"
	TypeSymptom      Type = "symptom"
	TypeDoctorVisit  Type = "doctor_visit"
	TypeWeight       Type = "weight"
	TypeHeight       Type = "height"
	TypeHeadCirc     Type = "head_circumference"
	TypeMedication   Type = "medication"
	TypeVitamin      Type = "vitamin"
	TypeVaccination  Type = "vaccination"
	TypeImmunization Type = "immunization"
	TypeBooster      Type = "booster"
	TypeOther        Type = "other"
)

// Record origin values.
const (
	OriginImport = "import"
	OriginManual = "manual"
)

// Record is one structured, classified infant-care event.
type Record struct {
	ID              string
	Timestamp       time.Time
	Category        Category
	Type            Type
	Description     string
	Amount          *float64 // optional, canonical unit in Unit
	Unit            string
	DurationMinutes *int
	Notes           string
	Tags            []string
	Origin          string // "import" or "manual"
	Sender          string
}

// NewID returns a fresh stable identifier for a record.
func NewID() string {
	return uuid.NewString()
}

// DisplayTime formats the event timestamp the way list views show it.
func (r Record) DisplayTime() string {
	return r.Timestamp.Format("2006-01-02 15:04")
}

// CategoryOf maps an activity type to its category. The mapping is total:
// unknown types fall through to CategoryOther.
func CategoryOf(t Type) Category {
	switch t {
	case TypeBottleFeed, TypeBreastFeed, TypeSolidFood, TypeExtraction:
		return CategoryFeeding
	case TypeWetDiaper, TypeDirtyDiaper, TypeDiaperChange:
		return CategoryDiaper
	case TypeNap, TypeNightSleep, TypeWakeUp:
		return CategorySleep
	case TypeTemperature, TypeSymptom, TypeDoctorVisit:
		return CategoryHealth
	case TypeWeight, TypeHeight, TypeHeadCirc:
		return CategoryMeasurement
	case TypeMedication, TypeVitamin:
		return CategoryMedicine
	case TypeVaccination, TypeImmunization, TypeBooster:
		return CategoryVaccine
	default:
		return CategoryOther
	}
}

// ParseCategory validates a stored category string, falling back to
// CategoryOther for anything unrecognized. This is the single boundary
// where loose strings become enum values.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryFeeding, CategoryDiaper, CategorySleep, CategoryHealth,
		CategoryMeasurement, CategoryMedicine, CategoryVaccine, CategoryOther:
		return Category(s)
	default:
		return CategoryOther
	}
}

// ParseType validates a stored activity type string, falling back to
// TypeOther for anything unrecognized.
func ParseType(s string) Type {
	t := Type(s)
	switch t {
	case TypeBottleFeed, TypeBreastFeed, TypeSolidFood, TypeExtraction,
		TypeWetDiaper, TypeDirtyDiaper, TypeDiaperChange,
		TypeNap, TypeNightSleep, TypeWakeUp,
		TypeTemperature, TypeSymptom, TypeDoctorVisit,
		TypeWeight, TypeHeight, TypeHeadCirc,
		TypeMedication, TypeVitamin,
		TypeVaccination, TypeImmunization, TypeBooster,
		TypeOther:
		return t
	default:
		return TypeOther
	}
}

// DedupTags returns tags with duplicates removed, sorted for stable output.
func DedupTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
