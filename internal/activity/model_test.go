package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCategoryOfIsTotal(t *testing.T) {
	cases := map[Type]Category{
		TypeBottleFeed:   CategoryFeeding,
		TypeBreastFeed:   CategoryFeeding,
		TypeSolidFood:    CategoryFeeding,
		TypeExtraction:   CategoryFeeding,
		TypeWetDiaper:    CategoryDiaper,
		TypeDirtyDiaper:  CategoryDiaper,
		TypeDiaperChange: CategoryDiaper,
		TypeNap:          CategorySleep,
		TypeNightSleep:   CategorySleep,
		TypeWakeUp:       CategorySleep,
		TypeTemperature:  CategoryHealth,
		TypeSymptom:      CategoryHealth,
		TypeDoctorVisit:  CategoryHealth,
		TypeWeight:       CategoryMeasurement,
		TypeHeight:       CategoryMeasurement,
		TypeHeadCirc:     CategoryMeasurement,
		TypeMedication:   CategoryMedicine,
		TypeVitamin:      CategoryMedicine,
		TypeVaccination:  CategoryVaccine,
		TypeImmunization: CategoryVaccine,
		TypeBooster:      CategoryVaccine,
		TypeOther:        CategoryOther,
		Type("bogus"):    CategoryOther,
	}
	for typ, want := range cases {
		require.Equal(t, want, CategoryOf(typ), "type %s", typ)
	}
}

func TestCatalogTypesMatchCategories(t *testing.T) {
	for _, rule := range Catalog {
		require.Equal(t, rule.Category, CategoryOf(rule.Type), "rule for %s", rule.Type)
		require.NotEmpty(t, rule.Keywords, "rule for %s", rule.Type)
	}
}

func TestParseCategoryFallback(t *testing.T) {
	require.Equal(t, CategoryFeeding, ParseCategory("feeding"))
	require.Equal(t, CategoryVaccine, ParseCategory("vaccine"))
	require.Equal(t, CategoryOther, ParseCategory("nonsense"))
	require.Equal(t, CategoryOther, ParseCategory(""))
}

func TestParseTypeFallback(t *testing.T) {
	require.Equal(t, TypeBottleFeed, ParseType("bottle_feed"))
	require.Equal(t, TypeExtraction, ParseType("breast_milk_extraction"))
	require.Equal(t, TypeOther, ParseType("nonsense"))
	require.Equal(t, TypeOther, ParseType(""))
}

func TestDedupTags(t *testing.T) {
	require.Nil(t, DedupTags(nil))
	require.Equal(t, []string{"milestone", "positive"}, DedupTags([]string{"positive", "milestone", "positive"}))
}

func TestDisplayTime(t *testing.T) {
	r := Record{Timestamp: time.Date(2025, 9, 21, 13, 18, 0, 0, time.UTC)}
	require.Equal(t, "2025-09-21 13:18", r.DisplayTime())
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
