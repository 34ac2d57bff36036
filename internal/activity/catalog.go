package activity

// Rule binds one activity type to its category and trigger keywords.
// Rules are matched in order by substring containment against the
// lowercased message body; the first keyword hit wins. Matching is
// deliberately loose (no word boundaries) to stay compatible with
// existing classified data.
type Rule struct {
	Type     Type
	Category Category
	Keywords []string
}

// Catalog is the fixed classification rule set, built once and read-only
// afterwards. Order is priority order. The same type may appear more than
// once; the generic bottle_feed entry catches feeding verbs that name no
// method, and the feeding-subtype disambiguation picks the final type.
var Catalog = []Rule{
	{TypeBottleFeed, CategoryFeeding, []string{"bottle", "formula", "expressed"}},
	{TypeBreastFeed, CategoryFeeding, []string{"breast", "nursing", "breastfeed", "bf"}},
	{TypeSolidFood, CategoryFeeding, []string{"solid", "puree", "cereal", "food", "ate", "breakfast", "lunch", "dinner", "snack"}},
	{TypeBottleFeed, CategoryFeeding, []string{"fed", "feed", "feeding", "milk", "eat", "drinking"}},

	{TypeWetDiaper, CategoryDiaper, []string{"wet", "pee", "urinated"}},
	{TypeDirtyDiaper, CategoryDiaper, []string{"poop", "poo", "bowel", "dirty", "soiled", "bm"}},
	{TypeDiaperChange, CategoryDiaper, []string{"changed", "diaper change", "new diaper", "diaper", "nappy"}},

	{TypeNap, CategorySleep, []string{"nap", "napped", "daytime sleep", "afternoon sleep", "sleep", "slept", "sleeping", "asleep"}},
	{TypeNightSleep, CategorySleep, []string{"bedtime", "night sleep", "went to bed", "sleeping through"}},
	{TypeWakeUp, CategorySleep, []string{"woke", "wake up", "awake", "got up"}},

	{TypeTemperature, CategoryHealth, []string{"temp", "temperature", "fever", "degrees"}},
	{TypeSymptom, CategoryHealth, []string{"cough", "sneeze", "rash", "crying", "fussy", "teething", "sick"}},
	{TypeDoctorVisit, CategoryHealth, []string{"doctor", "pediatrician", "clinic", "checkup", "appointment"}},

	{TypeWeight, CategoryMeasurement, []string{"weight", "weigh", "weighs", "kg", "lbs", "pounds"}},
	{TypeHeight, CategoryMeasurement, []string{"height", "length", "tall", "cm", "inches"}},
	{TypeHeadCirc, CategoryMeasurement, []string{"head circumference", "head size"}},

	{TypeMedication, CategoryMedicine, []string{"medicine", "medication", "dose", "tylenol", "ibuprofen", "antibiotic"}},
	{TypeVitamin, CategoryMedicine, []string{"vitamin", "supplement", "d3", "iron"}},

	{TypeVaccination, CategoryVaccine, []string{"vaccine", "vaccination", "shot", "immunization", "immunize"}},
	{TypeImmunization, CategoryVaccine, []string{"immunization", "immunize", "shots"}},
	{TypeBooster, CategoryVaccine, []string{"booster", "booster shot", "follow up vaccine"}},

	{TypeExtraction, CategoryFeeding, []string{"extracted", "pumped", "pumping", "expressing", "expressed milk"}},
}
