package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryFamily   Category = "family"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryWork: true, CategoryFamily: true, CategoryPersonal: true, CategoryHealth: true,
}

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[EnergyLevel]bool{
	EnergyHigh: true, EnergyMedium: true, EnergyLow: true,
}

// DetailMode selects the verbosity tier of both the prompt and the
// expected response.
type DetailMode string

const (
	DetailShort DetailMode = "short"
	DetailLong  DetailMode = "long"
)

// ValidDetailModes is the canonical set of accepted detail mode strings.
var ValidDetailModes = map[DetailMode]bool{
	DetailShort: true, DetailLong: true,
}

// Defaults applied when a value is missing or outside its enum.
const (
	DefaultPriority Priority    = PriorityMedium
	DefaultCategory Category    = CategoryWork
	DefaultEnergy   EnergyLevel = EnergyMedium
	DefaultDetail   DetailMode  = DetailShort
)
