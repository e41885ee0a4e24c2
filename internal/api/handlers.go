package api

import (
	"time"

	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	repositories   *db.Repositories
	cycleService   *services.CycleService
	profileService *services.ProfileService
	location       *time.Location
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	profileService := services.NewProfileService(repositories.Profiles)
	cycleService := services.NewCycleService(repositories.Cycles, repositories.Profiles)
	cycleService.SetAfterSaveHook(profileService.Hook())

	return &Handler{
		db:             database,
		repositories:   repositories,
		cycleService:   cycleService,
		profileService: profileService,
		location:       location,
	}
}

type cyclePayload struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Symptoms       string `json:"symptoms"`
	Medication     string `json:"medication"`
	CycleLength    int    `json:"cycle_length"`
	PeriodDuration int    `json:"period_duration"`
}

type wellnessPayload struct {
	Date             string  `json:"date"`
	StressLevel      int     `json:"stress_level"`
	SleepHours       float64 `json:"sleep_hours"`
	MoodLevel        int     `json:"mood_level"`
	EnergyLevel      int     `json:"energy_level"`
	PainLevel        int     `json:"pain_level"`
	ExerciseMinutes  int     `json:"exercise_minutes"`
	NutritionQuality int     `json:"nutrition_quality"`
	CaffeineIntake   int     `json:"caffeine_intake"`
	AlcoholIntake    int     `json:"alcohol_intake"`
	Smoking          int     `json:"smoking"`
	AnxietyLevel     int     `json:"anxiety_level"`
	FocusLevel       int     `json:"focus_level"`
	Notes            string  `json:"notes"`
}

type profilePayload struct {
	Sex            string `json:"sex"`
	CycleLength    int    `json:"cycle_length"`
	PeriodDuration int    `json:"period_duration"`
}
