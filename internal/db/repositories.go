package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles   *CycleRepository
	Wellness *WellnessRepository
	Profiles *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:   NewCycleRepository(database),
		Wellness: NewWellnessRepository(database),
		Profiles: NewProfileRepository(database),
	}
}
