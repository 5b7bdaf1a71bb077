package testutils

import (
	"github.com/paragonforge/planner-api/internal/entities"
)

// CreateTestArchetype creates an archetype with caps for testing
func CreateTestArchetype(id string) *entities.Archetype {
	return &entities.Archetype{
		ID:          id,
		Name:        id,
		DisplayName: id,
		Modifiers: &entities.ArchetypeModifiers{
			BaseHP:       1000,
			BaseRegen:    100,
			BaseRecovery: 100,
			BaseThreat:   1,
		},
		Caps: &entities.ArchetypeCaps{
			Damage:       400,
			Resistance:   75,
			Defense:      45,
			HP:           1606,
			Regeneration: 2000,
			Recovery:     500,
			Recharge:     400,
		},
	}
}

// CreateTestPowerset creates a powerset of the given type for testing
func CreateTestPowerset(id string, psType entities.PowersetType) *entities.Powerset {
	return &entities.Powerset{
		ID:   id,
		Name: id,
		Type: psType,
	}
}

// CreateTestPower creates a power available at level 1 for testing
func CreateTestPower(id string) *entities.Power {
	return &entities.Power{
		ID:             id,
		Name:           id,
		LevelAvailable: 1,
	}
}

// CreateTestEnhancement creates a single-origin enhancement for testing
func CreateTestEnhancement(id string) *entities.Enhancement {
	return &entities.Enhancement{
		ID:   id,
		Name: id,
		Type: entities.EnhancementTypeSingleOrigin,
	}
}

// CreateTestBuildDocument creates a populated export document for testing
func CreateTestBuildDocument(name string) entities.BuildDocument {
	return entities.BuildDocument{
		Character: entities.CharacterBlock{
			Name:      name,
			Archetype: CreateTestArchetype("arch_blaster"),
			Origin:    &entities.Origin{ID: "origin_tech", Name: "Technology"},
			Alignment: &entities.Alignment{ID: "align_hero", Name: "Hero"},
			Level:     30,
		},
		Powersets: entities.PowersetsBlock{
			Primary:   CreateTestPowerset("set_fire_blast", entities.PowersetTypePrimary),
			Secondary: CreateTestPowerset("set_fire_manip", entities.PowersetTypeSecondary),
			Pools: [entities.PoolSlotCount]*entities.Powerset{
				CreateTestPowerset("pool_flight", entities.PowersetTypePool),
			},
			Ancillary: CreateTestPowerset("set_flame_mastery", entities.PowersetTypeAncillary),
		},
		Powers: []entities.PowerEntry{
			{
				Power:      CreateTestPower("power_fire_blast"),
				LevelTaken: 1,
				Slots: []entities.Slot{
					{Enhancement: CreateTestEnhancement("enh_damage"), Level: 30},
					{Level: 30},
				},
			},
		},
	}
}
