package depot

import (
	"errors"
	"testing"
)

type entitySetup struct {
	components []Component
	count      int
}

// populate creates count entities per setup, attaching zero values of each component
func populate(t *testing.T, manager *Manager, setups []entitySetup) {
	t.Helper()
	for _, setup := range setups {
		for i := 0; i < setup.count; i++ {
			en := manager.CreateEntity()
			for _, comp := range setup.components {
				var err error
				switch c := comp.(type) {
				case ComponentType[Position]:
					err = c.Add(manager, en, Position{X: float64(en.ID)})
				case ComponentType[Velocity]:
					err = c.Add(manager, en, Velocity{X: 1, Y: 2})
				case ComponentType[Health]:
					err = c.Add(manager, en, Health{Max: 10, Current: 10})
				}
				if err != nil {
					t.Fatalf("Failed to add component: %v", err)
				}
			}
		}
	}
}

func newPosVelHealthManager(t *testing.T) (*Manager, ComponentType[Position], ComponentType[Velocity], ComponentType[Health]) {
	t.Helper()
	manager := Factory.NewManager()
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()
	for _, c := range []Component{posComp, velComp, healthComp} {
		if err := manager.RegisterComponentType(c); err != nil {
			t.Fatalf("Failed to register component: %v", err)
		}
	}
	return manager, posComp, velComp, healthComp
}

// TestEntitiesWith tests the intersection semantics of EntitiesWith
func TestEntitiesWith(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	setups := []entitySetup{
		{[]Component{posComp, velComp}, 5},
		{[]Component{posComp}, 10},
		{[]Component{velComp}, 15},
		{[]Component{}, 3},
	}

	tests := []struct {
		name            string
		queryComponents []Component
		expectedMatches int
	}{
		{"No components returns every entity", nil, 33},
		{"Single component", []Component{posComp}, 15},
		{"Intersection", []Component{posComp, velComp}, 5},
		{"Argument order is irrelevant", []Component{velComp, posComp}, 5},
		{"Repeated component", []Component{velComp, velComp}, 20},
		{"Registered but unused", []Component{healthComp}, 0},
		{"Intersection with unused", []Component{posComp, healthComp}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, _, _, _ := newPosVelHealthManager(t)
			populate(t, manager, setups)

			matched, err := manager.EntitiesWith(tt.queryComponents...)
			if err != nil {
				t.Fatalf("EntitiesWith() failed: %v", err)
			}
			if len(matched) != tt.expectedMatches {
				t.Errorf("EntitiesWith() matched %d entities, want %d", len(matched), tt.expectedMatches)
			}
			for _, en := range matched {
				for _, comp := range tt.queryComponents {
					bit, _ := manager.Bit(comp)
					if en.Mask.Bits()&bit == 0 {
						t.Errorf("Entity %d matched without %v", en.ID, comp)
					}
				}
			}
		})
	}
}

func TestEntitiesWithUnregistered(t *testing.T) {
	manager := Factory.NewManager()
	health := FactoryNewComponent[Health]()
	identity := FactoryNewComponent[Identity]()
	if err := manager.RegisterComponentType(health); err != nil {
		t.Fatalf("Failed to register health: %v", err)
	}
	en := manager.CreateEntity()
	if err := health.Add(manager, en, Health{Max: 1, Current: 1}); err != nil {
		t.Fatalf("Failed to add health: %v", err)
	}

	for _, components := range [][]Component{{identity}, {health, identity}, {identity, health}} {
		_, err := manager.EntitiesWith(components...)
		var notRegistered ComponentTypeNotRegisteredError
		if !errors.As(err, &notRegistered) {
			t.Fatalf("EntitiesWith() error = %v, want ComponentTypeNotRegisteredError", err)
		}
		if notRegistered.Name != "depot.Identity" {
			t.Errorf("Error names %s, want depot.Identity", notRegistered.Name)
		}
	}
}

// TestEntitiesWithOrder tests that results follow the smallest candidate list
func TestEntitiesWithOrder(t *testing.T) {
	manager, posComp, velComp, _ := newPosVelHealthManager(t)

	entities := make([]Entity, 6)
	for i := range entities {
		entities[i] = manager.CreateEntity()
		if err := posComp.Add(manager, entities[i], Position{}); err != nil {
			t.Fatalf("Failed to add position: %v", err)
		}
	}
	// Velocity is attached in reverse, making it the smaller list with its own order
	for _, i := range []int{4, 2, 0} {
		if err := velComp.Add(manager, entities[i], Velocity{}); err != nil {
			t.Fatalf("Failed to add velocity: %v", err)
		}
	}

	matched, err := manager.EntitiesWith(posComp, velComp)
	if err != nil {
		t.Fatalf("EntitiesWith() failed: %v", err)
	}
	want := []EntityID{4, 2, 0}
	if len(matched) != len(want) {
		t.Fatalf("Matched %d entities, want %d", len(matched), len(want))
	}
	for i, en := range matched {
		if en.ID != want[i] {
			t.Errorf("matched[%d] = %d, want %d", i, en.ID, want[i])
		}
	}

	all, _ := manager.EntitiesWith()
	for i, en := range all {
		if en.ID != entities[i].ID {
			t.Errorf("all[%d] = %d, want creation order %d", i, en.ID, entities[i].ID)
		}
	}
}

func TestEntitiesWithFreshResult(t *testing.T) {
	manager, posComp, _, _ := newPosVelHealthManager(t)
	populate(t, manager, []entitySetup{{[]Component{posComp}, 3}})

	first, _ := manager.EntitiesWith(posComp)
	first[0] = Entity{ID: 1000}

	second, _ := manager.EntitiesWith(posComp)
	if second[0].ID == 1000 {
		t.Errorf("EntitiesWith() shares its result slice between calls")
	}
	if len(second) != 3 {
		t.Errorf("EntitiesWith() matched %d entities, want 3", len(second))
	}
}

// TestQueryFiltering tests the composite query nodes
func TestQueryFiltering(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		queryType       string // "and", "or", "not", "complex", "not-child", "and-not"
		queryComponents []Component
		expectedMatches int
	}{
		{
			name: "And query matches exact",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			queryType:       "and",
			queryComponents: []Component{posComp, velComp},
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			queryType:       "or",
			queryComponents: []Component{posComp, velComp},
			expectedMatches: 30, // 5 + 10 + 15
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
				{[]Component{healthComp}, 20},
			},
			queryType:       "not",
			queryComponents: []Component{velComp},
			expectedMatches: 30, // 10 + 20
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp, healthComp}, 5},
				{[]Component{posComp, velComp}, 10},
				{[]Component{posComp, healthComp}, 15},
				{[]Component{velComp, healthComp}, 20},
				{[]Component{posComp}, 25},
				{[]Component{velComp}, 30},
				{[]Component{healthComp}, 35},
			},
			queryType:       "complex",
			queryComponents: []Component{posComp, velComp, healthComp},
			expectedMatches: 30, // (P AND V) OR (P AND H) = 10 + 15 + 5 (counted once)
		},
		{
			name: "Not over child node",
			entitySetups: []entitySetup{
				{[]Component{posComp}, 3},
				{[]Component{posComp, velComp}, 1},
			},
			queryType:       "not-child",
			expectedMatches: 3,
		},
		{
			name: "And with nested Not",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
				{[]Component{healthComp}, 20},
			},
			queryType:       "and-not",
			expectedMatches: 10, // P AND NOT V
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, _, _, _ := newPosVelHealthManager(t)
			populate(t, manager, tt.entitySetups)

			query := Factory.NewQuery()
			var queryNode QueryNode

			interfaceComponents := make([]interface{}, len(tt.queryComponents))
			for i, comp := range tt.queryComponents {
				interfaceComponents[i] = comp
			}
			switch tt.queryType {
			case "and":
				queryNode = query.And(interfaceComponents...)
			case "or":
				queryNode = query.Or(interfaceComponents...)
			case "not":
				queryNode = query.Not(interfaceComponents...)
			case "complex":
				andQuery1 := query.And(posComp, velComp)
				andQuery2 := query.And(posComp, healthComp)
				queryNode = query.Or(andQuery1, andQuery2)
			case "not-child":
				queryNode = query.Not(query.And(velComp))
			case "and-not":
				queryNode = query.And(posComp, query.Not(velComp))
			}

			cursor := Factory.NewCursor(queryNode, manager)
			matchCount := 0
			for cursor.Next() {
				matchCount++
			}

			if matchCount != tt.expectedMatches {
				t.Errorf("Query matched %d entities, want %d", matchCount, tt.expectedMatches)
			}
			if manager.Locked() {
				t.Errorf("Manager still locked after cursor exhaustion")
			}
		})
	}
}

func TestQueryUnregisteredComponent(t *testing.T) {
	manager, posComp, _, _ := newPosVelHealthManager(t)
	identity := FactoryNewComponent[Identity]()
	populate(t, manager, []entitySetup{{[]Component{posComp}, 4}})

	query := Factory.NewQuery()
	tests := []struct {
		name string
		node QueryNode
		want int
	}{
		{"And with unregistered", query.And(posComp, identity), 0},
		{"Or with unregistered", query.Or(posComp, identity), 4},
		{"Not unregistered", query.Not(identity), 4},
		{"Not registered and unregistered", query.Not(posComp, identity), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Factory.NewCursor(tt.node, manager).TotalMatched(); got != tt.want {
				t.Errorf("TotalMatched() = %d, want %d", got, tt.want)
			}
		})
	}

	cursor := manager.Query(posComp, identity)
	for cursor.Next() {
		t.Errorf("Cursor over unregistered component yielded an entity")
	}
	var notRegistered ComponentTypeNotRegisteredError
	if !errors.As(cursor.Err(), &notRegistered) {
		t.Errorf("Cursor.Err() = %v, want ComponentTypeNotRegisteredError", cursor.Err())
	}
}
