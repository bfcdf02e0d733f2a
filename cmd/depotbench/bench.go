package main

import (
	"time"

	"github.com/TheBitDrifter/depot"
	"github.com/rotisserie/eris"
)

type Identity struct {
	UUID int
}

type Tag struct{}

type result struct {
	populate time.Duration
	query    time.Duration
	matched  int
}

// benchmark fills a manager with entityCount identities, tagging one in
// probability of them, then runs iterationCount Identity+Tag queries
func benchmark(entityCount, iterationCount, probability int) (result, error) {
	manager := depot.Factory.NewManager(depot.WithEntityCapacity(entityCount))
	identity, err := depot.RegisterComponentType[Identity](manager)
	if err != nil {
		return result{}, err
	}
	tag, err := depot.RegisterComponentType[Tag](manager)
	if err != nil {
		return result{}, err
	}

	var res result
	start := time.Now()
	for i := 0; i < entityCount; i++ {
		en := manager.CreateEntity()
		if err := identity.Add(manager, en, Identity{UUID: i}); err != nil {
			return result{}, eris.Wrap(err, "failed to add identity")
		}
		if i%probability == 0 {
			if err := tag.Add(manager, en, Tag{}); err != nil {
				return result{}, eris.Wrap(err, "failed to add tag")
			}
		}
	}
	res.populate = time.Since(start)

	start = time.Now()
	for i := 0; i < iterationCount; i++ {
		entities, err := manager.EntitiesWith(identity, tag)
		if err != nil {
			return result{}, err
		}
		res.matched = len(entities)
	}
	res.query = time.Since(start)
	return res, nil
}
