package depot

import "github.com/rs/zerolog"

// Logger writes structured dumps of manager state
type Logger struct {
	*zerolog.Logger
}

func (_ *Logger) loadComponentIntoArrayLogger(reg *registration, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint32("component_bit", reg.bit())
	dictLogger = dictLogger.Str("component_name", reg.component.componentName())
	dictLogger = dictLogger.Int("entity_count", reg.store.len())
	return arrayLogger.Dict(dictLogger)
}

func (l *Logger) loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, m *Manager) *zerolog.Event {
	zeroLoggerEvent.Int("total_components", m.components.Len())
	arrayLogger := zerolog.Arr()
	for _, reg := range m.components.Items() {
		arrayLogger = l.loadComponentIntoArrayLogger(reg, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func (l *Logger) loadEntityIntoEvent(zeroLoggerEvent *zerolog.Event, m *Manager, id EntityID) (*zerolog.Event, error) {
	en, err := m.Entity(id)
	if err != nil {
		return nil, err
	}
	arrayLogger := zerolog.Arr()
	for _, reg := range m.components.Items() {
		if en.Mask.Contains(reg.index) {
			arrayLogger = arrayLogger.Str(reg.component.componentName())
		}
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Uint32("entity_id", uint32(id))
	return zeroLoggerEvent.Uint32("entity_mask", en.Mask.Bits()), nil
}

// LogComponents logs every registered component type with its bit and store size
func (l *Logger) LogComponents(m *Manager, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent, m)
	zeroLoggerEvent.Send()
}

// LogEntity logs the components held by the live entity with id
func (l *Logger) LogEntity(m *Manager, level zerolog.Level, id EntityID) error {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent, err := l.loadEntityIntoEvent(zeroLoggerEvent, m, id)
	if err != nil {
		return err
	}
	zeroLoggerEvent.Send()
	return nil
}

// LogManager logs the registered component types and the live entity count
func (l *Logger) LogManager(m *Manager, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent, m)
	zeroLoggerEvent.Int("total_entities", m.EntityCount())
	zeroLoggerEvent.Send()
}
