package internal

type EffectQueue struct {
	effects map[EffectType][]func()
}

func NewEffectQueue() *EffectQueue {
	effects := make(map[EffectType][]func())
	effects[EffectRender] = nil
	effects[EffectUser] = nil

	return &EffectQueue{effects}
}

func (q *EffectQueue) Enqueue(typ EffectType, fn func()) {
	q.effects[typ] = append(q.effects[typ], fn)
}

func (q *EffectQueue) RunEffects(typ EffectType) {
	effects := q.effects[typ]
	q.effects[typ] = nil

	for _, effect := range effects {
		effect()
	}
}

func (q *EffectQueue) Empty() bool {
	for _, effects := range q.effects {
		if len(effects) > 0 {
			return false
		}
	}

	return true
}
