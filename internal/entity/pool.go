// internal/entity/pool.go
package entity

import "go-path-defense/internal/types"

// Pool — арена фиксированной ёмкости для сущностей одного вида.
// Слоты создаются лениво и никогда не освобождаются: деактивация только
// снимает флаг, и слот снова доступен для Acquire.
// Указатели на элементы стабильны всё время жизни пула.
type Pool[T any] struct {
	items  []T
	active []bool
	count  int
}

// NewPool создаёт пустой пул. Память под capacity элементов выделяется сразу,
// чтобы append никогда не перемещал уже выданные слоты.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		items:  make([]T, 0, capacity),
		active: make([]bool, 0, capacity),
	}
}

// Acquire активирует первый неактивный слот в порядке создания.
// Если все слоты заняты и пул достиг ёмкости, ok == false.
// Содержимое переиспользованного слота не сбрасывается, это делает вызывающий.
func (p *Pool[T]) Acquire() (id types.EntityID, item *T, ok bool) {
	for i, isActive := range p.active {
		if !isActive {
			p.active[i] = true
			p.count++
			return types.EntityID(i), &p.items[i], true
		}
	}
	if len(p.items) == cap(p.items) {
		return types.NoEntity, nil, false
	}

	var zero T
	p.items = append(p.items, zero)
	p.active = append(p.active, true)
	p.count++
	i := len(p.items) - 1
	return types.EntityID(i), &p.items[i], true
}

// Release деактивирует слот. Повторный вызов ничего не делает.
func (p *Pool[T]) Release(id types.EntityID) {
	if !p.IsActive(id) {
		return
	}
	p.active[id] = false
	p.count--
}

// Get возвращает слот по ID независимо от активности; nil для несуществующего ID.
func (p *Pool[T]) Get(id types.EntityID) *T {
	if id < 0 || int(id) >= len(p.items) {
		return nil
	}
	return &p.items[id]
}

func (p *Pool[T]) IsActive(id types.EntityID) bool {
	return id >= 0 && int(id) < len(p.active) && p.active[id]
}

// ForEachActive вызывает fn для каждого активного слота в порядке создания.
// fn может деактивировать текущий или любой другой слот.
func (p *Pool[T]) ForEachActive(fn func(id types.EntityID, item *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(types.EntityID(i), &p.items[i])
		}
	}
}

// FirstActive возвращает первый активный слот, для которого match вернул true.
func (p *Pool[T]) FirstActive(match func(item *T) bool) (types.EntityID, *T, bool) {
	for i := range p.items {
		if p.active[i] && match(&p.items[i]) {
			return types.EntityID(i), &p.items[i], true
		}
	}
	return types.NoEntity, nil, false
}

// ActiveCount — число активных слотов
func (p *Pool[T]) ActiveCount() int { return p.count }

// Len — сколько слотов уже создано
func (p *Pool[T]) Len() int { return len(p.items) }

// Cap — ёмкость пула
func (p *Pool[T]) Cap() int { return cap(p.items) }
