// internal/app/report.go
package app

// Report — итог одного тика. Все «неудачи» тика здесь видны как счётчики,
// а не теряются молча.
type Report struct {
	Spawned    int // 0 или 1
	SpawnFails int // Попытка спавна при исчерпанном пуле врагов
	Shots      int // Выпущено пуль
	DryShots   int // Цель была, пул пуль исчерпан
	IdleShots  int // Перезарядка прошла, цели в радиусе нет
	Hits       int
	Kills      int
	Escapes    int
	Expired    int // Пули, истёкшие без попадания
}

// Stats — накопленные счётчики за всю симуляцию
type Stats struct {
	Ticks      int
	Spawned    int
	SpawnFails int
	Turrets    int
	Rejected   int // Отклонённые запросы на постройку
	Shots      int
	Hits       int
	Kills      int
	Escapes    int
	Expired    int
}

func (s *Stats) add(r Report) {
	s.Ticks++
	s.Spawned += r.Spawned
	s.SpawnFails += r.SpawnFails
	s.Shots += r.Shots
	s.Hits += r.Hits
	s.Kills += r.Kills
	s.Escapes += r.Escapes
	s.Expired += r.Expired
}
