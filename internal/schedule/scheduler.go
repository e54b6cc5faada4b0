// internal/schedule/scheduler.go
package schedule

// Handle — непрозрачный идентификатор запланированного кадра. 0 означает
// "ничего не запланировано".
type Handle int64

// Scheduler выдаёт колбэки кадров. Абстракция позволяет гонять цикл анимации
// в тестах ручными тиками, а в приложении — тактами ebiten.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// TickScheduler хранит не более одного отложенного колбэка и срабатывает
// по внешнему тику. Не потокобезопасен: все вызовы идут из цикла хоста.
type TickScheduler struct {
	next    Handle
	pending func()
	handle  Handle
}

// NewTickScheduler создаёт пустой планировщик.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Schedule откладывает fn до следующего тика и возвращает его handle.
// Предыдущий отложенный колбэк, если был, замещается.
func (s *TickScheduler) Schedule(fn func()) Handle {
	s.next++
	s.pending = fn
	s.handle = s.next
	return s.next
}

// Cancel снимает колбэк, если h всё ещё актуален. Устаревший handle игнорируется.
func (s *TickScheduler) Cancel(h Handle) {
	if h != 0 && h == s.handle {
		s.pending = nil
		s.handle = 0
	}
}

// Tick выполняет отложенный колбэк, если он есть. Колбэк снимается до вызова,
// так что перепланирование изнутри колбэка даёт снова ровно один отложенный кадр.
func (s *TickScheduler) Tick() bool {
	if s.pending == nil {
		return false
	}
	fn := s.pending
	s.pending = nil
	s.handle = 0
	fn()
	return true
}

// Pending сообщает, есть ли отложенный кадр.
func (s *TickScheduler) Pending() bool {
	return s.pending != nil
}
