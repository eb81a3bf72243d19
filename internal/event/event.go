// internal/event/event.go
package event

// EventType — тип игрового события
type EventType string

// Payload — данные события: Capture или Summary
type Payload interface {
	payload()
}

// Event — событие сессии; у HookFired Data == nil
type Event struct {
	Type EventType
	Data Payload
}

// Listener — подписчик; сравнивается через ==, поэтому держите указатели
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий сессии
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на один или несколько типов
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от перечисленных типов; без типов снимает подписчика отовсюду
func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	if len(types) == 0 {
		for t := range d.listeners {
			d.remove(t, listener)
		}
		return
	}
	for _, t := range types {
		d.remove(t, listener)
	}
}

// remove строит новый срез, чтобы идущий Dispatch дочитал старый целиком.
func (d *Dispatcher) remove(t EventType, listener Listener) {
	listeners := d.listeners[t]
	kept := make([]Listener, 0, len(listeners))
	for _, l := range listeners {
		if l != listener {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(d.listeners, t)
		return
	}
	d.listeners[t] = kept
}

// Dispatch — отправка события всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
