// Package autosave debounce un stream de ediciones en memoria hacia la
// operación de guardado del façade. Solo depende de la función de guardado
// inyectada, no de sus internals.
package autosave

import (
	"context"
	"sync"
	"time"

	"pet-care-guides/internal/platform/logger"
)

type State string

const (
	StateIdle   State = "idle"
	StateSaving State = "saving"
	StateSaved  State = "saved"
	StateError  State = "error"
)

// SaveFunc persiste el snapshot. Un error no escapa al caller del
// coordinator: queda capturado en el estado error.
type SaveFunc[T any] func(ctx context.Context, snapshot T) error

type Options struct {
	// Debounce es la ventana de silencio antes de disparar (default 1s).
	Debounce time.Duration
	// SavedDisplay es cuánto se muestra "saved" antes de volver a idle
	// (default 2s).
	SavedDisplay time.Duration
	// Enabled habilita el scheduling. Deshabilitado, las ediciones se
	// observan pero nunca se agendan.
	Enabled bool
	// OnChange notifica transiciones de estado (para la UI). Se invoca
	// con el lock tomado: no llamar de vuelta al coordinator desde acá.
	OnChange func(State)
}

func DefaultOptions() Options {
	return Options{
		Debounce:     time.Second,
		SavedDisplay: 2 * time.Second,
		Enabled:      true,
	}
}

// Coordinator colapsa ráfagas de ediciones en un solo guardado con el
// snapshot MÁS RECIENTE al momento de disparar: el snapshot vive en una
// celda mutable actualizada en cada Notify y leída recién cuando el timer
// vence, nunca capturada en el closure al agendar.
//
// El caller notifica ediciones reales, no el primer render: el coordinator
// no guarda nada que no le hayan notificado.
type Coordinator[T any] struct {
	mu   sync.Mutex
	save SaveFunc[T]
	log  logger.Logger
	now  func() time.Time

	debounce time.Duration
	display  time.Duration
	enabled  bool
	onChange func(State)

	state     State
	lastErr   error
	lastSaved time.Time
	hasSaved  bool

	latest    T
	hasLatest bool

	timer *time.Timer
	// gen invalida timers pendientes: cualquier SaveNow, Close, disable
	// o re-arme lo incrementa y el timer viejo se vuelve no-op.
	gen int
	// savedGen distingue cada entrada al estado saved, para que el
	// auto-revert de un guardado viejo no pise uno más nuevo.
	savedGen int

	closed bool
}

func New[T any](save SaveFunc[T], opts Options, log logger.Logger) *Coordinator[T] {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = time.Second
	}
	if opts.SavedDisplay <= 0 {
		opts.SavedDisplay = 2 * time.Second
	}
	return &Coordinator[T]{
		save:     save,
		log:      log.With("component", "autosave"),
		now:      time.Now,
		debounce: opts.Debounce,
		display:  opts.SavedDisplay,
		enabled:  opts.Enabled,
		onChange: opts.OnChange,
		state:    StateIdle,
	}
}

// Notify registra una edición: transiciona a idle de inmediato (señal de
// "pending") y re-arma la ventana de debounce.
func (c *Coordinator[T]) Notify(snapshot T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.latest = snapshot
	c.hasLatest = true
	c.setState(StateIdle)

	if !c.enabled {
		return
	}

	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fire(gen)
	})
}

func (c *Coordinator[T]) fire(gen int) {
	c.mu.Lock()
	if c.closed || gen != c.gen || !c.hasLatest {
		c.mu.Unlock()
		return
	}
	snapshot := c.latest
	c.setState(StateSaving)
	c.mu.Unlock()

	err := c.save(context.Background(), snapshot)
	c.finish(err)
}

// SaveNow cancela cualquier timer pendiente y guarda ya, entrando a saving
// sincrónicamente. El resultado queda en el estado, no se devuelve.
func (c *Coordinator[T]) SaveNow(ctx context.Context) {
	c.mu.Lock()
	if c.closed || !c.hasLatest {
		c.mu.Unlock()
		return
	}
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	snapshot := c.latest
	c.setState(StateSaving)
	c.mu.Unlock()

	err := c.save(ctx, snapshot)
	c.finish(err)
}

func (c *Coordinator[T]) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if err != nil {
		// sin retry automático: el error queda para que la UI decida
		c.lastErr = err
		c.setState(StateError)
		c.log.Warn("autosave failed", "error", err.Error())
		return
	}

	c.lastErr = nil
	c.lastSaved = c.now()
	c.hasSaved = true
	c.setState(StateSaved)

	c.savedGen++
	saved := c.savedGen
	time.AfterFunc(c.display, func() {
		c.revert(saved)
	})
}

// revert vuelve saved → idle pasada la ventana de display, solo si nada
// más pasó en el medio: ni una edición nueva (estado ya no es saved) ni un
// guardado más nuevo (savedGen avanzó).
func (c *Coordinator[T]) revert(savedGen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != StateSaved || savedGen != c.savedGen {
		return
	}
	c.setState(StateIdle)
}

// SetEnabled prende o apaga el scheduling. Apagar cancela el timer
// pendiente; las ediciones siguen actualizando el snapshot.
func (c *Coordinator[T]) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.enabled = enabled
	if !enabled {
		c.gen++
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}
	}
}

// Close cancela cualquier guardado pendiente; ningún save huérfano dispara
// después del teardown.
func (c *Coordinator[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordinator[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// LastSaved devuelve el instante del último guardado exitoso, ok=false si
// nunca hubo uno.
func (c *Coordinator[T]) LastSaved() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved, c.hasSaved
}

func (c *Coordinator[T]) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	if c.onChange != nil {
		c.onChange(s)
	}
}
