package postgres

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gastrostock/gastrostock-api/pkg/logger"
)

// ChannelGeneralChanges canal NOTIFY que emite un payload por cada fila
// cambiada en inventario_general (un trigger del esquema hace el NOTIFY).
const ChannelGeneralChanges = "inventario_general_cambios"

const listenerRetryDelay = 5 * time.Second
const subscriberBuffer = 16

// Listener mantiene una conexión dedicada en LISTEN sobre el canal de cambios
// del inventario general y reparte cada payload a los suscriptores en proceso.
//
// Señal push de una vía: no bloquea ni condiciona ninguna escritura. Un
// suscriptor lento pierde avisos (el envío es no bloqueante); reconcilia
// releyendo el estado actual, nunca reaplicando el aviso perdido.
type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	mu   sync.Mutex
	subs []chan string
}

// NewListener construye el listener sobre el pool.
func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{pool: pool, log: log}
}

// Subscribe registra un suscriptor y devuelve su canal de payloads junto con
// la función que lo da de baja. Llamarla al cerrar la conexión del cliente;
// es segura de invocar más de una vez.
func (l *Listener) Subscribe() (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)
	l.mu.Lock()
	l.subs = append(l.subs, ch)
	l.mu.Unlock()

	unsubscribe := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, sub := range l.subs {
			if sub == ch {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
	return ch, unsubscribe
}

// Run escucha el canal hasta que ctx se cancele. Ante pérdida de conexión
// reintenta con espera fija; los suscriptores no se enteran de la reconexión.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.log.Warn().Err(err).Msg("listener desconectado, reintentando")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(listenerRetryDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ChannelGeneralChanges); err != nil {
		return err
	}
	l.log.Info().Str("canal", ChannelGeneralChanges).Msg("escuchando cambios de inventario")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		l.broadcast(notification.Payload)
	}
}

// broadcast reparte el payload sin bloquear: si el buffer de un suscriptor
// está lleno, ese aviso se descarta para él.
func (l *Listener) broadcast(payload string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- payload:
		default:
		}
	}
}
