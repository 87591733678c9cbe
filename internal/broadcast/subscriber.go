package broadcast

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Conn - минимальный контракт дуплексного соединения подписчика.
// *websocket.Conn из gorilla/websocket удовлетворяет ему напрямую.
// Close должен быть безопасен для вызова параллельно с WriteMessage.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// outcome - результат попытки поставить сообщение в очередь подписчика
type outcome int

const (
	outcomeDelivered outcome = iota
	outcomeOverflow
	outcomeClosed
)

const (
	reasonOverflow   = "overflow"
	reasonWriteError = "write_error"
	reasonClosed     = "closed"
)

// Subscriber - одно подключение дашборда. Принадлежит реестру Broadcaster.
type Subscriber struct {
	id   uuid.UUID
	conn Conn

	send      chan []byte
	done      chan struct{}
	alive     atomic.Bool
	closeOnce sync.Once
}

func newSubscriber(conn Conn, buffer int) *Subscriber {
	s := &Subscriber{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
	s.alive.Store(true)
	return s
}

// enqueue не блокируется: сообщение либо попадает в буфер, либо подписчик считается отставшим
func (s *Subscriber) enqueue(data []byte) outcome {
	if !s.alive.Load() {
		return outcomeClosed
	}
	select {
	case <-s.done:
		return outcomeClosed
	default:
	}
	select {
	case s.send <- data:
		return outcomeDelivered
	default:
		return outcomeOverflow
	}
}

// close идемпотентно останавливает writer и закрывает соединение
func (s *Subscriber) close() {
	s.closeOnce.Do(func() {
		s.alive.Store(false)
		close(s.done)
		_ = s.conn.Close()
	})
}
