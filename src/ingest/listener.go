package ingest

import (
	"bufio"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mosaicnetworks/midline/src/metrics"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// sampleBufSize is the capacity of the consumer channel. It decouples
	// connection handlers from the node's apply loop during bursts.
	sampleBufSize = 1024
)

// Listener accepts TCP connections speaking the sample line protocol and
// feeds parsed samples to its consumer channel. Each connection is handled
// in a dedicated goroutine for its lifespan.
type Listener struct {
	logger *logrus.Entry

	listener net.Listener

	consumeCh chan Sample

	readTimeout time.Duration

	errorCount uint64

	shutdown     bool
	shutdownCh   chan struct{}
	shutdownLock sync.Mutex
}

// NewListener binds a TCP listener to bindAddr. readTimeout is the deadline
// applied to reads on accepted connections; zero disables it.
func NewListener(
	bindAddr string,
	readTimeout time.Duration,
	logger *logrus.Entry,
) (*Listener, error) {

	if logger == nil {
		log := logrus.New()
		log.Level = logrus.DebugLevel
		logger = logrus.NewEntry(log)
	}

	list, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "binding ingest listener to %s", bindAddr)
	}

	l := &Listener{
		logger:      logger,
		listener:    list,
		consumeCh:   make(chan Sample, sampleBufSize),
		readTimeout: readTimeout,
		shutdownCh:  make(chan struct{}),
	}

	return l, nil
}

// Consumer returns the channel on which parsed samples are delivered.
func (l *Listener) Consumer() <-chan Sample {
	return l.consumeCh
}

// LocalAddr returns the address the listener is bound to.
func (l *Listener) LocalAddr() string {
	return l.listener.Addr().String()
}

// ErrorCount returns the number of malformed lines rejected so far.
func (l *Listener) ErrorCount() uint64 {
	return atomic.LoadUint64(&l.errorCount)
}

// IsShutdown is used to check if the listener is shutdown.
func (l *Listener) IsShutdown() bool {
	select {
	case <-l.shutdownCh:
		return true
	default:
		return false
	}
}

// Close is used to stop the listener.
func (l *Listener) Close() error {
	l.shutdownLock.Lock()
	defer l.shutdownLock.Unlock()

	if !l.shutdown {
		close(l.shutdownCh)
		l.listener.Close()

		l.shutdown = true
	}
	return nil
}

// Listen handles incoming connections until the listener is closed.
func (l *Listener) Listen() {
	for {
		// Accept incoming connections
		conn, err := l.listener.Accept()
		if err != nil {
			if l.IsShutdown() {
				return
			}
			l.logger.WithField("error", err).Error("Failed to accept connection")
			continue
		}
		l.logger.WithFields(logrus.Fields{
			"node": conn.LocalAddr(),
			"from": conn.RemoteAddr(),
		}).Debug("accepted connection")

		// Handle the connection in dedicated routine
		go l.handleConn(conn)
	}
}

// handleConn reads sample lines from an inbound connection for its lifespan.
func (l *Listener) handleConn(conn net.Conn) {
	defer conn.Close()

	metrics.OpenConnections.Inc()
	defer metrics.OpenConnections.Dec()

	scanner := bufio.NewScanner(conn)

	for {
		if l.readTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(l.readTimeout))
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !l.IsShutdown() {
				l.logger.WithFields(logrus.Fields{
					"from":  conn.RemoteAddr(),
					"error": err,
				}).Debug("connection dropped")
			}
			return
		}

		sample, err := ParseLine(scanner.Text())
		if err != nil {
			atomic.AddUint64(&l.errorCount, 1)
			metrics.IngestErrors.Inc()
			l.logger.WithFields(logrus.Fields{
				"from":  conn.RemoteAddr(),
				"error": err,
			}).Debug("rejected sample line")
			continue
		}
		if sample == nil {
			continue
		}

		metrics.SamplesIngested.WithLabelValues(sample.Series).Inc()

		select {
		case l.consumeCh <- *sample:
		case <-l.shutdownCh:
			return
		}
	}
}
