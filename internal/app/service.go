package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"puzparse/internal/db"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Events published on puzzles.<id>.
const (
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

var ErrNoBroker = errors.New("event broker unavailable")

type Service struct {
	Queries *db.Queries

	db *sql.DB

	NatsServer *server.Server

	NC *nats.Conn

	StartTime int64
}

func NewService(queries *db.Queries, dbConn *sql.DB) *Service {
	s := &Service{
		Queries:   queries,
		db:        dbConn,
		StartTime: time.Now().UnixMilli(),
	}

	s.startNats()

	return s
}

func (s *Service) startNats() {
	opts := &server.Options{
		Port:  -1,
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to create NATS server")
		return
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		log.Error().Msg("NATS server failed to become ready")
		return
	}

	log.Info().Str("url", ns.ClientURL()).Msg("NATS server ready")
	s.NatsServer = ns

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		log.Error().Err(err).Msg("NATS client failed to connect")
		return
	}
	s.NC = nc
}

func (s *Service) Shutdown() {
	if s.NC != nil {
		s.NC.Close()
	}

	if s.NatsServer != nil {
		s.NatsServer.Shutdown()
		s.NatsServer.WaitForShutdown()
	}
}

func subject(puzzleID string) string {
	return fmt.Sprintf("puzzles.%s", puzzleID)
}

func (s *Service) BroadcastUpdate(puzzleID, event string) {
	if s.NC == nil {
		log.Warn().Str("puzzle", puzzleID).Msg("broadcast skipped: NATS connection is nil")
		return
	}

	log.Debug().Str("subject", subject(puzzleID)).Str("event", event).Msg("publishing")

	if err := s.NC.Publish(subject(puzzleID), []byte(event)); err != nil {
		log.Error().Err(err).Str("puzzle", puzzleID).Msg("publish failed")
	}
}

// WatchPuzzle streams events for one puzzle until ctx is done.
func (s *Service) WatchPuzzle(ctx context.Context, puzzleID string) (<-chan string, error) {
	if s.NC == nil {
		return nil, ErrNoBroker
	}

	msgs := make(chan *nats.Msg, 16)
	sub, err := s.NC.ChanSubscribe(subject(puzzleID), msgs)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", subject(puzzleID), err)
	}
	if err := s.NC.Flush(); err != nil {
		sub.Unsubscribe()
		return nil, err
	}

	events := make(chan string)
	go func() {
		defer close(events)
		defer sub.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-msgs:
				select {
				case events <- string(m.Data):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// Ping reports whether the database answers.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
