// Package server is the slice of a Minecraft server that custom windows need:
// players with their window bookkeeping, native containers, the public
// inventory view and the inventory event bus.
package server

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// Server holds the players and shared services of one running server.
type Server struct {
	version string

	Events  *Bus
	Logger  *log.Logger
	Metrics *Metrics

	players map[uuid.UUID]*Player
}

// New creates a server reporting the given release (e.g. "1.21.11").
// A nil logger logs to stdout.
func New(version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	metrics := NewMetrics()
	return &Server{
		version: version,
		Events:  NewBus(metrics),
		Logger:  logger,
		Metrics: metrics,
		players: make(map[uuid.UUID]*Player),
	}
}

// Version returns the release string the server runs.
func (s *Server) Version() string { return s.version }

// Join registers a player connected over conn.
func (s *Server) Join(name string, conn PacketWriter) *Player {
	p := newPlayer(s, name, conn)
	s.players[p.uuid] = p
	s.Logger.Printf("%s joined (%s)", name, p.uuid)
	return p
}

// Quit closes any window the player has open and forgets the player.
func (s *Server) Quit(p *Player) {
	p.CloseActiveContainer()
	delete(s.players, p.uuid)
	s.Logger.Printf("%s left", p.name)
}

// Player looks up an online player by name, or nil.
func (s *Server) Player(name string) *Player {
	return s.players[OfflineUUID(name)]
}

// Plugin is the handle an embedding application uses to reach the server.
type Plugin struct {
	name   string
	server *Server
	logger *log.Logger
}

// NewPlugin creates a plugin handle whose logger prefixes lines with [name].
func (s *Server) NewPlugin(name string) *Plugin {
	return &Plugin{
		name:   name,
		server: s,
		logger: log.New(s.Logger.Writer(), "["+name+"] ", s.Logger.Flags()),
	}
}

func (p *Plugin) Name() string { return p.name }

func (p *Plugin) Server() *Server { return p.server }

func (p *Plugin) Logger() *log.Logger { return p.logger }
