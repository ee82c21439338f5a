package midline

import (
	"fmt"

	"github.com/mosaicnetworks/midline/src/config"
	"github.com/mosaicnetworks/midline/src/ingest"
	"github.com/mosaicnetworks/midline/src/node"
	"github.com/mosaicnetworks/midline/src/service"
	"github.com/mosaicnetworks/midline/src/store"
	"github.com/sirupsen/logrus"
)

// Midline is the collector engine. It ties together a store, an ingest
// listener, a node, and the HTTP service.
type Midline struct {
	Config   *config.Config
	Node     *node.Node
	Listener *ingest.Listener
	Store    store.Store
	Service  *service.Service
}

// NewMidline instantiates an engine from a config, without initialising it.
func NewMidline(config *config.Config) *Midline {
	engine := &Midline{
		Config: config,
	}

	return engine
}

func (m *Midline) initStore() error {
	if !m.Config.Store {
		m.Store = store.NewInmemStore(m.Config.CacheSize)

		m.Config.Logger().Debug("created new in-mem store")
	} else {
		var err error

		m.Config.Logger().WithField("path", m.Config.DatabaseDir).Debug("Attempting to load or create database")

		m.Store, err = store.LoadOrCreateBadgerStore(m.Config.CacheSize, m.Config.DatabaseDir)

		if err != nil {
			return err
		}

		if m.Store.NeedBootstrap() {
			m.Config.Logger().Debug("loaded badger store from existing database")

			//the node picks up the recovered series in Init
			m.Config.Bootstrap = true
		} else {
			m.Config.Logger().Debug("created new badger store from fresh database")
		}
	}

	return nil
}

func (m *Midline) initListener() error {
	listener, err := ingest.NewListener(
		m.Config.BindAddr,
		m.Config.ReadTimeout,
		m.Config.Logger(),
	)

	if err != nil {
		return err
	}

	m.Listener = listener

	return nil
}

func (m *Midline) initNode() error {
	nodeConfig := node.NewConfig(
		m.Config.HeartbeatTimeout,
		m.Config.CacheSize,
		m.Config.Bootstrap,
		m.Config.MaintenanceMode,
		m.Config.Moniker,
		m.Config.Logger().Logger,
	)

	m.Config.Logger().WithFields(logrus.Fields{
		"moniker": m.Config.Moniker,
		"listen":  m.Listener.LocalAddr(),
		"store":   m.Store.StorePath(),
	}).Debug("NODE")

	m.Node = node.NewNode(
		nodeConfig,
		m.Store,
		m.Listener,
	)

	if err := m.Node.Init(); err != nil {
		return fmt.Errorf("failed to initialize node: %s", err)
	}

	return nil
}

func (m *Midline) initService() error {
	if !m.Config.NoService {
		m.Service = service.NewService(m.Config.ServiceAddr, m.Node, m.Config.Logger())
	}
	return nil
}

// Init initialises the engine's components in dependency order: store,
// listener, node, then service.
func (m *Midline) Init() error {
	if err := m.initStore(); err != nil {
		return err
	}

	if err := m.initListener(); err != nil {
		return err
	}

	if err := m.initNode(); err != nil {
		return err
	}

	if err := m.initService(); err != nil {
		return err
	}

	return nil
}

// Run starts the HTTP service and the node's main loop. This is a blocking
// call; it returns when the node shuts down.
func (m *Midline) Run() {
	if m.Service != nil {
		go m.Service.Serve()
	}

	m.Node.Run()
}
