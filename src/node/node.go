package node

import (
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	cm "github.com/mosaicnetworks/midline/src/common"
	"github.com/mosaicnetworks/midline/src/ingest"
	"github.com/mosaicnetworks/midline/src/metrics"
	"github.com/mosaicnetworks/midline/src/series"
	"github.com/mosaicnetworks/midline/src/stats"
	"github.com/mosaicnetworks/midline/src/store"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

//Node defines a midline node
type Node struct {
	state

	conf   *Config
	logger *logrus.Entry

	//runID singles out this run of the collector in logs and stats
	runID ulid.ULID

	store    store.Store
	coreLock sync.Mutex

	listener *ingest.Listener
	sampleCh <-chan ingest.Sample

	sigintCh   chan os.Signal
	shutdownCh chan struct{}

	controlTimer *ControlTimer

	start          time.Time
	appliedSamples int
	storeErrors    int
	heartbeats     int
	lastTick       time.Time
	samplesAtTick  int
}

//NewNode is a factory method that returns a Node instance
func NewNode(conf *Config,
	store store.Store,
	listener *ingest.Listener,
) *Node {
	//Prepare sigintCh to relay SIGINT system calls
	sigintCh := make(chan os.Signal, 1)
	signal.Notify(sigintCh, os.Interrupt, syscall.SIGINT)

	runID := ulid.Make()

	node := Node{
		conf:         conf,
		logger:       conf.Logger.WithField("run_id", runID.String()),
		runID:        runID,
		store:        store,
		listener:     listener,
		sampleCh:     listener.Consumer(),
		sigintCh:     sigintCh,
		shutdownCh:   make(chan struct{}),
		controlTimer: NewPeriodicControlTimer(),
		start:        time.Now(),
	}

	return &node
}

//Init intialises the node
func (n *Node) Init() error {
	if n.conf.Bootstrap {
		n.logger.Debug("Bootstrap")
		if err := n.bootstrap(); err != nil {
			return err
		}
	}

	if n.conf.MaintenanceMode {
		n.logger.Debug("MaintenanceMode => Suspended")
		n.setState(Suspended)
	} else {
		n.setState(Collecting)
	}

	return nil
}

//bootstrap accounts for the series that were reloaded from an existing
//database. The store rebuilds its windows before the node is created, so all
//that is left to do is verify that every series has a readable last index,
//and log what was recovered.
func (n *Node) bootstrap() error {
	for _, name := range n.store.SeriesNames() {
		lastIndex, err := n.store.LastIndex(name)
		if err != nil {
			return err
		}

		n.logger.WithFields(logrus.Fields{
			"series":     name,
			"last_index": lastIndex,
		}).Debug("Recovered series")
	}

	return nil
}

//RunAsync calls Run as a separate thread
func (n *Node) RunAsync() {
	n.logger.Debug("runasync")

	go n.Run()
}

//Run invokes the main loop of the node
func (n *Node) Run() {
	//The ControlTimer fires the heartbeat during which stats are logged and
	//gauges refreshed. It slows down when no samples are coming in.
	go n.controlTimer.Run(n.conf.HeartbeatTimeout)

	//Suspended nodes do not accept ingest connections
	if n.getState() != Suspended {
		go n.listener.Listen()
	}

	//Execute some background work regardless of the state of the node.
	go n.doBackgroundWork()

	//Execute Node State Machine
	for {
		//Run different routines depending on node state
		state := n.getState()

		n.logger.WithField("state", state.String()).Debug("Run loop")

		switch state {
		case Collecting:
			n.collect()
		case Suspended:
			n.suspend()
		case Shutdown:
			return
		}
	}
}

//ResetTimer
func (n *Node) resetTimer() {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	if !n.controlTimer.set {
		ts := n.conf.HeartbeatTimeout

		//Slow the heartbeat when no samples have arrived since the last tick
		if n.appliedSamples == n.samplesAtTick {
			ts = time.Duration(time.Second)
		}

		n.controlTimer.resetCh <- ts
	}
}

func (n *Node) doBackgroundWork() {
	for {
		select {
		case sample := <-n.sampleCh:
			n.addSample(sample)
			n.resetTimer()
		case <-n.shutdownCh:
			return
		case <-n.sigintCh:
			n.logger.Debug("Reacting to SIGINT - SHUTDOWN")
			n.Shutdown()
			os.Exit(0)
		}
	}
}

//addSample applies a parsed sample to the store. Samples received while the
//node is not collecting are dropped.
func (n *Node) addSample(sample ingest.Sample) {
	if n.getState() != Collecting {
		n.logger.WithField("series", sample.Series).Debug("Dropping sample")
		return
	}

	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	if err := n.store.AppendValue(sample.Series, sample.Value); err != nil {
		n.storeErrors++
		n.logger.WithError(err).WithField("series", sample.Series).Error("Appending sample")
		return
	}

	n.appliedSamples++
}

// collect is the Collecting state: wait for heartbeats and take stock of the
// samples that came in since the last one.
func (n *Node) collect() {
	n.logger.Debug("COLLECTING")

	for {
		select {
		case <-n.controlTimer.tickCh:
			n.logger.Debug("Time to take stock!")
			n.goFunc(n.heartbeat)
			n.resetTimer()
		case <-n.shutdownCh:
			return
		}
	}
}

// suspend keeps a read-only node alive. The HTTP service still answers
// queries and the heartbeat keeps logging stats, but nothing is written to
// the store.
func (n *Node) suspend() {
	n.logger.Debug("SUSPENDED")

	for {
		select {
		case <-n.controlTimer.tickCh:
			n.goFunc(n.heartbeat)
			n.resetTimer()
		case <-n.shutdownCh:
			return
		}
	}
}

//heartbeat runs on every tick of the control timer
func (n *Node) heartbeat() {
	n.coreLock.Lock()
	n.heartbeats++
	n.lastTick = time.Now()
	n.samplesAtTick = n.appliedSamples
	n.coreLock.Unlock()

	n.logStats()
	n.refreshSeriesGauges()
}

//refreshSeriesGauges publishes the per-series gauges and logs one summary
//line per series. Medians are computed over the in-memory window only.
func (n *Node) refreshSeriesGauges() {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	names := n.store.SeriesNames()

	metrics.KnownSeries.Set(float64(len(names)))

	for _, name := range names {
		s, err := n.store.GetSeries(name)
		if err != nil {
			n.logger.WithError(err).WithField("series", name).Error("Refreshing gauges")
			continue
		}

		median := stats.Median(s.Values)

		metrics.SeriesMedian.WithLabelValues(name).Set(float64(median))

		n.logger.WithFields(logrus.Fields{
			"series": name,
			"count":  len(s.Values),
			"median": median,
		}).Debug("Series")
	}
}

//Shutdown shuts down the node
func (n *Node) Shutdown() {
	if n.getState() != Shutdown {
		n.logger.Debug("Shutdown")

		//Exit any non-shutdown state immediately
		n.setState(Shutdown)

		//Stop and wait for concurrent operations
		close(n.shutdownCh)

		n.waitRoutines()

		//For some reason this needs to be called after closing the shutdownCh
		//Not entirely sure why...
		n.controlTimer.Shutdown()

		//listener and store should only be closed once all concurrent operations
		//are finished otherwise they will panic trying to use closed objects
		n.listener.Close()

		if err := n.store.Close(); err != nil {
			n.logger.WithError(err).Error("Closing store")
		}
	}
}

//GetStats returns stats
func (n *Node) GetStats() map[string]string {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	timeElapsed := time.Since(n.start)

	samplesPerSecond := float64(n.appliedSamples) / timeElapsed.Seconds()

	lastTick := "never"
	if !n.lastTick.IsZero() {
		lastTick = strconv.FormatInt(n.lastTick.Unix(), 10)
	}

	s := map[string]string{
		"run_id":             n.runID.String(),
		"state":              n.getState().String(),
		"moniker":            n.conf.Moniker,
		"uptime":             timeElapsed.String(),
		"num_series":         strconv.Itoa(len(n.store.SeriesNames())),
		"total_samples":      strconv.Itoa(n.store.TotalSamples()),
		"applied_samples":    strconv.Itoa(n.appliedSamples),
		"samples_per_second": strconv.FormatFloat(samplesPerSecond, 'f', 2, 64),
		"apply_rate":         strconv.FormatFloat(n.applyRate(), 'f', 2, 64),
		"store_errors":       strconv.Itoa(n.storeErrors),
		"ingest_errors":      strconv.FormatUint(n.listener.ErrorCount(), 10),
		"heartbeats":         strconv.Itoa(n.heartbeats),
		"last_tick":          lastTick,
	}
	return s
}

func (n *Node) logStats() {
	stats := n.GetStats()

	n.logger.WithFields(logrus.Fields{
		"state":           stats["state"],
		"num_series":      stats["num_series"],
		"total_samples":   stats["total_samples"],
		"applied_samples": stats["applied_samples"],
		"samples/s":       stats["samples_per_second"],
		"apply_rate":      stats["apply_rate"],
		"store_errors":    stats["store_errors"],
		"ingest_errors":   stats["ingest_errors"],
		"heartbeats":      stats["heartbeats"],
		"moniker":         stats["moniker"],
	}).Debug("Stats")
}

//applyRate is the fraction of received samples that made it into the store.
//Callers must hold coreLock.
func (n *Node) applyRate() float64 {
	var errorRate float64

	received := n.appliedSamples + n.storeErrors

	if received != 0 {
		errorRate = float64(n.storeErrors) / float64(received)
	}

	return 1 - errorRate
}

//GetSeries returns the retained window of a series
func (n *Node) GetSeries(name string) (*series.Series, error) {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	return n.store.GetSeries(name)
}

//GetWindow returns the values of a series after skipIndex
func (n *Node) GetWindow(name string, skipIndex int) ([]int64, error) {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	return n.store.GetWindow(name, skipIndex)
}

//GetSummary computes the positional statistics of a series over all of its
//stored values. When an in-memory store has evicted the oldest samples, the
//summary covers the retained window instead.
func (n *Node) GetSummary(name string) (*stats.Summary, error) {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	values, err := n.store.GetWindow(name, -1)
	if cm.IsStore(err, cm.TooLate) {
		s, serr := n.store.GetSeries(name)
		if serr != nil {
			return nil, serr
		}
		values, err = s.Values, nil
	}
	if err != nil {
		return nil, err
	}

	metrics.SummaryRequests.Inc()

	summary := stats.Summarize(values)

	return &summary, nil
}

//SeriesNames returns the sorted names of all known series
func (n *Node) SeriesNames() []string {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	return n.store.SeriesNames()
}

//TotalSamples returns the number of samples ever applied to the store
func (n *Node) TotalSamples() int {
	n.coreLock.Lock()
	defer n.coreLock.Unlock()

	return n.store.TotalSamples()
}

//RunID returns the unique identifier of this run of the node
func (n *Node) RunID() string {
	return n.runID.String()
}
