package node

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	cm "github.com/mosaicnetworks/midline/src/common"
	"github.com/mosaicnetworks/midline/src/ingest"
	"github.com/mosaicnetworks/midline/src/store"
)

func initTestNode(conf *Config, t *testing.T) *Node {
	st := store.NewInmemStore(conf.CacheSize)

	listener, err := ingest.NewListener(
		"127.0.0.1:0",
		time.Second,
		cm.NewTestEntry(t, cm.TestLogLevel),
	)
	if err != nil {
		t.Fatal(err)
	}

	node := NewNode(conf, st, listener)

	if err := node.Init(); err != nil {
		t.Fatal(err)
	}

	return node
}

func waitForSamples(node *Node, total int, timeout time.Duration) error {
	stopTime := time.Now().Add(timeout)
	for time.Now().Before(stopTime) {
		if node.TotalSamples() >= total {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for %d samples, got %d", total, node.TotalSamples())
}

func TestProcessSamples(t *testing.T) {
	node := initTestNode(TestConfig(t), t)
	defer node.Shutdown()

	if s := node.getState(); s != Collecting {
		t.Fatalf("state should be %v, not %v", Collecting, s)
	}

	node.RunAsync()

	client, err := ingest.Dial(node.listener.LocalAddr(), time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	client.Comment("node test")

	for _, v := range []int64{10, 20, 30} {
		if err := client.Send("cpu", v); err != nil {
			t.Fatal(err)
		}
	}

	if err := client.Send("mem", 5); err != nil {
		t.Fatal(err)
	}

	if err := client.Flush(); err != nil {
		t.Fatal(err)
	}

	if err := waitForSamples(node, 4, 3*time.Second); err != nil {
		t.Fatal(err)
	}

	window, err := node.GetWindow("cpu", -1)
	if err != nil {
		t.Fatal(err)
	}

	expected := []int64{10, 20, 30}
	if !reflect.DeepEqual(window, expected) {
		t.Fatalf("cpu window should be %v, not %v", expected, window)
	}

	names := node.SeriesNames()
	if !reflect.DeepEqual(names, []string{"cpu", "mem"}) {
		t.Fatalf("series names should be [cpu mem], not %v", names)
	}

	summary, err := node.GetSummary("cpu")
	if err != nil {
		t.Fatal(err)
	}

	if summary.Median != 20 {
		t.Fatalf("cpu median should be 20, not %d", summary.Median)
	}
}

func TestMaintenanceMode(t *testing.T) {
	conf := TestConfig(t)
	conf.MaintenanceMode = true

	node := initTestNode(conf, t)
	defer node.Shutdown()

	if s := node.getState(); s != Suspended {
		t.Fatalf("state should be %v, not %v", Suspended, s)
	}

	node.RunAsync()

	//A suspended node drops whatever reaches it
	node.addSample(ingest.Sample{Series: "cpu", Value: 1})

	if total := node.TotalSamples(); total != 0 {
		t.Fatalf("suspended node should not store samples, got %d", total)
	}

	stats := node.GetStats()
	if stats["state"] != "Suspended" {
		t.Fatalf("state should be Suspended, not %s", stats["state"])
	}
}

func TestShutdown(t *testing.T) {
	node := initTestNode(TestConfig(t), t)

	node.RunAsync()

	node.Shutdown()

	if s := node.getState(); s != Shutdown {
		t.Fatalf("state should be %v, not %v", Shutdown, s)
	}

	//Calling Shutdown again should be a no-op
	node.Shutdown()
}

func TestGetStats(t *testing.T) {
	node := initTestNode(TestConfig(t), t)
	defer node.Shutdown()

	node.RunAsync()

	client, err := ingest.Dial(node.listener.LocalAddr(), time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	for i := 0; i < 10; i++ {
		if err := client.Send("requests", int64(i)); err != nil {
			t.Fatal(err)
		}
	}

	if err := client.Flush(); err != nil {
		t.Fatal(err)
	}

	if err := waitForSamples(node, 10, 3*time.Second); err != nil {
		t.Fatal(err)
	}

	stats := node.GetStats()

	if stats["state"] != "Collecting" {
		t.Fatalf("state should be Collecting, not %s", stats["state"])
	}
	if stats["num_series"] != "1" {
		t.Fatalf("num_series should be 1, not %s", stats["num_series"])
	}
	if stats["total_samples"] != "10" {
		t.Fatalf("total_samples should be 10, not %s", stats["total_samples"])
	}
	if stats["applied_samples"] != "10" {
		t.Fatalf("applied_samples should be 10, not %s", stats["applied_samples"])
	}
	if stats["apply_rate"] != "1.00" {
		t.Fatalf("apply_rate should be 1.00, not %s", stats["apply_rate"])
	}
	if stats["ingest_errors"] != "0" {
		t.Fatalf("ingest_errors should be 0, not %s", stats["ingest_errors"])
	}
	if len(stats["run_id"]) != 26 {
		t.Fatalf("run_id should be a 26 character ulid, not %s", stats["run_id"])
	}
}

func TestSummaryAfterEviction(t *testing.T) {
	conf := TestConfig(t)
	conf.CacheSize = 10

	node := initTestNode(conf, t)
	defer node.Shutdown()

	for i := 0; i < 35; i++ {
		node.addSample(ingest.Sample{Series: "cpu", Value: int64(i)})
	}

	//The window kept values 20..34; the summary covers what is left
	summary, err := node.GetSummary("cpu")
	if err != nil {
		t.Fatal(err)
	}

	if summary.Count != 15 {
		t.Fatalf("summary count should be 15, not %d", summary.Count)
	}
	if summary.Median != 27 {
		t.Fatalf("summary median should be 27, not %d", summary.Median)
	}
}
