package commands

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/mosaicnetworks/midline/src/ingest"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	seedName    string
	seedCount   int
	seedTarget  int
	seedConnect string
	seedOut     string
)

//NewSeedCmd returns the command that generates synthetic samples
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Stream synthetic samples to a node",
		RunE:  seed,
	}

	AddSeedFlags(cmd)

	return cmd
}

//AddSeedFlags adds flags to the seed command
func AddSeedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&seedName, "name", "latency_ms", "Series to write to")
	cmd.Flags().IntVar(&seedCount, "count", 1000, "Number of samples to generate")
	cmd.Flags().IntVar(&seedTarget, "target", 250, "Scale of the distribution; samples cluster around 0.8 * target")
	cmd.Flags().StringVar(&seedConnect, "connect", "127.0.0.1:1337", "IP:Port of the node's sample listener")
	cmd.Flags().StringVar(&seedOut, "out", "", "Write samples to a file instead of a socket")
}

type cryptoRandSource struct{}

func newCryptoRandSource() cryptoRandSource {
	return cryptoRandSource{}
}

func (cryptoRandSource) Uint64() uint64 {
	var b [8]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (cryptoRandSource) Seed(_ uint64) {}

func seed(cmd *cobra.Command, args []string) error {
	batchID := ulid.Make()

	dist := distuv.Binomial{
		N:   float64(seedTarget * 2),
		P:   0.4,
		Src: newCryptoRandSource(),
	}

	values := make([]int64, seedCount)
	for i := range values {
		values[i] = int64(dist.Rand())
	}

	if seedOut != "" {
		return writeSampleFile(seedOut, batchID, values)
	}

	client, err := ingest.Dial(seedConnect, time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Comment(fmt.Sprintf("seed %s", batchID)); err != nil {
		return err
	}

	for _, v := range values {
		if err := client.Send(seedName, v); err != nil {
			return errors.Wrap(err, "sending sample")
		}
	}

	if err := client.Flush(); err != nil {
		return err
	}

	fmt.Printf("Sent %d samples to series %s on %s\n", len(values), seedName, seedConnect)

	return nil
}

func writeSampleFile(path string, batchID ulid.ULID, values []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating sample file")
	}
	defer f.Close()

	fmt.Fprintf(f, "# seed %s\n", batchID)

	for _, v := range values {
		fmt.Fprintf(f, "%s:%d\n", seedName, v)
	}

	fmt.Printf("Wrote %d samples for series %s to %s\n", len(values), seedName, path)

	return nil
}
