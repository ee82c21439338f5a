package ingest

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/pkg/errors"
)

// Client writes samples to a midline node over the line protocol. Writes are
// buffered; call Flush, or Close, to push them out.
type Client struct {
	conn net.Conn
	w    *bufio.Writer
}

// Dial connects to a midline node's ingest address.
func Dial(target string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", target, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", target)
	}

	return &Client{
		conn: conn,
		w:    bufio.NewWriter(conn),
	}, nil
}

// Send queues one sample for a series.
func (c *Client) Send(name string, value int64) error {
	_, err := fmt.Fprintf(c.w, "%s:%d\n", name, value)
	return err
}

// Comment queues a '#' comment line, which the listener ignores.
func (c *Client) Comment(text string) error {
	_, err := fmt.Fprintf(c.w, "# %s\n", text)
	return err
}

// Flush pushes out all queued lines.
func (c *Client) Flush() error {
	return c.w.Flush()
}

// Close flushes queued lines and closes the connection.
func (c *Client) Close() error {
	if err := c.w.Flush(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
