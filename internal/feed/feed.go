// Package feed receives GameState snapshots from the external
// screen-reader process over a WebSocket connection.
package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/engine"
)

// wireState is the JSON shape the screen reader publishes. Unknown
// cards (face-down hole card, unreadable OCR cells) arrive as "?" or
// the empty string and are skipped.
type wireState struct {
	Dealer    []string `json:"dealer"`
	Player    []string `json:"player"`
	Shuffle   bool     `json:"shuffle"`
	FromSplit bool     `json:"from_split"`
	Balance   float64  `json:"balance"`
	HandOver  bool     `json:"hand_over"`
}

// Event is one decoded feed message.
type Event struct {
	Snapshot engine.Snapshot
	// HandOver signals round completion without a new hand.
	HandOver bool
}

// Client connects to the screen-reader feed and decodes snapshots.
type Client struct {
	url    string
	logger *log.Logger
	conn   *websocket.Conn
}

// NewClient creates a feed client for the given WebSocket URL.
func NewClient(url string, logger *log.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger.WithPrefix("feed"),
	}
}

// Connect dials the screen-reader feed.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to feed %s: %w", c.url, err)
	}
	c.conn = conn
	c.logger.Info("connected to screen reader feed", "url", c.url)
	return nil
}

// Run reads snapshots until the context is cancelled or the connection
// drops, delivering each decoded event to the channel. Undecodable
// messages are logged and skipped; the feed is best-effort OCR output.
func (c *Client) Run(ctx context.Context, events chan<- Event) error {
	defer c.Close()

	go func() {
		<-ctx.Done()
		c.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("feed read: %w", err)
		}

		ev, err := decode(data)
		if err != nil {
			c.logger.Warn("skipping unreadable snapshot", "error", err)
			continue
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close tears down the connection. Safe to call more than once.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// decode parses a wire message into an engine snapshot, dropping
// unknown-card placeholders.
func decode(data []byte) (Event, error) {
	var ws wireState
	if err := json.Unmarshal(data, &ws); err != nil {
		return Event{}, fmt.Errorf("decode snapshot: %w", err)
	}

	dealer, err := parseKnown(ws.Dealer)
	if err != nil {
		return Event{}, fmt.Errorf("dealer cards: %w", err)
	}
	player, err := parseKnown(ws.Player)
	if err != nil {
		return Event{}, fmt.Errorf("player cards: %w", err)
	}

	return Event{
		Snapshot: engine.Snapshot{
			Dealer:    dealer,
			Player:    player,
			Shuffle:   ws.Shuffle,
			FromSplit: ws.FromSplit,
			Balance:   ws.Balance,
		},
		HandOver: ws.HandOver,
	}, nil
}

// parseKnown parses rank symbols, skipping unknown-card markers.
func parseKnown(symbols []string) (blackjack.Hand, error) {
	hand := make(blackjack.Hand, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || s == "?" {
			continue
		}
		r, err := blackjack.ParseRank(s)
		if err != nil {
			return nil, err
		}
		hand = append(hand, r)
	}
	return hand, nil
}
