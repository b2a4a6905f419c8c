package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/config"
	"github.com/syriandeal/deal-server-go/internal/game"
	"github.com/syriandeal/deal-server-go/internal/repository"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WSMessage is the envelope for every message in both directions.
type WSMessage struct {
	Type     string          `json:"type"`
	GameID   string          `json:"game_id,omitempty"`
	PlayerID string          `json:"player_id,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// CommandData carries the command-specific fields of a client message.
type CommandData struct {
	CardID       string `json:"card_id,omitempty"`
	TargetCardID string `json:"target_card_id,omitempty"`
	Color        string `json:"color,omitempty"`
	Count        int    `json:"count,omitempty"`
}

// Gateway bridges WebSocket clients to the game engine: it decodes command
// messages, applies them, and pushes state snapshots and engine
// notifications back out.
type Gateway struct {
	engine   *game.Engine
	results  *repository.ResultRepository
	logger   *zap.Logger
	botDelay time.Duration
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]bool
}

type client struct {
	conn     *websocket.Conn
	send     chan []byte
	gameID   string
	playerID string
}

// NewGateway creates the WebSocket gateway. results may be nil when no
// database is configured.
func NewGateway(engine *game.Engine, results *repository.ResultRepository, botDelay time.Duration, logger *zap.Logger) *Gateway {
	g := &Gateway{
		engine:   engine,
		results:  results,
		logger:   logger,
		botDelay: botDelay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
	engine.SetNotificationHandler(g.handleNotification)
	return g
}

// StartWebSocketServer runs the gateway's HTTP listener. It blocks until the
// listener fails.
func StartWebSocketServer(cfg config.WebSocketConfig, gateway *Gateway, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gateway.HandleWS)

	logger.Info("starting WebSocket server", zap.String("address", cfg.Address))
	return http.ListenAndServe(cfg.Address, mux)
}

// HandleWS upgrades the connection and runs the client read/write pumps.
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 32),
	}
	g.mu.Lock()
	g.clients[c] = true
	g.mu.Unlock()

	go g.writePump(c)
	g.readPump(c)
}

func (g *Gateway) readPump(c *client) {
	defer func() {
		g.mu.Lock()
		if _, ok := g.clients[c]; ok {
			delete(g.clients, c)
			close(c.send)
		}
		g.mu.Unlock()
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			g.sendError(c, "invalid message")
			continue
		}
		g.handleMessage(c, msg)
	}
}

func (g *Gateway) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) handleMessage(c *client, msg WSMessage) {
	var data CommandData
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			g.sendError(c, "invalid command data")
			return
		}
	}

	switch msg.Type {
	case "initialize_game":
		gameID := msg.GameID
		if gameID == "" {
			gameID = game.NewGameID()
		}
		// Bind the client before initializing: the engine emits the game
		// start notification from another goroutine, and broadcast matches
		// clients on gameID. The gateway mutex orders the binding against
		// concurrent broadcast walks.
		g.mu.Lock()
		c.gameID = gameID
		c.playerID = game.HumanPlayerID
		g.mu.Unlock()
		if err := g.engine.InitializeGame(gameID); err != nil {
			g.sendError(c, err.Error())
			return
		}
		g.sendState(c)
		return

	case "execute_bot_turn":
		go g.driveBotTurn(c.gameID)
		return
	}

	result, err := g.dispatch(c, msg, data)
	if err != nil {
		g.sendError(c, err.Error())
		return
	}

	if result.Rejected() {
		g.logger.Debug("command rejected",
			zap.String("type", msg.Type),
			zap.String("game_id", c.gameID),
			zap.String("reason", result.Reason),
		)
	}
	g.sendState(c)
}

func (g *Gateway) dispatch(c *client, msg WSMessage, data CommandData) (game.Result, error) {
	gameID := c.gameID
	if msg.GameID != "" {
		gameID = msg.GameID
	}
	playerID := c.playerID
	if msg.PlayerID != "" {
		playerID = msg.PlayerID
	}
	color := catalog.Color(data.Color)

	switch msg.Type {
	case "draw_cards":
		return g.engine.DrawCards(gameID, playerID, data.Count)
	case "play_card":
		return g.engine.PlayCard(gameID, playerID, data.CardID, color)
	case "bank_card":
		return g.engine.BankCard(gameID, playerID, data.CardID)
	case "end_turn":
		return g.engine.EndTurn(gameID)
	case "select_wild_color":
		return g.engine.SelectWildCardColor(gameID, color)
	case "cancel_wild_card":
		return g.engine.CancelWildCard(gameID)
	case "select_steal_target":
		return g.engine.SelectStealTarget(gameID, data.TargetCardID)
	case "select_rent_color":
		return g.engine.SelectRentColor(gameID, color)
	case "cancel_action":
		return g.engine.CancelAction(gameID)
	case "change_wild_color":
		return g.engine.ChangeWildCardColor(gameID, data.CardID)
	case "select_new_color":
		return g.engine.SelectNewColor(gameID, color)
	case "get_state":
		return game.Result{}, nil
	}
	return game.Result{}, nil
}

// driveBotTurn steps the bot with the configured pacing delay, broadcasting
// a snapshot after every action, until the bot ends its turn.
func (g *Gateway) driveBotTurn(gameID string) {
	for i := 0; i < 64; i++ {
		action, result, err := g.engine.ExecuteBotTurn(gameID)
		if err != nil {
			g.logger.Warn("bot turn failed", zap.String("game_id", gameID), zap.Error(err))
			return
		}
		g.broadcastState(gameID)
		if action.Type == game.BotEndTurn || result.Rejected() {
			return
		}
		if g.botDelay > 0 {
			time.Sleep(g.botDelay)
		}
	}
}

func (g *Gateway) handleNotification(n game.GameNotification) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	g.broadcast(n.GameID, WSMessage{Type: "notification", GameID: n.GameID, Data: payload})

	if n.Type == game.NotifyGameOver {
		g.broadcastState(n.GameID)
		g.recordResult(n.GameID)
	}
}

func (g *Gateway) recordResult(gameID string) {
	if g.results == nil {
		return
	}
	view, err := g.engine.GameView(gameID, "")
	if err != nil || view.WinnerID == "" {
		return
	}

	result := repository.GameResult{
		GameID:     gameID,
		WinnerID:   view.WinnerID,
		Turns:      view.TurnCount,
		StartedAt:  view.StartedAt,
		FinishedAt: time.Now(),
	}
	for _, p := range view.Players {
		if p.ID == view.WinnerID {
			result.WinnerName = p.Name
			result.CompletedSets = p.CompletedSets
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.results.RecordResult(ctx, result); err != nil {
		g.logger.Warn("failed to record game result",
			zap.String("game_id", gameID),
			zap.Error(err),
		)
	}
}

func (g *Gateway) sendState(c *client) {
	view, err := g.engine.GameView(c.gameID, c.playerID)
	if err != nil {
		g.sendError(c, err.Error())
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	g.sendMessage(c, WSMessage{Type: "game_state", GameID: c.gameID, Data: payload})
}

func (g *Gateway) broadcastState(gameID string) {
	g.mu.RLock()
	targets := make([]*client, 0, len(g.clients))
	for c := range g.clients {
		if c.gameID == gameID {
			targets = append(targets, c)
		}
	}
	g.mu.RUnlock()

	for _, c := range targets {
		g.sendState(c)
	}
}

func (g *Gateway) broadcast(gameID string, msg WSMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for c := range g.clients {
		if c.gameID != gameID {
			continue
		}
		select {
		case c.send <- raw:
		default:
		}
	}
}

func (g *Gateway) sendMessage(c *client, msg WSMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}

func (g *Gateway) sendError(c *client, reason string) {
	payload, _ := json.Marshal(map[string]string{"error": reason})
	g.sendMessage(c, WSMessage{Type: "error", Data: payload})
}
