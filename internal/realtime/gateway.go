package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
)

// clientMessage is the inbound frame shape: a named event plus a payload.
type clientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// serverMessage is the outbound frame shape.
type serverMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// connSender serializes pushes onto one WebSocket connection.
type connSender struct {
	mu   sync.Mutex
	conn net.Conn
}

func (s *connSender) Send(event string, data any) error {
	payload, err := json.Marshal(serverMessage{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := wsutil.WriteServerText(s.conn, payload); err != nil {
		return fmt.Errorf("failed to write %s event: %w", event, err)
	}
	return nil
}

// Gateway upgrades HTTP requests to WebSocket sessions and feeds their
// registration events into the Connection Registry. Each session lives for
// exactly one connection; a read error or an explicit disconnect removes it.
type Gateway struct {
	registry *Registry
	logger   *slog.Logger
}

func NewGateway(registry *Registry, logger *slog.Logger) *Gateway {
	return &Gateway{
		registry: registry,
		logger:   logger,
	}
}

// Handle is the gin handler for GET /ws.
func (g *Gateway) Handle(c *gin.Context) {
	conn, _, _, err := ws.UpgradeHTTP(c.Request, c.Writer)
	if err != nil {
		g.logger.Error("WebSocket upgrade failed",
			slog.String("remote", c.ClientIP()),
			slog.Any("error", err),
		)
		return
	}

	sessionID := uuid.New().String()
	g.logger.Info("Realtime session connected",
		slog.String("session_id", sessionID),
		slog.String("remote", c.ClientIP()),
	)

	go g.readLoop(conn, sessionID)
}

func (g *Gateway) readLoop(conn net.Conn, sessionID string) {
	defer func() {
		g.registry.Remove(sessionID)
		conn.Close()
		g.logger.Info("Realtime session disconnected",
			slog.String("session_id", sessionID),
		)
	}()

	sender := &connSender{conn: conn}

	for {
		data, err := wsutil.ReadClientText(conn)
		if err != nil {
			return
		}

		msg, err := decodeClientMessage(data)
		if err != nil {
			g.logger.Warn("Dropping malformed realtime message",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
			continue
		}

		switch msg.Event {
		case EventRegisterMaster:
			var reg RegisterMasterPayload
			if err := json.Unmarshal(msg.Data, &reg); err != nil {
				g.logger.Warn("Invalid registerMaster payload",
					slog.String("session_id", sessionID),
					slog.Any("error", err),
				)
				continue
			}
			g.registry.RegisterMaster(sessionID, sender, reg.CategoryIDs, reg.CityID)
			g.logger.Info("Master session registered",
				slog.String("session_id", sessionID),
				slog.Int64("city_id", reg.CityID),
				slog.Int("categories", len(reg.CategoryIDs)),
			)

		case EventRegisterCustomer:
			var reg RegisterCustomerPayload
			if err := json.Unmarshal(msg.Data, &reg); err != nil {
				g.logger.Warn("Invalid registerCustomer payload",
					slog.String("session_id", sessionID),
					slog.Any("error", err),
				)
				continue
			}
			g.registry.RegisterCustomer(sessionID, sender, reg.CustomerID)
			g.logger.Info("Customer session registered",
				slog.String("session_id", sessionID),
				slog.Int64("customer_id", reg.CustomerID),
			)

		case EventDisconnect:
			return

		default:
			g.logger.Warn("Unknown realtime event",
				slog.String("session_id", sessionID),
				slog.String("event", msg.Event),
			)
		}
	}
}

func decodeClientMessage(data []byte) (*clientMessage, error) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode client message: %w", err)
	}
	if msg.Event == "" {
		return nil, fmt.Errorf("client message has no event name")
	}
	return &msg, nil
}
