package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"organelle-quiz-service/internal/domain"
	"organelle-quiz-service/internal/game"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *game.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *game.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Submission string `json:"submission"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the
// quiz session. One connection owns one device's session; every state
// change (including timer ticks) is pushed as a "state" message.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context(), playerID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Leave(r.Context(), playerID)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: update}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, playerID, inbound); err != nil {
			// Error reports are advisory. If the writer died and the
			// buffer is full, drop the report instead of blocking the
			// read loop forever.
			select {
			case send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}:
			default:
			}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// dispatch maps inbound operations onto the session state machine. Every
// successful operation broadcasts a snapshot through the subscription, so
// only errors are reported here.
func (h *WSHandler) dispatch(r *http.Request, playerID string, inbound inboundMessage) error {
	ctx := r.Context()
	switch inbound.Type {
	case "start":
		_, err := h.service.StartGame(ctx, playerID)
		return err
	case "select", "type":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return err
		}
		return h.service.SetAnswer(ctx, playerID, payload.Submission)
	case "submit":
		_, err := h.service.Submit(ctx, playerID)
		return err
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return err
		}
		_, err := h.service.SubmitAnswer(ctx, playerID, payload.Submission)
		return err
	case "hint":
		_, err := h.service.RevealHint(ctx, playerID)
		return err
	case "revealAll":
		_, err := h.service.RevealAllClues(ctx, playerID)
		return err
	case "next":
		_, err := h.service.AdvanceRound(ctx, playerID)
		return err
	case "menu":
		_, err := h.service.ReturnToMenu(ctx, playerID)
		return err
	case "settings":
		var settings domain.Settings
		if err := json.Unmarshal(inbound.Payload, &settings); err != nil {
			return err
		}
		_, err := h.service.UpdateSettings(ctx, playerID, settings)
		return err
	default:
		return errors.New("unsupported message type")
	}
}
