package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	session, err := that.gameUseCase.GetOrCreateSession(ctx, payloadReq.SessionID)
	if err != nil {
		log.Error("failed to get or create session", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to create a session")
	}

	conn.sessionID = session.ID

	payload := viewPayload(session)
	payload.Theme = conn.theme

	if err = that.sendMessage(ctx, conn, msg.Action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("session connected", "session_id", session.ID)

	return nil
}

func (that *Server) handlePlay(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(ctx, conn, msg.Action, "cell is required")
	}

	session, err := that.gameUseCase.Play(ctx, conn.sessionID, *payloadReq.Cell)
	if err != nil {
		that.logger.Error("failed to play cell", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to play the move")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

func (that *Server) handleJump(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Step == nil {
		return that.sendErrorResponse(ctx, conn, msg.Action, "step is required")
	}

	session, err := that.gameUseCase.JumpTo(ctx, conn.sessionID, *payloadReq.Step)
	if errors.Is(err, apperror.ErrStepOutOfRange) {
		return that.sendErrorResponse(ctx, conn, msg.Action, "step is out of range")
	}

	if err != nil {
		that.logger.Error("failed to jump to step", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to jump to the step")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

func (that *Server) handleUndo(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	session, err := that.gameUseCase.Undo(ctx, conn.sessionID)
	if err != nil {
		that.logger.Error("failed to undo", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to undo")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

func (that *Server) handleRedo(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	session, err := that.gameUseCase.Redo(ctx, conn.sessionID)
	if err != nil {
		that.logger.Error("failed to redo", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to redo")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

func (that *Server) handleReset(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	session, err := that.gameUseCase.Reset(ctx, conn.sessionID)
	if err != nil {
		that.logger.Error("failed to reset", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to reset the game")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

func (that *Server) handleView(ctx context.Context, conn *connection, msg *Message) error {
	if conn.sessionID == "" {
		return that.sendErrorResponse(ctx, conn, msg.Action, "connect first")
	}

	session, err := that.gameUseCase.GetSession(ctx, conn.sessionID)
	if err != nil {
		that.logger.Error("failed to get session", "error", err)

		return that.sendErrorResponse(ctx, conn, msg.Action, "failed to get the session")
	}

	return that.sendMessage(ctx, conn, msg.Action, viewPayload(session))
}

// handleTheme stores the cosmetic theme preference on the connection. The
// game engine never sees it.
func (that *Server) handleTheme(ctx context.Context, conn *connection, msg *Message) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Theme != themeLight && payloadReq.Theme != themeDark {
		return that.sendErrorResponse(ctx, conn, msg.Action, "unknown theme")
	}

	conn.theme = payloadReq.Theme

	return that.sendMessage(ctx, conn, msg.Action, Payload{Theme: conn.theme})
}

func decodePayload(msg *Message) (*Payload, error) {
	payload := &Payload{}

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

func viewPayload(session *entity.Session) Payload {
	view := session.Game.View()

	return Payload{
		SessionID: session.ID,
		View:      &view,
		Replay:    replayList(view.LastStep),
	}
}
