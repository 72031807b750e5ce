package ws

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/seliv-dev/tic-tac-toe/internal/domain"
	"go.uber.org/zap"
)

func (s *server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade connection", zap.Error(err))
		return
	}
	clientUuid := strings.TrimSpace(r.Header.Get(domain.ClientUuidHeader))
	if clientUuid == "" {
		// Anonymous clients still get to play, they just can't resume.
		clientUuid = uuid.NewString()
	}
	s.logger.Info("new connection", zap.String("client", clientUuid))
	client := newClient(conn, clientUuid)
	defer client.Close()
	if err := s.hub.Handle(r.Context(), client); err != nil {
		s.logger.Error("handle client", zap.String("client", clientUuid), zap.Error(err))
	}
}

type healthResponse struct {
	Status       string `json:"status"`
	GamesStarted int64  `json:"games_started"`
}

func (s *server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:       "ok",
		GamesStarted: s.hub.GamesStarted(),
	}
	if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn("encode health response", zap.Error(err))
	}
}
