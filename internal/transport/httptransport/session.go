package httptransport

import (
	"fmt"
	"net/http"

	"github.com/NastyaGoryachaya/forex-converter/internal/config"
	"github.com/NastyaGoryachaya/forex-converter/internal/consts"
	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// SessionStore — cookie-сессия пользователя: набор известных валют и flash-сообщения.
type SessionStore struct {
	store sessions.Store
	name  string
}

func NewSessionStore(cfg config.SessionConfig) *SessionStore {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store, name: cfg.Name}
}

// session — повреждённая или чужая cookie не ошибка: store отдаёт новую пустую сессию.
// В пределах запроса gorilla/sessions возвращает один и тот же объект.
func (s *SessionStore) session(c echo.Context) *sessions.Session {
	sess, _ := s.store.Get(c.Request(), s.name)
	if sess == nil {
		sess = sessions.NewSession(s.store, s.name)
	}
	return sess
}

// KnownSet — коды валют, сохранённые при последнем показе формы.
func (s *SessionStore) KnownSet(c echo.Context) domain.KnownSet {
	codes, _ := s.session(c).Values[consts.SessionCurrencies].([]string)
	return domain.NewKnownSet(codes)
}

// SetCurrencies — заменяет набор известных валют. Изменения пишутся в cookie через Save.
func (s *SessionStore) SetCurrencies(c echo.Context, codes []string) {
	s.session(c).Values[consts.SessionCurrencies] = codes
}

// AddFlash — сообщение об ошибке для следующего показа формы.
func (s *SessionStore) AddFlash(c echo.Context, msg string) {
	s.session(c).AddFlash(msg, consts.FlashError)
}

// Flashes — забирает накопленные сообщения из сессии.
func (s *SessionStore) Flashes(c echo.Context) []string {
	raw := s.session(c).Flashes(consts.FlashError)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// Save — записывает сессию в Set-Cookie; вызывать до отправки тела ответа.
func (s *SessionStore) Save(c echo.Context) error {
	if err := s.session(c).Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
