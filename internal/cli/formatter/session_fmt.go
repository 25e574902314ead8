package formatter

import (
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
)

// FormatSession renders the current authentication state for whoami.
func FormatSession(s domain.Session) string {
	if !s.IsAuthenticated || s.User == nil {
		if s.IsLoading {
			return Dim("Entrando...") + "\n"
		}
		return Dim("Nenhuma sessão ativa.") + "\n"
	}
	return fmt.Sprintf("%s %s %s\n%s %s\n",
		StyleGreen.Render("●"),
		Bold(s.User.Name),
		Dim("<"+s.User.Email+">"),
		Dim("  id:"),
		s.User.ID,
	)
}

// FormatLoginResult renders the outcome of a login attempt.
func FormatLoginResult(ok bool, s domain.Session) string {
	if !ok {
		return StyleRed.Render("✖ Email ou senha incorretos.") + "\n"
	}
	name := ""
	if s.User != nil {
		name = s.User.Name
	}
	return StyleGreen.Render("✔ Bem-vindo,") + " " + Bold(name) + "\n"
}
